package websocket

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(userID string) *Client {
	return NewClient(userID, nil)
}

func drain(c *Client) [][]byte {
	var frames [][]byte
	for {
		select {
		case msg := <-c.Send:
			frames = append(frames, msg)
		default:
			return frames
		}
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	r := NewRegistry()
	c := newTestClient("user-1")

	assert.True(t, r.Join("chat_c1_p1", c))
	assert.False(t, r.Join("chat_c1_p1", c))
	assert.Equal(t, 1, r.MemberCount("chat_c1_p1"))
}

func TestLeaveIsIdempotentAndDeletesEmptyRoom(t *testing.T) {
	r := NewRegistry()
	c := newTestClient("user-1")

	assert.False(t, r.Leave("chat_c1_p1", c), "leaving a room never joined is a no-op")

	r.Join("chat_c1_p1", c)
	assert.True(t, r.Leave("chat_c1_p1", c))
	assert.False(t, r.Leave("chat_c1_p1", c))
	assert.Equal(t, 0, r.MemberCount("chat_c1_p1"))

	// A drained room behaves exactly like one that never existed.
	assert.True(t, r.Join("chat_c1_p1", c))
}

func TestBroadcastReachesAllMembersIncludingSender(t *testing.T) {
	r := NewRegistry()
	sender := newTestClient("sender")
	peer := newTestClient("peer")
	outsider := newTestClient("outsider")

	r.Join("chat_c1_p1", sender)
	r.Join("chat_c1_p1", peer)
	r.Join("chat_c1_p2", outsider)

	sent := r.Broadcast("chat_c1_p1", []byte(`{"type":"new_message"}`))
	assert.Equal(t, 2, sent)
	assert.Len(t, drain(sender), 1)
	assert.Len(t, drain(peer), 1)
	assert.Empty(t, drain(outsider))
}

func TestBroadcastExceptSkipsOriginator(t *testing.T) {
	r := NewRegistry()
	typist := newTestClient("typist")
	peer := newTestClient("peer")

	r.Join("chat_c1_p1", typist)
	r.Join("chat_c1_p1", peer)

	sent := r.BroadcastExcept("chat_c1_p1", typist, []byte(`{"type":"user_typing"}`))
	assert.Equal(t, 1, sent)
	assert.Empty(t, drain(typist))
	assert.Len(t, drain(peer), 1)
}

func TestBroadcastToAbsentRoom(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.Broadcast("chat_cx_px", []byte("x")))
}

func TestRemoveClientClearsAllMemberships(t *testing.T) {
	r := NewRegistry()
	c := newTestClient("user-1")
	other := newTestClient("user-2")

	r.Join("chat_c1_p1", c)
	r.Join("chat_c1_p2", c)
	r.Join("chat_c1_p1", other)

	left := r.RemoveClient(c)
	assert.ElementsMatch(t, []string{"chat_c1_p1", "chat_c1_p2"}, left)

	assert.False(t, r.IsMember("chat_c1_p1", c))
	assert.Equal(t, 1, r.MemberCount("chat_c1_p1"))
	assert.Equal(t, 0, r.MemberCount("chat_c1_p2"))

	// Second removal finds nothing to clean up.
	assert.Empty(t, r.RemoveClient(c))
}

func TestMembershipRequiredForDelivery(t *testing.T) {
	r := NewRegistry()
	member := newTestClient("member")
	ghost := newTestClient("ghost")

	r.Join("chat_c1_p1", member)

	r.Broadcast("chat_c1_p1", []byte("hello"))
	assert.Len(t, drain(member), 1)
	assert.Empty(t, drain(ghost))
}

func TestEnqueueDropsWhenBufferFull(t *testing.T) {
	c := newTestClient("slow")
	for i := 0; i < sendBufferSize; i++ {
		assert.True(t, c.Enqueue([]byte("frame")))
	}
	assert.False(t, c.Enqueue([]byte("overflow")))
}

func TestConcurrentJoinLeaveBroadcast(t *testing.T) {
	r := NewRegistry()
	const workers = 16

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c := newTestClient(fmt.Sprintf("user-%d", n))
			key := fmt.Sprintf("chat_c1_p%d", n%4)
			for j := 0; j < 200; j++ {
				r.Join(key, c)
				r.Broadcast(key, []byte("m"))
				drain(c)
				r.Leave(key, c)
			}
			r.RemoveClient(c)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		assert.Equal(t, 0, r.MemberCount(fmt.Sprintf("chat_c1_p%d", i)))
	}
}

func TestRoomKey(t *testing.T) {
	assert.Equal(t, "chat_42_7", RoomKey("42", "7"))
}
