package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influmarket/internal/infrastructure/ratelimit"
	ws "influmarket/internal/infrastructure/websocket"
	"influmarket/pkg/errors"
	"influmarket/pkg/snowflake"
)

type chatFixture struct {
	*marketWorld
	uc       *ChatUseCase
	registry *ws.Registry
	roomKey  string
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()
	w := newMarketWorld(t)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	registry := ws.NewRegistry()
	messages := newMemMessageRepo()
	uc := NewChatUseCase(w.resolver, messages, w.campaigns, w.influencers, w.brands, registry, ratelimit.NewRateLimiter(), node)

	return &chatFixture{
		marketWorld: w,
		uc:          uc,
		registry:    registry,
		roomKey:     ws.RoomKey(w.campaignID, w.proposalID),
	}
}

func drainFrames(c *ws.Client) []ws.WSEvent {
	var events []ws.WSEvent
	for {
		select {
		case raw := <-c.Send:
			var event ws.WSEvent
			if err := json.Unmarshal(raw, &event); err == nil {
				events = append(events, event)
			}
		default:
			return events
		}
	}
}

func TestSendMessageComputesRecipient(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	fromInfluencer, err := f.uc.SendMessage(ctx, f.influencerUserID, f.campaignID, f.proposalID, SendMessageInput{Body: "hi"})
	require.NoError(t, err)
	assert.Equal(t, f.influencerUserID, fromInfluencer.SenderID)
	assert.Equal(t, f.brandUserID, fromInfluencer.RecipientID)
	assert.False(t, fromInfluencer.Read)

	fromBrand, err := f.uc.SendMessage(ctx, f.brandUserID, f.campaignID, f.proposalID, SendMessageInput{Body: "hello"})
	require.NoError(t, err)
	assert.Equal(t, f.influencerUserID, fromBrand.RecipientID)
	assert.Greater(t, fromBrand.ID, fromInfluencer.ID, "ids follow send order")
}

func TestSendMessageRequiresBodyOrAttachment(t *testing.T) {
	f := newChatFixture(t)

	_, err := f.uc.SendMessage(context.Background(), f.influencerUserID, f.campaignID, f.proposalID, SendMessageInput{})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))

	history, err := f.uc.History(context.Background(), f.influencerUserID, f.campaignID, f.proposalID, 0)
	require.NoError(t, err)
	assert.Empty(t, history, "a rejected message is never persisted")
}

func TestSendMessageFileOnly(t *testing.T) {
	f := newChatFixture(t)

	message, err := f.uc.SendMessage(context.Background(), f.influencerUserID, f.campaignID, f.proposalID, SendMessageInput{
		FileURL:  "https://storage.googleapis.com/bucket/chat/brief.pdf",
		FileName: "brief.pdf",
		FileType: "application/pdf",
		FileSize: 2048,
	})
	require.NoError(t, err)
	assert.Empty(t, message.Body)
	assert.Equal(t, "brief.pdf", message.FileName)
}

func TestSendMessageDeniedForOutsider(t *testing.T) {
	f := newChatFixture(t)

	_, err := f.uc.SendMessage(context.Background(), f.outsiderUserID, f.campaignID, f.proposalID, SendMessageInput{Body: "let me in"})
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	history, err := f.uc.History(context.Background(), f.influencerUserID, f.campaignID, f.proposalID, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSendMessageBroadcastsToWholeRoom(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	sender := ws.NewClient(f.influencerUserID, nil)
	peer := ws.NewClient(f.brandUserID, nil)
	require.NoError(t, f.uc.JoinRoom(ctx, sender, f.campaignID, f.proposalID))
	require.NoError(t, f.uc.JoinRoom(ctx, peer, f.campaignID, f.proposalID))

	sent, err := f.uc.SendMessage(ctx, f.influencerUserID, f.campaignID, f.proposalID, SendMessageInput{Body: "hi"})
	require.NoError(t, err)

	for _, client := range []*ws.Client{sender, peer} {
		events := drainFrames(client)
		require.Len(t, events, 1, "the sender hears its own message too")
		assert.Equal(t, ws.EventNewMessage, events[0].Type)

		var payload struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.Unmarshal(events[0].Data, &payload))
		assert.Equal(t, sent.ID, payload.ID)
	}
}

func TestJoinRoomDeniedForOutsider(t *testing.T) {
	f := newChatFixture(t)

	intruder := ws.NewClient(f.outsiderUserID, nil)
	err := f.uc.JoinRoom(context.Background(), intruder, f.campaignID, f.proposalID)
	assert.True(t, errors.Is(err, errors.CodeForbidden))
	assert.Equal(t, 0, f.registry.MemberCount(f.roomKey))
}

func TestHistoryCursorWindowsAreDisjoint(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	var ids []int64
	for _, body := range []string{"one", "two", "three", "four", "five", "six"} {
		message, err := f.uc.SendMessage(ctx, f.influencerUserID, f.campaignID, f.proposalID, SendMessageInput{Body: body})
		require.NoError(t, err)
		ids = append(ids, message.ID)
	}

	full, err := f.uc.History(ctx, f.brandUserID, f.campaignID, f.proposalID, 0)
	require.NoError(t, err)
	require.Len(t, full, 6)

	// Split the history at an arbitrary cursor; the two windows must cover
	// everything exactly once.
	cursor := ids[2]
	head, err := f.uc.History(ctx, f.brandUserID, f.campaignID, f.proposalID, 0)
	require.NoError(t, err)
	tail, err := f.uc.History(ctx, f.brandUserID, f.campaignID, f.proposalID, cursor)
	require.NoError(t, err)

	var headIDs, tailIDs []int64
	for _, m := range head {
		if m.ID <= cursor {
			headIDs = append(headIDs, m.ID)
		}
	}
	for _, m := range tail {
		tailIDs = append(tailIDs, m.ID)
	}
	assert.Equal(t, ids[:3], headIDs)
	assert.Equal(t, ids[3:], tailIDs)

	// Polling from the last seen id yields nothing new.
	empty, err := f.uc.History(ctx, f.brandUserID, f.campaignID, f.proposalID, ids[5])
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMarkReadReturnsOnlyActuallyUpdated(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	first, err := f.uc.SendMessage(ctx, f.influencerUserID, f.campaignID, f.proposalID, SendMessageInput{Body: "a"})
	require.NoError(t, err)
	second, err := f.uc.SendMessage(ctx, f.influencerUserID, f.campaignID, f.proposalID, SendMessageInput{Body: "b"})
	require.NoError(t, err)
	own, err := f.uc.SendMessage(ctx, f.brandUserID, f.campaignID, f.proposalID, SendMessageInput{Body: "c"})
	require.NoError(t, err)

	// The brand asks to mark everything, including the message it sent
	// itself and an id that does not exist.
	updated, err := f.uc.MarkRead(ctx, f.brandUserID, f.campaignID, f.proposalID, []int64{first.ID, second.ID, own.ID, 999})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{first.ID, second.ID}, updated)

	// Retrying is a no-op.
	again, err := f.uc.MarkRead(ctx, f.brandUserID, f.campaignID, f.proposalID, []int64{first.ID, second.ID})
	require.NoError(t, err)
	assert.Empty(t, again)

	unread, err := f.uc.UnreadCount(ctx, f.brandUserID, f.campaignID, f.proposalID)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)
}

func TestMarkReadBroadcastsReceiptOnlyWhenSomethingChanged(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	message, err := f.uc.SendMessage(ctx, f.influencerUserID, f.campaignID, f.proposalID, SendMessageInput{Body: "a"})
	require.NoError(t, err)

	observer := ws.NewClient(f.influencerUserID, nil)
	require.NoError(t, f.uc.JoinRoom(ctx, observer, f.campaignID, f.proposalID))

	_, err = f.uc.MarkRead(ctx, f.brandUserID, f.campaignID, f.proposalID, []int64{message.ID})
	require.NoError(t, err)

	events := drainFrames(observer)
	require.Len(t, events, 1)
	assert.Equal(t, ws.EventMessagesRead, events[0].Type)

	// Decode into a raw map so the wire field names themselves are pinned,
	// not just the Go struct shape.
	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(events[0].Data, &payload))
	require.Contains(t, payload, "read_by")
	require.Contains(t, payload, "message_ids")

	var readBy string
	require.NoError(t, json.Unmarshal(payload["read_by"], &readBy))
	assert.Equal(t, f.brandUserID, readBy)

	var ids []int64
	require.NoError(t, json.Unmarshal(payload["message_ids"], &ids))
	assert.Equal(t, []int64{message.ID}, ids)

	// Nothing left to update, so no second receipt.
	_, err = f.uc.MarkRead(ctx, f.brandUserID, f.campaignID, f.proposalID, []int64{message.ID})
	require.NoError(t, err)
	assert.Empty(t, drainFrames(observer))
}

func TestTypingGoesToOthersOnly(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	typist := ws.NewClient(f.influencerUserID, nil)
	peer := ws.NewClient(f.brandUserID, nil)
	require.NoError(t, f.uc.JoinRoom(ctx, typist, f.campaignID, f.proposalID))
	require.NoError(t, f.uc.JoinRoom(ctx, peer, f.campaignID, f.proposalID))

	require.NoError(t, f.uc.Typing(typist, f.campaignID, f.proposalID, true))

	assert.Empty(t, drainFrames(typist))
	events := drainFrames(peer)
	require.Len(t, events, 1)
	assert.Equal(t, ws.EventUserTyping, events[0].Type)

	// Decode into a raw map so the wire field names themselves are pinned.
	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(events[0].Data, &payload))
	require.Contains(t, payload, "is_typing")

	var userID string
	require.NoError(t, json.Unmarshal(payload["user_id"], &userID))
	assert.Equal(t, f.influencerUserID, userID)

	var typing bool
	require.NoError(t, json.Unmarshal(payload["is_typing"], &typing))
	assert.True(t, typing)
}

func TestTypingRequiresMembership(t *testing.T) {
	f := newChatFixture(t)

	loner := ws.NewClient(f.influencerUserID, nil)
	err := f.uc.Typing(loner, f.campaignID, f.proposalID, true)
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}

func TestDisconnectStopsDelivery(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	influencerClient := ws.NewClient(f.influencerUserID, nil)
	brandClient := ws.NewClient(f.brandUserID, nil)
	require.NoError(t, f.uc.JoinRoom(ctx, influencerClient, f.campaignID, f.proposalID))
	require.NoError(t, f.uc.JoinRoom(ctx, brandClient, f.campaignID, f.proposalID))

	f.registry.RemoveClient(brandClient)

	_, err := f.uc.SendMessage(ctx, f.influencerUserID, f.campaignID, f.proposalID, SendMessageInput{Body: "still there?"})
	require.NoError(t, err)

	assert.Len(t, drainFrames(influencerClient), 1)
	assert.Empty(t, drainFrames(brandClient), "a departed client receives nothing")

	// The message is still in the history for the next poll.
	history, err := f.uc.History(ctx, f.brandUserID, f.campaignID, f.proposalID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
