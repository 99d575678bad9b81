package websocket

import (
	"sync"

	"influmarket/pkg/logger"
)

// room exists only while it has members. Its mutex orders broadcasts, so two
// frames sent to the same room never interleave their member fan-out.
type room struct {
	mu      sync.Mutex
	members map[*Client]struct{}
}

// Registry tracks which clients are in which rooms. Membership changes hold
// the registry write lock; broadcasts hold the read lock plus the target
// room's own mutex, so traffic in different rooms does not contend.
type Registry struct {
	mu          sync.RWMutex
	rooms       map[string]*room
	clientRooms map[*Client]map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:       make(map[string]*room),
		clientRooms: make(map[*Client]map[string]struct{}),
	}
}

// Join adds the client to the room, creating the room on first join. Joining
// a room the client is already in is a no-op; the return value reports
// whether membership actually changed.
func (r *Registry) Join(key string, c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm, ok := r.rooms[key]
	if !ok {
		rm = &room{members: make(map[*Client]struct{})}
		r.rooms[key] = rm
	}

	if _, member := rm.members[c]; member {
		return false
	}
	rm.members[c] = struct{}{}

	if r.clientRooms[c] == nil {
		r.clientRooms[c] = make(map[string]struct{})
	}
	r.clientRooms[c][key] = struct{}{}

	logger.Debug("Client %s joined room %s (%d members)", c.UserID, key, len(rm.members))
	return true
}

// Leave removes the client from the room. Leaving a room the client is not in
// is a no-op. The room itself is deleted when its last member leaves, so an
// empty room and a never-created room are indistinguishable.
func (r *Registry) Leave(key string, c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.leaveLocked(key, c)
}

func (r *Registry) leaveLocked(key string, c *Client) bool {
	rm, ok := r.rooms[key]
	if !ok {
		return false
	}
	if _, member := rm.members[c]; !member {
		return false
	}

	delete(rm.members, c)
	if len(rm.members) == 0 {
		delete(r.rooms, key)
	}

	if set := r.clientRooms[c]; set != nil {
		delete(set, key)
		if len(set) == 0 {
			delete(r.clientRooms, c)
		}
	}

	logger.Debug("Client %s left room %s", c.UserID, key)
	return true
}

// RemoveClient drops the client from every room it joined and returns the
// keys of those rooms. Called exactly once per connection, on teardown.
func (r *Registry) RemoveClient(c *Client) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var left []string
	for key := range r.clientRooms[c] {
		if r.leaveLocked(key, c) {
			left = append(left, key)
		}
	}
	return left
}

// IsMember reports whether the client currently belongs to the room.
func (r *Registry) IsMember(key string, c *Client) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rm, ok := r.rooms[key]
	if !ok {
		return false
	}
	_, member := rm.members[c]
	return member
}

// MemberCount returns the room's current size, zero for an absent room.
func (r *Registry) MemberCount(key string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rm, ok := r.rooms[key]
	if !ok {
		return 0
	}
	return len(rm.members)
}

// Broadcast enqueues the frame to every member of the room, including the
// member that caused it. Returns the number of clients reached.
func (r *Registry) Broadcast(key string, message []byte) int {
	return r.broadcast(key, nil, message)
}

// BroadcastExcept enqueues the frame to every member except one, used for
// typing indicators which the typist should not see echoed.
func (r *Registry) BroadcastExcept(key string, except *Client, message []byte) int {
	return r.broadcast(key, except, message)
}

func (r *Registry) broadcast(key string, except *Client, message []byte) int {
	// The read lock stays held across the fan-out so membership cannot
	// change underneath the iteration; the room mutex orders concurrent
	// broadcasts to the same room.
	r.mu.RLock()
	defer r.mu.RUnlock()

	rm, ok := r.rooms[key]
	if !ok {
		return 0
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	sent := 0
	for member := range rm.members {
		if member == except {
			continue
		}
		if member.Enqueue(message) {
			sent++
		}
	}
	return sent
}
