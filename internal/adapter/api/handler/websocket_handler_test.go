package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influmarket/internal/infrastructure/ratelimit"
	ws "influmarket/internal/infrastructure/websocket"
	"influmarket/internal/usecase"
	"influmarket/pkg/snowflake"
)

// The typing and leave paths never touch the repositories, so the handler can
// be exercised with membership seeded straight into the registry.
func newWSHandler(t *testing.T) (*WebSocketHandler, *ws.Registry) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	registry := ws.NewRegistry()
	chatUseCase := usecase.NewChatUseCase(nil, nil, nil, nil, nil, registry, ratelimit.NewRateLimiter(), node)
	return NewWebSocketHandler(chatUseCase, registry), registry
}

func drainClient(c *ws.Client) []ws.WSEvent {
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

func TestTypingFrameUsesIsTypingKey(t *testing.T) {
	h, registry := newWSHandler(t)

	typist := ws.NewClient("user-influencer", nil)
	peer := ws.NewClient("user-brand", nil)
	registry.Join(ws.RoomKey("7", "42"), typist)
	registry.Join(ws.RoomKey("7", "42"), peer)

	h.HandleEvent(typist, []byte(`{"type":"typing","data":{"campaign_id":"7","proposal_id":"42","is_typing":true}}`))

	assert.Empty(t, drainClient(typist))
	events := drainClient(peer)
	require.Len(t, events, 1)
	assert.Equal(t, ws.EventUserTyping, events[0].Type)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(events[0].Data, &payload))
	require.Contains(t, payload, "is_typing")

	var typing bool
	require.NoError(t, json.Unmarshal(payload["is_typing"], &typing))
	assert.True(t, typing, "the inbound is_typing value carries through to the broadcast")
}

func TestLeaveChatAckNamesRoom(t *testing.T) {
	h, registry := newWSHandler(t)

	client := ws.NewClient("user-influencer", nil)
	registry.Join(ws.RoomKey("7", "42"), client)

	h.HandleEvent(client, []byte(`{"type":"leave_chat","data":{"campaign_id":"7","proposal_id":"42"}}`))

	events := drainClient(client)
	require.Len(t, events, 1)
	assert.Equal(t, ws.EventLeftChat, events[0].Type)

	var ack struct {
		Room string `json:"room"`
	}
	require.NoError(t, json.Unmarshal(events[0].Data, &ack))
	assert.Equal(t, "chat_7_42", ack.Room)
	assert.False(t, registry.IsMember(ws.RoomKey("7", "42"), client))
}
