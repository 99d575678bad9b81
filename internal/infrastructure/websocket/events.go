package websocket

import (
	"encoding/json"
	"time"
)

// Inbound event types.
const (
	EventJoinChat  = "join_chat"
	EventLeaveChat = "leave_chat"
	EventTyping    = "typing"
	EventMarkRead  = "mark_read"
	EventSend      = "send_message"
)

// Outbound event types.
const (
	EventConnected    = "connected"
	EventJoinedChat   = "joined_chat"
	EventLeftChat     = "left_chat"
	EventUserTyping   = "user_typing"
	EventMessagesRead = "messages_read"
	EventNewMessage   = "new_message"
	EventError        = "error"
)

// WSEvent is the wire envelope for every websocket frame in both directions.
type WSEvent struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewEvent(eventType string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(WSEvent{
		Type:      eventType,
		Data:      raw,
		Timestamp: time.Now(),
	})
}

// RoomKey derives the chat room identity from the campaign and proposal a
// conversation belongs to.
func RoomKey(campaignID, proposalID string) string {
	return "chat_" + campaignID + "_" + proposalID
}
