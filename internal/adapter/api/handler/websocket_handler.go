package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "influmarket/internal/infrastructure/websocket"
	"influmarket/internal/usecase"
	"influmarket/pkg/errors"
	"influmarket/pkg/logger"
)

type WebSocketHandler struct {
	chatUseCase *usecase.ChatUseCase
	registry    *ws.Registry
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebSocketHandler(chatUseCase *usecase.ChatUseCase, registry *ws.Registry) *WebSocketHandler {
	return &WebSocketHandler{
		chatUseCase: chatUseCase,
		registry:    registry,
	}
}

// HandleWebSocket upgrades the connection and runs the pumps. Authentication
// already happened in middleware; everything after the upgrade speaks the
// event envelope.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	userID, ok := c.Get("uid").(string)
	if !ok || userID == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := ws.NewClient(userID, conn)

	if frame, err := ws.NewEvent(ws.EventConnected, map[string]string{"user_id": userID}); err == nil {
		client.Enqueue(frame)
	}

	go client.ReadPump(h.registry, h)
	go client.WritePump()

	return nil
}

type roomEventData struct {
	CampaignID string `json:"campaign_id"`
	ProposalID string `json:"proposal_id"`
}

type typingEventData struct {
	CampaignID string `json:"campaign_id"`
	ProposalID string `json:"proposal_id"`
	Typing     bool   `json:"is_typing"`
}

// roomAck confirms a join or leave back to the caller, naming the room key
// the client is now (or no longer) subscribed to.
type roomAck struct {
	Room       string `json:"room"`
	CampaignID string `json:"campaign_id"`
	ProposalID string `json:"proposal_id"`
}

type markReadEventData struct {
	CampaignID string  `json:"campaign_id"`
	ProposalID string  `json:"proposal_id"`
	MessageIDs []int64 `json:"message_ids"`
}

type sendMessageEventData struct {
	CampaignID string `json:"campaign_id"`
	ProposalID string `json:"proposal_id"`
	usecase.SendMessageInput
}

// HandleEvent dispatches one inbound frame. A malformed or failing event
// produces an error frame for this client only; the room never sees it.
func (h *WebSocketHandler) HandleEvent(client *ws.Client, raw []byte) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic handling websocket event from %s: %v", client.UserID, r)
			h.sendError(client, errors.Internal("Internal error", nil))
		}
	}()

	var event ws.WSEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		h.sendError(client, errors.BadRequest("Malformed event", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch event.Type {
	case ws.EventJoinChat:
		h.handleJoin(ctx, client, event.Data)
	case ws.EventLeaveChat:
		h.handleLeave(client, event.Data)
	case ws.EventTyping:
		h.handleTyping(client, event.Data)
	case ws.EventMarkRead:
		h.handleMarkRead(ctx, client, event.Data)
	case ws.EventSend:
		h.handleSend(ctx, client, event.Data)
	default:
		h.sendError(client, errors.BadRequest("Unknown event type", nil))
	}
}

func (h *WebSocketHandler) handleJoin(ctx context.Context, client *ws.Client, raw json.RawMessage) {
	var data roomEventData
	if err := json.Unmarshal(raw, &data); err != nil {
		h.sendError(client, errors.BadRequest("Malformed join_chat payload", err))
		return
	}

	if err := h.chatUseCase.JoinRoom(ctx, client, data.CampaignID, data.ProposalID); err != nil {
		h.sendError(client, err)
		return
	}

	ack := roomAck{
		Room:       ws.RoomKey(data.CampaignID, data.ProposalID),
		CampaignID: data.CampaignID,
		ProposalID: data.ProposalID,
	}
	if frame, err := ws.NewEvent(ws.EventJoinedChat, ack); err == nil {
		client.Enqueue(frame)
	}
}

func (h *WebSocketHandler) handleLeave(client *ws.Client, raw json.RawMessage) {
	var data roomEventData
	if err := json.Unmarshal(raw, &data); err != nil {
		h.sendError(client, errors.BadRequest("Malformed leave_chat payload", err))
		return
	}

	h.chatUseCase.LeaveRoom(client, data.CampaignID, data.ProposalID)

	ack := roomAck{
		Room:       ws.RoomKey(data.CampaignID, data.ProposalID),
		CampaignID: data.CampaignID,
		ProposalID: data.ProposalID,
	}
	if frame, err := ws.NewEvent(ws.EventLeftChat, ack); err == nil {
		client.Enqueue(frame)
	}
}

func (h *WebSocketHandler) handleTyping(client *ws.Client, raw json.RawMessage) {
	var data typingEventData
	if err := json.Unmarshal(raw, &data); err != nil {
		h.sendError(client, errors.BadRequest("Malformed typing payload", err))
		return
	}

	if err := h.chatUseCase.Typing(client, data.CampaignID, data.ProposalID, data.Typing); err != nil {
		h.sendError(client, err)
	}
}

func (h *WebSocketHandler) handleMarkRead(ctx context.Context, client *ws.Client, raw json.RawMessage) {
	var data markReadEventData
	if err := json.Unmarshal(raw, &data); err != nil {
		h.sendError(client, errors.BadRequest("Malformed mark_read payload", err))
		return
	}

	if _, err := h.chatUseCase.MarkRead(ctx, client.UserID, data.CampaignID, data.ProposalID, data.MessageIDs); err != nil {
		h.sendError(client, err)
	}
}

func (h *WebSocketHandler) handleSend(ctx context.Context, client *ws.Client, raw json.RawMessage) {
	var data sendMessageEventData
	if err := json.Unmarshal(raw, &data); err != nil {
		h.sendError(client, errors.BadRequest("Malformed send_message payload", err))
		return
	}

	// The broadcast to the room happens inside the usecase, after the
	// message is stored. Only failures come back here.
	if _, err := h.chatUseCase.SendMessage(ctx, client.UserID, data.CampaignID, data.ProposalID, data.SendMessageInput); err != nil {
		h.sendError(client, err)
	}
}

// sendError delivers an error frame to the offending client alone.
func (h *WebSocketHandler) sendError(client *ws.Client, err error) {
	payload := map[string]string{"message": err.Error()}
	if appErr, ok := err.(*errors.AppError); ok {
		payload = map[string]string{"code": appErr.Code, "message": appErr.Message}
	}

	frame, encodeErr := ws.NewEvent(ws.EventError, payload)
	if encodeErr != nil {
		return
	}
	client.Enqueue(frame)
}
