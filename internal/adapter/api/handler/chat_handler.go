package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"influmarket/internal/usecase"
	"influmarket/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

// History returns the conversation, optionally only the part after the
// "after" message id cursor.
func (h *ChatHandler) History(c echo.Context) error {
	userID := c.Get("uid").(string)
	after, _ := strconv.ParseInt(c.QueryParam("after"), 10, 64)

	messages, err := h.chatUseCase.History(c.Request().Context(), userID, c.Param("campaignId"), c.Param("proposalId"), after)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

// SendMessage is the HTTP fallback for clients without a live websocket.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req usecase.SendMessageInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	message, err := h.chatUseCase.SendMessage(c.Request().Context(), userID, c.Param("campaignId"), c.Param("proposalId"), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

type markReadRequest struct {
	MessageIDs []int64 `json:"message_ids" validate:"required"`
}

func (h *ChatHandler) MarkRead(c echo.Context) error {
	var req markReadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	updated, err := h.chatUseCase.MarkRead(c.Request().Context(), userID, c.Param("campaignId"), c.Param("proposalId"), req.MessageIDs)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{"updated": updated})
}

func (h *ChatHandler) UnreadCount(c echo.Context) error {
	userID := c.Get("uid").(string)

	count, err := h.chatUseCase.UnreadCount(c.Request().Context(), userID, c.Param("campaignId"), c.Param("proposalId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int{"unread": count})
}

// Stream pushes new messages as server-sent events. It polls the store once a
// second from the caller's cursor and ends as soon as the client goes away.
func (h *ChatHandler) Stream(c echo.Context) error {
	userID := c.Get("uid").(string)
	campaignID := c.Param("campaignId")
	proposalID := c.Param("proposalId")
	cursor, _ := strconv.ParseInt(c.QueryParam("after"), 10, 64)

	ctx := c.Request().Context()

	// Authorization is checked before committing to the stream so the
	// caller gets a proper status code instead of a broken event stream.
	if _, err := h.chatUseCase.History(ctx, userID, campaignID, proposalID, cursor); err != nil {
		return response.Error(c, err)
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			messages, err := h.chatUseCase.History(ctx, userID, campaignID, proposalID, cursor)
			if err != nil {
				// The proposal may have been deleted or access revoked
				// mid-stream; close rather than spin.
				return nil
			}

			for _, message := range messages {
				data, err := json.Marshal(message)
				if err != nil {
					continue
				}
				fmt.Fprintf(resp, "data: %s\n\n", data)
				cursor = message.ID
			}
			if len(messages) > 0 {
				resp.Flush()
			}
		}
	}
}
