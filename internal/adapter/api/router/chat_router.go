package router

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/adapter/api/handler"
	"influmarket/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chat := e.Group("/v1/campaigns/:campaignId/proposals/:proposalId/chat")
	chat.Use(authMiddleware.Authenticate)

	chat.GET("", chatHandler.History)
	chat.POST("", chatHandler.SendMessage)
	chat.PUT("/read", chatHandler.MarkRead)
	chat.GET("/unread", chatHandler.UnreadCount)

	// Server-sent events fallback for clients without a websocket.
	chat.GET("/stream", chatHandler.Stream)
}
