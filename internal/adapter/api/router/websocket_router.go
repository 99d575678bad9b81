package router

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/adapter/api/handler"
	"influmarket/internal/adapter/api/middleware"
)

func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler, authMiddleware *middleware.AuthMiddleware) {
	e.GET("/ws/chat", wsHandler.HandleWebSocket, authMiddleware.Authenticate)
}
