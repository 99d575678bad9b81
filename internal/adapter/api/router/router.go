package router

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/adapter/api/handler"
	"influmarket/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, wsHandler *handler.WebSocketHandler, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupCampaignRouter(e, authMiddleware)
	SetupProposalRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupWebSocketRouter(e, wsHandler, authMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
