package router

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/adapter/api/handler"
	"influmarket/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/register/influencer", authHandler.RegisterInfluencer)
	auth.POST("/register/brand", authHandler.RegisterBrand)
	auth.POST("/login", authHandler.Login)

	auth.PUT("/password", authHandler.UpdatePassword, authMiddleware.Authenticate)
}
