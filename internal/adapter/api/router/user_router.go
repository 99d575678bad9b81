package router

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/adapter/api/handler"
	"influmarket/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()
	nicheHandler := handler.GetNicheHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.GET("/me", userHandler.GetProfile)
	users.PUT("/me/influencer", userHandler.UpdateInfluencerProfile)
	users.PUT("/me/brand", userHandler.UpdateBrandProfile)

	e.GET("/v1/influencers", userHandler.ListInfluencers, authMiddleware.Authenticate)
	e.GET("/v1/influencers/:id", userHandler.GetInfluencer, authMiddleware.Authenticate)
	e.GET("/v1/brands/:id", userHandler.GetBrand, authMiddleware.Authenticate)

	e.GET("/v1/niches", nicheHandler.List)
}
