package router

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/adapter/api/handler"
	"influmarket/internal/adapter/api/middleware"
)

func SetupCampaignRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	campaignHandler := handler.GetCampaignHandler()

	campaigns := e.Group("/v1/campaigns")
	campaigns.Use(authMiddleware.Authenticate)

	campaigns.POST("", campaignHandler.Create)
	campaigns.GET("", campaignHandler.List)
	campaigns.GET("/mine", campaignHandler.ListMine)
	campaigns.GET("/:campaignId", campaignHandler.Get)
	campaigns.PUT("/:campaignId", campaignHandler.Update)
	campaigns.DELETE("/:campaignId", campaignHandler.Delete)
}
