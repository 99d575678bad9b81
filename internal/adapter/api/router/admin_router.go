package router

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/adapter/api/handler"
	"influmarket/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()
	exportHandler := handler.GetExportHandler()
	nicheHandler := handler.GetNicheHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/brands", adminHandler.ListBrands)
	admin.GET("/influencers", adminHandler.ListInfluencers)
	admin.GET("/campaigns", adminHandler.ListCampaigns)

	admin.POST("/brands/:brandId/verify", adminHandler.VerifyBrand)
	admin.POST("/users/:userId/activate", adminHandler.ActivateUser)
	admin.POST("/users/:userId/deactivate", adminHandler.DeactivateUser)
	admin.PUT("/campaigns/:campaignId/privacy", adminHandler.SetCampaignPrivate)

	admin.POST("/niches", nicheHandler.Create)

	// Campaign CSV export runs as a background task.
	admin.POST("/csv", exportHandler.StartExport)
	admin.GET("/csv/:taskId", exportHandler.Download)
}
