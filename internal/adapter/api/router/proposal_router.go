package router

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/adapter/api/handler"
	"influmarket/internal/adapter/api/middleware"
)

func SetupProposalRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	proposalHandler := handler.GetProposalHandler()

	e.GET("/v1/proposals", proposalHandler.ListMine, authMiddleware.Authenticate)

	campaigns := e.Group("/v1/campaigns/:campaignId")
	campaigns.Use(authMiddleware.Authenticate)

	// Influencer-side bid and brand-side counter-offer.
	campaigns.POST("/proposals", proposalHandler.Create)
	campaigns.POST("/influencers/:influencerId/proposals", proposalHandler.CreateCounter)

	campaigns.GET("/proposals", proposalHandler.ListByCampaign)
	campaigns.GET("/proposals/:proposalId", proposalHandler.Get)
	campaigns.PUT("/proposals/:proposalId", proposalHandler.UpdateStatus)
}
