package handler

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/usecase"
	"influmarket/pkg/response"
	"influmarket/pkg/utils"
)

type CampaignHandler struct {
	campaignUseCase *usecase.CampaignUseCase
}

func NewCampaignHandler(campaignUseCase *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{
		campaignUseCase: campaignUseCase,
	}
}

func (h *CampaignHandler) Create(c echo.Context) error {
	var req usecase.CreateCampaignInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	campaign, err := h.campaignUseCase.Create(c.Request().Context(), userID, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, campaign)
}

func (h *CampaignHandler) Get(c echo.Context) error {
	campaign, err := h.campaignUseCase.Get(c.Request().Context(), c.Param("campaignId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, campaign)
}

func (h *CampaignHandler) Update(c echo.Context) error {
	var req usecase.UpdateCampaignInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	campaign, err := h.campaignUseCase.Update(c.Request().Context(), userID, c.Param("campaignId"), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, campaign)
}

func (h *CampaignHandler) Delete(c echo.Context) error {
	userID := c.Get("uid").(string)
	if err := h.campaignUseCase.Delete(c.Request().Context(), userID, c.Param("campaignId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Campaign deleted"})
}

func (h *CampaignHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	status := c.QueryParam("status")

	campaigns, total, err := h.campaignUseCase.List(c.Request().Context(), status, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, campaigns, total, params.Page, params.PageSize)
}

func (h *CampaignHandler) ListMine(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	userID := c.Get("uid").(string)

	campaigns, total, err := h.campaignUseCase.ListMine(c.Request().Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, campaigns, total, params.Page, params.PageSize)
}
