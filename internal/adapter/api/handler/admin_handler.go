package handler

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/usecase"
	"influmarket/pkg/response"
	"influmarket/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) VerifyBrand(c echo.Context) error {
	brand, err := h.adminUseCase.VerifyBrand(c.Request().Context(), c.Param("brandId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, brand)
}

func (h *AdminHandler) ActivateUser(c echo.Context) error {
	user, err := h.adminUseCase.SetUserActive(c.Request().Context(), c.Param("userId"), true)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *AdminHandler) DeactivateUser(c echo.Context) error {
	user, err := h.adminUseCase.SetUserActive(c.Request().Context(), c.Param("userId"), false)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

type campaignPrivacyRequest struct {
	Private bool `json:"private"`
}

func (h *AdminHandler) SetCampaignPrivate(c echo.Context) error {
	var req campaignPrivacyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	campaign, err := h.adminUseCase.SetCampaignPrivate(c.Request().Context(), c.Param("campaignId"), req.Private)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, campaign)
}

func (h *AdminHandler) ListBrands(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	brands, total, err := h.adminUseCase.ListBrands(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, brands, total, params.Page, params.PageSize)
}

func (h *AdminHandler) ListInfluencers(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	influencers, total, err := h.adminUseCase.ListInfluencers(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, influencers, total, params.Page, params.PageSize)
}

func (h *AdminHandler) ListCampaigns(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	campaigns, total, err := h.adminUseCase.ListCampaigns(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, campaigns, total, params.Page, params.PageSize)
}
