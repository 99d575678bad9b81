package handler

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/usecase"
	"influmarket/pkg/response"
	"influmarket/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	profile, err := h.userUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *UserHandler) UpdateInfluencerProfile(c echo.Context) error {
	var req usecase.UpdateInfluencerInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	influencer, err := h.userUseCase.UpdateInfluencerProfile(c.Request().Context(), userID, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, influencer)
}

func (h *UserHandler) UpdateBrandProfile(c echo.Context) error {
	var req usecase.UpdateBrandInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	brand, err := h.userUseCase.UpdateBrandProfile(c.Request().Context(), userID, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, brand)
}

func (h *UserHandler) ListInfluencers(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	niche := c.QueryParam("niche")

	influencers, total, err := h.userUseCase.ListInfluencers(c.Request().Context(), niche, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, influencers, total, params.Page, params.PageSize)
}

func (h *UserHandler) GetInfluencer(c echo.Context) error {
	influencer, err := h.userUseCase.GetInfluencer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, influencer)
}

func (h *UserHandler) GetBrand(c echo.Context) error {
	brand, err := h.userUseCase.GetBrand(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, brand)
}
