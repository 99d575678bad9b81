package handler

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/usecase"
	"influmarket/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

func (h *AuthHandler) RegisterInfluencer(c echo.Context) error {
	var req usecase.RegisterInfluencerInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.RegisterInfluencer(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, user)
}

func (h *AuthHandler) RegisterBrand(c echo.Context) error {
	var req usecase.RegisterBrandInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.RegisterBrand(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

type updatePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	if err := h.authUseCase.UpdatePassword(c.Request().Context(), userID, req.NewPassword); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Password updated"})
}
