package handler

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/usecase"
	"influmarket/pkg/response"
)

type NicheHandler struct {
	nicheUseCase *usecase.NicheUseCase
}

func NewNicheHandler(nicheUseCase *usecase.NicheUseCase) *NicheHandler {
	return &NicheHandler{
		nicheUseCase: nicheUseCase,
	}
}

func (h *NicheHandler) List(c echo.Context) error {
	niches, err := h.nicheUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, niches)
}

type createNicheRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *NicheHandler) Create(c echo.Context) error {
	var req createNicheRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	niche, err := h.nicheUseCase.Create(c.Request().Context(), req.Name)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, niche)
}
