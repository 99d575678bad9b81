package handler

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/usecase"
	"influmarket/pkg/response"
	"influmarket/pkg/utils"
)

type ProposalHandler struct {
	proposalUseCase *usecase.ProposalUseCase
}

func NewProposalHandler(proposalUseCase *usecase.ProposalUseCase) *ProposalHandler {
	return &ProposalHandler{
		proposalUseCase: proposalUseCase,
	}
}

func (h *ProposalHandler) Create(c echo.Context) error {
	var req usecase.CreateProposalInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	proposal, err := h.proposalUseCase.Create(c.Request().Context(), userID, c.Param("campaignId"), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, proposal)
}

func (h *ProposalHandler) CreateCounter(c echo.Context) error {
	var req usecase.CreateCounterProposalInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	proposal, err := h.proposalUseCase.CreateCounter(c.Request().Context(), userID, c.Param("campaignId"), c.Param("influencerId"), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, proposal)
}

func (h *ProposalHandler) UpdateStatus(c echo.Context) error {
	var req usecase.UpdateProposalInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	proposal, err := h.proposalUseCase.UpdateStatus(c.Request().Context(), userID, c.Param("campaignId"), c.Param("proposalId"), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, proposal)
}

func (h *ProposalHandler) Get(c echo.Context) error {
	userID := c.Get("uid").(string)
	proposal, err := h.proposalUseCase.Get(c.Request().Context(), userID, c.Param("campaignId"), c.Param("proposalId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, proposal)
}

func (h *ProposalHandler) ListMine(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	userID := c.Get("uid").(string)

	proposals, total, err := h.proposalUseCase.ListMine(c.Request().Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, proposals, total, params.Page, params.PageSize)
}

func (h *ProposalHandler) ListByCampaign(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	userID := c.Get("uid").(string)

	proposals, total, err := h.proposalUseCase.ListByCampaign(c.Request().Context(), userID, c.Param("campaignId"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, proposals, total, params.Page, params.PageSize)
}
