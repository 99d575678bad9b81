package usecase

import (
	"context"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
	"influmarket/pkg/errors"
)

type ProposalUseCase struct {
	proposalRepo repository.ProposalRepository
	campaignRepo repository.CampaignRepository
	resolver     *ActorResolver
}

func NewProposalUseCase(
	proposalRepo repository.ProposalRepository,
	campaignRepo repository.CampaignRepository,
	resolver *ActorResolver,
) *ProposalUseCase {
	return &ProposalUseCase{
		proposalRepo: proposalRepo,
		campaignRepo: campaignRepo,
		resolver:     resolver,
	}
}

type CreateProposalInput struct {
	Details   string  `json:"proposal_details" validate:"required"`
	BidAmount float64 `json:"bid_amount" validate:"required,gt=0"`
}

type CreateCounterProposalInput struct {
	Status    string  `json:"status" validate:"required,oneof=pending accepted rejected negotiating"`
	Details   string  `json:"proposal_details" validate:"required"`
	BidAmount float64 `json:"bid_amount" validate:"required,gt=0"`
}

type UpdateProposalInput struct {
	Action    string  `json:"action" validate:"required,oneof=accept reject negotiate"`
	Details   string  `json:"proposal_details"`
	BidAmount float64 `json:"bid_amount" validate:"gte=0"`
}

// Create is the influencer-side bid against a campaign; it always starts
// pending.
func (uc *ProposalUseCase) Create(ctx context.Context, userID, campaignID string, input CreateProposalInput) (*entity.Proposal, error) {
	actor, err := uc.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !actor.IsInfluencer() {
		return nil, errors.Forbidden("Only influencers can submit proposals", nil)
	}

	if _, err := uc.campaignRepo.GetByID(ctx, campaignID); err != nil {
		return nil, err
	}

	proposal := &entity.Proposal{
		CampaignID:   campaignID,
		InfluencerID: actor.ProfileID,
		Status:       entity.ProposalStatusPending,
		Details:      input.Details,
		BidAmount:    input.BidAmount,
		ProposedBy:   entity.ProposedByInfluencer,
	}
	if err := uc.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

// CreateCounter is the brand-side offer to a specific influencer. The brand
// picks the starting status, matching how counter-offers open negotiations.
func (uc *ProposalUseCase) CreateCounter(ctx context.Context, userID, campaignID, influencerID string, input CreateCounterProposalInput) (*entity.Proposal, error) {
	actor, err := uc.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !actor.IsBrand() {
		return nil, errors.Forbidden("Only brands can make counter-offers", nil)
	}

	campaign, err := uc.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.BrandID != actor.ProfileID {
		return nil, errors.Forbidden("Campaign belongs to another brand", nil)
	}

	proposal := &entity.Proposal{
		CampaignID:   campaignID,
		InfluencerID: influencerID,
		Status:       input.Status,
		Details:      input.Details,
		BidAmount:    input.BidAmount,
		ProposedBy:   entity.ProposedByBrand,
	}
	if err := uc.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

// UpdateStatus applies an accept, reject or negotiate action from either
// party. The action maps straight onto the new status; there is no guard on
// the current status, so a rejected proposal can still be reopened by a
// negotiate action. A negotiate action may carry revised terms.
func (uc *ProposalUseCase) UpdateStatus(ctx context.Context, userID, campaignID, proposalID string, input UpdateProposalInput) (*entity.Proposal, error) {
	_, proposal, err := uc.resolver.Authorize(ctx, userID, campaignID, proposalID)
	if err != nil {
		return nil, err
	}

	switch input.Action {
	case "accept":
		proposal.Status = entity.ProposalStatusAccepted
	case "reject":
		proposal.Status = entity.ProposalStatusRejected
	case "negotiate":
		proposal.Status = entity.ProposalStatusNegotiating
	default:
		return nil, errors.BadRequest("Invalid action value", nil)
	}

	if input.Details != "" {
		proposal.Details = input.Details
	}
	if input.BidAmount > 0 {
		proposal.BidAmount = input.BidAmount
	}

	if err := uc.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

func (uc *ProposalUseCase) Get(ctx context.Context, userID, campaignID, proposalID string) (*entity.Proposal, error) {
	_, proposal, err := uc.resolver.Authorize(ctx, userID, campaignID, proposalID)
	if err != nil {
		return nil, err
	}
	return proposal, nil
}

// ListMine returns the proposals the caller is a party to: their own bids for
// an influencer, proposals against their campaigns for a brand.
func (uc *ProposalUseCase) ListMine(ctx context.Context, userID string, limit, offset int) ([]*entity.Proposal, int64, error) {
	actor, err := uc.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	switch actor.Role {
	case entity.ActorRoleInfluencer:
		return uc.proposalRepo.ListByInfluencer(ctx, actor.ProfileID, limit, offset)
	case entity.ActorRoleBrand:
		campaigns, _, err := uc.campaignRepo.ListByBrand(ctx, actor.ProfileID, 0, 0)
		if err != nil {
			return nil, 0, err
		}
		var proposals []*entity.Proposal
		for _, campaign := range campaigns {
			list, _, err := uc.proposalRepo.ListByCampaign(ctx, campaign.ID, 0, 0)
			if err != nil {
				return nil, 0, err
			}
			proposals = append(proposals, list...)
		}
		return proposals, int64(len(proposals)), nil
	}
	return nil, 0, errors.Forbidden("Account has no marketplace role", nil)
}

func (uc *ProposalUseCase) ListByCampaign(ctx context.Context, userID, campaignID string, limit, offset int) ([]*entity.Proposal, int64, error) {
	actor, err := uc.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	campaign, err := uc.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, 0, err
	}
	if !actor.IsBrand() || campaign.BrandID != actor.ProfileID {
		return nil, 0, errors.Forbidden("Campaign belongs to another brand", nil)
	}

	return uc.proposalRepo.ListByCampaign(ctx, campaignID, limit, offset)
}
