package usecase

import (
	"context"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
	"influmarket/pkg/errors"
)

// ActorResolver turns an authenticated user id into the role it plays in the
// marketplace. Resolution is repeated per operation rather than cached, so a
// deactivated or deleted profile loses access on its next request.
type ActorResolver struct {
	userRepo       repository.UserRepository
	influencerRepo repository.InfluencerRepository
	brandRepo      repository.BrandRepository
	campaignRepo   repository.CampaignRepository
	proposalRepo   repository.ProposalRepository
}

func NewActorResolver(
	userRepo repository.UserRepository,
	influencerRepo repository.InfluencerRepository,
	brandRepo repository.BrandRepository,
	campaignRepo repository.CampaignRepository,
	proposalRepo repository.ProposalRepository,
) *ActorResolver {
	return &ActorResolver{
		userRepo:       userRepo,
		influencerRepo: influencerRepo,
		brandRepo:      brandRepo,
		campaignRepo:   campaignRepo,
		proposalRepo:   proposalRepo,
	}
}

// Resolve looks the user up as an influencer first, then as a brand. A user
// with neither profile resolves to no role; callers treat that as a denial,
// never as a pass-through.
func (r *ActorResolver) Resolve(ctx context.Context, userID string) (entity.Actor, error) {
	if influencer, err := r.influencerRepo.GetByUserID(ctx, userID); err == nil {
		return entity.Actor{
			Role:      entity.ActorRoleInfluencer,
			UserID:    userID,
			ProfileID: influencer.ID,
		}, nil
	} else if !errors.Is(err, errors.CodeNotFound) {
		return entity.Actor{}, err
	}

	if brand, err := r.brandRepo.GetByUserID(ctx, userID); err == nil {
		return entity.Actor{
			Role:      entity.ActorRoleBrand,
			UserID:    userID,
			ProfileID: brand.ID,
		}, nil
	} else if !errors.Is(err, errors.CodeNotFound) {
		return entity.Actor{}, err
	}

	return entity.Actor{Role: entity.ActorRoleNone, UserID: userID}, nil
}

// Authorize resolves the actor and checks it is a party to the proposal's
// conversation: the influencer who made the proposal, or the brand that owns
// the campaign it targets. Every failure mode is a denial.
func (r *ActorResolver) Authorize(ctx context.Context, userID, campaignID, proposalID string) (entity.Actor, *entity.Proposal, error) {
	actor, err := r.Resolve(ctx, userID)
	if err != nil {
		return entity.Actor{}, nil, err
	}

	proposal, err := r.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return entity.Actor{}, nil, err
	}
	if proposal.CampaignID != campaignID {
		return entity.Actor{}, nil, errors.NotFound("Proposal", nil)
	}

	switch actor.Role {
	case entity.ActorRoleInfluencer:
		if actor.ProfileID == proposal.InfluencerID {
			return actor, proposal, nil
		}
	case entity.ActorRoleBrand:
		campaign, err := r.campaignRepo.GetByID(ctx, proposal.CampaignID)
		if err != nil {
			return entity.Actor{}, nil, err
		}
		if actor.ProfileID == campaign.BrandID {
			return actor, proposal, nil
		}
	}

	return entity.Actor{}, nil, errors.Forbidden("Not a participant in this conversation", nil)
}
