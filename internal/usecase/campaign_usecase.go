package usecase

import (
	"context"
	"time"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
	"influmarket/pkg/errors"
)

type CampaignUseCase struct {
	campaignRepo repository.CampaignRepository
	resolver     *ActorResolver
}

func NewCampaignUseCase(campaignRepo repository.CampaignRepository, resolver *ActorResolver) *CampaignUseCase {
	return &CampaignUseCase{
		campaignRepo: campaignRepo,
		resolver:     resolver,
	}
}

type CreateCampaignInput struct {
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Budget         float64   `json:"budget" validate:"gte=0"`
	CampaignGoals  string    `json:"campaign_goals"`
	TargetAudience string    `json:"target_audience"`
	Private        bool      `json:"private"`
}

type UpdateCampaignInput struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Budget         float64   `json:"budget"`
	Status         string    `json:"status"`
	CampaignGoals  string    `json:"campaign_goals"`
	TargetAudience string    `json:"target_audience"`
}

// Create requires the caller to be a brand; campaigns belong to the brand
// profile, not the user account.
func (uc *CampaignUseCase) Create(ctx context.Context, userID string, input CreateCampaignInput) (*entity.Campaign, error) {
	actor, err := uc.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !actor.IsBrand() {
		return nil, errors.Forbidden("Only brands can create campaigns", nil)
	}

	campaign := &entity.Campaign{
		BrandID:        actor.ProfileID,
		Title:          input.Title,
		Description:    input.Description,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Budget:         input.Budget,
		Status:         "active",
		CampaignGoals:  input.CampaignGoals,
		TargetAudience: input.TargetAudience,
		Private:        input.Private,
	}
	if err := uc.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (uc *CampaignUseCase) Get(ctx context.Context, id string) (*entity.Campaign, error) {
	return uc.campaignRepo.GetByID(ctx, id)
}

func (uc *CampaignUseCase) Update(ctx context.Context, userID, campaignID string, input UpdateCampaignInput) (*entity.Campaign, error) {
	campaign, err := uc.ownedCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		campaign.Title = input.Title
	}
	if input.Description != "" {
		campaign.Description = input.Description
	}
	if !input.StartDate.IsZero() {
		campaign.StartDate = input.StartDate
	}
	if !input.EndDate.IsZero() {
		campaign.EndDate = input.EndDate
	}
	if input.Budget > 0 {
		campaign.Budget = input.Budget
	}
	if input.Status != "" {
		campaign.Status = input.Status
	}
	if input.CampaignGoals != "" {
		campaign.CampaignGoals = input.CampaignGoals
	}
	if input.TargetAudience != "" {
		campaign.TargetAudience = input.TargetAudience
	}

	if err := uc.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (uc *CampaignUseCase) Delete(ctx context.Context, userID, campaignID string) error {
	if _, err := uc.ownedCampaign(ctx, userID, campaignID); err != nil {
		return err
	}
	return uc.campaignRepo.Delete(ctx, campaignID)
}

// List returns public campaigns, active ones by default; a brand additionally
// sees its own private ones through ListMine.
func (uc *CampaignUseCase) List(ctx context.Context, status string, limit, offset int) ([]*entity.Campaign, int64, error) {
	if status == "" {
		status = "active"
	}

	campaigns, total, err := uc.campaignRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	visible := make([]*entity.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if !c.Private {
			visible = append(visible, c)
		}
	}
	return visible, total, nil
}

func (uc *CampaignUseCase) ListMine(ctx context.Context, userID string, limit, offset int) ([]*entity.Campaign, int64, error) {
	actor, err := uc.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if !actor.IsBrand() {
		return nil, 0, errors.Forbidden("Only brands own campaigns", nil)
	}
	return uc.campaignRepo.ListByBrand(ctx, actor.ProfileID, limit, offset)
}

func (uc *CampaignUseCase) ownedCampaign(ctx context.Context, userID, campaignID string) (*entity.Campaign, error) {
	actor, err := uc.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	campaign, err := uc.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !actor.IsBrand() || campaign.BrandID != actor.ProfileID {
		return nil, errors.Forbidden("Campaign belongs to another brand", nil)
	}
	return campaign, nil
}
