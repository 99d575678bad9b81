package usecase

import (
	"context"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
)

type AdminUseCase struct {
	userRepo       repository.UserRepository
	influencerRepo repository.InfluencerRepository
	brandRepo      repository.BrandRepository
	campaignRepo   repository.CampaignRepository
}

func NewAdminUseCase(
	userRepo repository.UserRepository,
	influencerRepo repository.InfluencerRepository,
	brandRepo repository.BrandRepository,
	campaignRepo repository.CampaignRepository,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:       userRepo,
		influencerRepo: influencerRepo,
		brandRepo:      brandRepo,
		campaignRepo:   campaignRepo,
	}
}

func (uc *AdminUseCase) VerifyBrand(ctx context.Context, brandID string) (*entity.Brand, error) {
	brand, err := uc.brandRepo.GetByID(ctx, brandID)
	if err != nil {
		return nil, err
	}
	brand.Verified = true
	if err := uc.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (uc *AdminUseCase) SetUserActive(ctx context.Context, userID string, active bool) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Active = active
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AdminUseCase) SetCampaignPrivate(ctx context.Context, campaignID string, private bool) (*entity.Campaign, error) {
	campaign, err := uc.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	campaign.Private = private
	if err := uc.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (uc *AdminUseCase) ListBrands(ctx context.Context, limit, offset int) ([]*entity.Brand, int64, error) {
	return uc.brandRepo.List(ctx, limit, offset)
}

func (uc *AdminUseCase) ListInfluencers(ctx context.Context, limit, offset int) ([]*entity.Influencer, int64, error) {
	return uc.influencerRepo.List(ctx, "", limit, offset)
}

func (uc *AdminUseCase) ListCampaigns(ctx context.Context, limit, offset int) ([]*entity.Campaign, int64, error) {
	return uc.campaignRepo.List(ctx, "", limit, offset)
}

// IsAdmin backs the admin route guard.
func (uc *AdminUseCase) IsAdmin(ctx context.Context, userID string) bool {
	user, err := uc.userRepo.GetByID(ctx, userID)
	return err == nil && user.Type == entity.UserTypeAdmin
}
