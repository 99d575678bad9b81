package repository

import (
	"context"

	"influmarket/internal/domain/entity"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	GetByID(ctx context.Context, id string) (*entity.Campaign, error)
	Update(ctx context.Context, campaign *entity.Campaign) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Campaign, int64, error)
	ListByBrand(ctx context.Context, brandID string, limit, offset int) ([]*entity.Campaign, int64, error)
}
