package repository

import (
	"context"

	"influmarket/internal/domain/entity"
)

type InfluencerRepository interface {
	Create(ctx context.Context, influencer *entity.Influencer) error
	GetByID(ctx context.Context, id string) (*entity.Influencer, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Influencer, error)
	Update(ctx context.Context, influencer *entity.Influencer) error
	List(ctx context.Context, niche string, limit, offset int) ([]*entity.Influencer, int64, error)
}
