package repository

import (
	"context"

	"influmarket/internal/domain/entity"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Brand, error)
	Update(ctx context.Context, brand *entity.Brand) error
	List(ctx context.Context, limit, offset int) ([]*entity.Brand, int64, error)
}
