package repository

import (
	"context"

	"influmarket/internal/domain/entity"
)

type NicheRepository interface {
	Create(ctx context.Context, niche *entity.Niche) error
	List(ctx context.Context) ([]*entity.Niche, error)
}
