package usecase

import (
	"context"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
)

type NicheUseCase struct {
	nicheRepo repository.NicheRepository
}

func NewNicheUseCase(nicheRepo repository.NicheRepository) *NicheUseCase {
	return &NicheUseCase{nicheRepo: nicheRepo}
}

func (uc *NicheUseCase) List(ctx context.Context) ([]*entity.Niche, error) {
	niches, err := uc.nicheRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if niches == nil {
		niches = []*entity.Niche{}
	}
	return niches, nil
}

func (uc *NicheUseCase) Create(ctx context.Context, name string) (*entity.Niche, error) {
	niche := &entity.Niche{Name: name}
	if err := uc.nicheRepo.Create(ctx, niche); err != nil {
		return nil, err
	}
	return niche, nil
}
