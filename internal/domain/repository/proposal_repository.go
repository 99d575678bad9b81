package repository

import (
	"context"

	"influmarket/internal/domain/entity"
)

type ProposalRepository interface {
	Create(ctx context.Context, proposal *entity.Proposal) error
	GetByID(ctx context.Context, id string) (*entity.Proposal, error)
	Update(ctx context.Context, proposal *entity.Proposal) error
	ListByCampaign(ctx context.Context, campaignID string, limit, offset int) ([]*entity.Proposal, int64, error)
	ListByInfluencer(ctx context.Context, influencerID string, limit, offset int) ([]*entity.Proposal, int64, error)
}
