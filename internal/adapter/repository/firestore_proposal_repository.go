package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
	"influmarket/pkg/errors"
)

type firestoreProposalRepository struct {
	client *firestore.Client
}

func NewFirestoreProposalRepository(client *firestore.Client) repository.ProposalRepository {
	return &firestoreProposalRepository{
		client: client,
	}
}

func (r *firestoreProposalRepository) Create(ctx context.Context, proposal *entity.Proposal) error {
	if proposal.ID == "" {
		proposal.ID = uuid.New().String()
	}

	now := time.Now()
	proposal.CreatedAt = now
	proposal.UpdatedAt = now

	_, err := r.client.Collection("proposals").Doc(proposal.ID).Set(ctx, proposal)
	if err != nil {
		return errors.Internal("Failed to create proposal", err)
	}
	return nil
}

func (r *firestoreProposalRepository) GetByID(ctx context.Context, id string) (*entity.Proposal, error) {
	doc, err := r.client.Collection("proposals").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Proposal", err)
		}
		return nil, errors.Internal("Failed to get proposal", err)
	}

	var proposal entity.Proposal
	if err := doc.DataTo(&proposal); err != nil {
		return nil, errors.Internal("Failed to parse proposal data", err)
	}
	return &proposal, nil
}

func (r *firestoreProposalRepository) Update(ctx context.Context, proposal *entity.Proposal) error {
	proposal.UpdatedAt = time.Now()

	_, err := r.client.Collection("proposals").Doc(proposal.ID).Set(ctx, proposal)
	if err != nil {
		return errors.Internal("Failed to update proposal", err)
	}
	return nil
}

func (r *firestoreProposalRepository) ListByCampaign(ctx context.Context, campaignID string, limit, offset int) ([]*entity.Proposal, int64, error) {
	query := r.client.Collection("proposals").Where("campaignId", "==", campaignID)
	return r.listQuery(ctx, query, limit, offset)
}

func (r *firestoreProposalRepository) ListByInfluencer(ctx context.Context, influencerID string, limit, offset int) ([]*entity.Proposal, int64, error) {
	query := r.client.Collection("proposals").Where("influencerId", "==", influencerID)
	return r.listQuery(ctx, query, limit, offset)
}

func (r *firestoreProposalRepository) listQuery(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Proposal, int64, error) {
	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count proposals", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var proposals []*entity.Proposal

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate proposals", err)
		}

		var proposal entity.Proposal
		if err := doc.DataTo(&proposal); err != nil {
			return nil, 0, errors.Internal("Failed to parse proposal data", err)
		}
		proposals = append(proposals, &proposal)
	}

	return proposals, total, nil
}
