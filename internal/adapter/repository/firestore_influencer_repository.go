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

type firestoreInfluencerRepository struct {
	client *firestore.Client
}

func NewFirestoreInfluencerRepository(client *firestore.Client) repository.InfluencerRepository {
	return &firestoreInfluencerRepository{
		client: client,
	}
}

func (r *firestoreInfluencerRepository) Create(ctx context.Context, influencer *entity.Influencer) error {
	if influencer.ID == "" {
		influencer.ID = uuid.New().String()
	}

	now := time.Now()
	influencer.CreatedAt = now
	influencer.UpdatedAt = now

	_, err := r.client.Collection("influencers").Doc(influencer.ID).Set(ctx, influencer)
	if err != nil {
		return errors.Internal("Failed to create influencer profile", err)
	}
	return nil
}

func (r *firestoreInfluencerRepository) GetByID(ctx context.Context, id string) (*entity.Influencer, error) {
	doc, err := r.client.Collection("influencers").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Influencer", err)
		}
		return nil, errors.Internal("Failed to get influencer profile", err)
	}

	var influencer entity.Influencer
	if err := doc.DataTo(&influencer); err != nil {
		return nil, errors.Internal("Failed to parse influencer data", err)
	}
	return &influencer, nil
}

func (r *firestoreInfluencerRepository) GetByUserID(ctx context.Context, userID string) (*entity.Influencer, error) {
	iter := r.client.Collection("influencers").Where("userId", "==", userID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Influencer", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query influencer by user", err)
	}

	var influencer entity.Influencer
	if err := doc.DataTo(&influencer); err != nil {
		return nil, errors.Internal("Failed to parse influencer data", err)
	}
	return &influencer, nil
}

func (r *firestoreInfluencerRepository) Update(ctx context.Context, influencer *entity.Influencer) error {
	influencer.UpdatedAt = time.Now()

	_, err := r.client.Collection("influencers").Doc(influencer.ID).Set(ctx, influencer)
	if err != nil {
		return errors.Internal("Failed to update influencer profile", err)
	}
	return nil
}

func (r *firestoreInfluencerRepository) List(ctx context.Context, niche string, limit, offset int) ([]*entity.Influencer, int64, error) {
	query := r.client.Collection("influencers").Query
	if niche != "" {
		query = query.Where("niche", "==", niche)
	}

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count influencers", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var influencers []*entity.Influencer

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate influencers", err)
		}

		var influencer entity.Influencer
		if err := doc.DataTo(&influencer); err != nil {
			return nil, 0, errors.Internal("Failed to parse influencer data", err)
		}
		influencers = append(influencers, &influencer)
	}

	return influencers, total, nil
}
