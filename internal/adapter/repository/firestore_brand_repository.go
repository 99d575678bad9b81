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

type firestoreBrandRepository struct {
	client *firestore.Client
}

func NewFirestoreBrandRepository(client *firestore.Client) repository.BrandRepository {
	return &firestoreBrandRepository{
		client: client,
	}
}

func (r *firestoreBrandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}

	now := time.Now()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	_, err := r.client.Collection("brands").Doc(brand.ID).Set(ctx, brand)
	if err != nil {
		return errors.Internal("Failed to create brand profile", err)
	}
	return nil
}

func (r *firestoreBrandRepository) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	doc, err := r.client.Collection("brands").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Brand", err)
		}
		return nil, errors.Internal("Failed to get brand profile", err)
	}

	var brand entity.Brand
	if err := doc.DataTo(&brand); err != nil {
		return nil, errors.Internal("Failed to parse brand data", err)
	}
	return &brand, nil
}

func (r *firestoreBrandRepository) GetByUserID(ctx context.Context, userID string) (*entity.Brand, error) {
	iter := r.client.Collection("brands").Where("userId", "==", userID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Brand", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query brand by user", err)
	}

	var brand entity.Brand
	if err := doc.DataTo(&brand); err != nil {
		return nil, errors.Internal("Failed to parse brand data", err)
	}
	return &brand, nil
}

func (r *firestoreBrandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	brand.UpdatedAt = time.Now()

	_, err := r.client.Collection("brands").Doc(brand.ID).Set(ctx, brand)
	if err != nil {
		return errors.Internal("Failed to update brand profile", err)
	}
	return nil
}

func (r *firestoreBrandRepository) List(ctx context.Context, limit, offset int) ([]*entity.Brand, int64, error) {
	query := r.client.Collection("brands").Query

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count brands", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var brands []*entity.Brand

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate brands", err)
		}

		var brand entity.Brand
		if err := doc.DataTo(&brand); err != nil {
			return nil, 0, errors.Internal("Failed to parse brand data", err)
		}
		brands = append(brands, &brand)
	}

	return brands, total, nil
}
