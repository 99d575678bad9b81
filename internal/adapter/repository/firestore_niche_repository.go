package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
	"influmarket/pkg/errors"
)

type firestoreNicheRepository struct {
	client *firestore.Client
}

func NewFirestoreNicheRepository(client *firestore.Client) repository.NicheRepository {
	return &firestoreNicheRepository{
		client: client,
	}
}

func (r *firestoreNicheRepository) Create(ctx context.Context, niche *entity.Niche) error {
	if niche.ID == "" {
		niche.ID = uuid.New().String()
	}

	_, err := r.client.Collection("niches").Doc(niche.ID).Set(ctx, niche)
	if err != nil {
		return errors.Internal("Failed to create niche", err)
	}
	return nil
}

func (r *firestoreNicheRepository) List(ctx context.Context) ([]*entity.Niche, error) {
	iter := r.client.Collection("niches").OrderBy("name", firestore.Asc).Documents(ctx)
	var niches []*entity.Niche

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate niches", err)
		}

		var niche entity.Niche
		if err := doc.DataTo(&niche); err != nil {
			return nil, errors.Internal("Failed to parse niche data", err)
		}
		niches = append(niches, &niche)
	}

	return niches, nil
}
