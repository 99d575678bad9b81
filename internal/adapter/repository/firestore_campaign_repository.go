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

type firestoreCampaignRepository struct {
	client *firestore.Client
}

func NewFirestoreCampaignRepository(client *firestore.Client) repository.CampaignRepository {
	return &firestoreCampaignRepository{
		client: client,
	}
}

func (r *firestoreCampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	if campaign.ID == "" {
		campaign.ID = uuid.New().String()
	}

	now := time.Now()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	_, err := r.client.Collection("campaigns").Doc(campaign.ID).Set(ctx, campaign)
	if err != nil {
		return errors.Internal("Failed to create campaign", err)
	}
	return nil
}

func (r *firestoreCampaignRepository) GetByID(ctx context.Context, id string) (*entity.Campaign, error) {
	doc, err := r.client.Collection("campaigns").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Campaign", err)
		}
		return nil, errors.Internal("Failed to get campaign", err)
	}

	var campaign entity.Campaign
	if err := doc.DataTo(&campaign); err != nil {
		return nil, errors.Internal("Failed to parse campaign data", err)
	}
	return &campaign, nil
}

func (r *firestoreCampaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	campaign.UpdatedAt = time.Now()

	_, err := r.client.Collection("campaigns").Doc(campaign.ID).Set(ctx, campaign)
	if err != nil {
		return errors.Internal("Failed to update campaign", err)
	}
	return nil
}

func (r *firestoreCampaignRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("campaigns").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete campaign", err)
	}
	return nil
}

func (r *firestoreCampaignRepository) List(ctx context.Context, campaignStatus string, limit, offset int) ([]*entity.Campaign, int64, error) {
	query := r.client.Collection("campaigns").Query
	if campaignStatus != "" {
		query = query.Where("status", "==", campaignStatus)
	}

	return r.listQuery(ctx, query, limit, offset)
}

func (r *firestoreCampaignRepository) ListByBrand(ctx context.Context, brandID string, limit, offset int) ([]*entity.Campaign, int64, error) {
	query := r.client.Collection("campaigns").Where("brandId", "==", brandID)
	return r.listQuery(ctx, query, limit, offset)
}

func (r *firestoreCampaignRepository) listQuery(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Campaign, int64, error) {
	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count campaigns", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var campaigns []*entity.Campaign

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate campaigns", err)
		}

		var campaign entity.Campaign
		if err := doc.DataTo(&campaign); err != nil {
			return nil, 0, errors.Internal("Failed to parse campaign data", err)
		}
		campaigns = append(campaigns, &campaign)
	}

	return campaigns, total, nil
}
