package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"influmarket/internal/domain/entity"
	"influmarket/pkg/errors"
)

// In-memory repositories backing the usecase tests.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) List(ctx context.Context, userType string, limit, offset int) ([]*entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []*entity.User
	for _, user := range r.users {
		if userType == "" || user.Type == userType {
			users = append(users, user)
		}
	}
	return users, int64(len(users)), nil
}

type memInfluencerRepo struct {
	mu          sync.Mutex
	influencers map[string]*entity.Influencer
}

func newMemInfluencerRepo() *memInfluencerRepo {
	return &memInfluencerRepo{influencers: make(map[string]*entity.Influencer)}
}

func (r *memInfluencerRepo) Create(ctx context.Context, influencer *entity.Influencer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if influencer.ID == "" {
		influencer.ID = uuid.New().String()
	}
	r.influencers[influencer.ID] = influencer
	return nil
}

func (r *memInfluencerRepo) GetByID(ctx context.Context, id string) (*entity.Influencer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if influencer, ok := r.influencers[id]; ok {
		return influencer, nil
	}
	return nil, errors.NotFound("Influencer", nil)
}

func (r *memInfluencerRepo) GetByUserID(ctx context.Context, userID string) (*entity.Influencer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, influencer := range r.influencers {
		if influencer.UserID == userID {
			return influencer, nil
		}
	}
	return nil, errors.NotFound("Influencer", nil)
}

func (r *memInfluencerRepo) Update(ctx context.Context, influencer *entity.Influencer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.influencers[influencer.ID] = influencer
	return nil
}

func (r *memInfluencerRepo) List(ctx context.Context, niche string, limit, offset int) ([]*entity.Influencer, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var influencers []*entity.Influencer
	for _, influencer := range r.influencers {
		if niche == "" || influencer.Niche == niche {
			influencers = append(influencers, influencer)
		}
	}
	return influencers, int64(len(influencers)), nil
}

type memBrandRepo struct {
	mu     sync.Mutex
	brands map[string]*entity.Brand
}

func newMemBrandRepo() *memBrandRepo {
	return &memBrandRepo{brands: make(map[string]*entity.Brand)}
}

func (r *memBrandRepo) Create(ctx context.Context, brand *entity.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}
	r.brands[brand.ID] = brand
	return nil
}

func (r *memBrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if brand, ok := r.brands[id]; ok {
		return brand, nil
	}
	return nil, errors.NotFound("Brand", nil)
}

func (r *memBrandRepo) GetByUserID(ctx context.Context, userID string) (*entity.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, brand := range r.brands {
		if brand.UserID == userID {
			return brand, nil
		}
	}
	return nil, errors.NotFound("Brand", nil)
}

func (r *memBrandRepo) Update(ctx context.Context, brand *entity.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.brands[brand.ID] = brand
	return nil
}

func (r *memBrandRepo) List(ctx context.Context, limit, offset int) ([]*entity.Brand, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var brands []*entity.Brand
	for _, brand := range r.brands {
		brands = append(brands, brand)
	}
	return brands, int64(len(brands)), nil
}

type memCampaignRepo struct {
	mu        sync.Mutex
	campaigns map[string]*entity.Campaign
}

func newMemCampaignRepo() *memCampaignRepo {
	return &memCampaignRepo{campaigns: make(map[string]*entity.Campaign)}
}

func (r *memCampaignRepo) Create(ctx context.Context, campaign *entity.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if campaign.ID == "" {
		campaign.ID = uuid.New().String()
	}
	r.campaigns[campaign.ID] = campaign
	return nil
}

func (r *memCampaignRepo) GetByID(ctx context.Context, id string) (*entity.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if campaign, ok := r.campaigns[id]; ok {
		return campaign, nil
	}
	return nil, errors.NotFound("Campaign", nil)
}

func (r *memCampaignRepo) Update(ctx context.Context, campaign *entity.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns[campaign.ID] = campaign
	return nil
}

func (r *memCampaignRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.campaigns, id)
	return nil
}

func (r *memCampaignRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Campaign, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var campaigns []*entity.Campaign
	for _, campaign := range r.campaigns {
		if status == "" || campaign.Status == status {
			campaigns = append(campaigns, campaign)
		}
	}
	return campaigns, int64(len(campaigns)), nil
}

func (r *memCampaignRepo) ListByBrand(ctx context.Context, brandID string, limit, offset int) ([]*entity.Campaign, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var campaigns []*entity.Campaign
	for _, campaign := range r.campaigns {
		if campaign.BrandID == brandID {
			campaigns = append(campaigns, campaign)
		}
	}
	return campaigns, int64(len(campaigns)), nil
}

type memProposalRepo struct {
	mu        sync.Mutex
	proposals map[string]*entity.Proposal
}

func newMemProposalRepo() *memProposalRepo {
	return &memProposalRepo{proposals: make(map[string]*entity.Proposal)}
}

func (r *memProposalRepo) Create(ctx context.Context, proposal *entity.Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if proposal.ID == "" {
		proposal.ID = uuid.New().String()
	}
	r.proposals[proposal.ID] = proposal
	return nil
}

func (r *memProposalRepo) GetByID(ctx context.Context, id string) (*entity.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if proposal, ok := r.proposals[id]; ok {
		return proposal, nil
	}
	return nil, errors.NotFound("Proposal", nil)
}

func (r *memProposalRepo) Update(ctx context.Context, proposal *entity.Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.proposals[proposal.ID] = proposal
	return nil
}

func (r *memProposalRepo) ListByCampaign(ctx context.Context, campaignID string, limit, offset int) ([]*entity.Proposal, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var proposals []*entity.Proposal
	for _, proposal := range r.proposals {
		if proposal.CampaignID == campaignID {
			proposals = append(proposals, proposal)
		}
	}
	return proposals, int64(len(proposals)), nil
}

func (r *memProposalRepo) ListByInfluencer(ctx context.Context, influencerID string, limit, offset int) ([]*entity.Proposal, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var proposals []*entity.Proposal
	for _, proposal := range r.proposals {
		if proposal.InfluencerID == influencerID {
			proposals = append(proposals, proposal)
		}
	}
	return proposals, int64(len(proposals)), nil
}

type memMessageRepo struct {
	mu       sync.Mutex
	messages map[string][]*entity.ChatMessage
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{messages: make(map[string][]*entity.ChatMessage)}
}

func (r *memMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[message.ProposalID] = append(r.messages[message.ProposalID], message)
	return nil
}

func (r *memMessageRepo) ListByProposal(ctx context.Context, proposalID string, afterID int64) ([]*entity.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.ChatMessage
	for _, message := range r.messages[proposalID] {
		if message.ID > afterID {
			result = append(result, message)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memMessageRepo) MarkRead(ctx context.Context, proposalID string, ids []int64, readerID string) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var updated []int64
	for _, message := range r.messages[proposalID] {
		if wanted[message.ID] && message.RecipientID == readerID && !message.Read {
			message.Read = true
			updated = append(updated, message.ID)
		}
	}
	return updated, nil
}

func (r *memMessageRepo) CountUnread(ctx context.Context, proposalID, recipientID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, message := range r.messages[proposalID] {
		if message.RecipientID == recipientID && !message.Read {
			count++
		}
	}
	return count, nil
}
