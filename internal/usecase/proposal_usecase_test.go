package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influmarket/internal/domain/entity"
	"influmarket/pkg/errors"
)

func newProposalUC(w *marketWorld) *ProposalUseCase {
	return NewProposalUseCase(w.proposals, w.campaigns, w.resolver)
}

func TestCreateProposalStartsPending(t *testing.T) {
	w := newMarketWorld(t)
	uc := newProposalUC(w)

	proposal, err := uc.Create(context.Background(), w.outsiderUserID, w.campaignID, CreateProposalInput{
		Details:   "I can promote this",
		BidAmount: 750,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProposalStatusPending, proposal.Status)
	assert.Equal(t, entity.ProposedByInfluencer, proposal.ProposedBy)
	assert.Equal(t, "prof-outsider", proposal.InfluencerID)
}

func TestCreateProposalRejectsBrand(t *testing.T) {
	w := newMarketWorld(t)
	uc := newProposalUC(w)

	_, err := uc.Create(context.Background(), w.brandUserID, w.campaignID, CreateProposalInput{
		Details:   "x",
		BidAmount: 1,
	})
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}

func TestCreateCounterProposal(t *testing.T) {
	w := newMarketWorld(t)
	uc := newProposalUC(w)

	proposal, err := uc.CreateCounter(context.Background(), w.brandUserID, w.campaignID, "prof-influencer", CreateCounterProposalInput{
		Status:    entity.ProposalStatusNegotiating,
		Details:   "We can do 600",
		BidAmount: 600,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProposalStatusNegotiating, proposal.Status)
	assert.Equal(t, entity.ProposedByBrand, proposal.ProposedBy)
}

func TestUpdateStatusActions(t *testing.T) {
	w := newMarketWorld(t)
	uc := newProposalUC(w)
	ctx := context.Background()

	cases := []struct {
		action string
		want   string
	}{
		{"negotiate", entity.ProposalStatusNegotiating},
		{"accept", entity.ProposalStatusAccepted},
		{"reject", entity.ProposalStatusRejected},
		// Actions are not guarded by the current status, so rejecting and
		// then negotiating reopens the proposal.
		{"negotiate", entity.ProposalStatusNegotiating},
	}

	for _, tc := range cases {
		proposal, err := uc.UpdateStatus(ctx, w.brandUserID, w.campaignID, w.proposalID, UpdateProposalInput{Action: tc.action})
		require.NoError(t, err)
		assert.Equal(t, tc.want, proposal.Status)
	}
}

func TestUpdateStatusNegotiateRevisesTerms(t *testing.T) {
	w := newMarketWorld(t)
	uc := newProposalUC(w)

	proposal, err := uc.UpdateStatus(context.Background(), w.brandUserID, w.campaignID, w.proposalID, UpdateProposalInput{
		Action:    "negotiate",
		Details:   "Two posts instead of one",
		BidAmount: 650,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProposalStatusNegotiating, proposal.Status)
	assert.Equal(t, "Two posts instead of one", proposal.Details)
	assert.Equal(t, 650.0, proposal.BidAmount)
}

func TestUpdateStatusDeniedForOutsider(t *testing.T) {
	w := newMarketWorld(t)
	uc := newProposalUC(w)

	_, err := uc.UpdateStatus(context.Background(), w.outsiderUserID, w.campaignID, w.proposalID, UpdateProposalInput{Action: "accept"})
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}

func TestListMineByRole(t *testing.T) {
	w := newMarketWorld(t)
	uc := newProposalUC(w)
	ctx := context.Background()

	mine, _, err := uc.ListMine(ctx, w.influencerUserID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	brandSide, _, err := uc.ListMine(ctx, w.brandUserID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, brandSide, 1)

	_, _, err = uc.ListMine(ctx, "user-nobody", 0, 0)
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}
