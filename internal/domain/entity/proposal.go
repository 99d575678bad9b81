package entity

import "time"

const (
	ProposalStatusPending     = "pending"
	ProposalStatusAccepted    = "accepted"
	ProposalStatusRejected    = "rejected"
	ProposalStatusNegotiating = "negotiating"
)

const (
	ProposedByInfluencer = "influencer"
	ProposedByBrand      = "brand"
)

// Proposal is a bid by an influencer (or a counter-offer by a brand) against a
// campaign. It is the business object a chat room is bound to.
type Proposal struct {
	ID           string  `json:"id" firestore:"id"`
	CampaignID   string  `json:"campaign_id" firestore:"campaignId"`
	InfluencerID string  `json:"influencer_id" firestore:"influencerId"`
	Status       string  `json:"status" firestore:"status"` // "pending", "accepted", "rejected", "negotiating"
	Details      string  `json:"proposal_details,omitempty" firestore:"proposalDetails,omitempty"`
	BidAmount    float64 `json:"bid_amount" firestore:"bidAmount"`
	ProposedBy   string  `json:"proposed_by" firestore:"proposedBy"` // "influencer" or "brand"

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
