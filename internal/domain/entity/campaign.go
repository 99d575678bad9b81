package entity

import "time"

type Campaign struct {
	ID             string    `json:"id" firestore:"id"`
	BrandID        string    `json:"brand_id" firestore:"brandId"`
	Title          string    `json:"title" firestore:"title"`
	Description    string    `json:"description,omitempty" firestore:"description,omitempty"`
	StartDate      time.Time `json:"start_date,omitempty" firestore:"startDate,omitempty"`
	EndDate        time.Time `json:"end_date,omitempty" firestore:"endDate,omitempty"`
	Budget         float64   `json:"budget" firestore:"budget"`
	Status         string    `json:"status" firestore:"status"` // "active", "completed", "paused"
	CampaignGoals  string    `json:"campaign_goals,omitempty" firestore:"campaignGoals,omitempty"`
	TargetAudience string    `json:"target_audience,omitempty" firestore:"targetAudience,omitempty"`
	Private        bool      `json:"private" firestore:"private"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
