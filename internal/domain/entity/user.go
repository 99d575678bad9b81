package entity

import "time"

const (
	UserTypeInfluencer = "influencer"
	UserTypeBrand      = "brand"
	UserTypeAdmin      = "admin"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Type     string `json:"type" firestore:"type"` // "influencer", "brand", "admin"
	Active   bool   `json:"active" firestore:"active"`

	LastActivity time.Time `json:"last_activity" firestore:"lastActivity"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}
