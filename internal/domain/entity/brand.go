package entity

import "time"

type Brand struct {
	ID                 string `json:"id" firestore:"id"`
	UserID             string `json:"user_id" firestore:"userId"`
	Name               string `json:"name" firestore:"name"`
	Website            string `json:"website,omitempty" firestore:"website,omitempty"`
	ContactEmail       string `json:"contact_email,omitempty" firestore:"contactEmail,omitempty"`
	ProfileImage       string `json:"profile_image,omitempty" firestore:"profileImage,omitempty"`
	CompanyDescription string `json:"company_description,omitempty" firestore:"companyDescription,omitempty"`
	Industry           string `json:"industry,omitempty" firestore:"industry,omitempty"`
	Verified           bool   `json:"verified" firestore:"verified"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
