package entity

import "time"

type Influencer struct {
	ID           string    `json:"id" firestore:"id"`
	UserID       string    `json:"user_id" firestore:"userId"`
	Bio          string    `json:"bio,omitempty" firestore:"bio,omitempty"`
	Niche        string    `json:"niche,omitempty" firestore:"niche,omitempty"`
	Followers    int       `json:"followers" firestore:"followers"`
	ProfileImage string    `json:"profile_image,omitempty" firestore:"profileImage,omitempty"`
	DateOfBirth  time.Time `json:"date_of_birth,omitempty" firestore:"dateOfBirth,omitempty"`

	FacebookLink  string `json:"facebook_link,omitempty" firestore:"facebookLink,omitempty"`
	InstagramLink string `json:"instagram_link,omitempty" firestore:"instagramLink,omitempty"`
	TwitterLink   string `json:"twitter_link,omitempty" firestore:"twitterLink,omitempty"`
	YoutubeLink   string `json:"youtube_link,omitempty" firestore:"youtubeLink,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
