package entity

import "time"

// ChatMessage is immutable once created except for the Read flag. The
// recipient is always the other party to the proposal, computed server-side.
type ChatMessage struct {
	ID          int64  `json:"id" firestore:"id"`
	ProposalID  string `json:"proposal_id" firestore:"proposalId"`
	SenderID    string `json:"sender_id" firestore:"senderId"`
	RecipientID string `json:"recipient_id" firestore:"recipientId"`
	Body        string `json:"message" firestore:"message"`

	FileURL  string `json:"file_url,omitempty" firestore:"fileUrl,omitempty"`
	FileName string `json:"file_name,omitempty" firestore:"fileName,omitempty"`
	FileType string `json:"file_type,omitempty" firestore:"fileType,omitempty"`
	FileSize int64  `json:"file_size,omitempty" firestore:"fileSize,omitempty"`

	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
	Read      bool      `json:"read" firestore:"read"`
}
