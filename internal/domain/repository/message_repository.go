package repository

import (
	"context"

	"influmarket/internal/domain/entity"
)

// MessageRepository stores chat messages ordered by their id. Ids are
// time-ordered, so "list everything after id N" is a stable cursor: a reader
// polling with the last id it has seen never misses or repeats a message.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error

	// ListByProposal returns messages with id > afterID in ascending id
	// order. afterID 0 returns the full history.
	ListByProposal(ctx context.Context, proposalID string, afterID int64) ([]*entity.ChatMessage, error)

	// MarkRead flips the read flag on the given messages, but only those
	// addressed to readerID and not already read. It returns the ids it
	// actually updated, which may be a subset of ids.
	MarkRead(ctx context.Context, proposalID string, ids []int64, readerID string) ([]int64, error)

	// CountUnread returns the number of unread messages addressed to
	// recipientID in the proposal's conversation.
	CountUnread(ctx context.Context, proposalID, recipientID string) (int, error)
}
