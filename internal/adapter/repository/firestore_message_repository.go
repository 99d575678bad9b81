package repository

import (
	"context"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
	"influmarket/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) messages(proposalID string) *firestore.CollectionRef {
	return r.client.Collection("proposals").Doc(proposalID).Collection("messages")
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	// The document id is the decimal form of the time-ordered message id, so
	// a point lookup by id never needs a query.
	docID := strconv.FormatInt(message.ID, 10)

	_, err := r.messages(message.ProposalID).Doc(docID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}
	return nil
}

func (r *firestoreMessageRepository) ListByProposal(ctx context.Context, proposalID string, afterID int64) ([]*entity.ChatMessage, error) {
	query := r.messages(proposalID).Query.OrderBy("id", firestore.Asc)
	if afterID > 0 {
		query = query.Where("id", ">", afterID)
	}

	iter := query.Documents(ctx)
	var messages []*entity.ChatMessage

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreMessageRepository) MarkRead(ctx context.Context, proposalID string, ids []int64, readerID string) ([]int64, error) {
	updated := make([]int64, 0, len(ids))

	for _, id := range ids {
		docRef := r.messages(proposalID).Doc(strconv.FormatInt(id, 10))

		doc, err := docRef.Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				continue
			}
			return nil, errors.Internal("Failed to get message", err)
		}

		var message entity.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}

		// Only the addressee can mark a message read, and marking an
		// already-read message is a no-op, so retries converge.
		if message.RecipientID != readerID || message.Read {
			continue
		}

		_, err = docRef.Update(ctx, []firestore.Update{
			{Path: "read", Value: true},
		})
		if err != nil {
			return nil, errors.Internal("Failed to mark message as read", err)
		}
		updated = append(updated, id)
	}

	return updated, nil
}

func (r *firestoreMessageRepository) CountUnread(ctx context.Context, proposalID, recipientID string) (int, error) {
	docs, err := r.messages(proposalID).
		Where("recipientId", "==", recipientID).
		Where("read", "==", false).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count unread messages", err)
	}
	return len(docs), nil
}
