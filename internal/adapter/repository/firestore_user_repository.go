package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
	"influmarket/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.LastActivity = now

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := r.client.Collection("users").Where("email", "==", email).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("User", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query user by email", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}
	return nil
}

func (r *firestoreUserRepository) List(ctx context.Context, userType string, limit, offset int) ([]*entity.User, int64, error) {
	query := r.client.Collection("users").Query
	if userType != "" {
		query = query.Where("type", "==", userType)
	}

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count users", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var users []*entity.User

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate users", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, 0, errors.Internal("Failed to parse user data", err)
		}
		users = append(users, &user)
	}

	return users, total, nil
}
