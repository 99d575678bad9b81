package repository

import (
	"context"

	"influmarket/internal/domain/entity"
)

type FileMetadataRepository interface {
	Create(ctx context.Context, meta *entity.FileMetadata) error
	GetByID(ctx context.Context, id string) (*entity.FileMetadata, error)
	Delete(ctx context.Context, id string) error
}
