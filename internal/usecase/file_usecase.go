package usecase

import (
	"context"
	"io"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
	"influmarket/internal/domain/service"
	"influmarket/pkg/errors"
)

// FileUseCase stores chat attachments and keeps a metadata record for each,
// so uploads can be listed and deleted by their owner later.
type FileUseCase struct {
	fileService service.FileUploadService
	metaRepo    repository.FileMetadataRepository
}

func NewFileUseCase(fileService service.FileUploadService, metaRepo repository.FileMetadataRepository) *FileUseCase {
	return &FileUseCase{
		fileService: fileService,
		metaRepo:    metaRepo,
	}
}

func (uc *FileUseCase) UploadChatFile(ctx context.Context, userID string, file io.Reader, filename string, size int64) (*entity.FileMetadata, error) {
	result, err := uc.fileService.UploadChatFile(ctx, file, filename, size)
	if err != nil {
		return nil, err
	}

	meta := &entity.FileMetadata{
		URL:        result.URL,
		ObjectName: result.ObjectName,
		UploadedBy: userID,
		Filename:   result.Filename,
		FileType:   result.FileType,
		FileSize:   result.FileSize,
		Kind:       "chat",
	}
	if err := uc.metaRepo.Create(ctx, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// Delete removes the stored object and its metadata. Only the uploader may
// delete a file.
func (uc *FileUseCase) Delete(ctx context.Context, userID, fileID string) error {
	meta, err := uc.metaRepo.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if meta.UploadedBy != userID {
		return errors.Forbidden("You can only delete your own files", nil)
	}

	if err := uc.fileService.DeleteFile(ctx, meta.ObjectName); err != nil {
		return err
	}
	return uc.metaRepo.Delete(ctx, fileID)
}
