package service

import (
	"context"
	"io"
)

type UploadResult struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
	Filename   string `json:"filename"`
	FileType   string `json:"file_type"`
	FileSize   int64  `json:"file_size"`
}

// FileUploadService abstracts the blob store. Implementations validate the
// file against the rules for its kind before storing it.
type FileUploadService interface {
	UploadChatFile(ctx context.Context, file io.Reader, filename string, size int64) (*UploadResult, error)
	UploadProfileImage(ctx context.Context, file io.Reader, filename string, size int64) (*UploadResult, error)
	DeleteFile(ctx context.Context, objectName string) error
}
