package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"influmarket/internal/domain/service"
	"influmarket/pkg/errors"
)

const (
	maxChatFileSize     = 10 << 20 // 10 MB
	maxProfileImageSize = 16 << 20 // 16 MB
)

// contentTypes maps the allowed upload extensions to the content type the
// object is stored with. Anything not listed here is rejected.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".zip":  "application/zip",
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

func (c *CloudStorageClient) UploadChatFile(ctx context.Context, file io.Reader, filename string, size int64) (*service.UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := contentTypes[ext]
	if !ok {
		return nil, errors.BadRequest("File type not allowed", nil)
	}
	if size > maxChatFileSize {
		return nil, errors.BadRequest("File exceeds the 10MB limit", nil)
	}

	return c.upload(ctx, file, "chat", filename, ext, contentType, size)
}

func (c *CloudStorageClient) UploadProfileImage(ctx context.Context, file io.Reader, filename string, size int64) (*service.UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return nil, errors.BadRequest("Profile image must be jpg, png or gif", nil)
	}
	if size > maxProfileImageSize {
		return nil, errors.BadRequest("Image exceeds the 16MB limit", nil)
	}

	return c.upload(ctx, file, "profiles", filename, ext, contentTypes[ext], size)
}

func (c *CloudStorageClient) upload(ctx context.Context, file io.Reader, folder, filename, ext, contentType string, size int64) (*service.UploadResult, error) {
	objectName := fmt.Sprintf("%s/%s-%s%s", folder, uuid.New().String(), time.Now().Format("20060102150405"), ext)

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		return nil, errors.Internal("Failed to copy file to storage", err)
	}
	if err := wc.Close(); err != nil {
		return nil, errors.Internal("Failed to finish upload", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return nil, errors.Internal("Failed to set file ACL", err)
	}

	return &service.UploadResult{
		URL:        fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName),
		ObjectName: objectName,
		Filename:   filename,
		FileType:   contentType,
		FileSize:   size,
	}, nil
}

func (c *CloudStorageClient) DeleteFile(ctx context.Context, objectName string) error {
	obj := c.client.Bucket(c.bucketName).Object(objectName)
	if err := obj.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete file", err)
	}
	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
