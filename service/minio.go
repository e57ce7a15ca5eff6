package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/contractgpt/backend/config"
)

const contractContentType = "application/pdf"

// BlobStore persists rendered artifacts and mints time-limited links
type BlobStore interface {
	EnsureBucket(ctx context.Context) error
	UploadPDF(ctx context.Context, objectName string, data []byte) error
	GetPresignedURL(ctx context.Context, objectName string) (string, error)
}

// MinioService stores contract PDFs in an owner-scoped bucket namespace
type MinioService struct {
	client *minio.Client
	bucket string
	config *config.MinioConfig
}

func NewMinioService(cfg *config.MinioConfig) (*MinioService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioService{
		client: client,
		bucket: cfg.Bucket,
		config: cfg,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist. Buckets are private by
// default; the MIME and size restrictions are enforced at upload time since
// MinIO has no per-bucket upload policy.
func (s *MinioService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// UploadPDF uploads a rendered contract. Payloads over the configured size
// cap are rejected before any write.
func (s *MinioService) UploadPDF(ctx context.Context, objectName string, data []byte) error {
	if int64(len(data)) > s.config.MaxSize {
		return fmt.Errorf("file size %d exceeds limit of %d bytes", len(data), s.config.MaxSize)
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contractContentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	return nil
}

// GetPresignedURL generates a time-limited retrieval link for the object
func (s *MinioService) GetPresignedURL(ctx context.Context, objectName string) (string, error) {
	expiry := time.Duration(s.config.ExpireDays) * 24 * time.Hour
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}

// ObjectName builds the owner-scoped object key for a contract PDF. The
// timestamped file name guarantees uniqueness without coordination.
func ObjectName(userID uint, contractType string, now time.Time) string {
	return fmt.Sprintf("%d/%d_%s_contract.pdf", userID, now.UnixMilli(), contractType)
}
