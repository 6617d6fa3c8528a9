package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig holds the S3-compatible endpoint settings.
type MinioConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PublicBase string
}

// MinioUploader implements Uploader against any S3-compatible endpoint.
type MinioUploader struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinio connects the object-storage client. PublicBase overrides the URL
// prefix returned for uploaded objects; when empty, URLs are built from the
// endpoint and bucket.
func NewMinio(cfg MinioConfig) (*MinioUploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}

	publicBase := strings.TrimRight(cfg.PublicBase, "/")
	if publicBase == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &MinioUploader{client: client, bucket: cfg.Bucket, publicBase: publicBase}, nil
}

func (u *MinioUploader) Upload(ctx context.Context, objectKey, contentType string, r io.Reader, size int64) (string, error) {
	_, err := u.client.PutObject(ctx, u.bucket, objectKey, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectKey, err)
	}
	return fmt.Sprintf("%s/%s", u.publicBase, objectKey), nil
}

func (u *MinioUploader) Remove(ctx context.Context, objectKey string) error {
	if err := u.client.RemoveObject(ctx, u.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove %s: %w", objectKey, err)
	}
	return nil
}
