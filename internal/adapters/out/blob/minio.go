// Package blob provides an S3-compatible object store adapter backed by MinIO.
// Stored objects are addressed by opaque keys and exposed through public URLs.
package blob

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds the connection settings for the object store.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL is the externally reachable base for stored objects,
	// e.g. a CDN or the MinIO endpoint itself.
	PublicBaseURL string
}

// MinioBlobStore implements the BlobStore port on a MinIO (or any
// S3-compatible) backend.
type MinioBlobStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	logger        *slog.Logger
}

// NewMinioBlobStore connects to the object store and ensures the configured
// bucket exists.
func NewMinioBlobStore(ctx context.Context, cfg Config, logger *slog.Logger) (*MinioBlobStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to object store: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	logger = logger.With("component", "blob")
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", cfg.Bucket, err)
		}
		logger.Info("created bucket", "bucket", cfg.Bucket)
	}

	return &MinioBlobStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload stores the object under key and returns its public URL.
// An existing object under the same key is overwritten.
func (s *MinioBlobStore) Upload(
	ctx context.Context,
	key string,
	data io.Reader,
	size int64,
	contentType string,
) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, data, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload object %q: %w", key, err)
	}
	s.logger.Debug("stored object", "key", key, "size", size)

	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, key), nil
}

// Remove deletes the object stored under key. Removing a missing object is
// not an error.
func (s *MinioBlobStore) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", key, err)
	}

	return nil
}
