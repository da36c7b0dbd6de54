package storage

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/minio/minio-go/v7"

	"streamhub/internal/domain"
)

// MinIOPrefix is the object key prefix banners are stored under.
const MinIOPrefix = "banners"

type MinIOStore struct {
	client         *minio.Client
	bucket         string
	publicEndpoint string
	publicUseSSL   bool
}

var _ BannerStore = (*MinIOStore)(nil)

func NewMinIOStore(client *minio.Client, bucket, publicEndpoint string, publicUseSSL bool) *MinIOStore {
	return &MinIOStore{
		client:         client,
		bucket:         bucket,
		publicEndpoint: publicEndpoint,
		publicUseSSL:   publicUseSSL,
	}
}

func (s *MinIOStore) Save(ctx context.Context, upload *FileUpload) (string, error) {
	if err := validateUpload(upload); err != nil {
		return "", err
	}

	key := MinIOPrefix + "/" + bannerName(upload.Filename)
	size := upload.Size
	if size <= 0 {
		size = -1
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, upload.Reader, size, minio.PutObjectOptions{
		ContentType: upload.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrStorageWriteFailed, err)
	}

	return key, nil
}

func (s *MinIOStore) Delete(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		log.Printf("Warning: failed to delete banner %s: %v", key, err)
	}
}

func (s *MinIOStore) URL(key string) string {
	scheme := "http"
	if s.publicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.publicEndpoint, s.bucket, (&url.URL{Path: key}).EscapedPath())
}
