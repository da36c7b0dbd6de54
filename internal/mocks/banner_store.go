package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"streamhub/internal/storage"
)

type BannerStore struct {
	mock.Mock
}

func (m *BannerStore) Save(ctx context.Context, upload *storage.FileUpload) (string, error) {
	args := m.Called(ctx, upload)
	return args.String(0), args.Error(1)
}

func (m *BannerStore) Delete(ctx context.Context, path string) {
	m.Called(ctx, path)
}

func (m *BannerStore) URL(path string) string {
	args := m.Called(path)
	return args.String(0)
}
