package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"streamhub/internal/domain"
	"streamhub/internal/storage"
)

type VideoService struct {
	mock.Mock
}

func (m *VideoService) List(ctx context.Context) ([]domain.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *VideoService) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *VideoService) Upload(ctx context.Context, input domain.VideoInput, banner *storage.FileUpload) (int64, error) {
	args := m.Called(ctx, input, banner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *VideoService) Update(ctx context.Context, id int64, input domain.VideoInput, banner *storage.FileUpload) error {
	args := m.Called(ctx, id, input, banner)
	return args.Error(0)
}

func (m *VideoService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
