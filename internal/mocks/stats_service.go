package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"streamhub/internal/service/stats"
)

type StatsService struct {
	mock.Mock
}

func (m *StatsService) GetStats(ctx context.Context) (*stats.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.Stats), args.Error(1)
}
