package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"showroomos/internal/domain"
)

// MockStatsRepo is a mock implementation of port.StatsRepository.
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) TenantStats(ctx context.Context, tenantID uuid.UUID, now time.Time) (*domain.DashboardStats, error) {
	args := m.Called(ctx, tenantID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

// MockStatsCache is a mock implementation of port.StatsCache.
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, tenantID uuid.UUID) (*domain.DashboardStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockStatsCache) Set(ctx context.Context, tenantID uuid.UUID, stats *domain.DashboardStats) error {
	args := m.Called(ctx, tenantID, stats)
	return args.Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

func (m *MockStatsCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
