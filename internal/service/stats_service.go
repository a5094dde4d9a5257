package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"showroomos/internal/domain"
	"showroomos/internal/port"
)

// StatsService provides the per-tenant dashboard counters.
type StatsService interface {
	GetStats(ctx context.Context, tenantID uuid.UUID) (*domain.DashboardStats, error)
}

type statsService struct {
	statsRepo port.StatsRepository
	cache     port.StatsCache
}

// NewStatsService creates a new StatsService implementation. The cache is
// consulted first; a miss falls through to the aggregation queries.
func NewStatsService(statsRepo port.StatsRepository, cache port.StatsCache) StatsService {
	return &statsService{statsRepo: statsRepo, cache: cache}
}

func (s *statsService) GetStats(ctx context.Context, tenantID uuid.UUID) (*domain.DashboardStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, tenantID)
		if err != nil {
			log.Printf("WARNING: stats cache get for tenant %s: %v", tenantID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.statsRepo.TenantStats(ctx, tenantID, time.Now())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, tenantID, stats); err != nil {
			log.Printf("WARNING: stats cache set for tenant %s: %v", tenantID, err)
		}
	}
	return stats, nil
}
