package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"showroomos/internal/domain"
)

// StatsRepository defines the contract for dashboard aggregation queries.
type StatsRepository interface {
	TenantStats(ctx context.Context, tenantID uuid.UUID, now time.Time) (*domain.DashboardStats, error)
}

// StatsCache caches dashboard stats per tenant with a short TTL. A nil
// result with a nil error means a cache miss.
type StatsCache interface {
	Get(ctx context.Context, tenantID uuid.UUID) (*domain.DashboardStats, error)
	Set(ctx context.Context, tenantID uuid.UUID, stats *domain.DashboardStats) error
	Invalidate(ctx context.Context, tenantID uuid.UUID) error
	// Ping reports whether the cache backend is reachable.
	Ping(ctx context.Context) error
}
