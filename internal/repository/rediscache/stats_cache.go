package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"showroomos/internal/config"
	"showroomos/internal/domain"
	"showroomos/internal/port"
)

const (
	statsKeyPrefix  = "dashboard_stats:"
	defaultStatsTTL = 5 * time.Minute
)

type statsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a Redis-backed dashboard stats cache.
func NewStatsCache(cfg *config.RedisConfig) port.StatsCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.StatsTTL
	if ttl == 0 {
		ttl = defaultStatsTTL
	}

	return &statsCache{client: client, ttl: ttl}
}

func (c *statsCache) Get(ctx context.Context, tenantID uuid.UUID) (*domain.DashboardStats, error) {
	data, err := c.client.Get(ctx, statsKeyPrefix+tenantID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("statsCache.Get: %w", err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("statsCache.Get unmarshal: %w", err)
	}
	return &stats, nil
}

func (c *statsCache) Set(ctx context.Context, tenantID uuid.UUID, stats *domain.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("statsCache.Set marshal: %w", err)
	}
	if err := c.client.Set(ctx, statsKeyPrefix+tenantID.String(), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("statsCache.Set: %w", err)
	}
	return nil
}

func (c *statsCache) Invalidate(ctx context.Context, tenantID uuid.UUID) error {
	if err := c.client.Del(ctx, statsKeyPrefix+tenantID.String()).Err(); err != nil {
		return fmt.Errorf("statsCache.Invalidate: %w", err)
	}
	return nil
}

func (c *statsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
