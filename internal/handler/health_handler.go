package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"showroomos/internal/port"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db    *sqlx.DB
	cache port.StatsCache
}

// NewHealthHandler creates a new HealthHandler. cache may be nil when the
// deployment runs without Redis.
func NewHealthHandler(db *sqlx.DB, cache port.StatsCache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. Postgres is required; a Redis outage only
// degrades the dashboard cache, so it is reported but does not fail the
// probe.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx := c.Request.Context()
	checks := gin.H{"database": "ok"}

	if err := h.db.PingContext(ctx); err != nil {
		checks["database"] = "unreachable"
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": checks})
		return
	}

	status := "ok"
	if h.cache != nil {
		checks["cache"] = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			checks["cache"] = "unreachable"
			status = "degraded"
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": status, "checks": checks})
}
