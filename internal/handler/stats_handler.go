package handler

import (
	"github.com/gin-gonic/gin"

	"showroomos/internal/service"
)

// StatsHandler serves the dashboard aggregates endpoint.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a StatsHandler backed by the given service.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /api/v1/stats
// @Summary Get dashboard statistics
// @Description Get aggregate counts for the tenant: invoices by status, revenue and tax collected, customers, active employees, today's appointments, and EMI installments due this month
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=domain.DashboardStats} "Aggregate statistics"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetStats(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
