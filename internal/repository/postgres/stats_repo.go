package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"showroomos/internal/domain"
	"showroomos/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const invoiceStatsQuery = `SELECT
	COUNT(CASE WHEN status = 'unpaid' THEN 1 END) AS invoices_unpaid,
	COUNT(CASE WHEN status = 'partial_paid' THEN 1 END) AS invoices_partial,
	COUNT(CASE WHEN status = 'paid' THEN 1 END) AS invoices_paid,
	COUNT(CASE WHEN status = 'cancelled' THEN 1 END) AS invoices_cancelled,
	COALESCE(SUM(CASE WHEN status != 'cancelled' THEN grand_total END), 0) AS revenue_total,
	COALESCE(SUM(CASE WHEN status != 'cancelled' THEN total_tax_amount END), 0) AS tax_collected
FROM invoices WHERE tenant_id = $1`

func (r *statsRepo) TenantStats(ctx context.Context, tenantID uuid.UUID, now time.Time) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := r.db.GetContext(ctx, &stats, invoiceStatsQuery, tenantID); err != nil {
		return nil, fmt.Errorf("statsRepo.TenantStats invoices: %w", err)
	}

	if err := r.db.GetContext(ctx, &stats.TotalCustomers,
		"SELECT COUNT(*) FROM customers WHERE tenant_id = $1", tenantID); err != nil {
		return nil, fmt.Errorf("statsRepo.TenantStats customers: %w", err)
	}

	if err := r.db.GetContext(ctx, &stats.TotalEmployees,
		"SELECT COUNT(*) FROM employees WHERE tenant_id = $1 AND is_active = true", tenantID); err != nil {
		return nil, fmt.Errorf("statsRepo.TenantStats employees: %w", err)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := r.db.GetContext(ctx, &stats.AppointmentsToday,
		`SELECT COUNT(*) FROM appointments WHERE tenant_id = $1
		 AND scheduled_at >= $2 AND scheduled_at < $3 AND status != 'cancelled'`,
		tenantID, dayStart, dayStart.AddDate(0, 0, 1)); err != nil {
		return nil, fmt.Errorf("statsRepo.TenantStats appointments: %w", err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := r.db.GetContext(ctx, &stats.EMIDueThisMonth,
		`SELECT COALESCE(SUM(amount), 0) FROM installments WHERE tenant_id = $1
		 AND status = 'pending' AND due_date >= $2 AND due_date < $3`,
		tenantID, monthStart, monthStart.AddDate(0, 1, 0)); err != nil {
		return nil, fmt.Errorf("statsRepo.TenantStats installments: %w", err)
	}

	return &stats, nil
}
