package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"showroomos/internal/domain"
	"showroomos/internal/port"
)

type appointmentRepo struct {
	db *sqlx.DB
}

// NewAppointmentRepo creates a new PostgreSQL-backed AppointmentRepository.
func NewAppointmentRepo(db *sqlx.DB) port.AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Create(ctx context.Context, appt *domain.Appointment) error {
	appt.ID = uuid.New()
	now := time.Now().UTC()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	query := `INSERT INTO appointments (id, tenant_id, customer_id, employee_id, scheduled_at,
		purpose, status, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		appt.ID, appt.TenantID, appt.CustomerID, appt.EmployeeID, appt.ScheduledAt,
		appt.Purpose, appt.Status, appt.Notes, appt.CreatedBy, appt.CreatedAt, appt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("appointmentRepo.Create: %w", err)
	}
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, tenantID, apptID uuid.UUID) (*domain.Appointment, error) {
	var appt domain.Appointment
	err := r.db.GetContext(ctx, &appt,
		"SELECT * FROM appointments WHERE id = $1 AND tenant_id = $2", apptID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("appointmentRepo.GetByID: %w", err)
	}
	return &appt, nil
}

// appointmentWhereClause constructs a dynamic WHERE clause for appointment
// listings. It returns the clause string (starting with "WHERE") and the
// positional arguments.
func appointmentWhereClause(tenantID uuid.UUID, filter port.AppointmentFilter) (clause string, args []interface{}) {
	args = []interface{}{tenantID}
	clause = "WHERE tenant_id = $1"
	argN := 2

	if filter.Status != "" {
		clause += fmt.Sprintf(" AND status = $%d", argN)
		args = append(args, filter.Status)
		argN++
	}
	if filter.Day != nil {
		dayStart := time.Date(filter.Day.Year(), filter.Day.Month(), filter.Day.Day(), 0, 0, 0, 0, filter.Day.Location())
		clause += fmt.Sprintf(" AND scheduled_at >= $%d AND scheduled_at < $%d", argN, argN+1)
		args = append(args, dayStart, dayStart.AddDate(0, 0, 1))
		argN += 2 //nolint:ineffassign // argN kept incremented for consistency
	}

	return clause, args
}

func (r *appointmentRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, filter port.AppointmentFilter, offset, limit int) ([]domain.Appointment, int, error) {
	where, args := appointmentWhereClause(tenantID, filter)

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM appointments "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("appointmentRepo.ListByTenant count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM appointments %s ORDER BY scheduled_at ASC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var appts []domain.Appointment
	err = r.db.SelectContext(ctx, &appts, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("appointmentRepo.ListByTenant: %w", err)
	}
	return appts, total, nil
}

func (r *appointmentRepo) Update(ctx context.Context, appt *domain.Appointment) error {
	appt.UpdatedAt = time.Now().UTC()
	query := `UPDATE appointments SET customer_id = $1, employee_id = $2, scheduled_at = $3,
		purpose = $4, status = $5, notes = $6, updated_at = $7
		WHERE id = $8 AND tenant_id = $9`
	result, err := r.db.ExecContext(ctx, query,
		appt.CustomerID, appt.EmployeeID, appt.ScheduledAt, appt.Purpose,
		appt.Status, appt.Notes, appt.UpdatedAt, appt.ID, appt.TenantID)
	if err != nil {
		return fmt.Errorf("appointmentRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *appointmentRepo) Delete(ctx context.Context, tenantID, apptID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM appointments WHERE id = $1 AND tenant_id = $2", apptID, tenantID)
	if err != nil {
		return fmt.Errorf("appointmentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}
