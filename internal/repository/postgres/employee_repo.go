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

type employeeRepo struct {
	db *sqlx.DB
}

// NewEmployeeRepo creates a new PostgreSQL-backed EmployeeRepository.
func NewEmployeeRepo(db *sqlx.DB) port.EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	employee.ID = uuid.New()
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	query := `INSERT INTO employees (id, tenant_id, name, phone, email, designation, salary,
		joined_on, left_on, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		employee.ID, employee.TenantID, employee.Name, employee.Phone, employee.Email,
		employee.Designation, employee.Salary, employee.JoinedOn, employee.LeftOn,
		employee.IsActive, employee.CreatedAt, employee.UpdatedAt)
	if err != nil {
		return fmt.Errorf("employeeRepo.Create: %w", err)
	}
	return nil
}

func (r *employeeRepo) GetByID(ctx context.Context, tenantID, employeeID uuid.UUID) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.GetContext(ctx, &employee,
		"SELECT * FROM employees WHERE id = $1 AND tenant_id = $2", employeeID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("employeeRepo.GetByID: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, activeOnly bool, offset, limit int) ([]domain.Employee, int, error) {
	where := "WHERE tenant_id = $1"
	if activeOnly {
		where += " AND is_active = true"
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM employees "+where, tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("employeeRepo.ListByTenant count: %w", err)
	}

	var employees []domain.Employee
	err = r.db.SelectContext(ctx, &employees,
		"SELECT * FROM employees "+where+" ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("employeeRepo.ListByTenant: %w", err)
	}
	return employees, total, nil
}

func (r *employeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	employee.UpdatedAt = time.Now().UTC()
	query := `UPDATE employees SET name = $1, phone = $2, email = $3, designation = $4,
		salary = $5, joined_on = $6, left_on = $7, is_active = $8, updated_at = $9
		WHERE id = $10 AND tenant_id = $11`
	result, err := r.db.ExecContext(ctx, query,
		employee.Name, employee.Phone, employee.Email, employee.Designation,
		employee.Salary, employee.JoinedOn, employee.LeftOn, employee.IsActive,
		employee.UpdatedAt, employee.ID, employee.TenantID)
	if err != nil {
		return fmt.Errorf("employeeRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepo) Delete(ctx context.Context, tenantID, employeeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM employees WHERE id = $1 AND tenant_id = $2", employeeID, tenantID)
	if err != nil {
		return fmt.Errorf("employeeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
