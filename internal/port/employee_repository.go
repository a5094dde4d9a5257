package port

import (
	"context"

	"github.com/google/uuid"

	"showroomos/internal/domain"
)

// EmployeeRepository defines the contract for employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, tenantID, employeeID uuid.UUID) (*domain.Employee, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, activeOnly bool, offset, limit int) ([]domain.Employee, int, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, tenantID, employeeID uuid.UUID) error
}
