package port

import (
	"context"

	"github.com/google/uuid"

	"showroomos/internal/domain"
)

// CustomerRepository defines the contract for customer persistence.
// All query methods include tenantID for tenant isolation.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, tenantID, customerID uuid.UUID) (*domain.Customer, error)
	// ListByTenant supports an optional case-insensitive search over name
	// and phone; pass an empty search to list everything.
	ListByTenant(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, tenantID, customerID uuid.UUID) error
}
