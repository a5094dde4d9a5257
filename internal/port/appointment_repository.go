package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"showroomos/internal/domain"
)

// AppointmentFilter narrows an appointment listing. Zero values are ignored.
type AppointmentFilter struct {
	Status domain.AppointmentStatus
	// Day restricts results to appointments scheduled on that calendar day.
	Day *time.Time
}

// AppointmentRepository defines the contract for appointment persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) error
	GetByID(ctx context.Context, tenantID, apptID uuid.UUID) (*domain.Appointment, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, filter AppointmentFilter, offset, limit int) ([]domain.Appointment, int, error)
	Update(ctx context.Context, appt *domain.Appointment) error
	Delete(ctx context.Context, tenantID, apptID uuid.UUID) error
}
