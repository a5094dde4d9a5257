package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"showroomos/internal/domain"
	"showroomos/internal/port"
)

// CreateAppointmentInput is the DTO for booking an appointment.
type CreateAppointmentInput struct {
	CustomerID  uuid.UUID  `json:"customer_id" binding:"required"`
	EmployeeID  *uuid.UUID `json:"employee_id"`
	ScheduledAt time.Time  `json:"scheduled_at" binding:"required"`
	Purpose     string     `json:"purpose"`
	Notes       string     `json:"notes"`
}

// UpdateAppointmentInput is the DTO for updating an appointment.
type UpdateAppointmentInput struct {
	EmployeeID  *uuid.UUID                `json:"employee_id"`
	ScheduledAt *time.Time                `json:"scheduled_at"`
	Purpose     *string                   `json:"purpose"`
	Status      *domain.AppointmentStatus `json:"status"`
	Notes       *string                   `json:"notes"`
}

// AppointmentService defines the appointment booking contract.
type AppointmentService interface {
	Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreateAppointmentInput) (*domain.Appointment, error)
	GetByID(ctx context.Context, tenantID, apptID uuid.UUID) (*domain.Appointment, error)
	List(ctx context.Context, tenantID uuid.UUID, filter port.AppointmentFilter, offset, limit int) ([]domain.Appointment, int, error)
	Update(ctx context.Context, tenantID, apptID uuid.UUID, input UpdateAppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, tenantID, apptID uuid.UUID) error
}

type appointmentService struct {
	repo         port.AppointmentRepository
	customerRepo port.CustomerRepository
	tenantRepo   port.TenantRepository
	emailSender  port.EmailSender
}

// NewAppointmentService creates a new AppointmentService implementation.
func NewAppointmentService(
	repo port.AppointmentRepository,
	customerRepo port.CustomerRepository,
	tenantRepo port.TenantRepository,
	emailSender port.EmailSender,
) AppointmentService {
	return &appointmentService{
		repo:         repo,
		customerRepo: customerRepo,
		tenantRepo:   tenantRepo,
		emailSender:  emailSender,
	}
}

func (s *appointmentService) Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreateAppointmentInput) (*domain.Appointment, error) {
	if input.ScheduledAt.Before(time.Now()) {
		return nil, domain.ErrAppointmentInPast
	}

	customer, err := s.customerRepo.GetByID(ctx, tenantID, input.CustomerID)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		TenantID:    tenantID,
		CustomerID:  input.CustomerID,
		EmployeeID:  input.EmployeeID,
		ScheduledAt: input.ScheduledAt,
		Purpose:     input.Purpose,
		Status:      domain.AppointmentScheduled,
		Notes:       input.Notes,
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, err
	}

	// Confirmation email is best-effort; the booking stands either way.
	if customer.Email != "" {
		showroomName := ""
		if tenant, terr := s.tenantRepo.GetByID(ctx, tenantID); terr == nil {
			showroomName = tenant.Name
		}
		if err := s.emailSender.SendAppointmentConfirmation(ctx, customer.Email, customer.Name, showroomName, appt.ScheduledAt); err != nil {
			log.Printf("WARNING: failed to send appointment confirmation to %s: %v", customer.Email, err)
		}
	}

	return appt, nil
}

func (s *appointmentService) GetByID(ctx context.Context, tenantID, apptID uuid.UUID) (*domain.Appointment, error) {
	return s.repo.GetByID(ctx, tenantID, apptID)
}

func (s *appointmentService) List(ctx context.Context, tenantID uuid.UUID, filter port.AppointmentFilter, offset, limit int) ([]domain.Appointment, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, filter, offset, limit)
}

func (s *appointmentService) Update(ctx context.Context, tenantID, apptID uuid.UUID, input UpdateAppointmentInput) (*domain.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, tenantID, apptID)
	if err != nil {
		return nil, err
	}

	if input.EmployeeID != nil {
		appt.EmployeeID = input.EmployeeID
	}
	if input.ScheduledAt != nil {
		if input.ScheduledAt.Before(time.Now()) {
			return nil, domain.ErrAppointmentInPast
		}
		appt.ScheduledAt = *input.ScheduledAt
	}
	if input.Purpose != nil {
		appt.Purpose = *input.Purpose
	}
	if input.Status != nil {
		if !domain.AllowedAppointmentStatuses[*input.Status] {
			return nil, domain.ErrInvalidApptStatus
		}
		appt.Status = *input.Status
	}
	if input.Notes != nil {
		appt.Notes = *input.Notes
	}

	if err := s.repo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *appointmentService) Delete(ctx context.Context, tenantID, apptID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, apptID)
}
