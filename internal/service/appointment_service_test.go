package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"showroomos/internal/domain"
	"showroomos/internal/service"
	"showroomos/mocks"
)

func newAppointmentFixture() (*mocks.MockAppointmentRepo, *mocks.MockCustomerRepo, *mocks.MockTenantRepo, *mocks.MockEmailSender, service.AppointmentService) {
	repo := new(mocks.MockAppointmentRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewAppointmentService(repo, customerRepo, tenantRepo, sender)
	return repo, customerRepo, tenantRepo, sender, svc
}

func TestAppointmentService_Create_SendsConfirmation(t *testing.T) {
	repo, customerRepo, tenantRepo, sender, svc := newAppointmentFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scheduledAt := time.Now().Add(48 * time.Hour)

	customerRepo.On("GetByID", mock.Anything, tenantID, customerID).
		Return(&domain.Customer{ID: customerID, Name: "Ravi Patel", Email: "ravi@example.com"}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Appointment")).Return(nil)
	tenantRepo.On("GetByID", mock.Anything, tenantID).
		Return(&domain.Tenant{ID: tenantID, Name: "Mehta Electronics"}, nil)
	sender.On("SendAppointmentConfirmation", mock.Anything, "ravi@example.com", "Ravi Patel", "Mehta Electronics", scheduledAt).
		Return(nil)

	appt, err := svc.Create(context.Background(), tenantID, uuid.New(), service.CreateAppointmentInput{
		CustomerID:  customerID,
		ScheduledAt: scheduledAt,
		Purpose:     "TV demo",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentScheduled, appt.Status)
	sender.AssertExpectations(t)
}

func TestAppointmentService_Create_EmailFailureDoesNotFailBooking(t *testing.T) {
	repo, customerRepo, tenantRepo, sender, svc := newAppointmentFixture()
	tenantID := uuid.New()
	customerID := uuid.New()
	scheduledAt := time.Now().Add(24 * time.Hour)

	customerRepo.On("GetByID", mock.Anything, tenantID, customerID).
		Return(&domain.Customer{ID: customerID, Name: "Ravi Patel", Email: "ravi@example.com"}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	tenantRepo.On("GetByID", mock.Anything, tenantID).
		Return(&domain.Tenant{ID: tenantID, Name: "Mehta Electronics"}, nil)
	sender.On("SendAppointmentConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("ses: throttled"))

	_, err := svc.Create(context.Background(), tenantID, uuid.New(), service.CreateAppointmentInput{
		CustomerID:  customerID,
		ScheduledAt: scheduledAt,
	})
	assert.NoError(t, err)
}

func TestAppointmentService_Create_NoEmailSkipsConfirmation(t *testing.T) {
	repo, customerRepo, _, sender, svc := newAppointmentFixture()
	tenantID := uuid.New()
	customerID := uuid.New()

	customerRepo.On("GetByID", mock.Anything, tenantID, customerID).
		Return(&domain.Customer{ID: customerID, Name: "Walk-in"}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), tenantID, uuid.New(), service.CreateAppointmentInput{
		CustomerID:  customerID,
		ScheduledAt: time.Now().Add(time.Hour),
	})
	assert.NoError(t, err)
	sender.AssertNotCalled(t, "SendAppointmentConfirmation",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAppointmentService_Create_PastRejected(t *testing.T) {
	_, customerRepo, _, _, svc := newAppointmentFixture()

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreateAppointmentInput{
		CustomerID:  uuid.New(),
		ScheduledAt: time.Now().Add(-time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrAppointmentInPast)
	customerRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppointmentService_Update_StatusValidation(t *testing.T) {
	repo, _, _, _, svc := newAppointmentFixture()
	tenantID := uuid.New()
	apptID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, apptID).
		Return(&domain.Appointment{ID: apptID, Status: domain.AppointmentScheduled}, nil)

	bad := domain.AppointmentStatus("rescheduled")
	_, err := svc.Update(context.Background(), tenantID, apptID, service.UpdateAppointmentInput{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidApptStatus)

	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Appointment")).Return(nil)
	done := domain.AppointmentCompleted
	appt, err := svc.Update(context.Background(), tenantID, apptID, service.UpdateAppointmentInput{Status: &done})
	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentCompleted, appt.Status)
}

func TestAppointmentService_Update_PastRescheduleRejected(t *testing.T) {
	repo, _, _, _, svc := newAppointmentFixture()
	tenantID := uuid.New()
	apptID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, apptID).
		Return(&domain.Appointment{ID: apptID, Status: domain.AppointmentScheduled}, nil)

	past := time.Now().Add(-time.Minute)
	_, err := svc.Update(context.Background(), tenantID, apptID, service.UpdateAppointmentInput{ScheduledAt: &past})
	assert.ErrorIs(t, err, domain.ErrAppointmentInPast)
}
