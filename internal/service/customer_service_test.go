package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"showroomos/internal/domain"
	"showroomos/internal/service"
	"showroomos/mocks"
)

func TestCustomerService_Create(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)
	tenantID := uuid.New()
	createdBy := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	customer, err := svc.Create(context.Background(), tenantID, createdBy, service.CreateCustomerInput{
		Name:  "Ravi Patel",
		Phone: "9876543210",
		State: "Gujarat",
		GSTIN: "24AAACB2230M1Z5",
	})
	assert.NoError(t, err)
	assert.Equal(t, tenantID, customer.TenantID)
	assert.Equal(t, createdBy, customer.CreatedBy)
	repo.AssertExpectations(t)
}

func TestCustomerService_Create_BlankGSTINAllowed(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	customer, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreateCustomerInput{
		Name:  "Walk-in",
		Phone: "9000000000",
		State: "Gujarat",
	})
	assert.NoError(t, err)
	assert.Empty(t, customer.GSTIN)
}

func TestCustomerService_Create_InvalidGSTIN(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreateCustomerInput{
		Name:  "Ravi Patel",
		Phone: "9876543210",
		State: "Gujarat",
		GSTIN: "24AAACB2230M105", // missing the Z marker
	})
	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerService_Create_DuplicatePhone(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicatePhone)

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreateCustomerInput{
		Name:  "Ravi Patel",
		Phone: "9876543210",
		State: "Gujarat",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicatePhone)
}

func TestCustomerService_Update_GSTINValidation(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)
	tenantID := uuid.New()
	customerID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, customerID).
		Return(&domain.Customer{ID: customerID, TenantID: tenantID, Name: "Ravi Patel"}, nil)

	bad := "bogus"
	_, err := svc.Update(context.Background(), tenantID, customerID, service.UpdateCustomerInput{GSTIN: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)

	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)
	good := "27AAACB2230M1Z5"
	customer, err := svc.Update(context.Background(), tenantID, customerID, service.UpdateCustomerInput{GSTIN: &good})
	assert.NoError(t, err)
	assert.Equal(t, good, customer.GSTIN)
}
