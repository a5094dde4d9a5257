package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"showroomos/internal/domain"
	"showroomos/internal/service"
	"showroomos/mocks"
)

func TestEmployeeService_Create(t *testing.T) {
	repo := new(mocks.MockEmployeeRepo)
	svc := service.NewEmployeeService(repo)
	tenantID := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Employee")).Return(nil)

	joined := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	employee, err := svc.Create(context.Background(), tenantID, service.CreateEmployeeInput{
		Name:        "Meena Joshi",
		Phone:       "9812345678",
		Designation: "Sales Executive",
		Salary:      32000,
		JoinedOn:    joined,
	})
	assert.NoError(t, err)
	assert.Equal(t, tenantID, employee.TenantID)
	assert.True(t, employee.IsActive)
	repo.AssertExpectations(t)
}

func TestEmployeeService_Update_LeftOnDeactivates(t *testing.T) {
	repo := new(mocks.MockEmployeeRepo)
	svc := service.NewEmployeeService(repo)
	tenantID := uuid.New()
	employeeID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, employeeID).
		Return(&domain.Employee{ID: employeeID, TenantID: tenantID, IsActive: true}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Employee")).Return(nil)

	left := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	employee, err := svc.Update(context.Background(), tenantID, employeeID, service.UpdateEmployeeInput{
		LeftOn: &left,
	})
	assert.NoError(t, err)
	assert.False(t, employee.IsActive)
	assert.Equal(t, &left, employee.LeftOn)
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockEmployeeRepo)
	svc := service.NewEmployeeService(repo)
	tenantID := uuid.New()
	employeeID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, employeeID).Return(nil, domain.ErrEmployeeNotFound)

	_, err := svc.Update(context.Background(), tenantID, employeeID, service.UpdateEmployeeInput{})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
