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

func TestTenantService_Create(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(nil)

	tenant, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name:     "Mehta Electronics",
		Slug:     "mehta-electronics",
		Vertical: domain.VerticalElectronics,
		GSTIN:    "24AAACB2230M1Z5",
		State:    "Gujarat",
	})
	assert.NoError(t, err)
	assert.True(t, tenant.IsActive)
	assert.Equal(t, "mehta-electronics", tenant.Slug)
	repo.AssertExpectations(t)
}

func TestTenantService_Create_InvalidVertical(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	_, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name:     "Mehta Groceries",
		Slug:     "mehta-groceries",
		Vertical: "groceries",
		State:    "Gujarat",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidVertical)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTenantService_Create_InvalidGSTIN(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	_, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name:     "Mehta Electronics",
		Slug:     "mehta-electronics",
		Vertical: domain.VerticalElectronics,
		GSTIN:    "not-a-gstin",
		State:    "Gujarat",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
}

func TestTenantService_Create_DuplicateSlug(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateTenantSlug)

	_, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name:     "Mehta Electronics",
		Slug:     "mehta-electronics",
		Vertical: domain.VerticalElectronics,
		State:    "Gujarat",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateTenantSlug)
}

func TestTenantService_Update(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).
		Return(&domain.Tenant{ID: id, Name: "Old Name", IsActive: true}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(nil)

	name := "New Name"
	inactive := false
	tenant, err := svc.Update(context.Background(), id, service.UpdateTenantInput{
		Name:     &name,
		IsActive: &inactive,
	})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", tenant.Name)
	assert.False(t, tenant.IsActive)
	repo.AssertExpectations(t)
}

func TestTenantService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := svc.Update(context.Background(), id, service.UpdateTenantInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
