package service

import (
	"context"

	"github.com/google/uuid"

	"showroomos/internal/domain"
	"showroomos/internal/gst"
	"showroomos/internal/port"
)

// CreateCustomerInput is the DTO for creating a customer.
type CreateCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state" binding:"required"`
	GSTIN   string `json:"gstin"`
	Notes   string `json:"notes"`
}

// UpdateCustomerInput is the DTO for updating a customer.
type UpdateCustomerInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	GSTIN   *string `json:"gstin"`
	Notes   *string `json:"notes"`
}

// CustomerService defines the customer management contract.
type CustomerService interface {
	Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, tenantID, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, tenantID, customerID uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, tenantID, customerID uuid.UUID) error
}

type customerService struct {
	repo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(repo port.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreateCustomerInput) (*domain.Customer, error) {
	if v := gst.ValidateGSTIN(input.GSTIN); !v.Valid {
		return nil, domain.ErrInvalidGSTIN
	}

	customer := &domain.Customer{
		TenantID:  tenantID,
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		GSTIN:     input.GSTIN,
		Notes:     input.Notes,
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, tenantID, customerID uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, tenantID, customerID)
}

func (s *customerService) List(ctx context.Context, tenantID uuid.UUID, search string, offset, limit int) ([]domain.Customer, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, search, offset, limit)
}

func (s *customerService) Update(ctx context.Context, tenantID, customerID uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.City != nil {
		customer.City = *input.City
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.GSTIN != nil {
		if v := gst.ValidateGSTIN(*input.GSTIN); !v.Valid {
			return nil, domain.ErrInvalidGSTIN
		}
		customer.GSTIN = *input.GSTIN
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, tenantID, customerID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, customerID)
}
