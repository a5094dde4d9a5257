package service

import (
	"context"

	"github.com/google/uuid"

	"showroomos/internal/domain"
	"showroomos/internal/gst"
	"showroomos/internal/port"
)

// CreateTenantInput carries the fields needed to onboard a showroom.
// GSTIN is optional; unregistered showrooms leave it blank.
type CreateTenantInput struct {
	Name     string          `json:"name" binding:"required"`
	Slug     string          `json:"slug" binding:"required"`
	Vertical domain.Vertical `json:"vertical" binding:"required"`
	GSTIN    string          `json:"gstin"`
	State    string          `json:"state" binding:"required"`
}

// UpdateTenantInput is a partial update; nil fields are left untouched.
type UpdateTenantInput struct {
	Name     *string          `json:"name"`
	Slug     *string          `json:"slug"`
	Vertical *domain.Vertical `json:"vertical"`
	GSTIN    *string          `json:"gstin"`
	State    *string          `json:"state"`
	IsActive *bool            `json:"is_active"`
}

func (in UpdateTenantInput) apply(tenant *domain.Tenant) error {
	if in.Name != nil {
		tenant.Name = *in.Name
	}
	if in.Slug != nil {
		tenant.Slug = *in.Slug
	}
	if in.Vertical != nil {
		if !domain.AllowedVerticals[*in.Vertical] {
			return domain.ErrInvalidVertical
		}
		tenant.Vertical = *in.Vertical
	}
	if in.GSTIN != nil {
		if v := gst.ValidateGSTIN(*in.GSTIN); !v.Valid {
			return domain.ErrInvalidGSTIN
		}
		tenant.GSTIN = *in.GSTIN
	}
	if in.State != nil {
		tenant.State = *in.State
	}
	if in.IsActive != nil {
		tenant.IsActive = *in.IsActive
	}
	return nil
}

// TenantService manages showroom tenants. All methods are admin-only at
// the routing layer.
type TenantService interface {
	Create(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTenantInput) (*domain.Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tenantService struct {
	repo port.TenantRepository
}

// NewTenantService creates a TenantService backed by the given repository.
func NewTenantService(repo port.TenantRepository) TenantService {
	return &tenantService{repo: repo}
}

func (s *tenantService) Create(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error) {
	if !domain.AllowedVerticals[input.Vertical] {
		return nil, domain.ErrInvalidVertical
	}
	if v := gst.ValidateGSTIN(input.GSTIN); !v.Valid {
		return nil, domain.ErrInvalidGSTIN
	}

	tenant := &domain.Tenant{
		Name:     input.Name,
		Slug:     input.Slug,
		Vertical: input.Vertical,
		GSTIN:    input.GSTIN,
		State:    input.State,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *tenantService) List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *tenantService) Update(ctx context.Context, id uuid.UUID, input UpdateTenantInput) (*domain.Tenant, error) {
	tenant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := input.apply(tenant); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
