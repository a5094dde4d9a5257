package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"showroomos/internal/domain"
	"showroomos/internal/gst"
	"showroomos/internal/port"
)

// RegisterInput is the DTO for showroom self-registration: a new tenant plus
// its first admin user in one step.
type RegisterInput struct {
	ShowroomName string          `json:"showroom_name" binding:"required"`
	Slug         string          `json:"slug" binding:"required"`
	Vertical     domain.Vertical `json:"vertical" binding:"required"`
	GSTIN        string          `json:"gstin"`
	State        string          `json:"state" binding:"required"`
	Email        string          `json:"email" binding:"required,email"`
	Password     string          `json:"password" binding:"required,min=8"`
	FullName     string          `json:"full_name" binding:"required"`
}

// RegisterOutput contains the results of a successful registration.
type RegisterOutput struct {
	Tenant *domain.Tenant `json:"tenant"`
	User   *domain.User   `json:"user"`
	Tokens *TokenPair     `json:"tokens"`
}

// RegistrationService defines the showroom onboarding contract.
type RegistrationService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
}

type registrationService struct {
	tenantRepo port.TenantRepository
	userRepo   port.UserRepository
	authSvc    AuthService
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	tenantRepo port.TenantRepository,
	userRepo port.UserRepository,
	authSvc AuthService,
) RegistrationService {
	return &registrationService{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		authSvc:    authSvc,
	}
}

func (s *registrationService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if !domain.AllowedVerticals[input.Vertical] {
		return nil, domain.ErrInvalidVertical
	}
	if v := gst.ValidateGSTIN(input.GSTIN); !v.Valid {
		return nil, domain.ErrInvalidGSTIN
	}

	tenant := &domain.Tenant{
		Name:     input.ShowroomName,
		Slug:     input.Slug,
		Vertical: input.Vertical,
		GSTIN:    input.GSTIN,
		State:    input.State,
		IsActive: true,
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err // ErrDuplicateTenantSlug propagates naturally
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		TenantID:     tenant.ID,
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.authSvc.Login(ctx, LoginInput{
		TenantSlug: input.Slug,
		Email:      input.Email,
		Password:   input.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("generating tokens: %w", err)
	}

	return &RegisterOutput{
		Tenant: tenant,
		User:   user,
		Tokens: tokens,
	}, nil
}
