package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"showroomos/internal/config"
	"showroomos/internal/domain"
	"showroomos/internal/service"
	"showroomos/mocks"
)

func newAuthFixture() (*mocks.MockUserRepo, *mocks.MockTenantRepo, service.AuthService) {
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "showroomos",
	})
	return userRepo, tenantRepo, svc
}

func activeUser(t *testing.T, tenantID uuid.UUID, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "owner@mehta.example",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
}

func TestAuthService_Login(t *testing.T) {
	userRepo, tenantRepo, svc := newAuthFixture()
	tenantID := uuid.New()
	user := activeUser(t, tenantID, "correct-horse-battery")

	tenantRepo.On("GetBySlug", mock.Anything, "mehta-electronics").
		Return(&domain.Tenant{ID: tenantID, Slug: "mehta-electronics", IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "mehta-electronics",
		Email:      user.Email,
		Password:   "correct-horse-battery",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo, tenantRepo, svc := newAuthFixture()
	tenantID := uuid.New()
	user := activeUser(t, tenantID, "correct-horse-battery")

	tenantRepo.On("GetBySlug", mock.Anything, "mehta-electronics").
		Return(&domain.Tenant{ID: tenantID, IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "mehta-electronics",
		Email:      user.Email,
		Password:   "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownTenantMasked(t *testing.T) {
	_, tenantRepo, svc := newAuthFixture()

	tenantRepo.On("GetBySlug", mock.Anything, "no-such-showroom").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "no-such-showroom",
		Email:      "x@example.com",
		Password:   "whatever1",
	})
	// unknown tenant and unknown user both surface as bad credentials
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveTenant(t *testing.T) {
	_, tenantRepo, svc := newAuthFixture()

	tenantRepo.On("GetBySlug", mock.Anything, "closed-showroom").
		Return(&domain.Tenant{ID: uuid.New(), IsActive: false}, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "closed-showroom",
		Email:      "x@example.com",
		Password:   "whatever1",
	})
	assert.ErrorIs(t, err, domain.ErrTenantInactive)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	userRepo, tenantRepo, svc := newAuthFixture()
	tenantID := uuid.New()
	user := activeUser(t, tenantID, "correct-horse-battery")
	user.IsActive = false

	tenantRepo.On("GetBySlug", mock.Anything, "mehta-electronics").
		Return(&domain.Tenant{ID: tenantID, IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "mehta-electronics",
		Email:      user.Email,
		Password:   "correct-horse-battery",
	})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_RefreshToken(t *testing.T) {
	userRepo, tenantRepo, svc := newAuthFixture()
	tenantID := uuid.New()
	user := activeUser(t, tenantID, "correct-horse-battery")

	tenantRepo.On("GetBySlug", mock.Anything, "mehta-electronics").
		Return(&domain.Tenant{ID: tenantID, IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, user.Email).Return(user, nil)
	userRepo.On("GetByID", mock.Anything, tenantID, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "mehta-electronics",
		Email:      user.Email,
		Password:   "correct-horse-battery",
	})
	assert.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// an access token must not pass as a refresh token
	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ValidateToken_RejectsRefreshAudience(t *testing.T) {
	userRepo, tenantRepo, svc := newAuthFixture()
	tenantID := uuid.New()
	user := activeUser(t, tenantID, "correct-horse-battery")

	tenantRepo.On("GetBySlug", mock.Anything, "mehta-electronics").
		Return(&domain.Tenant{ID: tenantID, IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "mehta-electronics",
		Email:      user.Email,
		Password:   "correct-horse-battery",
	})
	assert.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
