package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"showroomos/internal/domain"
	"showroomos/internal/service"
	"showroomos/mocks"
)

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)
	tenantID := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Create(context.Background(), tenantID, service.CreateUserInput{
		Email:    "staff@mehta.example",
		Password: "s3cret-pass",
		FullName: "Kiran Shah",
		Role:     domain.RoleStaff,
	})
	assert.NoError(t, err)
	assert.Equal(t, tenantID, user.TenantID)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
	repo.AssertExpectations(t)
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateUserInput{
		Email:    "staff@mehta.example",
		Password: "s3cret-pass",
		FullName: "Kiran Shah",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateUserInput{
		Email:    "staff@mehta.example",
		Password: "s3cret-pass",
		FullName: "Kiran Shah",
		Role:     domain.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserService_Update_RoleValidation(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)
	tenantID := uuid.New()
	userID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, userID).
		Return(&domain.User{ID: userID, TenantID: tenantID, Role: domain.RoleStaff}, nil)

	bad := domain.UserRole("owner")
	_, err := svc.Update(context.Background(), tenantID, userID, service.UpdateUserInput{Role: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	promoted := domain.RoleAdmin
	user, err := svc.Update(context.Background(), tenantID, userID, service.UpdateUserInput{Role: &promoted})
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}
