package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"showroomos/internal/domain"
	"showroomos/internal/port"
)

// CreateEmployeeInput is the DTO for creating an employee.
type CreateEmployeeInput struct {
	Name        string    `json:"name" binding:"required"`
	Phone       string    `json:"phone" binding:"required"`
	Email       string    `json:"email"`
	Designation string    `json:"designation"`
	Salary      float64   `json:"salary"`
	JoinedOn    time.Time `json:"joined_on" binding:"required"`
}

// UpdateEmployeeInput is the DTO for updating an employee.
type UpdateEmployeeInput struct {
	Name        *string    `json:"name"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	Designation *string    `json:"designation"`
	Salary      *float64   `json:"salary"`
	JoinedOn    *time.Time `json:"joined_on"`
	LeftOn      *time.Time `json:"left_on"`
	IsActive    *bool      `json:"is_active"`
}

// EmployeeService defines the employee management contract.
type EmployeeService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateEmployeeInput) (*domain.Employee, error)
	GetByID(ctx context.Context, tenantID, employeeID uuid.UUID) (*domain.Employee, error)
	List(ctx context.Context, tenantID uuid.UUID, activeOnly bool, offset, limit int) ([]domain.Employee, int, error)
	Update(ctx context.Context, tenantID, employeeID uuid.UUID, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, tenantID, employeeID uuid.UUID) error
}

type employeeService struct {
	repo port.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService implementation.
func NewEmployeeService(repo port.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) Create(ctx context.Context, tenantID uuid.UUID, input CreateEmployeeInput) (*domain.Employee, error) {
	employee := &domain.Employee{
		TenantID:    tenantID,
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Designation: input.Designation,
		Salary:      input.Salary,
		JoinedOn:    input.JoinedOn,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) GetByID(ctx context.Context, tenantID, employeeID uuid.UUID) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, tenantID, employeeID)
}

func (s *employeeService) List(ctx context.Context, tenantID uuid.UUID, activeOnly bool, offset, limit int) ([]domain.Employee, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, activeOnly, offset, limit)
}

func (s *employeeService) Update(ctx context.Context, tenantID, employeeID uuid.UUID, input UpdateEmployeeInput) (*domain.Employee, error) {
	employee, err := s.repo.GetByID(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Phone != nil {
		employee.Phone = *input.Phone
	}
	if input.Email != nil {
		employee.Email = *input.Email
	}
	if input.Designation != nil {
		employee.Designation = *input.Designation
	}
	if input.Salary != nil {
		employee.Salary = *input.Salary
	}
	if input.JoinedOn != nil {
		employee.JoinedOn = *input.JoinedOn
	}
	if input.LeftOn != nil {
		employee.LeftOn = input.LeftOn
		employee.IsActive = false
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Delete(ctx context.Context, tenantID, employeeID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, employeeID)
}
