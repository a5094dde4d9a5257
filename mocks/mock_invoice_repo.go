package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"showroomos/internal/domain"
	"showroomos/internal/port"
)

// MockInvoiceRepo is a mock implementation of port.InvoiceRepository.
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem, installments []domain.Installment) error {
	args := m.Called(ctx, inv, items, installments)
	return args.Error(0)
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, tenantID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) GetItems(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx, tenantID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceRepo) GetInstallments(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.Installment, error) {
	args := m.Called(ctx, tenantID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Installment), args.Error(1)
}

func (m *MockInvoiceRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, filter port.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, tenantID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceRepo) ListRegister(ctx context.Context, tenantID uuid.UUID, filter port.InvoiceFilter) ([]domain.InvoiceRegisterRow, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceRegisterRow), args.Error(1)
}

func (m *MockInvoiceRepo) UpdateStatus(ctx context.Context, tenantID, invoiceID uuid.UUID, status domain.InvoiceStatus) error {
	args := m.Called(ctx, tenantID, invoiceID, status)
	return args.Error(0)
}

func (m *MockInvoiceRepo) NextSequence(ctx context.Context, tenantID uuid.UUID, fiscalYear string) (int64, error) {
	args := m.Called(ctx, tenantID, fiscalYear)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepo) MarkInstallmentPaid(ctx context.Context, tenantID, installmentID uuid.UUID, paidAt time.Time) (*domain.Installment, error) {
	args := m.Called(ctx, tenantID, installmentID, paidAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Installment), args.Error(1)
}

func (m *MockInvoiceRepo) ListDueInstallments(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.DueInstallment, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DueInstallment), args.Error(1)
}

// MockInvoiceAttachmentRepo is a mock implementation of port.InvoiceAttachmentRepository.
type MockInvoiceAttachmentRepo struct {
	mock.Mock
}

func (m *MockInvoiceAttachmentRepo) Create(ctx context.Context, att *domain.InvoiceAttachment) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}

func (m *MockInvoiceAttachmentRepo) GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.InvoiceAttachment, error) {
	args := m.Called(ctx, tenantID, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceAttachment), args.Error(1)
}

func (m *MockInvoiceAttachmentRepo) ListByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.InvoiceAttachment, error) {
	args := m.Called(ctx, tenantID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceAttachment), args.Error(1)
}

func (m *MockInvoiceAttachmentRepo) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	args := m.Called(ctx, tenantID, attachmentID)
	return args.Error(0)
}
