package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"showroomos/internal/domain"
)

// InvoiceFilter narrows an invoice listing. Zero values are ignored.
type InvoiceFilter struct {
	Status     domain.InvoiceStatus
	CustomerID uuid.UUID
	From       *time.Time
	To         *time.Time
}

// InvoiceRepository defines the contract for invoice persistence, including
// line items and EMI installments, which live and die with their invoice.
type InvoiceRepository interface {
	// Create persists the invoice, its items, and any installments in a
	// single transaction, assigning the next per-tenant invoice sequence.
	Create(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem, installments []domain.Installment) error
	GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error)
	GetItems(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.InvoiceItem, error)
	GetInstallments(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.Installment, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, filter InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error)
	// ListRegister returns all invoices matching the filter joined with
	// customer details, ordered by invoice date, for register exports.
	ListRegister(ctx context.Context, tenantID uuid.UUID, filter InvoiceFilter) ([]domain.InvoiceRegisterRow, error)
	UpdateStatus(ctx context.Context, tenantID, invoiceID uuid.UUID, status domain.InvoiceStatus) error
	// NextSequence returns the next invoice sequence number for the tenant
	// within the given fiscal year label, incrementing it atomically.
	NextSequence(ctx context.Context, tenantID uuid.UUID, fiscalYear string) (int64, error)
	MarkInstallmentPaid(ctx context.Context, tenantID, installmentID uuid.UUID, paidAt time.Time) (*domain.Installment, error)
	// ListDueInstallments returns pending installments due in [from, to)
	// together with invoice and customer contact details.
	ListDueInstallments(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.DueInstallment, error)
}

// InvoiceAttachmentRepository defines the contract for attachment metadata.
type InvoiceAttachmentRepository interface {
	Create(ctx context.Context, att *domain.InvoiceAttachment) error
	GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.InvoiceAttachment, error)
	ListByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.InvoiceAttachment, error)
	Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error
}
