package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"showroomos/internal/config"
	"showroomos/internal/domain"
	"showroomos/internal/emi"
	"showroomos/internal/gst"
	"showroomos/internal/port"
)

// InvoiceItemInput is one line item on an invoice creation request. When
// TaxEnabled is omitted it defaults to true; when Amount is omitted it is
// derived from Quantity and UnitPrice.
type InvoiceItemInput struct {
	Description string  `json:"description" binding:"required"`
	HSNCode     string  `json:"hsn_code"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
	TaxEnabled  *bool   `json:"tax_enabled"`
}

// CreateInvoiceInput is the DTO for creating an invoice.
type CreateInvoiceInput struct {
	CustomerID      uuid.UUID          `json:"customer_id" binding:"required"`
	EmployeeID      *uuid.UUID         `json:"employee_id"`
	InvoiceDate     *time.Time         `json:"invoice_date"`
	Items           []InvoiceItemInput `json:"items" binding:"required"`
	DiscountAmount  float64            `json:"discount_amount"`
	DiscountPercent float64            `json:"discount_percent"`
	PaymentMode     domain.PaymentMode `json:"payment_mode" binding:"required"`
	EMIMonths       int                `json:"emi_months"`
	Notes           string             `json:"notes"`
}

// QuoteInput is the DTO for a tax preview without persistence.
type QuoteInput struct {
	Items           []InvoiceItemInput `json:"items" binding:"required"`
	CustomerState   string             `json:"customer_state"`
	DiscountAmount  float64            `json:"discount_amount"`
	DiscountPercent float64            `json:"discount_percent"`
}

// InvoiceDetail bundles an invoice with its line items and installments.
type InvoiceDetail struct {
	Invoice      domain.Invoice       `json:"invoice"`
	Items        []domain.InvoiceItem `json:"items"`
	Installments []domain.Installment `json:"installments,omitempty"`
}

// PrintableInvoice is the payload for rendering a printable invoice.
type PrintableInvoice struct {
	Tenant       domain.Tenant        `json:"tenant"`
	Customer     domain.Customer      `json:"customer"`
	Invoice      domain.Invoice       `json:"invoice"`
	Items        []domain.InvoiceItem `json:"items"`
	Installments []domain.Installment `json:"installments,omitempty"`
}

// InvoiceService defines the invoicing contract. All monetary breakdowns are
// computed server-side by the tax engine; client-supplied totals are ignored.
type InvoiceService interface {
	Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreateInvoiceInput) (*InvoiceDetail, error)
	GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceDetail, error)
	List(ctx context.Context, tenantID uuid.UUID, filter port.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error)
	Cancel(ctx context.Context, tenantID, invoiceID uuid.UUID) error
	MarkPaid(ctx context.Context, tenantID, invoiceID uuid.UUID) error
	PayInstallment(ctx context.Context, tenantID, invoiceID, installmentID uuid.UUID) (*InvoiceDetail, error)
	Register(ctx context.Context, tenantID uuid.UUID, filter port.InvoiceFilter) ([]domain.InvoiceRegisterRow, error)
	Quote(ctx context.Context, input QuoteInput) (*gst.InvoiceSummary, error)
	QuoteFromInclusive(amount float64, customerState string) gst.TaxCalculationResult
	PrintPayload(ctx context.Context, tenantID, invoiceID uuid.UUID) (*PrintableInvoice, error)
	SendEMIReminders(ctx context.Context, tenantID uuid.UUID, now time.Time) (int, error)
}

type invoiceService struct {
	repo         port.InvoiceRepository
	customerRepo port.CustomerRepository
	tenantRepo   port.TenantRepository
	calc         *gst.Calculator
	emiCfg       config.EMIConfig
	emailSender  port.EmailSender
	statsCache   port.StatsCache
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	repo port.InvoiceRepository,
	customerRepo port.CustomerRepository,
	tenantRepo port.TenantRepository,
	calc *gst.Calculator,
	emiCfg config.EMIConfig,
	emailSender port.EmailSender,
	statsCache port.StatsCache,
) InvoiceService {
	return &invoiceService{
		repo:         repo,
		customerRepo: customerRepo,
		tenantRepo:   tenantRepo,
		calc:         calc,
		emiCfg:       emiCfg,
		emailSender:  emailSender,
		statsCache:   statsCache,
	}
}

// fiscalYearLabel returns the Indian fiscal year label (April to March) for
// a date, e.g. "2025-26" for any date from Apr 2025 through Mar 2026.
func fiscalYearLabel(t time.Time) string {
	startYear := t.Year()
	if t.Month() < time.April {
		startYear--
	}
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// resolveItems applies the line-item defaults: tax on unless explicitly
// disabled, amount derived from quantity and unit price when absent.
func resolveItems(inputs []InvoiceItemInput) ([]domain.InvoiceItem, []gst.LineItem) {
	items := make([]domain.InvoiceItem, 0, len(inputs))
	lines := make([]gst.LineItem, 0, len(inputs))
	for _, in := range inputs {
		qty := in.Quantity
		if qty == 0 {
			qty = 1
		}
		amount := in.Amount
		if amount == 0 {
			amount = qty * in.UnitPrice
		}
		taxEnabled := true
		if in.TaxEnabled != nil {
			taxEnabled = *in.TaxEnabled
		}
		items = append(items, domain.InvoiceItem{
			Description: in.Description,
			HSNCode:     in.HSNCode,
			Quantity:    qty,
			UnitPrice:   in.UnitPrice,
			Amount:      amount,
			TaxEnabled:  taxEnabled,
		})
		lines = append(lines, gst.LineItem{Amount: amount, TaxEnabled: taxEnabled})
	}
	return items, lines
}

func (s *invoiceService) Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreateInvoiceInput) (*InvoiceDetail, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrInvoiceNoItems
	}
	if !domain.AllowedPaymentModes[input.PaymentMode] {
		return nil, domain.ErrInvalidPaymentMode
	}

	customer, err := s.customerRepo.GetByID(ctx, tenantID, input.CustomerID)
	if err != nil {
		return nil, err
	}

	invoiceDate := time.Now().UTC()
	if input.InvoiceDate != nil {
		invoiceDate = *input.InvoiceDate
	}

	items, lines := resolveItems(input.Items)
	summary := s.calc.SummarizeInvoice(lines, customer.State, gst.Discount{
		Amount:  input.DiscountAmount,
		Percent: input.DiscountPercent,
	})

	var installments []domain.Installment
	if input.PaymentMode == domain.PaymentModeEMI {
		if input.EMIMonths < 1 || input.EMIMonths > s.emiCfg.MaxTenureMonths {
			return nil, domain.ErrInvalidEMITenure
		}
		for _, inst := range emi.BuildSchedule(summary.GrandTotal, input.EMIMonths, invoiceDate) {
			installments = append(installments, domain.Installment{
				Sequence: inst.Sequence,
				Amount:   inst.Amount,
				DueDate:  inst.DueDate,
				Status:   domain.InstallmentPending,
			})
		}
	}

	fy := fiscalYearLabel(invoiceDate)
	seq, err := s.repo.NextSequence(ctx, tenantID, fy)
	if err != nil {
		return nil, err
	}

	inv := &domain.Invoice{
		TenantID:           tenantID,
		CustomerID:         customer.ID,
		EmployeeID:         input.EmployeeID,
		InvoiceNumber:      fmt.Sprintf("INV-%s-%04d", fy, seq),
		InvoiceDate:        invoiceDate,
		CustomerState:      customer.State,
		Subtotal:           summary.Subtotal,
		DiscountAmount:     summary.DiscountAmount,
		DiscountedSubtotal: summary.DiscountedSubtotal,
		CGSTRate:           summary.TaxBreakdown.CGSTRate,
		CGSTAmount:         summary.TaxBreakdown.CGSTAmount,
		SGSTRate:           summary.TaxBreakdown.SGSTRate,
		SGSTAmount:         summary.TaxBreakdown.SGSTAmount,
		IGSTRate:           summary.TaxBreakdown.IGSTRate,
		IGSTAmount:         summary.TaxBreakdown.IGSTAmount,
		TotalTaxAmount:     summary.TaxBreakdown.TotalTaxAmount,
		GrandTotal:         summary.GrandTotal,
		PaymentMode:        input.PaymentMode,
		Status:             domain.InvoiceStatusUnpaid,
		Notes:              input.Notes,
		CreatedBy:          createdBy,
	}

	if err := s.repo.Create(ctx, inv, items, installments); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx, tenantID)

	return &InvoiceDetail{Invoice: *inv, Items: items, Installments: installments}, nil
}

func (s *invoiceService) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceDetail, error) {
	inv, err := s.repo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.GetItems(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	installments, err := s.repo.GetInstallments(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	return &InvoiceDetail{Invoice: *inv, Items: items, Installments: installments}, nil
}

func (s *invoiceService) List(ctx context.Context, tenantID uuid.UUID, filter port.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, filter, offset, limit)
}

func (s *invoiceService) Register(ctx context.Context, tenantID uuid.UUID, filter port.InvoiceFilter) ([]domain.InvoiceRegisterRow, error) {
	return s.repo.ListRegister(ctx, tenantID, filter)
}

func (s *invoiceService) Cancel(ctx context.Context, tenantID, invoiceID uuid.UUID) error {
	inv, err := s.repo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return err
	}
	if inv.Status == domain.InvoiceStatusCancelled {
		return domain.ErrInvoiceCancelled
	}
	if err := s.repo.UpdateStatus(ctx, tenantID, invoiceID, domain.InvoiceStatusCancelled); err != nil {
		return err
	}
	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *invoiceService) MarkPaid(ctx context.Context, tenantID, invoiceID uuid.UUID) error {
	inv, err := s.repo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return err
	}
	if inv.Status == domain.InvoiceStatusCancelled {
		return domain.ErrInvoiceCancelled
	}
	if err := s.repo.UpdateStatus(ctx, tenantID, invoiceID, domain.InvoiceStatusPaid); err != nil {
		return err
	}
	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *invoiceService) PayInstallment(ctx context.Context, tenantID, invoiceID, installmentID uuid.UUID) (*InvoiceDetail, error) {
	inv, err := s.repo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.InvoiceStatusCancelled {
		return nil, domain.ErrInvoiceCancelled
	}

	paid, err := s.repo.MarkInstallmentPaid(ctx, tenantID, installmentID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if paid.InvoiceID != invoiceID {
		return nil, domain.ErrInstallmentNotFound
	}

	installments, err := s.repo.GetInstallments(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	allPaid := true
	for _, inst := range installments {
		if inst.Status != domain.InstallmentPaid {
			allPaid = false
			break
		}
	}
	status := domain.InvoiceStatusPartialPaid
	if allPaid {
		status = domain.InvoiceStatusPaid
	}
	if err := s.repo.UpdateStatus(ctx, tenantID, invoiceID, status); err != nil {
		return nil, err
	}
	inv.Status = status
	s.invalidateStats(ctx, tenantID)

	items, err := s.repo.GetItems(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	return &InvoiceDetail{Invoice: *inv, Items: items, Installments: installments}, nil
}

func (s *invoiceService) Quote(_ context.Context, input QuoteInput) (*gst.InvoiceSummary, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrInvoiceNoItems
	}
	_, lines := resolveItems(input.Items)
	summary := s.calc.SummarizeInvoice(lines, input.CustomerState, gst.Discount{
		Amount:  input.DiscountAmount,
		Percent: input.DiscountPercent,
	})
	return &summary, nil
}

func (s *invoiceService) QuoteFromInclusive(amount float64, customerState string) gst.TaxCalculationResult {
	return s.calc.ComputeTaxFromInclusive(amount, customerState)
}

func (s *invoiceService) PrintPayload(ctx context.Context, tenantID, invoiceID uuid.UUID) (*PrintableInvoice, error) {
	detail, err := s.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.GetByID(ctx, tenantID, detail.Invoice.CustomerID)
	if err != nil {
		return nil, err
	}
	return &PrintableInvoice{
		Tenant:       *tenant,
		Customer:     *customer,
		Invoice:      detail.Invoice,
		Items:        detail.Items,
		Installments: detail.Installments,
	}, nil
}

func (s *invoiceService) SendEMIReminders(ctx context.Context, tenantID uuid.UUID, now time.Time) (int, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	due, err := s.repo.ListDueInstallments(ctx, tenantID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, d := range due {
		if d.CustomerEmail == "" {
			continue
		}
		if err := s.emailSender.SendEMIReminder(ctx, d.CustomerEmail, d.CustomerName, d.InvoiceNumber, d.Amount, d.DueDate); err != nil {
			log.Printf("WARNING: failed to send EMI reminder for %s to %s: %v", d.InvoiceNumber, d.CustomerEmail, err)
			continue
		}
		sent++
	}
	return sent, nil
}

func (s *invoiceService) invalidateStats(ctx context.Context, tenantID uuid.UUID) {
	if s.statsCache == nil {
		return
	}
	if err := s.statsCache.Invalidate(ctx, tenantID); err != nil {
		log.Printf("WARNING: failed to invalidate stats cache for tenant %s: %v", tenantID, err)
	}
}
