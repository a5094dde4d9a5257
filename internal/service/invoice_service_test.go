package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"showroomos/internal/config"
	"showroomos/internal/domain"
	"showroomos/internal/gst"
	"showroomos/internal/port"
	"showroomos/internal/service"
	"showroomos/mocks"
)

func newInvoiceFixture() (*mocks.MockInvoiceRepo, *mocks.MockCustomerRepo, *mocks.MockTenantRepo, *mocks.MockEmailSender, service.InvoiceService) {
	repo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewInvoiceService(
		repo,
		customerRepo,
		tenantRepo,
		gst.NewCalculator(gst.DefaultConfig()),
		config.EMIConfig{MaxTenureMonths: 24},
		sender,
		nil,
	)
	return repo, customerRepo, tenantRepo, sender, svc
}

func boolPtr(b bool) *bool { return &b }

func TestInvoiceService_Create_IntraState(t *testing.T) {
	repo, customerRepo, _, _, svc := newInvoiceFixture()

	tenantID := uuid.New()
	createdBy := uuid.New()
	customerID := uuid.New()
	invoiceDate := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

	customerRepo.On("GetByID", mock.Anything, tenantID, customerID).
		Return(&domain.Customer{ID: customerID, TenantID: tenantID, Name: "Ravi Patel", State: "Gujarat"}, nil)
	repo.On("NextSequence", mock.Anything, tenantID, "2025-26").Return(int64(7), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), mock.Anything, mock.Anything).Return(nil)

	detail, err := svc.Create(context.Background(), tenantID, createdBy, service.CreateInvoiceInput{
		CustomerID:  customerID,
		InvoiceDate: &invoiceDate,
		PaymentMode: domain.PaymentModeCash,
		Items: []service.InvoiceItemInput{
			{Description: "LED TV 43 inch", HSNCode: "8528", Quantity: 1, UnitPrice: 10000},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "INV-2025-26-0007", detail.Invoice.InvoiceNumber)
	assert.Equal(t, domain.InvoiceStatusUnpaid, detail.Invoice.Status)
	assert.Equal(t, 10000.0, detail.Invoice.Subtotal)
	assert.Equal(t, 900.0, detail.Invoice.CGSTAmount)
	assert.Equal(t, 900.0, detail.Invoice.SGSTAmount)
	assert.Equal(t, 0.0, detail.Invoice.IGSTAmount)
	assert.Equal(t, 11800.0, detail.Invoice.GrandTotal)
	assert.Empty(t, detail.Installments)
	repo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
}

func TestInvoiceService_Create_InterStateUsesIGST(t *testing.T) {
	repo, customerRepo, _, _, svc := newInvoiceFixture()

	tenantID := uuid.New()
	customerID := uuid.New()
	invoiceDate := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

	customerRepo.On("GetByID", mock.Anything, tenantID, customerID).
		Return(&domain.Customer{ID: customerID, State: "Maharashtra"}, nil)
	repo.On("NextSequence", mock.Anything, tenantID, "2025-26").Return(int64(1), nil)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	detail, err := svc.Create(context.Background(), tenantID, uuid.New(), service.CreateInvoiceInput{
		CustomerID:  customerID,
		InvoiceDate: &invoiceDate,
		PaymentMode: domain.PaymentModeUPI,
		Items: []service.InvoiceItemInput{
			{Description: "Sofa set", Quantity: 1, UnitPrice: 10000},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, detail.Invoice.CGSTAmount)
	assert.Equal(t, 0.0, detail.Invoice.SGSTAmount)
	assert.Equal(t, 1800.0, detail.Invoice.IGSTAmount)
	assert.Equal(t, 11800.0, detail.Invoice.GrandTotal)
}

func TestInvoiceService_Create_FiscalYearBoundary(t *testing.T) {
	cases := []struct {
		date time.Time
		fy   string
	}{
		{time.Date(2026, time.March, 31, 23, 0, 0, 0, time.UTC), "2025-26"},
		{time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), "2026-27"},
	}
	for _, tc := range cases {
		repo, customerRepo, _, _, svc := newInvoiceFixture()
		tenantID := uuid.New()
		customerID := uuid.New()

		customerRepo.On("GetByID", mock.Anything, tenantID, customerID).
			Return(&domain.Customer{ID: customerID, State: "Gujarat"}, nil)
		repo.On("NextSequence", mock.Anything, tenantID, tc.fy).Return(int64(1), nil)
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		date := tc.date
		detail, err := svc.Create(context.Background(), tenantID, uuid.New(), service.CreateInvoiceInput{
			CustomerID:  customerID,
			InvoiceDate: &date,
			PaymentMode: domain.PaymentModeCash,
			Items:       []service.InvoiceItemInput{{Description: "Item", UnitPrice: 100}},
		})
		assert.NoError(t, err)
		assert.Equal(t, "INV-"+tc.fy+"-0001", detail.Invoice.InvoiceNumber)
		repo.AssertExpectations(t)
	}
}

func TestInvoiceService_Create_EMISchedule(t *testing.T) {
	repo, customerRepo, _, _, svc := newInvoiceFixture()

	tenantID := uuid.New()
	customerID := uuid.New()
	invoiceDate := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

	customerRepo.On("GetByID", mock.Anything, tenantID, customerID).
		Return(&domain.Customer{ID: customerID, State: "Gujarat"}, nil)
	repo.On("NextSequence", mock.Anything, tenantID, "2025-26").Return(int64(12), nil)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	detail, err := svc.Create(context.Background(), tenantID, uuid.New(), service.CreateInvoiceInput{
		CustomerID:  customerID,
		InvoiceDate: &invoiceDate,
		PaymentMode: domain.PaymentModeEMI,
		EMIMonths:   3,
		Items: []service.InvoiceItemInput{
			{Description: "Refrigerator", Quantity: 1, UnitPrice: 10000},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, detail.Installments, 3)

	var sum float64
	for i, inst := range detail.Installments {
		assert.Equal(t, i+1, inst.Sequence)
		assert.Equal(t, domain.InstallmentPending, inst.Status)
		assert.Equal(t, invoiceDate.AddDate(0, i+1, 0), inst.DueDate)
		sum += inst.Amount
	}
	assert.InDelta(t, detail.Invoice.GrandTotal, sum, 0.001)
}

func TestInvoiceService_Create_Validation(t *testing.T) {
	_, customerRepo, _, _, svc := newInvoiceFixture()
	tenantID := uuid.New()
	customerID := uuid.New()

	_, err := svc.Create(context.Background(), tenantID, uuid.New(), service.CreateInvoiceInput{
		CustomerID:  customerID,
		PaymentMode: domain.PaymentModeCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvoiceNoItems)

	_, err = svc.Create(context.Background(), tenantID, uuid.New(), service.CreateInvoiceInput{
		CustomerID:  customerID,
		PaymentMode: "cheque",
		Items:       []service.InvoiceItemInput{{Description: "Item", UnitPrice: 100}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentMode)

	customerRepo.On("GetByID", mock.Anything, tenantID, customerID).
		Return(&domain.Customer{ID: customerID, State: "Gujarat"}, nil)

	for _, months := range []int{0, 25} {
		_, err = svc.Create(context.Background(), tenantID, uuid.New(), service.CreateInvoiceInput{
			CustomerID:  customerID,
			PaymentMode: domain.PaymentModeEMI,
			EMIMonths:   months,
			Items:       []service.InvoiceItemInput{{Description: "Item", UnitPrice: 100}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidEMITenure)
	}
}

func TestInvoiceService_Create_TaxDisabledItem(t *testing.T) {
	repo, customerRepo, _, _, svc := newInvoiceFixture()

	tenantID := uuid.New()
	customerID := uuid.New()
	invoiceDate := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	customerRepo.On("GetByID", mock.Anything, tenantID, customerID).
		Return(&domain.Customer{ID: customerID, State: "Gujarat"}, nil)
	repo.On("NextSequence", mock.Anything, tenantID, "2025-26").Return(int64(1), nil)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	detail, err := svc.Create(context.Background(), tenantID, uuid.New(), service.CreateInvoiceInput{
		CustomerID:  customerID,
		InvoiceDate: &invoiceDate,
		PaymentMode: domain.PaymentModeCard,
		Items: []service.InvoiceItemInput{
			{Description: "Washing machine", Quantity: 1, UnitPrice: 20000},
			{Description: "Delivery charge", Quantity: 1, UnitPrice: 500, TaxEnabled: boolPtr(false)},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 20500.0, detail.Invoice.Subtotal)
	// only the taxable 20000 attracts GST
	assert.Equal(t, 3600.0, detail.Invoice.TotalTaxAmount)
	assert.Equal(t, 24100.0, detail.Invoice.GrandTotal)
	assert.False(t, detail.Items[1].TaxEnabled)
}

func TestInvoiceService_Cancel(t *testing.T) {
	repo, _, _, _, svc := newInvoiceFixture()
	tenantID := uuid.New()
	invoiceID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, Status: domain.InvoiceStatusUnpaid}, nil)
	repo.On("UpdateStatus", mock.Anything, tenantID, invoiceID, domain.InvoiceStatusCancelled).Return(nil)

	assert.NoError(t, svc.Cancel(context.Background(), tenantID, invoiceID))
	repo.AssertExpectations(t)
}

func TestInvoiceService_Cancel_AlreadyCancelled(t *testing.T) {
	repo, _, _, _, svc := newInvoiceFixture()
	tenantID := uuid.New()
	invoiceID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, Status: domain.InvoiceStatusCancelled}, nil)

	err := svc.Cancel(context.Background(), tenantID, invoiceID)
	assert.ErrorIs(t, err, domain.ErrInvoiceCancelled)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_MarkPaid_CancelledGuard(t *testing.T) {
	repo, _, _, _, svc := newInvoiceFixture()
	tenantID := uuid.New()
	invoiceID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, Status: domain.InvoiceStatusCancelled}, nil)

	err := svc.MarkPaid(context.Background(), tenantID, invoiceID)
	assert.ErrorIs(t, err, domain.ErrInvoiceCancelled)
}

func TestInvoiceService_PayInstallment_PartialThenPaid(t *testing.T) {
	tenantID := uuid.New()
	invoiceID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()

	// first payment leaves one installment pending
	repo, _, _, _, svc := newInvoiceFixture()
	repo.On("GetByID", mock.Anything, tenantID, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, Status: domain.InvoiceStatusUnpaid}, nil)
	repo.On("MarkInstallmentPaid", mock.Anything, tenantID, firstID, mock.AnythingOfType("time.Time")).
		Return(&domain.Installment{ID: firstID, InvoiceID: invoiceID, Status: domain.InstallmentPaid}, nil)
	repo.On("GetInstallments", mock.Anything, tenantID, invoiceID).
		Return([]domain.Installment{
			{ID: firstID, InvoiceID: invoiceID, Sequence: 1, Status: domain.InstallmentPaid},
			{ID: secondID, InvoiceID: invoiceID, Sequence: 2, Status: domain.InstallmentPending},
		}, nil)
	repo.On("UpdateStatus", mock.Anything, tenantID, invoiceID, domain.InvoiceStatusPartialPaid).Return(nil)
	repo.On("GetItems", mock.Anything, tenantID, invoiceID).Return([]domain.InvoiceItem{}, nil)

	detail, err := svc.PayInstallment(context.Background(), tenantID, invoiceID, firstID)
	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPartialPaid, detail.Invoice.Status)
	repo.AssertExpectations(t)

	// settling the last installment flips the invoice to paid
	repo, _, _, _, svc = newInvoiceFixture()
	repo.On("GetByID", mock.Anything, tenantID, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, Status: domain.InvoiceStatusPartialPaid}, nil)
	repo.On("MarkInstallmentPaid", mock.Anything, tenantID, secondID, mock.AnythingOfType("time.Time")).
		Return(&domain.Installment{ID: secondID, InvoiceID: invoiceID, Status: domain.InstallmentPaid}, nil)
	repo.On("GetInstallments", mock.Anything, tenantID, invoiceID).
		Return([]domain.Installment{
			{ID: firstID, InvoiceID: invoiceID, Sequence: 1, Status: domain.InstallmentPaid},
			{ID: secondID, InvoiceID: invoiceID, Sequence: 2, Status: domain.InstallmentPaid},
		}, nil)
	repo.On("UpdateStatus", mock.Anything, tenantID, invoiceID, domain.InvoiceStatusPaid).Return(nil)
	repo.On("GetItems", mock.Anything, tenantID, invoiceID).Return([]domain.InvoiceItem{}, nil)

	detail, err = svc.PayInstallment(context.Background(), tenantID, invoiceID, secondID)
	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, detail.Invoice.Status)
	repo.AssertExpectations(t)
}

func TestInvoiceService_PayInstallment_WrongInvoice(t *testing.T) {
	repo, _, _, _, svc := newInvoiceFixture()
	tenantID := uuid.New()
	invoiceID := uuid.New()
	installmentID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, Status: domain.InvoiceStatusUnpaid}, nil)
	repo.On("MarkInstallmentPaid", mock.Anything, tenantID, installmentID, mock.AnythingOfType("time.Time")).
		Return(&domain.Installment{ID: installmentID, InvoiceID: uuid.New(), Status: domain.InstallmentPaid}, nil)

	_, err := svc.PayInstallment(context.Background(), tenantID, invoiceID, installmentID)
	assert.ErrorIs(t, err, domain.ErrInstallmentNotFound)
}

func TestInvoiceService_Quote(t *testing.T) {
	_, _, _, _, svc := newInvoiceFixture()

	summary, err := svc.Quote(context.Background(), service.QuoteInput{
		CustomerState: "gujarat ",
		Items: []service.InvoiceItemInput{
			{Description: "Dining table", Quantity: 2, UnitPrice: 5000},
		},
		DiscountPercent: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, 10000.0, summary.Subtotal)
	assert.Equal(t, 1000.0, summary.DiscountAmount)
	assert.Equal(t, 9000.0, summary.DiscountedSubtotal)
	assert.Equal(t, 810.0, summary.TaxBreakdown.CGSTAmount)
	assert.Equal(t, 810.0, summary.TaxBreakdown.SGSTAmount)
	assert.Equal(t, 10620.0, summary.GrandTotal)

	_, err = svc.Quote(context.Background(), service.QuoteInput{CustomerState: "Gujarat"})
	assert.ErrorIs(t, err, domain.ErrInvoiceNoItems)
}

func TestInvoiceService_SendEMIReminders(t *testing.T) {
	repo, _, _, sender, svc := newInvoiceFixture()
	tenantID := uuid.New()
	now := time.Date(2025, time.August, 14, 10, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)

	repo.On("ListDueInstallments", mock.Anything, tenantID, monthStart, monthStart.AddDate(0, 1, 0)).
		Return([]domain.DueInstallment{
			{Installment: domain.Installment{Amount: 2500, DueDate: due}, InvoiceNumber: "INV-2025-26-0001", CustomerName: "Asha", CustomerEmail: "asha@example.com"},
			{Installment: domain.Installment{Amount: 1800, DueDate: due}, InvoiceNumber: "INV-2025-26-0002", CustomerName: "No Email", CustomerEmail: ""},
			{Installment: domain.Installment{Amount: 3200, DueDate: due}, InvoiceNumber: "INV-2025-26-0003", CustomerName: "Bounce", CustomerEmail: "bounce@example.com"},
		}, nil)
	sender.On("SendEMIReminder", mock.Anything, "asha@example.com", "Asha", "INV-2025-26-0001", 2500.0, due).Return(nil)
	sender.On("SendEMIReminder", mock.Anything, "bounce@example.com", "Bounce", "INV-2025-26-0003", 3200.0, due).
		Return(errors.New("ses: rejected"))

	sent, err := svc.SendEMIReminders(context.Background(), tenantID, now)
	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	sender.AssertExpectations(t)
}

func TestInvoiceService_Register(t *testing.T) {
	repo, _, _, _, svc := newInvoiceFixture()
	tenantID := uuid.New()
	filter := port.InvoiceFilter{Status: domain.InvoiceStatusPaid}

	rows := []domain.InvoiceRegisterRow{
		{Invoice: domain.Invoice{InvoiceNumber: "INV-2025-26-0001"}, CustomerName: "Asha"},
	}
	repo.On("ListRegister", mock.Anything, tenantID, filter).Return(rows, nil)

	got, err := svc.Register(context.Background(), tenantID, filter)
	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}
