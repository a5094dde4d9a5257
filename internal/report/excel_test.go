package report_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroomos/internal/domain"
	"showroomos/internal/report"
)

func registerRow(number string, status domain.InvoiceStatus, taxable, tax, grand float64) domain.InvoiceRegisterRow {
	return domain.InvoiceRegisterRow{
		Invoice: domain.Invoice{
			InvoiceNumber:      number,
			InvoiceDate:        time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
			CustomerState:      "Gujarat",
			Subtotal:           taxable,
			DiscountedSubtotal: taxable,
			TotalTaxAmount:     tax,
			GrandTotal:         grand,
			PaymentMode:        domain.PaymentModeCash,
			Status:             status,
		},
		CustomerName: "Asha Patel",
	}
}

func TestBuildSalesWorkbook(t *testing.T) {
	tenant := &domain.Tenant{Name: "Patel Electronics"}
	rows := []domain.InvoiceRegisterRow{
		registerRow("INV-2025-26-0001", domain.InvoiceStatusPaid, 10000, 1800, 11800),
		registerRow("INV-2025-26-0002", domain.InvoiceStatusCancelled, 5000, 900, 5900),
	}

	f, err := report.BuildSalesWorkbook(tenant, rows)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Sales Register", "A1")
	require.NoError(t, err)
	wantTitle := fmt.Sprintf("Patel Electronics - Sales Register - %s", time.Now().Format("02 Jan 2006"))
	assert.Equal(t, wantTitle, title)

	first, err := f.GetCellValue("Sales Register", "A4")
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-26-0001", first)

	// cancelled invoices appear in the register but not in the totals
	grand, err := f.GetCellValue("Sales Register", "M7")
	require.NoError(t, err)
	assert.Equal(t, "11800", grand)
}
