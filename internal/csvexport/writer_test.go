package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroomos/internal/domain"
)

func TestWriteHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRows([]domain.InvoiceRegisterRow{
		{
			Invoice: domain.Invoice{
				InvoiceNumber:      "INV-2025-26-0042",
				InvoiceDate:        time.Date(2025, time.July, 15, 10, 30, 0, 0, time.UTC),
				CustomerState:      "Gujarat",
				Subtotal:           10000,
				DiscountAmount:     500,
				DiscountedSubtotal: 9500,
				CGSTAmount:         855,
				SGSTAmount:         855,
				TotalTaxAmount:     1710,
				GrandTotal:         11210,
				PaymentMode:        domain.PaymentModeCash,
				Status:             domain.InvoiceStatusPaid,
				Notes:              "festival offer",
				CreatedAt:          time.Date(2025, time.July, 15, 10, 31, 12, 0, time.UTC),
			},
			CustomerName:  "Ravi Patel",
			CustomerGSTIN: "24AAACB2230M1Z5",
		},
	}))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header := records[0]
	assert.Len(t, header, 17)
	assert.Equal(t, "Invoice Number", header[0])
	assert.Equal(t, "Created At", header[16])

	row := records[1]
	assert.Equal(t, "INV-2025-26-0042", row[0])
	assert.Equal(t, "2025-07-15", row[1])
	assert.Equal(t, "Ravi Patel", row[2])
	assert.Equal(t, "10000.00", row[5])
	assert.Equal(t, "9500.00", row[7])
	assert.Equal(t, "855.00", row[8])
	assert.Equal(t, "0.00", row[10])
	assert.Equal(t, "11210.00", row[12])
	assert.Equal(t, "cash", row[13])
	assert.Equal(t, "paid", row[14])
	assert.Equal(t, "2025-07-15T10:31:12Z", row[16])
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mehta Electronics", "Mehta_Electronics"},
		{"Shah & Sons (Pvt) Ltd.", "Shah_Sons_Pvt_Ltd"},
		{"__already__clean__", "already_clean"},
		{"normal-name_1", "normal-name_1"},
		{strings.Repeat("a", 150), strings.Repeat("a", 100)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFilename(tc.in), tc.in)
	}
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("Mehta Electronics")
	assert.True(t, strings.HasPrefix(name, "Mehta_Electronics_invoices_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
	assert.Contains(t, name, time.Now().Format("2006-01-02"))
}
