// Package csvexport streams the invoice register as CSV.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"showroomos/internal/domain"
)

// BOM is written before the header so Excel on Windows detects UTF-8.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Customer Name",
	"Customer GSTIN",
	"Customer State",
	"Subtotal",
	"Discount",
	"Taxable Amount",
	"CGST",
	"SGST",
	"IGST",
	"Total Tax",
	"Grand Total",
	"Payment Mode",
	"Status",
	"Notes",
	"Created At",
}

// Writer emits invoice register rows in the column order above.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRows formats and writes a batch of register rows.
func (w *Writer) WriteRows(rows []domain.InvoiceRegisterRow) error {
	for i := range rows {
		if err := w.csv.Write(formatRow(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func formatRow(r *domain.InvoiceRegisterRow) []string {
	return []string{
		r.InvoiceNumber,
		r.InvoiceDate.Format("2006-01-02"),
		r.CustomerName,
		r.CustomerGSTIN,
		r.CustomerState,
		money(r.Subtotal),
		money(r.DiscountAmount),
		money(r.DiscountedSubtotal),
		money(r.CGSTAmount),
		money(r.SGSTAmount),
		money(r.IGSTAmount),
		money(r.TotalTaxAmount),
		money(r.GrandTotal),
		string(r.PaymentMode),
		string(r.Status),
		r.Notes,
		r.CreatedAt.Format(time.RFC3339),
	}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

const maxFilenameLen = 100

var (
	unsafeChars    = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
	repeatedUnders = regexp.MustCompile(`_{2,}`)
)

// SanitizeFilename makes a tenant name safe for a Content-Disposition
// header: anything outside [a-zA-Z0-9_-] becomes an underscore, runs of
// underscores collapse to one, and the result is capped at 100 characters.
func SanitizeFilename(name string) string {
	s := unsafeChars.ReplaceAllString(name, "_")
	s = repeatedUnders.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > maxFilenameLen {
		s = s[:maxFilenameLen]
	}
	return s
}

// BuildFilename produces "{tenant}_invoices_{YYYY-MM-DD}.csv" with the
// tenant name sanitized.
func BuildFilename(tenantName string) string {
	return fmt.Sprintf("%s_invoices_%s.csv", SanitizeFilename(tenantName), time.Now().Format("2006-01-02"))
}
