// Package report builds Excel workbooks for the sales register.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"showroomos/internal/domain"
)

const sheetName = "Sales Register"

var headerRow = []interface{}{
	"Invoice Number", "Invoice Date", "Customer", "Customer GSTIN",
	"Customer State", "Subtotal", "Discount", "Taxable Amount",
	"CGST", "SGST", "IGST", "Total Tax", "Grand Total",
	"Payment Mode", "Status",
}

// BuildSalesWorkbook renders the invoice register into an xlsx workbook with
// a title row, a styled header, one row per invoice, and a totals row.
// Cancelled invoices are listed but excluded from the totals.
func BuildSalesWorkbook(tenant *domain.Tenant, rows []domain.InvoiceRegisterRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("report.BuildSalesWorkbook sheet: %w", err)
	}
	f.SetActiveSheet(sheet)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("report.BuildSalesWorkbook delete default sheet: %w", err)
	}

	title := fmt.Sprintf("%s - Sales Register - %s", tenant.Name, time.Now().Format("02 Jan 2006"))
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return nil, fmt.Errorf("report.BuildSalesWorkbook title: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("report.BuildSalesWorkbook style: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A3", &headerRow); err != nil {
		return nil, fmt.Errorf("report.BuildSalesWorkbook header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(headerRow))
	if err != nil {
		return nil, fmt.Errorf("report.BuildSalesWorkbook column name: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle); err != nil {
		return nil, fmt.Errorf("report.BuildSalesWorkbook header style: %w", err)
	}

	var totalTaxable, totalTax, totalGrand float64
	for i := range rows {
		r := &rows[i]
		cells := []interface{}{
			r.InvoiceNumber,
			r.InvoiceDate.Format("2006-01-02"),
			r.CustomerName,
			r.CustomerGSTIN,
			r.CustomerState,
			r.Subtotal,
			r.DiscountAmount,
			r.DiscountedSubtotal,
			r.CGSTAmount,
			r.SGSTAmount,
			r.IGSTAmount,
			r.TotalTaxAmount,
			r.GrandTotal,
			string(r.PaymentMode),
			string(r.Status),
		}
		cell := fmt.Sprintf("A%d", 4+i)
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return nil, fmt.Errorf("report.BuildSalesWorkbook row %d: %w", i, err)
		}
		if r.Status != domain.InvoiceStatusCancelled {
			totalTaxable += r.DiscountedSubtotal
			totalTax += r.TotalTaxAmount
			totalGrand += r.GrandTotal
		}
	}

	totalsRowIdx := 4 + len(rows) + 1
	totals := []interface{}{
		"Totals", "", "", "", "", "", "", totalTaxable, "", "", "", totalTax, totalGrand, "", "",
	}
	cell := fmt.Sprintf("A%d", totalsRowIdx)
	if err := f.SetSheetRow(sheetName, cell, &totals); err != nil {
		return nil, fmt.Errorf("report.BuildSalesWorkbook totals: %w", err)
	}
	if err := f.SetCellStyle(sheetName, cell, fmt.Sprintf("%s%d", lastCol, totalsRowIdx), headerStyle); err != nil {
		return nil, fmt.Errorf("report.BuildSalesWorkbook totals style: %w", err)
	}

	return f, nil
}
