package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"showroomos/internal/csvexport"
	"showroomos/internal/report"
	"showroomos/internal/service"
)

// ExportHandler handles invoice register export endpoints.
type ExportHandler struct {
	invoiceService service.InvoiceService
	tenantService  service.TenantService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(invoiceService service.InvoiceService, tenantService service.TenantService) *ExportHandler {
	return &ExportHandler{invoiceService: invoiceService, tenantService: tenantService}
}

// ExportCSV handles GET /api/v1/invoices/export/csv
// @Summary Export the invoice register as CSV
// @Description Download all invoices matching the filter as a UTF-8 CSV file (with BOM for Excel)
// @Tags exports
// @Produce text/csv
// @Param status query string false "Filter by status"
// @Param customer_id query string false "Filter by customer ID"
// @Param from query string false "Invoice date lower bound (RFC 3339)"
// @Param to query string false "Invoice date upper bound (RFC 3339)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Security BearerAuth
// @Router /invoices/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filter, err := parseInvoiceFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tenant, err := h.tenantService.GetByID(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	rows, err := h.invoiceService.Register(c.Request.Context(), tenantID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename(tenant.Name)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRows(rows); err != nil {
		return
	}
	w.Flush()
}

// ExportExcel handles GET /api/v1/invoices/export/xlsx
// @Summary Export the sales register as an Excel workbook
// @Description Download all invoices matching the filter as an xlsx workbook with a totals row
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status"
// @Param customer_id query string false "Filter by customer ID"
// @Param from query string false "Invoice date lower bound (RFC 3339)"
// @Param to query string false "Invoice date upper bound (RFC 3339)"
// @Success 200 {string} string "Excel file"
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Security BearerAuth
// @Router /invoices/export/xlsx [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filter, err := parseInvoiceFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tenant, err := h.tenantService.GetByID(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	rows, err := h.invoiceService.Register(c.Request.Context(), tenantID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	workbook, err := report.BuildSalesWorkbook(tenant, rows)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := strings.TrimSuffix(csvexport.BuildFilename(tenant.Name), ".csv") + ".xlsx"
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	// Headers are already sent; a write failure here cannot be reported.
	_ = workbook.Write(c.Writer)
}
