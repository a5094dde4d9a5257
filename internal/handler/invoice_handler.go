package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"showroomos/internal/domain"
	"showroomos/internal/port"
	"showroomos/internal/service"
)

// InvoiceHandler handles invoicing endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles POST /api/v1/invoices
// @Summary Create an invoice
// @Description Create an invoice; the GST breakdown and totals are computed server-side from the customer's state, and an EMI payment mode generates the installment schedule
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} Response{data=service.InvoiceDetail} "Invoice created"
// @Failure 400 {object} ErrorResponseBody "Validation error, no items, or invalid EMI tenure"
// @Failure 404 {object} ErrorResponseBody "Customer not found"
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateInvoiceInput
	if !bindJSON(c, &input) {
		return
	}

	detail, err := h.invoiceService.Create(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, detail)
}

// List handles GET /api/v1/invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by status (unpaid, partial_paid, paid, cancelled)"
// @Param customer_id query string false "Filter by customer ID"
// @Param from query string false "Invoice date lower bound (RFC 3339)"
// @Param to query string false "Invoice date upper bound (RFC 3339)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Invoice,meta=PagMeta} "List of invoices"
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	filter, err := parseInvoiceFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), tenantID, filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get invoice by ID
// @Description Get an invoice with its line items and installment schedule
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=service.InvoiceDetail} "Invoice details"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "invoice ID")
	if !ok {
		return
	}

	detail, err := h.invoiceService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// Cancel handles POST /api/v1/invoices/:id/cancel
// @Summary Cancel an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Invoice cancelled"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Failure 409 {object} ErrorResponseBody "Invoice already cancelled"
// @Security BearerAuth
// @Router /invoices/{id}/cancel [post]
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "invoice ID")
	if !ok {
		return
	}

	if err := h.invoiceService.Cancel(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice cancelled"})
}

// MarkPaid handles POST /api/v1/invoices/:id/pay
// @Summary Mark an invoice paid
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Invoice marked paid"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Failure 409 {object} ErrorResponseBody "Invoice is cancelled"
// @Security BearerAuth
// @Router /invoices/{id}/pay [post]
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "invoice ID")
	if !ok {
		return
	}

	if err := h.invoiceService.MarkPaid(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice marked paid"})
}

// PayInstallment handles POST /api/v1/invoices/:id/installments/:installmentId/pay
// @Summary Pay an EMI installment
// @Description Mark one installment paid; the invoice moves to partial_paid, or paid when every installment has been settled
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param installmentId path string true "Installment ID (UUID)"
// @Success 200 {object} Response{data=service.InvoiceDetail} "Updated invoice"
// @Failure 404 {object} ErrorResponseBody "Invoice or installment not found"
// @Failure 409 {object} ErrorResponseBody "Installment already paid"
// @Security BearerAuth
// @Router /invoices/{id}/installments/{installmentId}/pay [post]
func (h *InvoiceHandler) PayInstallment(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	invoiceID, ok := parseIDParam(c, "invoice ID")
	if !ok {
		return
	}
	installmentID, err := uuid.Parse(c.Param("installmentId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid installment ID")
		return
	}

	detail, err := h.invoiceService.PayInstallment(c.Request.Context(), tenantID, invoiceID, installmentID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// Print handles GET /api/v1/invoices/:id/print
// @Summary Get printable invoice payload
// @Description Get the invoice with tenant and customer details for rendering a printable invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=service.PrintableInvoice} "Printable payload"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id}/print [get]
func (h *InvoiceHandler) Print(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "invoice ID")
	if !ok {
		return
	}

	payload, err := h.invoiceService.PrintPayload(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, payload)
}

// SendReminders handles POST /api/v1/invoices/emi-reminders
// @Summary Send EMI reminders
// @Description Email every customer with a pending installment due this month
// @Tags invoices
// @Produce json
// @Success 200 {object} Response{data=MessageResponse} "Reminder count"
// @Security BearerAuth
// @Router /invoices/emi-reminders [post]
func (h *InvoiceHandler) SendReminders(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	sent, err := h.invoiceService.SendEMIReminders(c.Request.Context(), tenantID, time.Now())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "sent " + strconv.Itoa(sent) + " reminders"})
}

// parseInvoiceFilter reads the invoice listing query parameters.
func parseInvoiceFilter(c *gin.Context) (port.InvoiceFilter, error) {
	filter := port.InvoiceFilter{
		Status: domain.InvoiceStatus(c.Query("status")),
	}
	if s := c.Query("customer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, err
		}
		filter.CustomerID = id
	}
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return filter, err
		}
		filter.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return filter, err
		}
		filter.To = &t
	}
	return filter, nil
}
