package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"showroomos/internal/gst"
	"showroomos/internal/service"
)

// TaxHandler handles the tax preview and GSTIN validation endpoints.
type TaxHandler struct {
	invoiceService service.InvoiceService
	calc           *gst.Calculator
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(invoiceService service.InvoiceService, calc *gst.Calculator) *TaxHandler {
	return &TaxHandler{invoiceService: invoiceService, calc: calc}
}

// Quote handles POST /api/v1/tax/quote
// @Summary Preview invoice totals
// @Description Compute the full GST breakdown for a set of line items without creating an invoice
// @Tags tax
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Line items and customer state"
// @Success 200 {object} Response{data=gst.InvoiceSummary} "Tax breakdown"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /tax/quote [post]
func (h *TaxHandler) Quote(c *gin.Context) {
	var input service.QuoteInput
	if !bindJSON(c, &input) {
		return
	}

	summary, err := h.invoiceService.Quote(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// QuoteInclusive handles GET /api/v1/tax/quote-inclusive
// @Summary Extract tax from an inclusive price
// @Description Back-calculate the base amount and GST components from a tax-inclusive price
// @Tags tax
// @Produce json
// @Param amount query number true "Tax-inclusive amount"
// @Param customer_state query string false "Customer state name"
// @Success 200 {object} Response{data=gst.TaxCalculationResult} "Tax breakdown"
// @Failure 400 {object} ErrorResponseBody "Invalid amount"
// @Security BearerAuth
// @Router /tax/quote-inclusive [get]
func (h *TaxHandler) QuoteInclusive(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "amount must be a number")
		return
	}

	result := h.invoiceService.QuoteFromInclusive(amount, c.Query("customer_state"))
	RespondOK(c, result)
}

// CheckGSTIN handles POST /api/v1/tax/gstin-check
// @Summary Validate a GSTIN
// @Description Structurally validate a GSTIN and report its state code and whether it belongs to the home state
// @Tags tax
// @Accept json
// @Produce json
// @Param request body GSTINCheckRequest true "GSTIN to validate"
// @Success 200 {object} Response{data=GSTINCheckResponse} "Validation result"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Router /tax/gstin-check [post]
func (h *TaxHandler) CheckGSTIN(c *gin.Context) {
	var req GSTINCheckRequest
	if !bindJSON(c, &req) {
		return
	}

	gstin := strings.ToUpper(strings.TrimSpace(req.GSTIN))
	v := gst.ValidateGSTIN(gstin)
	resp := GSTINCheckResponse{
		GSTIN: gstin,
		Valid: v.Valid,
		Error: v.Error,
	}
	if v.Valid {
		resp.StateCode = gst.StateCodeFromGSTIN(gstin)
		resp.HomeState = h.calc.IsHomeStateGSTIN(gstin)
	}

	RespondOK(c, resp)
}
