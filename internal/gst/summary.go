package gst

// LineItem is the per-line input to the invoice summary aggregator.
type LineItem struct {
	Amount     float64 `json:"amount"`
	TaxEnabled bool    `json:"tax_enabled"`
}

// Discount is the invoice-level discount input. A flat Amount takes
// precedence over Percent when both are supplied.
type Discount struct {
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// InvoiceSummary is the consistent subtotal/tax/grand-total breakdown for a
// whole invoice.
type InvoiceSummary struct {
	Subtotal           float64              `json:"subtotal"`
	DiscountAmount     float64              `json:"discount_amount"`
	DiscountedSubtotal float64              `json:"discounted_subtotal"`
	TaxBreakdown       TaxCalculationResult `json:"tax_breakdown"`
	GrandTotal         float64              `json:"grand_total"`
}

// SummarizeInvoice aggregates line items into an invoice summary. The
// discount is resolved (flat wins over percent) and the discounted subtotal
// is clamped at zero so an oversized discount never carries a credit. The
// tax engine then runs once on the taxable lines' share of the discounted
// subtotal: the discount spreads across all lines in proportion, so lines
// with tax disabled never attract GST. When every line carries the same
// flag this reduces to taxing the whole discounted subtotal (or none of
// it). Sums keep full precision; rounding happens only at final assembly
// so per-step rounding error cannot compound.
func (c *Calculator) SummarizeInvoice(items []LineItem, customerState string, discount Discount) InvoiceSummary {
	var subtotal, taxableSubtotal float64
	for _, item := range items {
		amount := sanitizeAmount(item.Amount)
		subtotal += amount
		if item.TaxEnabled {
			taxableSubtotal += amount
		}
	}

	var discountAmount float64
	switch {
	case sanitizeAmount(discount.Amount) > 0:
		discountAmount = sanitizeAmount(discount.Amount)
	case sanitizeAmount(discount.Percent) > 0:
		discountAmount = subtotal * sanitizeAmount(discount.Percent) / 100
	}

	discounted := subtotal - discountAmount
	if discounted < 0 {
		discounted = 0
	}

	taxableBase := discounted
	if subtotal > 0 {
		taxableBase = discounted * taxableSubtotal / subtotal
	}

	breakdown := c.ComputeTax(taxableBase, customerState, taxableSubtotal > 0)

	return InvoiceSummary{
		Subtotal:           Round2(subtotal),
		DiscountAmount:     Round2(discountAmount),
		DiscountedSubtotal: Round2(discounted),
		TaxBreakdown:       breakdown,
		GrandTotal:         Round2(discounted + breakdown.TotalTaxAmount),
	}
}
