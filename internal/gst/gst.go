// Package gst implements the GST taxation and invoice-totaling engine.
//
// All functions are pure and total: malformed numeric input (NaN, Inf,
// negative) degrades to the zero-tax result instead of returning an error.
// The calling form layer is expected to surface validation feedback; the
// engine never rejects.
//
// Monetary outputs are rounded to two decimal places using
// round-half-away-from-zero (math.Round on cents). Rounding is applied once
// per output field; intermediate sums keep full float64 precision.
package gst

import (
	"math"
	"strings"
)

// Regime identifies which GST split applies to a sale.
type Regime string

const (
	// RegimeCGSTSGST applies when the customer is in the seller's home state.
	RegimeCGSTSGST Regime = "CGST_SGST"
	// RegimeIGST applies to inter-state sales.
	RegimeIGST Regime = "IGST"
	// RegimeNone applies when tax is disabled or the amount is not taxable.
	RegimeNone Regime = "NONE"
)

// Config holds the deployment-specific tax parameters. The engine has no
// built-in rates; callers inject the home state and rate table so that
// multi-region deployments and tests can vary them.
type Config struct {
	// HomeState is the seller's state name, compared case- and
	// whitespace-insensitively against the customer's free-text state.
	HomeState string
	// HomeStateCode is the 2-digit GST state code of the home state.
	HomeStateCode string
	// IntraStateRate is the combined home-state rate in percent, split
	// evenly between CGST and SGST.
	IntraStateRate float64
	// InterStateRate is the single IGST rate in percent for out-of-state
	// customers.
	InterStateRate float64
}

// DefaultConfig returns the observed production configuration: a Gujarat
// seller with 9%+9% intra-state and 18% inter-state GST.
func DefaultConfig() Config {
	return Config{
		HomeState:      "Gujarat",
		HomeStateCode:  "24",
		IntraStateRate: 18,
		InterStateRate: 18,
	}
}

// TaxCalculationResult is the full tax breakdown for a single amount.
// Exactly one of the CGST/SGST pair or IGST is non-zero unless the regime
// is NONE, in which case every rate and amount is zero.
type TaxCalculationResult struct {
	BaseAmount     float64 `json:"base_amount"`
	Regime         Regime  `json:"regime"`
	CGSTRate       float64 `json:"cgst_rate"`
	SGSTRate       float64 `json:"sgst_rate"`
	IGSTRate       float64 `json:"igst_rate"`
	CGSTAmount     float64 `json:"cgst_amount"`
	SGSTAmount     float64 `json:"sgst_amount"`
	IGSTAmount     float64 `json:"igst_amount"`
	TotalTaxAmount float64 `json:"total_tax_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

// Calculator computes GST breakdowns for one Config. It is stateless and
// safe for concurrent use.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a Calculator with the given configuration.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Config returns the configuration the calculator was built with.
func (c *Calculator) Config() Config {
	return c.cfg
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sanitizeAmount coerces non-finite or negative amounts to zero.
func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func normalizeState(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isHomeState reports whether the customer's free-text state names the
// configured home state.
func (c *Calculator) isHomeState(customerState string) bool {
	return normalizeState(customerState) == normalizeState(c.cfg.HomeState)
}

// combinedRate returns the total applicable rate in percent for the given
// customer state, independent of any amount.
func (c *Calculator) combinedRate(customerState string) float64 {
	if c.isHomeState(customerState) {
		return c.cfg.IntraStateRate
	}
	return c.cfg.InterStateRate
}

func zeroResult(base float64) TaxCalculationResult {
	return TaxCalculationResult{
		BaseAmount:  Round2(base),
		Regime:      RegimeNone,
		TotalAmount: Round2(base),
	}
}

// ComputeTax computes the GST breakdown for a pre-tax amount. A customer in
// the home state gets the CGST+SGST split (half the intra-state rate each);
// anyone else gets IGST at the inter-state rate. Disabled tax or a
// non-positive amount yields the NONE regime with TotalAmount == BaseAmount.
func (c *Calculator) ComputeTax(baseAmount float64, customerState string, taxEnabled bool) TaxCalculationResult {
	base := sanitizeAmount(baseAmount)
	if !taxEnabled || base <= 0 {
		return zeroResult(base)
	}

	if c.isHomeState(customerState) {
		half := c.cfg.IntraStateRate / 2
		cgst := Round2(base * half / 100)
		sgst := Round2(base * half / 100)
		return TaxCalculationResult{
			BaseAmount:     Round2(base),
			Regime:         RegimeCGSTSGST,
			CGSTRate:       half,
			SGSTRate:       half,
			CGSTAmount:     cgst,
			SGSTAmount:     sgst,
			TotalTaxAmount: Round2(cgst + sgst),
			TotalAmount:    Round2(base + cgst + sgst),
		}
	}

	igst := Round2(base * c.cfg.InterStateRate / 100)
	return TaxCalculationResult{
		BaseAmount:     Round2(base),
		Regime:         RegimeIGST,
		IGSTRate:       c.cfg.InterStateRate,
		IGSTAmount:     igst,
		TotalTaxAmount: igst,
		TotalAmount:    Round2(base + igst),
	}
}

// ComputeTaxFromInclusive reverse-derives the base amount from a price that
// already includes tax, such as a negotiated round-number sale price. The
// applicable rate is decided from the customer state alone, then the base is
// recovered as inclusive / (1 + rate/100) and run through ComputeTax.
func (c *Calculator) ComputeTaxFromInclusive(inclusiveAmount float64, customerState string) TaxCalculationResult {
	amount := sanitizeAmount(inclusiveAmount)
	if amount <= 0 {
		return c.ComputeTax(0, customerState, false)
	}
	rate := c.combinedRate(customerState)
	base := amount / (1 + rate/100)
	return c.ComputeTax(base, customerState, true)
}
