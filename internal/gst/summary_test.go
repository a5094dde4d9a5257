package gst_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"showroomos/internal/gst"
)

func TestSummarizeInvoice_PercentDiscount(t *testing.T) {
	items := []gst.LineItem{
		{Amount: 500, TaxEnabled: true},
		{Amount: 500, TaxEnabled: true},
	}

	sum := newCalc().SummarizeInvoice(items, "Gujarat", gst.Discount{Percent: 10})

	assert.Equal(t, 1000.0, sum.Subtotal)
	assert.Equal(t, 100.0, sum.DiscountAmount)
	assert.Equal(t, 900.0, sum.DiscountedSubtotal)
	assert.Equal(t, 162.0, sum.TaxBreakdown.TotalTaxAmount)
	assert.Equal(t, 1062.0, sum.GrandTotal)
}

func TestSummarizeInvoice_FlatDiscountWinsOverPercent(t *testing.T) {
	items := []gst.LineItem{{Amount: 1000, TaxEnabled: true}}

	sum := newCalc().SummarizeInvoice(items, "Gujarat", gst.Discount{Amount: 50, Percent: 25})

	assert.Equal(t, 50.0, sum.DiscountAmount)
	assert.Equal(t, 950.0, sum.DiscountedSubtotal)
}

func TestSummarizeInvoice_DiscountClamping(t *testing.T) {
	items := []gst.LineItem{{Amount: 100, TaxEnabled: true}}

	sum := newCalc().SummarizeInvoice(items, "Gujarat", gst.Discount{Amount: 150})

	assert.Equal(t, 0.0, sum.DiscountedSubtotal)
	assert.Equal(t, gst.RegimeNone, sum.TaxBreakdown.Regime)
	assert.Equal(t, 0.0, sum.GrandTotal)
}

func TestSummarizeInvoice_NoTaxEnabledItems(t *testing.T) {
	items := []gst.LineItem{
		{Amount: 300},
		{Amount: 200},
	}

	sum := newCalc().SummarizeInvoice(items, "Gujarat", gst.Discount{})

	assert.Equal(t, 500.0, sum.Subtotal)
	assert.Equal(t, gst.RegimeNone, sum.TaxBreakdown.Regime)
	assert.Equal(t, 500.0, sum.GrandTotal)
}

func TestSummarizeInvoice_MixedTaxFlags(t *testing.T) {
	// Only the taxable 600 attracts IGST; the tax-free 400 still counts
	// toward the grand total.
	items := []gst.LineItem{
		{Amount: 600, TaxEnabled: true},
		{Amount: 400},
	}

	sum := newCalc().SummarizeInvoice(items, "Maharashtra", gst.Discount{})

	assert.Equal(t, gst.RegimeIGST, sum.TaxBreakdown.Regime)
	assert.Equal(t, 600.0, sum.TaxBreakdown.BaseAmount)
	assert.Equal(t, 108.0, sum.TaxBreakdown.IGSTAmount)
	assert.Equal(t, 1000.0, sum.DiscountedSubtotal)
	assert.Equal(t, 1108.0, sum.GrandTotal)
}

func TestSummarizeInvoice_MixedTaxFlagsWithDiscount(t *testing.T) {
	// A 10% discount spreads across all lines, so the taxable base is the
	// taxable lines' share of the discounted subtotal: 900 * 600/1000.
	items := []gst.LineItem{
		{Amount: 600, TaxEnabled: true},
		{Amount: 400},
	}

	sum := newCalc().SummarizeInvoice(items, "Maharashtra", gst.Discount{Percent: 10})

	assert.Equal(t, 100.0, sum.DiscountAmount)
	assert.Equal(t, 900.0, sum.DiscountedSubtotal)
	assert.Equal(t, 540.0, sum.TaxBreakdown.BaseAmount)
	assert.Equal(t, 97.2, sum.TaxBreakdown.IGSTAmount)
	assert.InDelta(t, 997.2, sum.GrandTotal, 0.001)
}

func TestSummarizeInvoice_MalformedAmountsCoerceToZero(t *testing.T) {
	items := []gst.LineItem{
		{Amount: 100, TaxEnabled: true},
		{Amount: math.NaN(), TaxEnabled: true},
		{Amount: -40, TaxEnabled: true},
	}

	sum := newCalc().SummarizeInvoice(items, "Gujarat", gst.Discount{Amount: math.Inf(1)})

	assert.Equal(t, 100.0, sum.Subtotal)
	assert.Equal(t, 0.0, sum.DiscountAmount)
	assert.Equal(t, 118.0, sum.GrandTotal)
}

func TestSummarizeInvoice_Empty(t *testing.T) {
	sum := newCalc().SummarizeInvoice(nil, "Gujarat", gst.Discount{})

	assert.Equal(t, 0.0, sum.Subtotal)
	assert.Equal(t, 0.0, sum.GrandTotal)
	assert.Equal(t, gst.RegimeNone, sum.TaxBreakdown.Regime)
}

func TestSummarizeInvoice_OrderIndependent(t *testing.T) {
	calc := newCalc()
	a := []gst.LineItem{{Amount: 123.45, TaxEnabled: true}, {Amount: 678.90, TaxEnabled: true}, {Amount: 11.11, TaxEnabled: true}}
	b := []gst.LineItem{{Amount: 11.11, TaxEnabled: true}, {Amount: 123.45, TaxEnabled: true}, {Amount: 678.90, TaxEnabled: true}}

	sumA := calc.SummarizeInvoice(a, "Maharashtra", gst.Discount{Percent: 5})
	sumB := calc.SummarizeInvoice(b, "Maharashtra", gst.Discount{Percent: 5})

	assert.Equal(t, sumA, sumB)
}

func TestSummarizeInvoice_SingleRoundingAtAssembly(t *testing.T) {
	// Three thirds of a rupee: rounding per item would drift from the
	// full-precision sum.
	items := []gst.LineItem{
		{Amount: 1.0 / 3, TaxEnabled: true},
		{Amount: 1.0 / 3, TaxEnabled: true},
		{Amount: 1.0 / 3, TaxEnabled: true},
	}

	sum := newCalc().SummarizeInvoice(items, "Gujarat", gst.Discount{})

	assert.Equal(t, 1.0, sum.Subtotal)
	assert.InDelta(t, 0.18, sum.TaxBreakdown.TotalTaxAmount, 0.01)
	assert.InDelta(t, 1.18, sum.GrandTotal, 0.01)
}
