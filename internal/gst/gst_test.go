package gst_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"showroomos/internal/gst"
)

func newCalc() *gst.Calculator {
	return gst.NewCalculator(gst.DefaultConfig())
}

func TestComputeTax_HomeState(t *testing.T) {
	res := newCalc().ComputeTax(1000, "Gujarat", true)

	assert.Equal(t, gst.RegimeCGSTSGST, res.Regime)
	assert.Equal(t, 9.0, res.CGSTRate)
	assert.Equal(t, 9.0, res.SGSTRate)
	assert.Equal(t, 0.0, res.IGSTRate)
	assert.Equal(t, 90.0, res.CGSTAmount)
	assert.Equal(t, 90.0, res.SGSTAmount)
	assert.Equal(t, 180.0, res.TotalTaxAmount)
	assert.Equal(t, 1180.0, res.TotalAmount)
}

func TestComputeTax_InterState(t *testing.T) {
	res := newCalc().ComputeTax(1000, "Maharashtra", true)

	assert.Equal(t, gst.RegimeIGST, res.Regime)
	assert.Equal(t, 18.0, res.IGSTRate)
	assert.Equal(t, 0.0, res.CGSTRate)
	assert.Equal(t, 0.0, res.SGSTRate)
	assert.Equal(t, 180.0, res.IGSTAmount)
	assert.Equal(t, 1180.0, res.TotalAmount)
}

func TestComputeTax_ZeroAmount(t *testing.T) {
	res := newCalc().ComputeTax(0, "Gujarat", true)

	assert.Equal(t, gst.RegimeNone, res.Regime)
	assert.Equal(t, 0.0, res.TotalTaxAmount)
	assert.Equal(t, 0.0, res.TotalAmount)
}

func TestComputeTax_TaxDisabled(t *testing.T) {
	res := newCalc().ComputeTax(500, "Gujarat", false)

	assert.Equal(t, gst.RegimeNone, res.Regime)
	assert.Equal(t, 0.0, res.CGSTRate)
	assert.Equal(t, 0.0, res.SGSTRate)
	assert.Equal(t, 0.0, res.IGSTRate)
	assert.Equal(t, 0.0, res.TotalTaxAmount)
	assert.Equal(t, 500.0, res.TotalAmount)
}

func TestComputeTax_PermissiveInputs(t *testing.T) {
	calc := newCalc()

	for name, amount := range map[string]float64{
		"negative": -100,
		"nan":      math.NaN(),
		"pos_inf":  math.Inf(1),
		"neg_inf":  math.Inf(-1),
	} {
		res := calc.ComputeTax(amount, "Gujarat", true)
		assert.Equal(t, gst.RegimeNone, res.Regime, name)
		assert.Equal(t, 0.0, res.BaseAmount, name)
		assert.Equal(t, 0.0, res.TotalAmount, name)
	}
}

func TestComputeTax_StateNormalization(t *testing.T) {
	calc := newCalc()

	for _, state := range []string{"gujarat", "GUJARAT", "  Gujarat  ", "GuJaRaT"} {
		res := calc.ComputeTax(100, state, true)
		assert.Equal(t, gst.RegimeCGSTSGST, res.Regime, state)
	}

	res := calc.ComputeTax(100, "", true)
	assert.Equal(t, gst.RegimeIGST, res.Regime)
}

func TestComputeTax_MutualExclusivity(t *testing.T) {
	calc := newCalc()

	for _, state := range []string{"Gujarat", "Maharashtra", "Kerala", ""} {
		res := calc.ComputeTax(750.50, state, true)
		intra := res.CGSTRate > 0 && res.SGSTRate > 0 && res.IGSTRate == 0
		inter := res.IGSTRate > 0 && res.CGSTRate == 0 && res.SGSTRate == 0
		assert.True(t, intra != inter, "exactly one regime must apply for %q", state)
	}
}

func TestComputeTax_HomeStateSymmetry(t *testing.T) {
	res := newCalc().ComputeTax(100, "Gujarat", true)
	assert.Equal(t, res.CGSTAmount, res.SGSTAmount)
}

// With intra-state and inter-state rates both configured at 18%, the total
// tax is regime-invariant even though the internal split differs.
func TestComputeTax_RateTotalsAcrossRegimes(t *testing.T) {
	calc := newCalc()

	home := calc.ComputeTax(100, "Gujarat", true)
	away := calc.ComputeTax(100, "Maharashtra", true)
	assert.Equal(t, home.TotalTaxAmount, away.TotalTaxAmount)
	assert.Equal(t, home.TotalAmount, away.TotalAmount)
}

func TestComputeTax_TaxSumInvariant(t *testing.T) {
	calc := newCalc()

	for _, amount := range []float64{0.01, 1, 33.33, 999.99, 123456.78} {
		for _, state := range []string{"Gujarat", "Maharashtra"} {
			res := calc.ComputeTax(amount, state, true)
			sum := res.CGSTAmount + res.SGSTAmount + res.IGSTAmount
			assert.InDelta(t, sum, res.TotalTaxAmount, 0.01, "amount=%v state=%s", amount, state)
		}
	}
}

func TestComputeTaxFromInclusive_HomeState(t *testing.T) {
	res := newCalc().ComputeTaxFromInclusive(1180, "Gujarat")

	assert.Equal(t, gst.RegimeCGSTSGST, res.Regime)
	assert.InDelta(t, 1000, res.BaseAmount, 0.01)
	assert.InDelta(t, 1180, res.TotalAmount, 0.01)
}

func TestComputeTaxFromInclusive_NonPositive(t *testing.T) {
	calc := newCalc()

	for _, amount := range []float64{0, -50, math.NaN()} {
		res := calc.ComputeTaxFromInclusive(amount, "Gujarat")
		assert.Equal(t, gst.RegimeNone, res.Regime)
		assert.Equal(t, 0.0, res.TotalAmount)
	}
}

func TestComputeTaxFromInclusive_RoundTrip(t *testing.T) {
	calc := newCalc()

	for _, x := range []float64{100, 999.99, 123456.78} {
		for _, state := range []string{"Gujarat", "Maharashtra"} {
			forward := calc.ComputeTax(x, state, true)
			back := calc.ComputeTaxFromInclusive(forward.TotalAmount, state)
			assert.InDelta(t, x, back.BaseAmount, 0.02, "x=%v state=%s", x, state)
		}
	}
}

func TestComputeTax_AlternateConfig(t *testing.T) {
	calc := gst.NewCalculator(gst.Config{
		HomeState:      "Karnataka",
		HomeStateCode:  "29",
		IntraStateRate: 12,
		InterStateRate: 18,
	})

	home := calc.ComputeTax(200, "Karnataka", true)
	assert.Equal(t, gst.RegimeCGSTSGST, home.Regime)
	assert.Equal(t, 6.0, home.CGSTRate)
	assert.Equal(t, 12.0, home.CGSTAmount)
	assert.Equal(t, 224.0, home.TotalAmount)

	away := calc.ComputeTax(200, "Gujarat", true)
	assert.Equal(t, gst.RegimeIGST, away.Regime)
	assert.Equal(t, 36.0, away.IGSTAmount)
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 0.13, gst.Round2(0.125))
	assert.Equal(t, -0.13, gst.Round2(-0.125))
	assert.Equal(t, 0.38, gst.Round2(0.375))
}
