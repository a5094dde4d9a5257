package emi_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"showroomos/internal/emi"
)

func TestGenerateDueDates_MonthlyStepping(t *testing.T) {
	start := time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)

	dates := emi.GenerateDueDates(start, 3)

	assert.Len(t, dates, 3)
	assert.Equal(t, time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), dates[1])
	assert.Equal(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), dates[2])
}

func TestGenerateDueDates_NonPositiveMonths(t *testing.T) {
	start := time.Now()

	assert.Nil(t, emi.GenerateDueDates(start, 0))
	assert.Nil(t, emi.GenerateDueDates(start, -3))
}

func TestBuildSchedule_EvenSplit(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	schedule := emi.BuildSchedule(1200, 12, start)

	assert.Len(t, schedule, 12)
	for i, inst := range schedule {
		assert.Equal(t, i+1, inst.Sequence)
		assert.Equal(t, 100.0, inst.Amount)
	}
}

func TestBuildSchedule_RemainderOnLastInstallment(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	schedule := emi.BuildSchedule(1000, 3, start)

	assert.Len(t, schedule, 3)
	assert.Equal(t, 333.33, schedule[0].Amount)
	assert.Equal(t, 333.33, schedule[1].Amount)
	assert.Equal(t, 333.34, schedule[2].Amount)

	var sum float64
	for _, inst := range schedule {
		sum += inst.Amount
	}
	assert.InDelta(t, 1000, sum, 0.001)
}

func TestBuildSchedule_SumsToTotalAcrossTenures(t *testing.T) {
	start := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	for _, principal := range []float64{999.99, 54321.07, 0.05} {
		for _, months := range []int{1, 6, 11, 24} {
			schedule := emi.BuildSchedule(principal, months, start)
			assert.Len(t, schedule, months)

			var sum float64
			for _, inst := range schedule {
				sum += inst.Amount
			}
			assert.InDelta(t, principal, sum, 0.005, "principal=%v months=%d", principal, months)
		}
	}
}

func TestBuildSchedule_InvalidInputs(t *testing.T) {
	start := time.Now()

	assert.Nil(t, emi.BuildSchedule(1000, 0, start))
	assert.Nil(t, emi.BuildSchedule(0, 6, start))
	assert.Nil(t, emi.BuildSchedule(-500, 6, start))
	assert.Nil(t, emi.BuildSchedule(math.NaN(), 6, start))
	assert.Nil(t, emi.BuildSchedule(math.Inf(1), 6, start))
}
