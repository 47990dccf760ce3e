package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateReferenceBill(t *testing.T) {
	rates := DefaultRates()
	est := rates.Estimate(50000, 5)

	// 50000/70 = 714.29 kWh/month -> 23.81 kWh/day -> 4.76 kW,
	// rounded up to one decimal.
	assert.Equal(t, 4.8, est.SystemSizeKW)
	assert.Equal(t, 4.8*800000, est.EstimatedCost)
	assert.Equal(t, 45000.0, est.MonthlySavings)
	// 3,840,000 / 45,000 / 12 = 7.11
	assert.Equal(t, 7.1, est.PaybackYears)
}

func TestEstimateSunHoursClamping(t *testing.T) {
	rates := DefaultRates()

	t.Run("Below Range", func(t *testing.T) {
		est := rates.Estimate(50000, 0)
		assert.Equal(t, rates.MinSunHours, est.SunHours)
		assert.Equal(t, rates.Estimate(50000, 3), est)
	})

	t.Run("Negative", func(t *testing.T) {
		est := rates.Estimate(50000, -4)
		assert.Equal(t, rates.MinSunHours, est.SunHours)
	})

	t.Run("Above Range", func(t *testing.T) {
		est := rates.Estimate(50000, 12)
		assert.Equal(t, rates.MaxSunHours, est.SunHours)
		assert.Equal(t, rates.Estimate(50000, 8), est)
	})
}

func TestEstimateZeroBill(t *testing.T) {
	est := DefaultRates().Estimate(0, 5)

	assert.Equal(t, 0.0, est.SystemSizeKW)
	assert.Equal(t, 0.0, est.EstimatedCost)
	assert.Equal(t, 0.0, est.MonthlySavings)
	// No savings means no payback figure, never a division blowup.
	assert.Equal(t, 0.0, est.PaybackYears)

	assert.Equal(t, est, DefaultRates().Estimate(-25000, 5))
}

func TestEstimateScalesWithBill(t *testing.T) {
	rates := DefaultRates()
	small := rates.Estimate(20000, 5)
	large := rates.Estimate(200000, 5)

	assert.Greater(t, large.SystemSizeKW, small.SystemSizeKW)
	assert.Greater(t, large.MonthlySavings, small.MonthlySavings)
}

func TestEstimateConfiguredRates(t *testing.T) {
	// The legacy services-page tuning, expressed as configuration.
	rates := Rates{
		GridCostPerKWh:  70,
		SystemCostPerKW: 1000000,
		OffsetFraction:  0.8,
		MinSunHours:     3,
		MaxSunHours:     8,
	}

	est := rates.Estimate(50000, 5)
	assert.Equal(t, 40000.0, est.MonthlySavings)
	assert.Equal(t, 4.8*1000000, est.EstimatedCost)
}
