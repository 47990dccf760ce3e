package calculator

import "math"

// Rates is the tariff and pricing table behind the bill-based estimator.
// Two differently-tuned copies of this estimator existed historically;
// this is the canonical set, and deployments that want the other tuning
// override these values through configuration.
type Rates struct {
	GridCostPerKWh  float64 `json:"gridCostPerKwh"`  // utility tariff, currency per kWh
	SystemCostPerKW float64 `json:"systemCostPerKw"` // installed cost, currency per kW
	OffsetFraction  float64 `json:"offsetFraction"`  // share of the bill solar displaces
	MinSunHours     float64 `json:"minSunHours"`
	MaxSunHours     float64 `json:"maxSunHours"`
}

// DefaultRates matches the public savings calculator: 70/kWh grid
// tariff, 800k/kW installed, 90% bill offset, 3-8 peak sun hours.
func DefaultRates() Rates {
	return Rates{
		GridCostPerKWh:  70,
		SystemCostPerKW: 800000,
		OffsetFraction:  0.9,
		MinSunHours:     3,
		MaxSunHours:     8,
	}
}

// BillEstimate is the outcome of the bill-based path: a system size and
// the financial case for it.
type BillEstimate struct {
	MonthlyBill    float64 `json:"monthlyBill"`
	SunHours       float64 `json:"sunHours"`
	SystemSizeKW   float64 `json:"systemSizeKw"`   // rounded up to 1 decimal
	EstimatedCost  float64 `json:"estimatedCost"`
	MonthlySavings float64 `json:"monthlySavings"`
	PaybackYears   float64 `json:"paybackYears"` // rounded to 1 decimal
}

// Estimate infers a system from a monthly utility bill and average daily
// sun hours, for visitors who don't know their appliance inventory.
// sunHours is clamped into the configured slider range so the division
// can never see zero; a negative bill clamps to zero.
func (r Rates) Estimate(monthlyBill, sunHours float64) BillEstimate {
	if monthlyBill < 0 {
		monthlyBill = 0
	}
	if sunHours < r.MinSunHours {
		sunHours = r.MinSunHours
	}
	if sunHours > r.MaxSunHours {
		sunHours = r.MaxSunHours
	}

	monthlyKWh := monthlyBill / r.GridCostPerKWh
	dailyKWh := monthlyKWh / 30
	required := dailyKWh / sunHours
	systemSize := math.Ceil(required*10) / 10

	cost := systemSize * r.SystemCostPerKW
	savings := monthlyBill * r.OffsetFraction

	payback := 0.0
	if savings > 0 {
		payback = math.Round(cost/savings/12*10) / 10
	}

	return BillEstimate{
		MonthlyBill:    monthlyBill,
		SunHours:       sunHours,
		SystemSizeKW:   systemSize,
		EstimatedCost:  cost,
		MonthlySavings: savings,
		PaybackYears:   payback,
	}
}
