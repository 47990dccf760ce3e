package calculator

import "math"

// Sizing constants. These encode the company's simplified design rules,
// not real solar engineering: results are presented as estimates only.
const (
	inverterMargin    = 1.25 // 25% headroom over connected load
	inverterStepW     = 500  // inverters are quoted in 500 W steps
	inverterMinW      = 1000 // smallest unit the company installs
	dischargeHours    = 24   // battery sized for a full day of autonomy
	usableDoD         = 0.5  // 50% usable depth-of-discharge
	effectiveSunHours = 4.5  // design-point peak sun hours
	systemEfficiency  = 0.75 // combined wiring/charge/inverter losses
	PanelWatts        = 450  // module size the company stocks
	panelMinCount     = 2    // smallest array sold
)

// SizingResult is the recommended system for a given load profile. It is
// a pure function of the worksheet totals and carries no identity of its
// own.
type SizingResult struct {
	TotalLoad       float64 `json:"totalLoad"`       // W
	DailyEnergy     float64 `json:"dailyEnergy"`     // Wh
	InverterSize    int     `json:"inverterSize"`    // W, multiple of 500, >= 1000
	BatteryCapacity int     `json:"batteryCapacity"` // Ah at 24V nominal
	PanelCapacity   int     `json:"panelCapacity"`   // W
	PanelCount      int     `json:"panelCount"`      // >= 2
}

// Size maps worksheet totals to a recommended system. Deterministic, no
// hidden state; negative inputs clamp to zero.
func Size(t Totals) SizingResult {
	load := t.TotalLoad
	if load < 0 {
		load = 0
	}
	energy := t.DailyEnergy
	if energy < 0 {
		energy = 0
	}

	inverter := int(math.Ceil(load*inverterMargin/inverterStepW)) * inverterStepW
	if inverter < inverterMinW {
		inverter = inverterMinW
	}

	battery := int(math.Ceil(energy / dischargeHours / usableDoD))
	panelCapacity := int(math.Ceil(energy / effectiveSunHours / systemEfficiency))
	panels := int(math.Ceil(float64(panelCapacity) / PanelWatts))
	if panels < panelMinCount {
		panels = panelMinCount
	}

	return SizingResult{
		TotalLoad:       load,
		DailyEnergy:     energy,
		InverterSize:    inverter,
		BatteryCapacity: battery,
		PanelCapacity:   panelCapacity,
		PanelCount:      panels,
	}
}
