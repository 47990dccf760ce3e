package calculator

import (
	"strconv"

	"github.com/google/uuid"
)

// ApplianceEntry is one row of the load worksheet. The ID is ephemeral:
// it only has to stay stable while the row is being edited.
type ApplianceEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Watts    float64 `json:"watts"`
	Quantity int     `json:"quantity"`
	Hours    float64 `json:"hours"`
}

// Totals are the aggregates the sizing engine works from.
type Totals struct {
	TotalLoad   float64 `json:"totalLoad"`   // W, all appliances running at once
	DailyEnergy float64 `json:"dailyEnergy"` // Wh per day
}

// Worksheet holds the ordered appliance list for one calculator session.
// It is not safe for concurrent use; each session owns its own worksheet.
type Worksheet struct {
	entries []ApplianceEntry
}

func NewWorksheet() *Worksheet {
	return &Worksheet{}
}

// WorksheetFrom builds a worksheet from existing rows, sanitizing each
// field the same way interactive edits are sanitized. Rows without an id
// get a fresh one.
func WorksheetFrom(entries []ApplianceEntry) *Worksheet {
	w := NewWorksheet()
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		e.Watts = clampWatts(e.Watts)
		e.Quantity = clampQuantity(e.Quantity)
		e.Hours = clampHours(e.Hours)
		w.entries = append(w.entries, e)
	}
	return w
}

// Add appends a new row and returns it. A catalog template seeds the
// name and wattage; otherwise generic defaults apply.
func (w *Worksheet) Add(template *CatalogItem) ApplianceEntry {
	entry := ApplianceEntry{
		ID:       uuid.NewString(),
		Name:     "New Appliance",
		Watts:    100,
		Quantity: 1,
		Hours:    4,
	}
	if template != nil {
		entry.Name = template.Name
		entry.Watts = template.Watts
	}
	w.entries = append(w.entries, entry)
	return entry
}

// Update replaces one field on the matching row. Unknown ids and unknown
// fields are ignored so stale edits from the UI never fault. Numeric text
// that fails to parse coerces to the field's safe default.
func (w *Worksheet) Update(id, field, value string) {
	for i := range w.entries {
		if w.entries[i].ID != id {
			continue
		}
		switch field {
		case "name":
			w.entries[i].Name = value
		case "watts":
			w.entries[i].Watts = clampWatts(parseFloat(value, 0))
		case "quantity":
			w.entries[i].Quantity = clampQuantity(parseInt(value, 1))
		case "hours":
			w.entries[i].Hours = clampHours(parseFloat(value, 0))
		}
		return
	}
}

// Remove deletes the matching row; absent ids are a no-op.
func (w *Worksheet) Remove(id string) {
	for i := range w.entries {
		if w.entries[i].ID == id {
			w.entries = append(w.entries[:i], w.entries[i+1:]...)
			return
		}
	}
}

// Entries returns a copy of the current rows in insertion order.
func (w *Worksheet) Entries() []ApplianceEntry {
	out := make([]ApplianceEntry, len(w.entries))
	copy(out, w.entries)
	return out
}

func (w *Worksheet) Len() int {
	return len(w.entries)
}

// Totals recomputes both aggregates from scratch on every call. There is
// no incremental path, so the values can never drift from the rows.
func (w *Worksheet) Totals() Totals {
	var t Totals
	for _, e := range w.entries {
		t.TotalLoad += e.Watts * float64(e.Quantity)
		t.DailyEnergy += e.Watts * float64(e.Quantity) * e.Hours
	}
	return t
}

func parseFloat(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func clampWatts(v float64) float64 {
	if v < 0 || v != v { // NaN guard
		return 0
	}
	return v
}

func clampQuantity(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func clampHours(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 24 {
		return 24
	}
	return v
}
