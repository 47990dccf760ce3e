package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorksheetAdd(t *testing.T) {
	w := NewWorksheet()

	t.Run("Generic Defaults", func(t *testing.T) {
		entry := w.Add(nil)
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "New Appliance", entry.Name)
		assert.Equal(t, 100.0, entry.Watts)
		assert.Equal(t, 1, entry.Quantity)
		assert.Equal(t, 4.0, entry.Hours)
	})

	t.Run("From Catalog Template", func(t *testing.T) {
		item := CatalogLookup("Deep Freezer")
		require.NotNil(t, item)

		entry := w.Add(item)
		assert.Equal(t, "Deep Freezer", entry.Name)
		assert.Equal(t, 200.0, entry.Watts)
		assert.Equal(t, 1, entry.Quantity)
		assert.Equal(t, 4.0, entry.Hours)
	})

	t.Run("Fresh IDs", func(t *testing.T) {
		a := w.Add(nil)
		b := w.Add(nil)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestWorksheetUpdate(t *testing.T) {
	w := NewWorksheet()
	entry := w.Add(nil)

	t.Run("Name", func(t *testing.T) {
		w.Update(entry.ID, "name", "Freezer")
		assert.Equal(t, "Freezer", w.Entries()[0].Name)
	})

	t.Run("Numeric Fields", func(t *testing.T) {
		w.Update(entry.ID, "watts", "250")
		w.Update(entry.ID, "quantity", "3")
		w.Update(entry.ID, "hours", "12")

		got := w.Entries()[0]
		assert.Equal(t, 250.0, got.Watts)
		assert.Equal(t, 3, got.Quantity)
		assert.Equal(t, 12.0, got.Hours)
	})

	t.Run("Malformed Input Coerces To Safe Defaults", func(t *testing.T) {
		w.Update(entry.ID, "watts", "abc")
		w.Update(entry.ID, "quantity", "")
		w.Update(entry.ID, "hours", "oops")

		got := w.Entries()[0]
		assert.Equal(t, 0.0, got.Watts)
		assert.Equal(t, 1, got.Quantity)
		assert.Equal(t, 0.0, got.Hours)
	})

	t.Run("Out Of Range Input Clamps", func(t *testing.T) {
		w.Update(entry.ID, "watts", "-50")
		w.Update(entry.ID, "quantity", "0")
		w.Update(entry.ID, "hours", "30")

		got := w.Entries()[0]
		assert.Equal(t, 0.0, got.Watts)
		assert.Equal(t, 1, got.Quantity)
		assert.Equal(t, 24.0, got.Hours)
	})

	t.Run("Unknown ID Is A No-Op", func(t *testing.T) {
		before := w.Entries()
		w.Update("does-not-exist", "watts", "9999")
		assert.Equal(t, before, w.Entries())
	})

	t.Run("Unknown Field Is A No-Op", func(t *testing.T) {
		before := w.Entries()
		w.Update(entry.ID, "voltage", "230")
		assert.Equal(t, before, w.Entries())
	})
}

func TestWorksheetRemove(t *testing.T) {
	w := NewWorksheet()
	a := w.Add(nil)
	b := w.Add(nil)
	c := w.Add(nil)

	w.Remove(b.ID)
	require.Equal(t, 2, w.Len())
	assert.Equal(t, a.ID, w.Entries()[0].ID)
	assert.Equal(t, c.ID, w.Entries()[1].ID)

	// Removing a stale id does nothing.
	w.Remove(b.ID)
	assert.Equal(t, 2, w.Len())
}

func TestWorksheetTotals(t *testing.T) {
	t.Run("Empty Worksheet", func(t *testing.T) {
		w := NewWorksheet()
		totals := w.Totals()
		assert.Equal(t, 0.0, totals.TotalLoad)
		assert.Equal(t, 0.0, totals.DailyEnergy)
	})

	t.Run("Reference Household", func(t *testing.T) {
		w := WorksheetFrom([]ApplianceEntry{
			{Name: "LED Bulb", Watts: 10, Quantity: 4, Hours: 6},
			{Name: "Ceiling Fan", Watts: 75, Quantity: 2, Hours: 8},
			{Name: "TV (LED 42\")", Watts: 80, Quantity: 1, Hours: 4},
		})

		totals := w.Totals()
		assert.Equal(t, 270.0, totals.TotalLoad)
		assert.Equal(t, 1760.0, totals.DailyEnergy)
	})

	t.Run("Recomputed After Mutation", func(t *testing.T) {
		w := NewWorksheet()
		entry := w.Add(nil) // 100W x1, 4h
		assert.Equal(t, Totals{TotalLoad: 100, DailyEnergy: 400}, w.Totals())

		w.Update(entry.ID, "quantity", "2")
		assert.Equal(t, Totals{TotalLoad: 200, DailyEnergy: 800}, w.Totals())

		w.Remove(entry.ID)
		assert.Equal(t, Totals{}, w.Totals())
	})

	t.Run("Order Independent", func(t *testing.T) {
		forward := WorksheetFrom([]ApplianceEntry{
			{Watts: 10, Quantity: 4, Hours: 6},
			{Watts: 75, Quantity: 2, Hours: 8},
		})
		reversed := WorksheetFrom([]ApplianceEntry{
			{Watts: 75, Quantity: 2, Hours: 8},
			{Watts: 10, Quantity: 4, Hours: 6},
		})
		assert.Equal(t, forward.Totals(), reversed.Totals())
	})
}

func TestWorksheetFromSanitizes(t *testing.T) {
	w := WorksheetFrom([]ApplianceEntry{
		{Name: "Bad Row", Watts: -40, Quantity: 0, Hours: 48},
	})

	got := w.Entries()[0]
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, 0.0, got.Watts)
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, 24.0, got.Hours)
}

func TestCatalog(t *testing.T) {
	items := Catalog()
	assert.Len(t, items, 14)

	assert.Nil(t, CatalogLookup("Quantum Kettle"))

	bulb := CatalogLookup("LED Bulb")
	require.NotNil(t, bulb)
	assert.Equal(t, 10.0, bulb.Watts)

	// The returned slice is a copy; mutating it must not poison the
	// shared catalog.
	items[0].Watts = 9999
	assert.Equal(t, 10.0, Catalog()[0].Watts)
}
