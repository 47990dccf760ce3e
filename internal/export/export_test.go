package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lightsup/internal/storage"
)

func sampleQuotes() []storage.Quote {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return []storage.Quote{
		{
			Model:   gorm.Model{ID: 1, CreatedAt: created},
			Name:    "John Doe",
			Phone:   "08012345678",
			Email:   "john@example.com",
			Service: "Solar Calculator Order",
			Message: "Quoted message with, commas and \"quotes\".",
			Status:  storage.QuoteStatusNew,
		},
		{
			Model:   gorm.Model{ID: 2, CreatedAt: created.Add(-24 * time.Hour)},
			Name:    "Jane Smith",
			Email:   "jane@example.com",
			Service: "Inverter System",
			Status:  storage.QuoteStatusContacted,
		},
	}
}

func TestQuotesCSV(t *testing.T) {
	out, err := QuotesCSV(sampleQuotes())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Date", "Name", "Phone", "Email", "Service", "Message", "Status"}, records[0])
	assert.Equal(t, "John Doe", records[1][1])
	assert.Equal(t, "2026-03-14 09:30", records[1][0])
	// Embedded commas and quotes must survive the round trip.
	assert.Equal(t, "Quoted message with, commas and \"quotes\".", records[1][5])
	assert.Equal(t, storage.QuoteStatusContacted, records[2][6])
}

func TestQuotesCSVEmpty(t *testing.T) {
	out, err := QuotesCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1) // header only
}

func TestProjectsCSV(t *testing.T) {
	projects := []storage.Project{
		{
			Model:    gorm.Model{ID: 1, CreatedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)},
			Title:    "Lekki Duplex Install",
			Location: "Lekki, Lagos",
			Capacity: "10kVA",
		},
	}

	out, err := ProjectsCSV(projects)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Lekki Duplex Install", records[1][1])
	assert.Equal(t, "10kVA", records[1][3])
}

func TestQuotesPDF(t *testing.T) {
	out, err := QuotesPDF(sampleQuotes(), time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output should be a PDF document")
}

func TestProjectsPDF(t *testing.T) {
	out, err := ProjectsPDF(nil, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
