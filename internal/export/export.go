package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"lightsup/internal/storage"
)

// QuotesCSV renders the quote list the way the admin panel's download
// button does: one row per lead, newest first as provided.
func QuotesCSV(quotes []storage.Quote) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Name", "Phone", "Email", "Service", "Message", "Status"}); err != nil {
		return nil, err
	}
	for _, q := range quotes {
		record := []string{
			q.CreatedAt.Format("2006-01-02 15:04"),
			q.Name,
			q.Phone,
			q.Email,
			q.Service,
			q.Message,
			q.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ProjectsCSV renders the portfolio list.
func ProjectsCSV(projects []storage.Project) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Title", "Location", "Capacity", "Description"}); err != nil {
		return nil, err
	}
	for _, p := range projects {
		record := []string{
			p.CreatedAt.Format("2006-01-02"),
			p.Title,
			p.Location,
			p.Capacity,
			p.Description,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// QuotesPDF renders a tabular PDF report of quote requests.
func QuotesPDF(quotes []storage.Quote, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Quote Requests - Lightsup Energy")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, "Generated on "+generatedAt.Format("Jan 2, 2006 15:04"))
	pdf.Ln(12)

	headers := []string{"Date", "Name", "Contact", "Service", "Status"}
	widths := []float64{25, 40, 55, 45, 25}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(46, 42, 91)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, q := range quotes {
		contact := q.Email
		if q.Phone != "" {
			contact = q.Email + " / " + q.Phone
		}
		cells := []string{
			q.CreatedAt.Format("Jan 2, 2006"),
			q.Name,
			contact,
			q.Service,
			q.Status,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// ProjectsPDF renders a tabular PDF report of the project portfolio.
func ProjectsPDF(projects []storage.Project, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Projects - Lightsup Energy")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, "Generated on "+generatedAt.Format("Jan 2, 2006 15:04"))
	pdf.Ln(12)

	headers := []string{"Date", "Title", "Location", "Capacity"}
	widths := []float64{25, 70, 55, 40}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(46, 42, 91)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, p := range projects {
		cells := []string{
			p.CreatedAt.Format("Jan 2, 2006"),
			p.Title,
			p.Location,
			p.Capacity,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
