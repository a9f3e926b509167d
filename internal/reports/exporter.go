package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/mxarte/artweek-backend/internal/event"
	"github.com/mxarte/artweek-backend/internal/subscriber"
)

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// Exporter renders admin report data into a downloadable file; returns
// content, filename, and MIME type.
type Exporter interface {
	ExportSubscribers(format string, rows []subscriber.Subscriber) ([]byte, string, string, error)
	ExportEvents(format string, rows []event.Event) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

//// ============================
/// SUBSCRIBER EXPORTS
//// ============================

func (e *exporter) ExportSubscribers(format string, rows []subscriber.Subscriber) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.subscribersCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("subscribers_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := e.subscribersExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("subscribers_%s.xlsx", timestamp), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.subscribersPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("subscribers_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (e *exporter) subscribersCSV(rows []subscriber.Subscriber) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"email", "source", "subscribed_at"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{r.Email, r.Source, r.CreatedAt.Format("2006-01-02 15:04:05")}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) subscribersExcel(rows []subscriber.Subscriber) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Subscribers"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"email", "source", "subscribed_at"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Email)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Source)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) subscribersPDF(rows []subscriber.Subscriber) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Newsletter Subscribers")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"Email", "Source", "Subscribed At"}
	widths := []float64{90, 40, 60}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 7, r.Email, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[1], 7, r.Source, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[2], 7, r.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//// ============================
/// EVENT EXPORTS
//// ============================

func (e *exporter) ExportEvents(format string, rows []event.Event) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.eventsCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := e.eventsExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_%s.xlsx", timestamp), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.eventsPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (e *exporter) eventsCSV(rows []event.Event) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	headers := []string{"slug", "name", "date", "venue", "neighborhood", "category", "featured", "approved"}
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.Slug,
			r.Name,
			r.Date.Format("2006-01-02 15:04"),
			r.Venue,
			r.Neighborhood,
			r.Category,
			fmt.Sprint(r.Featured),
			fmt.Sprint(r.Approved),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) eventsExcel(rows []event.Event) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Events"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"slug", "name", "date", "venue", "neighborhood", "category", "featured", "approved"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Slug)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Date.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Venue)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.Neighborhood)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Category)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Featured)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), r.Approved)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) eventsPDF(rows []event.Event) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Festival Events")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 9)
	headers := []string{"Name", "Date", "Venue", "Neighborhood", "Category", "Approved"}
	widths := []float64{80, 35, 60, 40, 35, 25}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 7, r.Name, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[1], 7, r.Date.Format("2006-01-02 15:04"), "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[2], 7, r.Venue, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[3], 7, r.Neighborhood, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[4], 7, r.Category, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[5], 7, fmt.Sprint(r.Approved), "1", 0, "", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
