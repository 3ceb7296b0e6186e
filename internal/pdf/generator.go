// Package pdf renders shared quotes as single-document A4 PDFs with gofpdf.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ── Colour palette ──────────────────────────────────────────────────────

type rgb struct{ r, g, b int }

var (
	colorPrimary   = rgb{17, 24, 39}    // near-black
	colorSecondary = rgb{107, 114, 128} // gray-500
	colorAccent    = rgb{234, 88, 12}   // orange-600
	colorTableHead = rgb{241, 245, 249} // slate-100
	colorBorder    = rgb{226, 232, 240} // slate-200
)

const (
	pageMargin   = 15.0
	contentWidth = 210.0 - 2*pageMargin
	fontFamily   = "Helvetica"
)

// ── Data struct ─────────────────────────────────────────────────────────

// Line is one pre-formatted row of the items table.
type Line struct {
	Label     string
	Quantity  string
	UnitPrice string
	Amount    string
}

// QuotePDFData holds everything printed on a quote PDF. Money values arrive already
// formatted so the document matches the web view.
type QuotePDFData struct {
	Slug           string
	CreatedAt      time.Time
	CustomerName   string
	Location       string
	PropertyType   string
	Urgency        string
	JobDescription string
	Lines          []Line
	Subtotal       string
	GST            string
	Total          string
	Notes          string
	ShareURL       string
}

// GenerateQuotePDF renders data into PDF bytes.
func GenerateQuotePDF(data QuotePDFData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, 12, pageMargin)
	doc.SetAutoPageBreak(true, 18)
	doc.SetTitle("Quote "+data.Slug, true)
	doc.SetCreator("tradequote", true)

	// core fonts are cp1252; translate UTF-8 input
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetFooterFunc(func() { buildFooter(doc, tr, data) })
	doc.AddPage()

	buildHeader(doc, tr, data)
	separator(doc)
	buildDetailsBlock(doc, tr, data)
	buildItemsTable(doc, tr, data.Lines)
	buildTotalsBlock(doc, tr, data)
	if data.Notes != "" {
		buildNotesBlock(doc, tr, data.Notes)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func setText(doc *gofpdf.Fpdf, c rgb, style string, size float64) {
	doc.SetTextColor(c.r, c.g, c.b)
	doc.SetFont(fontFamily, style, size)
}

func separator(doc *gofpdf.Fpdf) {
	doc.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
	y := doc.GetY() + 2
	doc.Line(pageMargin, y, pageMargin+contentWidth, y)
	doc.SetY(y + 6)
}

// ── Header ──────────────────────────────────────────────────────────────

func buildHeader(doc *gofpdf.Fpdf, tr func(string) string, data QuotePDFData) {
	setText(doc, colorAccent, "B", 24)
	doc.CellFormat(contentWidth/2, 12, "QUOTE", "", 0, "L", false, 0, "")

	setText(doc, colorSecondary, "", 10)
	doc.CellFormat(contentWidth/2, 6, tr("Reference "+data.Slug), "", 2, "R", false, 0, "")
	doc.CellFormat(contentWidth/2, 6, data.CreatedAt.Format("2 January 2006"), "", 1, "R", false, 0, "")
}

// ── Details block ───────────────────────────────────────────────────────

func buildDetailsBlock(doc *gofpdf.Fpdf, tr func(string) string, data QuotePDFData) {
	details := [][2]string{
		{"Customer", data.CustomerName},
		{"Location", data.Location},
		{"Property", data.PropertyType},
		{"Timing", data.Urgency},
	}
	for _, d := range details {
		if d[1] == "" {
			continue
		}
		setText(doc, colorSecondary, "B", 8)
		doc.CellFormat(28, 5, strings.ToUpper(d[0]), "", 0, "L", false, 0, "")
		setText(doc, colorPrimary, "", 10)
		doc.CellFormat(contentWidth-28, 5, tr(d[1]), "", 1, "L", false, 0, "")
	}

	doc.Ln(3)
	setText(doc, colorAccent, "B", 8)
	doc.CellFormat(contentWidth, 6, "JOB", "", 1, "L", false, 0, "")
	setText(doc, colorPrimary, "", 10)
	doc.MultiCell(contentWidth, 5, tr(data.JobDescription), "", "L", false)
	doc.Ln(5)
}

// ── Line items table ────────────────────────────────────────────────────

var columnWidths = [4]float64{contentWidth - 90, 25, 30, 35}

func buildItemsTable(doc *gofpdf.Fpdf, tr func(string) string, lines []Line) {
	doc.SetFillColor(colorTableHead.r, colorTableHead.g, colorTableHead.b)
	setText(doc, colorPrimary, "B", 9)
	headers := [4]string{"Description", "Qty", "Unit price", "Amount"}
	for i, h := range headers {
		align := "R"
		if i == 0 {
			align = "L"
		}
		doc.CellFormat(columnWidths[i], 8, h, "", 0, align, true, 0, "")
	}
	doc.Ln(-1)

	doc.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
	setText(doc, colorPrimary, "", 9.5)
	for _, line := range lines {
		doc.CellFormat(columnWidths[0], 7, tr(truncate(line.Label, 60)), "B", 0, "L", false, 0, "")
		doc.CellFormat(columnWidths[1], 7, tr(line.Quantity), "B", 0, "R", false, 0, "")
		doc.CellFormat(columnWidths[2], 7, tr(line.UnitPrice), "B", 0, "R", false, 0, "")
		doc.CellFormat(columnWidths[3], 7, tr(line.Amount), "B", 1, "R", false, 0, "")
	}
	doc.Ln(4)
}

// ── Totals block ────────────────────────────────────────────────────────

func buildTotalsBlock(doc *gofpdf.Fpdf, tr func(string) string, data QuotePDFData) {
	labelWidth := 35.0
	valueWidth := 35.0
	offset := contentWidth - labelWidth - valueWidth

	rows := [][2]string{{"Subtotal", data.Subtotal}, {"GST (10%)", data.GST}}
	for _, r := range rows {
		doc.SetX(pageMargin + offset)
		setText(doc, colorSecondary, "", 10)
		doc.CellFormat(labelWidth, 6, r[0], "", 0, "L", false, 0, "")
		setText(doc, colorPrimary, "", 10)
		doc.CellFormat(valueWidth, 6, tr(r[1]), "", 1, "R", false, 0, "")
	}

	doc.SetX(pageMargin + offset)
	setText(doc, colorPrimary, "B", 12)
	doc.CellFormat(labelWidth, 8, "Total (AUD)", "T", 0, "L", false, 0, "")
	doc.CellFormat(valueWidth, 8, tr(data.Total), "T", 1, "R", false, 0, "")
}

// ── Notes ───────────────────────────────────────────────────────────────

func buildNotesBlock(doc *gofpdf.Fpdf, tr func(string) string, notes string) {
	doc.Ln(6)
	setText(doc, colorAccent, "B", 8)
	doc.CellFormat(contentWidth, 6, "NOTES", "", 1, "L", false, 0, "")
	setText(doc, colorPrimary, "", 9.5)
	doc.MultiCell(contentWidth, 5, tr(notes), "", "L", false)
}

// ── Footer ──────────────────────────────────────────────────────────────

func buildFooter(doc *gofpdf.Fpdf, tr func(string) string, data QuotePDFData) {
	doc.SetY(-14)
	setText(doc, colorSecondary, "", 7.5)
	footer := "Prices in Australian dollars and include GST where shown."
	if data.ShareURL != "" {
		footer += "  View online: " + data.ShareURL
	}
	doc.CellFormat(contentWidth, 5, tr(footer), "", 0, "C", false, 0, "")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
