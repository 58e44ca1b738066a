package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"campaign-insights/internal/core/domain"
)

const (
	pageMargin   = 14.0
	bottomMargin = pageMargin + 6
	rowHeight    = 6.0
)

// Column widths in millimetres, matching Columns.
var columnWidths = []float64{36, 20, 15, 19, 14, 15, 22, 17, 19}

var (
	headerFill = [3]int{59, 130, 246}
	stripeFill = [3]int{245, 245, 245}
)

// document is an fpdf document whose core fonts are cp1252 encoded. Every
// string drawn on it goes through tr first.
type document struct {
	*fpdf.Fpdf
	tr func(string) string
}

func newDocument(title string, opts Options) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.SetCompression(!opts.NoCompression)
	pdf.SetTitle(title, true)
	pdf.SetCreator("campaign-insights", true)
	if !opts.GeneratedAt.IsZero() {
		pdf.SetCreationDate(opts.GeneratedAt)
	}
	return &document{Fpdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// text draws s at (x, y).
func (d *document) text(x, y float64, s string) {
	d.Text(x, y, d.tr(s))
}

// line writes s as a full-width left-aligned line of height h.
func (d *document) line(h float64, s string) {
	d.CellFormat(0, h, d.tr(s), "", 1, "L", false, 0, "")
}

func output(pdf *document) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// CampaignPDF renders the campaign table report: title, generation
// timestamp, the table and a summary block. An empty row set produces a
// table with only its header and a zero summary.
func CampaignPDF(rows []domain.CampaignRow, opts Options) ([]byte, error) {
	title := opts.Title
	if title == "" {
		title = defaultCampaignTitle
	}
	f := newFormatter(opts.Locale)
	pdf := newDocument(title, opts)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.text(pageMargin, 22, title)
	pdf.SetFont("Helvetica", "", 12)
	pdf.text(pageMargin, 32, "Generated on: "+opts.GeneratedAt.Format("January 2, 2006 15:04 MST"))
	pdf.SetY(40)

	body := make([][]string, len(rows))
	for i, r := range rows {
		body[i] = f.record(r, true)
	}
	table(pdf, Columns, columnWidths, body, 8)

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.line(8, "Summary Statistics")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range Summarize(rows).lines(f) {
		pdf.line(7, line)
	}
	return output(pdf)
}

// table draws a striped table, repeating the header on every page it
// spans. Cell text that does not fit its column is truncated.
func table(pdf *document, head []string, widths []float64, body [][]string, fontSize float64) {
	_, pageHeight := pdf.GetPageSize()
	limit := pageHeight - bottomMargin - rowHeight

	drawHead := func() {
		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
		pdf.SetTextColor(255, 255, 255)
		for i, h := range head {
			pdf.CellFormat(widths[i], rowHeight, pdf.fit(h, widths[i]), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetTextColor(0, 0, 0)
	}

	drawHead()
	for n, row := range body {
		if pdf.GetY() > limit {
			pdf.AddPage()
			drawHead()
		}
		fill := n%2 == 1
		if fill {
			pdf.SetFillColor(stripeFill[0], stripeFill[1], stripeFill[2])
		}
		for i, cell := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], rowHeight, pdf.fit(cell, widths[i]), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

// fit encodes s and shortens it until it fits in width w with cell
// padding. The result is already encoded for the page.
func (d *document) fit(s string, w float64) string {
	enc := d.tr(s)
	avail := w - 2*d.GetCellMargin()
	if d.GetStringWidth(enc) <= avail {
		return enc
	}
	for len(enc) > 0 && d.GetStringWidth(enc+"...") > avail {
		enc = enc[:len(enc)-1]
	}
	return enc + "..."
}
