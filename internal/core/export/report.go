package export

import (
	"fmt"

	"campaign-insights/internal/core/domain"
)

const trendPoints = 10

// MetricsReport renders the analytics report: the KPI cards as a table,
// a summary of the first revenue points and a page footer on every page.
func MetricsReport(cards []domain.MetricCard, charts domain.Charts, opts Options) ([]byte, error) {
	if len(cards) == 0 {
		return nil, domain.ErrNoData
	}
	title := opts.Title
	if title == "" {
		title = defaultReportTitle
	}
	footer := opts.Footer
	if footer == "" {
		footer = defaultFooter
	}
	f := newFormatter(opts.Locale)
	pdf := newDocument(title, opts)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		w, h := pdf.GetPageSize()
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.text(pageMargin, h-10, footer)
		pdf.text(w-30, h-10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()))
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.text(pageMargin, 25, title)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 100, 100)
	pdf.text(pageMargin, 35, "Generated on: "+opts.GeneratedAt.Format("January 2, 2006")+" at "+opts.GeneratedAt.Format("15:04:05"))
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.text(pageMargin, 55, "Key Performance Metrics")
	pdf.SetY(62)
	body := make([][]string, len(cards))
	for i, c := range cards {
		body[i] = []string{c.Title, c.Value, changeLabel(c.Change), trendLabel(c.ChangeType)}
	}
	table(pdf, []string{"Metric", "Value", "Change", "Trend"}, []float64{60, 40, 30, 20}, body, 10)

	if len(charts.Revenue) > 0 {
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "B", 16)
		pdf.line(10, "Revenue Trend Summary")
		points := charts.Revenue[:min(trendPoints, len(charts.Revenue))]
		rows := make([][]string, len(points))
		for i, p := range points {
			rows[i] = []string{periodLabel(p), f.money(pointRevenue(p))}
		}
		table(pdf, []string{"Period", "Revenue"}, []float64{80, 60}, rows, 9)
	}
	return output(pdf)
}

func changeLabel(change float64) string {
	sign := ""
	if change > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%g%%", sign, change)
}

func trendLabel(t domain.ChangeType) string {
	if t == domain.ChangeIncrease {
		return "Up"
	}
	return "Down"
}

func periodLabel(p domain.ChartPoint) string {
	switch {
	case p.Name != "":
		return p.Name
	case p.Date != "":
		return p.Date
	default:
		return notAvailable
	}
}

func pointRevenue(p domain.ChartPoint) float64 {
	if p.Value != 0 || p.Revenue == nil {
		return p.Value
	}
	return *p.Revenue
}
