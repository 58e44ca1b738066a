package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"campaign-insights/internal/core/domain"
)

var generatedAt = time.Date(2024, time.July, 4, 9, 30, 0, 0, time.UTC)

func sampleRows() []domain.CampaignRow {
	return []domain.CampaignRow{
		{
			ID: "campaign-1", Campaign: "Summer Sale 2024", Status: domain.StatusActive,
			Impressions: 125000, Clicks: 8500, Conversions: 425,
			CTR: 6.8, CPC: 2.456, Revenue: 12345.5, Date: "2024-06-01",
		},
		{
			ID: "campaign-2", Campaign: "Valentine's Special, EU", Status: domain.StatusPaused,
			Impressions: 10, Clicks: 90, Conversions: 3,
			CTR: 1.234, CPC: 1, Revenue: 250, Date: "2024-02-14",
		},
	}
}

func TestCSVLayout(t *testing.T) {
	out, err := Serialize(sampleRows(), FormatCSV, Options{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Columns, records[0])
	for _, rec := range records {
		assert.Len(t, rec, len(Columns))
	}
	assert.Equal(t, []string{
		"Summer Sale 2024", "125000", "8500", "425", "6.80%", "$2.46", "$12,345.50", "Active", "2024-06-01",
	}, records[1])
	assert.Equal(t, []string{
		"Valentine's Special, EU", "10", "90", "3", "1.23%", "$1.00", "$250.00", "Paused", "2024-02-14",
	}, records[2])
}

func TestCSVFollowsLocale(t *testing.T) {
	out, err := CSV(sampleRows()[:1], Options{Locale: language.German})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"6,80%", "$2,46", "$12.345,50"}, records[1][4:7])
}

func TestCSVRowCountMatchesInput(t *testing.T) {
	rows := make([]domain.CampaignRow, 37)
	for i := range rows {
		rows[i] = domain.CampaignRow{ID: fmt.Sprint(i), Campaign: "C", Status: domain.StatusCompleted, Date: "2024-01-01"}
	}
	out, err := CSV(rows, Options{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, len(rows)+1)
}

func TestSerializeRejectsEmpty(t *testing.T) {
	for _, f := range []Format{FormatCSV, FormatPDF} {
		_, err := Serialize(nil, f, Options{})
		assert.ErrorIs(t, err, domain.ErrNoData)
		_, err = Serialize([]domain.CampaignRow{}, f, Options{})
		assert.ErrorIs(t, err, domain.ErrNoData)
	}
}

func TestSerializeUnknownFormat(t *testing.T) {
	_, err := Serialize(sampleRows(), Format("xlsx"), Options{})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestCampaignPDF(t *testing.T) {
	out, err := Serialize(sampleRows(), FormatPDF, Options{GeneratedAt: generatedAt, NoCompression: true})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "Campaign Performance Report")
	assert.Contains(t, string(out), "Generated on: July 4, 2024 09:30 UTC")
	assert.Contains(t, string(out), "Total Campaigns: 2")
	assert.Contains(t, string(out), "Total Impressions: 125,010")
	assert.Contains(t, string(out), "Total Clicks: 8,590")
	assert.Contains(t, string(out), "Total Revenue: $12,595.50")
	assert.Contains(t, string(out), "Average CTR: 4.02%")
	assert.Contains(t, string(out), "Average CPC: $1.73")
}

func TestCampaignPDFEncodesLatinNames(t *testing.T) {
	rows := []domain.CampaignRow{{ID: "1", Campaign: "Café Été", Status: domain.StatusActive, Date: "2024-07-14"}}

	out, err := CampaignPDF(rows, Options{GeneratedAt: generatedAt, NoCompression: true})
	require.NoError(t, err)

	assert.Contains(t, string(out), "Caf\xe9 \xc9t\xe9")
	assert.NotContains(t, string(out), "Café")
}

func TestMetricsReportEncodesLatinText(t *testing.T) {
	cards := []domain.MetricCard{{Title: "Chiffre d'affaires réalisé", Value: "$1", ChangeType: domain.ChangeIncrease}}

	out, err := MetricsReport(cards, domain.Charts{}, Options{GeneratedAt: generatedAt, NoCompression: true})
	require.NoError(t, err)

	assert.Contains(t, string(out), "r\xe9alis\xe9")
	assert.NotContains(t, string(out), "réalisé")
}

func TestCampaignPDFEmptySummary(t *testing.T) {
	out, err := CampaignPDF(nil, Options{GeneratedAt: generatedAt, NoCompression: true})
	require.NoError(t, err)

	assert.Contains(t, string(out), "Total Campaigns: 0")
	assert.Contains(t, string(out), "Total Revenue: $0.00")
	assert.Contains(t, string(out), "Average CTR: N/A")
	assert.Contains(t, string(out), "Average CPC: N/A")
}

func TestCampaignPDFSpansPages(t *testing.T) {
	rows := make([]domain.CampaignRow, 120)
	for i := range rows {
		rows[i] = domain.CampaignRow{ID: fmt.Sprint(i), Campaign: "Back to School", Status: domain.StatusActive, Date: "2024-08-20"}
	}
	out, err := CampaignPDF(rows, Options{GeneratedAt: generatedAt, NoCompression: true})
	require.NoError(t, err)
	assert.Greater(t, bytes.Count(out, []byte("/Type /Page\n")), 1)
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRows())
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, int64(125010), s.Impressions)
	assert.Equal(t, int64(8590), s.Clicks)
	assert.InDelta(t, 12595.5, s.Revenue, 1e-9)
	assert.InDelta(t, 4.017, s.AvgCTR, 1e-9)
	assert.InDelta(t, 1.728, s.AvgCPC, 1e-9)
	assert.True(t, s.HasMeans)

	empty := Summarize(nil)
	assert.Equal(t, Summary{}, empty)
}

func TestMetricsReport(t *testing.T) {
	rev := 120000.0
	cards := []domain.MetricCard{
		{Title: "Total Revenue", Value: "$130,000", Change: 12, ChangeType: domain.ChangeIncrease},
		{Title: "Active Users", Value: "48,392", Change: -3, ChangeType: domain.ChangeDecrease},
	}
	charts := domain.Charts{Revenue: []domain.ChartPoint{{Name: "Jan", Value: 95000}, {Date: "2024-02-01", Revenue: &rev}}}

	out, err := MetricsReport(cards, charts, Options{GeneratedAt: generatedAt, NoCompression: true})
	require.NoError(t, err)

	body := string(out)
	assert.Contains(t, body, "Analytics Report")
	assert.Contains(t, body, "Key Performance Metrics")
	assert.Contains(t, body, "+12%")
	assert.Contains(t, body, "-3%")
	assert.Contains(t, body, "Revenue Trend Summary")
	assert.Contains(t, body, "$95,000.00")
	assert.Contains(t, body, "$120,000.00")
	assert.Contains(t, body, "Page 1 of 1")
	assert.Contains(t, body, defaultFooter)
}

func TestMetricsReportWithoutCards(t *testing.T) {
	_, err := MetricsReport(nil, domain.Charts{}, Options{})
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "campaign-data.csv", Filename("", FormatCSV))
	assert.Equal(t, "campaign-report.pdf", Filename("campaign-report", FormatPDF))
	assert.Equal(t, "q3-report.pdf", Filename("q3 report.pdf", FormatPDF))
	assert.Equal(t, "etcpasswd.csv", Filename("../etc/passwd", FormatCSV))
	assert.Equal(t, "report.pdf", Filename("report.csv", FormatPDF))
	assert.Equal(t, "report.csv", Filename("report.PDF", FormatCSV))
	assert.Equal(t, "campaign-data.pdf", Filename(".pdf", FormatPDF))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("xlsx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
