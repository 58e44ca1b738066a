// Package export serializes campaign rows into downloadable files. It
// always receives the full filtered and sorted row set, never a single
// table page.
package export

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"campaign-insights/internal/core/domain"
)

// Options controls document metadata. GeneratedAt is stamped on PDF output;
// callers inject it so output is reproducible.
type Options struct {
	Title       string
	Footer      string
	GeneratedAt time.Time
	Locale      language.Tag
	// NoCompression leaves PDF content streams uncompressed.
	NoCompression bool
}

const (
	defaultCampaignTitle = "Campaign Performance Report"
	defaultReportTitle   = "Analytics Report"
	defaultFooter        = "Campaign Insights Analytics Dashboard"
)

// Serialize renders rows in format f. It refuses an empty row set with
// domain.ErrNoData so no empty file is ever produced.
func Serialize(rows []domain.CampaignRow, f Format, opts Options) ([]byte, error) {
	if len(rows) == 0 {
		return nil, domain.ErrNoData
	}
	switch f {
	case FormatCSV:
		return CSV(rows, opts)
	case FormatPDF:
		return CampaignPDF(rows, opts)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, f)
	}
}
