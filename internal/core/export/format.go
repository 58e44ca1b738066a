package export

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"campaign-insights/internal/core/domain"
)

// Format is an export file format.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat accepts "csv" or "pdf", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, s)
	}
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// DefaultBaseName is used when the caller does not name the file.
const DefaultBaseName = "campaign-data"

// Filename builds a download name from a caller-supplied base. Path
// separators and control characters are dropped.
func Filename(base string, f Format) string {
	base = strings.TrimSpace(base)
	base = trimExtension(base)
	base = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == '"' || r < 0x20 || r == 0x7f:
			return -1
		case r == ' ':
			return '-'
		default:
			return r
		}
	}, base)
	base = strings.Trim(base, ".")
	if base == "" {
		base = DefaultBaseName
	}
	return base + f.Extension()
}

// trimExtension drops one trailing export extension of any format, so a
// base of "report.csv" never turns into "report.csv.pdf".
func trimExtension(base string) string {
	for _, known := range []Format{FormatCSV, FormatPDF} {
		ext := known.Extension()
		if len(base) >= len(ext) && strings.EqualFold(base[len(base)-len(ext):], ext) {
			return base[:len(base)-len(ext)]
		}
	}
	return base
}

// Columns is the fixed column order shared by every campaign export.
var Columns = []string{"Campaign", "Impressions", "Clicks", "Conversions", "CTR", "CPC", "Revenue", "Status", "Date"}

// formatter renders numbers for display in one locale. Not safe for
// concurrent use.
type formatter struct {
	p *message.Printer
}

func newFormatter(tag language.Tag) formatter {
	if tag == language.Und {
		tag = language.English
	}
	return formatter{p: message.NewPrinter(tag)}
}

// count renders an integer with thousands separators.
func (f formatter) count(n int64) string {
	return f.p.Sprintf("%d", n)
}

// money renders a grouped amount with two decimals, e.g. "$12,345.00".
func (f formatter) money(v float64) string {
	return "$" + f.p.Sprint(number.Decimal(v, number.Scale(2)))
}

// percent renders a rate with two decimals, e.g. "6.80%".
func (f formatter) percent(v float64) string {
	return f.p.Sprint(number.Decimal(v, number.Scale(2))) + "%"
}

// price renders a unit cost with two decimals, e.g. "$2.46".
func (f formatter) price(v float64) string {
	return "$" + f.p.Sprint(number.Decimal(v, number.Scale(2)))
}

// record renders one row in column order. grouped selects thousands
// separators for the counters.
func (f formatter) record(r domain.CampaignRow, grouped bool) []string {
	counter := func(n int64) string { return strconv.FormatInt(n, 10) }
	if grouped {
		counter = f.count
	}
	return []string{
		r.Campaign,
		counter(r.Impressions),
		counter(r.Clicks),
		counter(r.Conversions),
		f.percent(r.CTR),
		f.price(r.CPC),
		f.money(r.Revenue),
		r.Status.Title(),
		r.Date,
	}
}
