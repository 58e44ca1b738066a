package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"campaign-insights/internal/core/domain"
)

// CSV writes a header row followed by one record per campaign row. Every
// record has len(Columns) fields.
func CSV(rows []domain.CampaignRow, opts Options) ([]byte, error) {
	f := newFormatter(opts.Locale)
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(f.record(r, false)); err != nil {
			return nil, fmt.Errorf("write csv record %s: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
