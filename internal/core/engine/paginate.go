package engine

import "campaign-insights/internal/core/domain"

// Page is one page of the filtered and sorted campaign table.
type Page struct {
	Rows       []domain.CampaignRow
	TotalCount int
	TotalPages int
}

// Paginate slices rows into the requested page. TotalPages is never less
// than one. A page below one or beyond TotalPages yields no rows; the
// requested page is not clamped.
func Paginate(rows []domain.CampaignRow, spec domain.PageSpec) Page {
	size := spec.Size
	if size <= 0 {
		size = domain.DefaultPageSize
	}
	total := len(rows)
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	p := Page{Rows: []domain.CampaignRow{}, TotalCount: total, TotalPages: pages}
	if spec.Page < 1 {
		return p
	}
	start := (spec.Page - 1) * size
	if start >= total {
		return p
	}
	end := min(start+size, total)
	p.Rows = rows[start:end:end]
	return p
}
