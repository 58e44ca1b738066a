// Package engine turns the raw campaign rows into what the table shows:
// filter, then sort, then paginate. It holds no state between calls.
package engine

import (
	"golang.org/x/text/language"

	"campaign-insights/internal/core/domain"
)

// Options configures an Engine. The zero value uses English collation and
// domain.DefaultPageSize.
type Options struct {
	Locale   language.Tag
	PageSize int
}

// Engine applies the table pipeline with fixed locale and page size.
type Engine struct {
	opts Options
}

// New returns an Engine with defaults filled in.
func New(opts Options) *Engine {
	if opts.Locale == language.Und {
		opts.Locale = language.English
	}
	if opts.PageSize <= 0 {
		opts.PageSize = domain.DefaultPageSize
	}
	return &Engine{opts: opts}
}

// PageSize returns the configured page size.
func (e *Engine) PageSize() int {
	return e.opts.PageSize
}

// Apply filters and sorts rows without paginating. This is the row set
// every export works on.
func (e *Engine) Apply(rows []domain.CampaignRow, c domain.FilterCriteria, s domain.SortSpec) []domain.CampaignRow {
	return Sort(Filter(rows, c), s, e.opts.Locale)
}

// View runs the whole pipeline. A page size of zero in p uses the engine
// default.
func (e *Engine) View(rows []domain.CampaignRow, c domain.FilterCriteria, s domain.SortSpec, p domain.PageSpec) Page {
	if p.Size <= 0 {
		p.Size = e.opts.PageSize
	}
	return Paginate(e.Apply(rows, c, s), p)
}
