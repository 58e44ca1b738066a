package random

import (
	"sync"

	"campaign-insights/internal/core/domain"
)

// Source adapts a Generator to port.DataSource. It serializes access to
// the generator so it can be shared between the refresher and callers.
type Source struct {
	mu   sync.Mutex
	gen  *Generator
	rows int
}

// NewSource returns a data source emitting rows campaign rows per dashboard.
func NewSource(gen *Generator, rows int) *Source {
	return &Source{gen: gen, rows: rows}
}

// Initial returns a freshly generated dashboard.
func (s *Source) Initial() domain.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.Dashboard(s.rows)
}

// Next returns prev with drifted metrics and a new campaign table.
func (s *Source) Next(prev domain.Dashboard) domain.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.Refresh(prev, s.rows)
}
