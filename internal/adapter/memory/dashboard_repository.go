package memory

import (
	"context"
	"sync"

	"campaign-insights/internal/core/domain"
)

// DashboardRepository implements port.DashboardRepository in process
// memory. Snapshots are deep copies, so a reader keeps a stable view while
// the refresher replaces the stored dashboard.
type DashboardRepository struct {
	mu    sync.RWMutex
	data  domain.Dashboard
	ready bool
}

// NewDashboardRepository returns an empty repository.
func NewDashboardRepository() *DashboardRepository {
	return &DashboardRepository{}
}

// Snapshot returns a copy of the stored dashboard.
func (r *DashboardRepository) Snapshot(_ context.Context) (domain.Dashboard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.ready {
		return domain.Dashboard{}, domain.ErrNoData
	}
	return r.data.Clone(), nil
}

// Replace stores a copy of d.
func (r *DashboardRepository) Replace(_ context.Context, d domain.Dashboard) error {
	c := d.Clone()
	r.mu.Lock()
	r.data = c
	r.ready = true
	r.mu.Unlock()
	return nil
}
