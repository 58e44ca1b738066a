package port

import (
	"context"

	"campaign-insights/internal/core/domain"
)

// DashboardRepository stores the current dashboard snapshot. It is an
// outbound port. The dataset is replaced wholesale on every refresh, so
// there are no partial updates. Implementations must be safe for
// concurrent use.
type DashboardRepository interface {
	// Snapshot returns a copy of the current dashboard. The copy is not
	// affected by later calls to Replace. domain.ErrNoData is returned when
	// nothing has been stored yet.
	Snapshot(ctx context.Context) (domain.Dashboard, error)
	// Replace swaps the stored dashboard for d.
	Replace(ctx context.Context, d domain.Dashboard) error
}

// DataSource fabricates or fetches fresh dashboards. The random generator
// implements it; a real feed can replace it without touching the engine or
// the exporters.
type DataSource interface {
	// Initial returns the first dashboard.
	Initial() domain.Dashboard
	// Next derives the following dashboard from prev.
	Next(prev domain.Dashboard) domain.Dashboard
}
