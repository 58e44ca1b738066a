package db

import (
	"context"
	"errors"
	"fmt"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// Seed stores the initial dashboard from src when repo holds nothing yet.
// It reports whether a dashboard was written.
func Seed(ctx context.Context, repo port.DashboardRepository, src port.DataSource) (bool, error) {
	_, err := repo.Snapshot(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNoData) {
		return false, fmt.Errorf("read dashboard: %w", err)
	}
	if err = repo.Replace(ctx, src.Initial()); err != nil {
		return false, fmt.Errorf("store initial dashboard: %w", err)
	}
	return true, nil
}
