package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"campaign-insights/internal/adapter/memory"
	"campaign-insights/internal/adapter/random"
	"campaign-insights/internal/adapter/usecase"
	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
	"campaign-insights/internal/db"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	seed     int64
	rows     int
	pageSize int
	locale   string
}

// tableFlags carry the table state for view and export.
type tableFlags struct {
	text   string
	status string
	from   string
	to     string
	rng    string
	sort   string
	dir    string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "dashctl",
		Short: "Inspect and export generated campaign data",
		Long: `dashctl generates a campaign dataset from a seed and runs it through the
same filter, sort and pagination pipeline the dashboard server uses.

Available subcommands:
  view   - Print one page of the campaign table
  export - Write the filtered table to a CSV or PDF file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Int64Var(&g.seed, "seed", 1, "random seed for the generated dataset")
	root.PersistentFlags().IntVar(&g.rows, "rows", 50, "number of generated campaign rows")
	root.PersistentFlags().IntVar(&g.pageSize, "page-size", domain.DefaultPageSize, "rows per page")
	root.PersistentFlags().StringVar(&g.locale, "locale", "en", "BCP 47 locale for name sorting and number formatting")

	root.AddCommand(newViewCmd(g), newExportCmd(g))
	return root
}

func (f *tableFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.text, "q", "", "case-insensitive campaign name filter")
	fl.StringVar(&f.status, "status", domain.StatusAll, "all, active, paused or completed")
	fl.StringVar(&f.from, "from", "", "first day to include (YYYY-MM-DD)")
	fl.StringVar(&f.to, "to", "", "last day to include (YYYY-MM-DD)")
	fl.StringVar(&f.rng, "range", "", "quick range: today, last7, last30, thisMonth, thisYear, lastYear, all")
	fl.StringVar(&f.sort, "sort", string(domain.SortByRevenue), "sort column")
	fl.StringVar(&f.dir, "dir", string(domain.SortDesc), "asc or desc")
}

// query turns the flags into a campaign query. Explicit --from and --to win
// over the matching side of --range.
func (f *tableFlags) query(now time.Time) (port.CampaignQuery, error) {
	var q port.CampaignQuery
	q.Filter.Text = f.text
	q.Filter.Status = f.status

	if f.rng != "" {
		rng, err := domain.ResolveQuickRange(f.rng, now)
		if err != nil {
			return q, fmt.Errorf("--range %q: %w", f.rng, err)
		}
		q.Filter.Range = rng
	}
	if f.from != "" {
		t, err := time.ParseInLocation(time.DateOnly, f.from, time.UTC)
		if err != nil {
			return q, fmt.Errorf("--from: %w", err)
		}
		q.Filter.Range.From = &t
	}
	if f.to != "" {
		t, err := time.ParseInLocation(time.DateOnly, f.to, time.UTC)
		if err != nil {
			return q, fmt.Errorf("--to: %w", err)
		}
		q.Filter.Range.To = &t
	}

	field, err := domain.ParseSortField(f.sort)
	if err != nil {
		return q, fmt.Errorf("--sort: %w", err)
	}
	dir, err := domain.ParseSortDirection(f.dir)
	if err != nil {
		return q, fmt.Errorf("--dir: %w", err)
	}
	q.Sort = domain.SortSpec{Field: field, Direction: dir}
	return q, nil
}

// newUseCase seeds an in-memory repository and wraps it in the dashboard use
// case.
func (g *globalFlags) newUseCase(ctx context.Context) (*usecase.DashboardUseCase, error) {
	if g.rows < 0 {
		return nil, fmt.Errorf("--rows must not be negative")
	}
	locale, err := language.Parse(g.locale)
	if err != nil {
		return nil, fmt.Errorf("--locale: %w", err)
	}
	repo := memory.NewDashboardRepository()
	src := random.NewSource(random.NewSeeded(g.seed), g.rows)
	if _, err = db.Seed(ctx, repo, src); err != nil {
		return nil, err
	}
	return usecase.NewDashboardUseCase(repo, src, usecase.Options{
		PageSize: g.pageSize,
		Locale:   locale,
	}), nil
}
