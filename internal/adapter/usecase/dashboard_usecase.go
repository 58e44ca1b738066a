package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/language"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/engine"
	"campaign-insights/internal/core/export"
	"campaign-insights/internal/core/port"
)

// DashboardUseCase implements port.DashboardUseCase. It reads snapshots
// from the repository, runs them through the table engine and hands the
// result to the exporters. It holds no per-request state.
type DashboardUseCase struct {
	repo   port.DashboardRepository
	source port.DataSource
	engine *engine.Engine
	locale language.Tag
	now    func() time.Time
}

// Options tunes a DashboardUseCase. Zero values pick the defaults.
type Options struct {
	PageSize int
	Locale   language.Tag
	Now      func() time.Time
}

// NewDashboardUseCase wires the repository and the data source into a use
// case.
func NewDashboardUseCase(repo port.DashboardRepository, source port.DataSource, opts Options) *DashboardUseCase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Locale == language.Und {
		opts.Locale = language.English
	}
	return &DashboardUseCase{
		repo:   repo,
		source: source,
		engine: engine.New(engine.Options{Locale: opts.Locale, PageSize: opts.PageSize}),
		locale: opts.Locale,
		now:    opts.Now,
	}
}

// Overview returns the dashboard header.
func (u *DashboardUseCase) Overview(ctx context.Context) (*port.OverviewResp, error) {
	d, err := u.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &port.OverviewResp{
		Metrics:     d.Metrics,
		Cards:       d.Cards,
		Charts:      d.Charts,
		Campaigns:   len(d.Campaigns),
		GeneratedAt: d.GeneratedAt,
	}, nil
}

// ListCampaigns returns one page of the filtered and sorted table.
func (u *DashboardUseCase) ListCampaigns(ctx context.Context, q port.CampaignQuery) (*port.CampaignPage, error) {
	q, err := normalize(q)
	if err != nil {
		return nil, err
	}
	d, err := u.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	size := q.Page.Size
	if size <= 0 {
		size = u.engine.PageSize()
	}
	page := u.engine.View(d.Campaigns, q.Filter, q.Sort, domain.PageSpec{Page: q.Page.Page, Size: size})
	return &port.CampaignPage{
		Rows:       page.Rows,
		Page:       q.Page.Page,
		PageSize:   size,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Sort:       q.Sort.String(),
	}, nil
}

// ExportCampaigns serializes every row matching q. Pagination is ignored.
// The rows come from one snapshot taken at call time, so a refresh that
// lands mid-export does not change the file.
func (u *DashboardUseCase) ExportCampaigns(ctx context.Context, q port.CampaignQuery, format export.Format, baseName string) (*port.ExportFile, error) {
	q, err := normalize(q)
	if err != nil {
		return nil, err
	}
	d, err := u.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	rows := u.engine.Apply(d.Campaigns, q.Filter, q.Sort)
	if len(rows) == 0 {
		return nil, domain.ErrNoData
	}
	body, err := export.Serialize(rows, format, export.Options{GeneratedAt: u.now(), Locale: u.locale})
	if err != nil {
		return nil, fmt.Errorf("serialize %s: %w", format, err)
	}
	if baseName == "" {
		baseName = defaultBaseName(format)
	}
	return &port.ExportFile{
		Name:        export.Filename(baseName, format),
		ContentType: format.ContentType(),
		Rows:        len(rows),
		Body:        body,
	}, nil
}

// ExportReport renders the analytics report PDF from the current cards and
// charts.
func (u *DashboardUseCase) ExportReport(ctx context.Context, baseName string) (*port.ExportFile, error) {
	d, err := u.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	body, err := export.MetricsReport(d.Cards, d.Charts, export.Options{GeneratedAt: u.now(), Locale: u.locale})
	if err != nil {
		return nil, fmt.Errorf("render analytics report: %w", err)
	}
	if baseName == "" {
		baseName = "analytics-report"
	}
	return &port.ExportFile{
		Name:        export.Filename(baseName, export.FormatPDF),
		ContentType: export.FormatPDF.ContentType(),
		Rows:        len(d.Cards),
		Body:        body,
	}, nil
}

// Refresh replaces the stored dashboard with the next one from the data
// source.
func (u *DashboardUseCase) Refresh(ctx context.Context) error {
	prev, err := u.repo.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("read dashboard: %w", err)
	}
	if err = u.repo.Replace(ctx, u.source.Next(prev)); err != nil {
		return fmt.Errorf("store dashboard: %w", err)
	}
	return nil
}

func defaultBaseName(f export.Format) string {
	if f == export.FormatPDF {
		return "campaign-report"
	}
	return export.DefaultBaseName
}

// normalize validates q and resolves sort aliases.
func normalize(q port.CampaignQuery) (port.CampaignQuery, error) {
	if q.Filter.Status != "" && q.Filter.Status != domain.StatusAll && !domain.Status(q.Filter.Status).Valid() {
		return q, fmt.Errorf("%w: status %q", port.ErrInvalidQuery, q.Filter.Status)
	}
	field, err := domain.ParseSortField(string(q.Sort.Field))
	if err != nil {
		return q, fmt.Errorf("%w: sort field %q", port.ErrInvalidQuery, q.Sort.Field)
	}
	dir, err := domain.ParseSortDirection(string(q.Sort.Direction))
	if err != nil {
		return q, fmt.Errorf("%w: sort direction %q", port.ErrInvalidQuery, q.Sort.Direction)
	}
	q.Sort = domain.SortSpec{Field: field, Direction: dir}
	return q, nil
}
