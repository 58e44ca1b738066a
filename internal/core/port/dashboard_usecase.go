package port

import (
	"context"
	"errors"
	"time"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/export"
)

// ErrInvalidQuery wraps every validation failure of a CampaignQuery.
var ErrInvalidQuery = errors.New("invalid query")

// DashboardUseCase defines the operations the dashboard exposes. It is the
// primary port into the application.
type DashboardUseCase interface {
	// Overview returns the KPI cards, chart series and raw metrics.
	Overview(ctx context.Context) (*OverviewResp, error)

	// ListCampaigns filters, sorts and paginates the campaign table.
	ListCampaigns(ctx context.Context, q CampaignQuery) (*CampaignPage, error)

	// ExportCampaigns serializes the whole filtered and sorted row set,
	// ignoring q.Page. domain.ErrNoData is returned when no row matches.
	ExportCampaigns(ctx context.Context, q CampaignQuery, format export.Format, baseName string) (*ExportFile, error)

	// ExportReport renders the analytics report PDF.
	ExportReport(ctx context.Context, baseName string) (*ExportFile, error)

	// Refresh pulls the next dashboard from the data source and stores it.
	Refresh(ctx context.Context) error
}

// CampaignQuery carries the table state owned by the caller.
type CampaignQuery struct {
	Filter domain.FilterCriteria
	Sort   domain.SortSpec
	Page   domain.PageSpec
}

// CampaignPage is one page of the campaign table.
type CampaignPage struct {
	Rows       []domain.CampaignRow `json:"rows"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
	TotalCount int                  `json:"totalCount"`
	TotalPages int                  `json:"totalPages"`
	Sort       string               `json:"sort"`
}

// OverviewResp is the dashboard header: cards, charts and raw metrics.
type OverviewResp struct {
	Metrics     domain.MetricSnapshot `json:"metrics"`
	Cards       []domain.MetricCard   `json:"cards"`
	Charts      domain.Charts         `json:"charts"`
	Campaigns   int                   `json:"campaigns"`
	GeneratedAt time.Time             `json:"generatedAt"`
}

// ExportFile is a rendered download.
type ExportFile struct {
	Name        string
	ContentType string
	Rows        int
	Body        []byte
}
