package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-insights/internal/adapter/memory"
	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/export"
	"campaign-insights/internal/core/port"
	"campaign-insights/internal/core/port/mocks"
)

var fixedNow = func() time.Time { return time.Date(2024, 10, 1, 8, 0, 0, 0, time.UTC) }

func dashboardWith(n int) domain.Dashboard {
	rows := make([]domain.CampaignRow, n)
	for i := range rows {
		status := domain.StatusActive
		if i%3 == 0 {
			status = domain.StatusPaused
		}
		rows[i] = domain.CampaignRow{
			ID:       fmt.Sprintf("campaign-%d", i+1),
			Campaign: fmt.Sprintf("Campaign %d", i+1),
			Status:   status,
			Revenue:  float64(1000 + i),
			Date:     "2024-05-01",
		}
	}
	return domain.Dashboard{
		Cards:     []domain.MetricCard{{Title: "Total Revenue", Value: "$1", ChangeType: domain.ChangeIncrease}},
		Campaigns: rows,
	}
}

func newUseCase(t *testing.T, d domain.Dashboard) (*DashboardUseCase, *mocks.MockDashboardRepository) {
	repo := mocks.NewMockDashboardRepository(t)
	repo.EXPECT().Snapshot(mock.Anything).Return(d, nil).Maybe()
	return NewDashboardUseCase(repo, mocks.NewMockDataSource(t), Options{PageSize: 10, Now: fixedNow}), repo
}

func TestListCampaignsPaginates(t *testing.T) {
	uc, _ := newUseCase(t, dashboardWith(12))

	page, err := uc.ListCampaigns(context.Background(), port.CampaignQuery{
		Sort: domain.DefaultSort(),
		Page: domain.PageSpec{Page: 2},
	})
	require.NoError(t, err)
	assert.Len(t, page.Rows, 2)
	assert.Equal(t, 12, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, "revenue:desc", page.Sort)
	assert.Equal(t, "campaign-2", page.Rows[0].ID)
}

func TestListCampaignsResolvesNameAlias(t *testing.T) {
	uc, _ := newUseCase(t, dashboardWith(3))

	page, err := uc.ListCampaigns(context.Background(), port.CampaignQuery{
		Sort: domain.SortSpec{Field: "name", Direction: domain.SortDesc},
		Page: domain.PageSpec{Page: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "campaign:desc", page.Sort)
	assert.Equal(t, "campaign-3", page.Rows[0].ID)
}

func TestListCampaignsRejectsInvalidQuery(t *testing.T) {
	uc, _ := newUseCase(t, dashboardWith(3))
	ctx := context.Background()

	_, err := uc.ListCampaigns(ctx, port.CampaignQuery{Filter: domain.FilterCriteria{Status: "archived"}, Sort: domain.DefaultSort()})
	assert.ErrorIs(t, err, port.ErrInvalidQuery)

	_, err = uc.ListCampaigns(ctx, port.CampaignQuery{Sort: domain.SortSpec{Field: "status", Direction: domain.SortAsc}})
	assert.ErrorIs(t, err, port.ErrInvalidQuery)

	_, err = uc.ListCampaigns(ctx, port.CampaignQuery{Sort: domain.SortSpec{Field: domain.SortByCTR, Direction: "up"}})
	assert.ErrorIs(t, err, port.ErrInvalidQuery)
}

func TestExportCampaignsUsesWholeFilteredSet(t *testing.T) {
	uc, _ := newUseCase(t, dashboardWith(25))
	q := port.CampaignQuery{
		Filter: domain.FilterCriteria{Status: string(domain.StatusActive)},
		Sort:   domain.DefaultSort(),
		Page:   domain.PageSpec{Page: 1, Size: 5},
	}
	listed, err := uc.ListCampaigns(context.Background(), q)
	require.NoError(t, err)

	file, err := uc.ExportCampaigns(context.Background(), q, export.FormatCSV, "")
	require.NoError(t, err)

	assert.Equal(t, listed.TotalCount, file.Rows)
	assert.NotEqual(t, len(listed.Rows), file.Rows)
	assert.Equal(t, "campaign-data.csv", file.Name)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Body)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, listed.TotalCount+1)
}

func TestExportCampaignsNoData(t *testing.T) {
	uc, _ := newUseCase(t, dashboardWith(6))
	q := port.CampaignQuery{Filter: domain.FilterCriteria{Text: "does not exist"}, Sort: domain.DefaultSort()}

	file, err := uc.ExportCampaigns(context.Background(), q, export.FormatPDF, "report")
	assert.ErrorIs(t, err, domain.ErrNoData)
	assert.Nil(t, file)
}

func TestExportCampaignsPDFName(t *testing.T) {
	uc, _ := newUseCase(t, dashboardWith(2))

	file, err := uc.ExportCampaigns(context.Background(), port.CampaignQuery{Sort: domain.DefaultSort()}, export.FormatPDF, "")
	require.NoError(t, err)
	assert.Equal(t, "campaign-report.pdf", file.Name)
	assert.True(t, bytes.HasPrefix(file.Body, []byte("%PDF-")))
}

func TestExportSnapshotUnaffectedByRefresh(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDashboardRepository()
	require.NoError(t, repo.Replace(ctx, dashboardWith(4)))

	src := mocks.NewMockDataSource(t)
	src.EXPECT().Next(mock.Anything).Return(dashboardWith(40))
	uc := NewDashboardUseCase(repo, src, Options{Now: fixedNow})

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.NoError(t, uc.Refresh(ctx))

	assert.Len(t, snap.Campaigns, 4)
	file, err := uc.ExportCampaigns(ctx, port.CampaignQuery{Sort: domain.DefaultSort()}, export.FormatCSV, "")
	require.NoError(t, err)
	assert.Equal(t, 40, file.Rows)
}

func TestOverview(t *testing.T) {
	d := dashboardWith(7)
	d.GeneratedAt = fixedNow()
	uc, _ := newUseCase(t, d)

	resp, err := uc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Campaigns)
	assert.Equal(t, d.Cards, resp.Cards)
	assert.Equal(t, fixedNow(), resp.GeneratedAt)
}

func TestExportReport(t *testing.T) {
	uc, _ := newUseCase(t, dashboardWith(1))

	file, err := uc.ExportReport(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "analytics-report.pdf", file.Name)
	assert.Equal(t, "application/pdf", file.ContentType)
}

func TestRefreshStoresNextDashboard(t *testing.T) {
	repo := mocks.NewMockDashboardRepository(t)
	src := mocks.NewMockDataSource(t)
	prev, next := dashboardWith(1), dashboardWith(2)

	repo.EXPECT().Snapshot(mock.Anything).Return(prev, nil)
	src.EXPECT().Next(prev).Return(next)
	repo.EXPECT().Replace(mock.Anything, next).Return(nil)

	uc := NewDashboardUseCase(repo, src, Options{})
	require.NoError(t, uc.Refresh(context.Background()))
}

func TestRefreshPropagatesStoreError(t *testing.T) {
	repo := mocks.NewMockDashboardRepository(t)
	src := mocks.NewMockDataSource(t)
	boom := errors.New("disk full")

	repo.EXPECT().Snapshot(mock.Anything).Return(domain.Dashboard{}, nil)
	src.EXPECT().Next(mock.Anything).Return(domain.Dashboard{})
	repo.EXPECT().Replace(mock.Anything, mock.Anything).Return(boom)

	err := NewDashboardUseCase(repo, src, Options{}).Refresh(context.Background())
	assert.ErrorIs(t, err, boom)
}
