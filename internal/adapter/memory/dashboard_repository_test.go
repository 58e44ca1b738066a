package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-insights/internal/core/domain"
)

func TestSnapshotBeforeReplace(t *testing.T) {
	_, err := NewDashboardRepository().Snapshot(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestSnapshotIsolatedFromLaterReplace(t *testing.T) {
	ctx := context.Background()
	repo := NewDashboardRepository()
	require.NoError(t, repo.Replace(ctx, domain.Dashboard{Campaigns: []domain.CampaignRow{{ID: "old"}}}))

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Replace(ctx, domain.Dashboard{Campaigns: []domain.CampaignRow{{ID: "new"}, {ID: "newer"}}}))
	snap.Campaigns[0].Campaign = "mutated by reader"

	assert.Equal(t, "old", snap.Campaigns[0].ID)
	latest, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, latest.Campaigns, 2)
}

func TestReplaceCopiesInput(t *testing.T) {
	ctx := context.Background()
	repo := NewDashboardRepository()
	rows := []domain.CampaignRow{{ID: "a"}}
	require.NoError(t, repo.Replace(ctx, domain.Dashboard{Campaigns: rows}))
	rows[0].ID = "changed"

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", snap.Campaigns[0].ID)
}

func TestConcurrentReadersAndWriter(t *testing.T) {
	ctx := context.Background()
	repo := NewDashboardRepository()
	require.NoError(t, repo.Replace(ctx, domain.Dashboard{}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = repo.Replace(ctx, domain.Dashboard{Campaigns: []domain.CampaignRow{{ID: fmt.Sprint(i)}}})
		}(i)
		go func() {
			defer wg.Done()
			_, err := repo.Snapshot(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
