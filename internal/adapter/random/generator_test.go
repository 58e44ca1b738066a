package random

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-insights/internal/core/domain"
)

func fixedNow() time.Time { return time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC) }

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), fixedNow)
}

func TestDashboardIsDeterministicForSeed(t *testing.T) {
	a := newTestGenerator(99).Dashboard(50)
	b := newTestGenerator(99).Dashboard(50)
	assert.Equal(t, a, b)
}

func TestCampaignsShape(t *testing.T) {
	rows := newTestGenerator(1).Campaigns(50)
	require.Len(t, rows, 50)

	seen := map[string]bool{}
	for _, r := range rows {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
		assert.True(t, r.Status.Valid())
		assert.GreaterOrEqual(t, r.Impressions, int64(10000))
		assert.GreaterOrEqual(t, r.CTR, 1.0)
		assert.Less(t, r.CTR, 10.0)

		d, err := r.ParsedDate()
		require.NoError(t, err)
		assert.Equal(t, dataYear, d.Year())
	}
	assert.Equal(t, "campaign-1", rows[0].ID)
}

func TestNextMetricsBoundedDrift(t *testing.T) {
	g := newTestGenerator(5)
	prev := domain.MetricSnapshot{Revenue: 235000, Users: 10450, Conversions: 3.4, GrowthRate: 12.8, RevenueChange: 8.5}
	for i := 0; i < 500; i++ {
		next := g.NextMetrics(prev)
		assert.InDelta(t, prev.Revenue, next.Revenue, revenueDrift)
		assert.InDelta(t, prev.Users, next.Users, usersDrift)
		assert.InDelta(t, prev.Conversions, next.Conversions, conversionsDrift+0.005)
		assert.InDelta(t, prev.GrowthRate, next.GrowthRate, growthDrift+0.005)
		assert.Equal(t, prev.RevenueChange, next.RevenueChange)
		prev = next
	}
}

func TestNextMetricsNeverNegative(t *testing.T) {
	g := newTestGenerator(3)
	m := domain.MetricSnapshot{}
	for i := 0; i < 200; i++ {
		m = g.NextMetrics(m)
		assert.GreaterOrEqual(t, m.Revenue, 0.0)
		assert.GreaterOrEqual(t, m.Users, int64(0))
		assert.GreaterOrEqual(t, m.Conversions, 0.0)
		assert.GreaterOrEqual(t, m.GrowthRate, 0.0)
	}
}

func TestRefreshReplacesRowsWholesale(t *testing.T) {
	g := newTestGenerator(11)
	prev := g.Dashboard(20)
	next := g.Refresh(prev, 30)

	assert.Len(t, next.Campaigns, 30)
	assert.Len(t, prev.Campaigns, 20)
	assert.Equal(t, prev.Charts, next.Charts)
	assert.Len(t, next.Cards, 4)
}

func TestCardsFormatting(t *testing.T) {
	cards := newTestGenerator(2).Cards(domain.MetricSnapshot{Revenue: 124750, Users: 48392, Conversions: 3.456, GrowthRate: 12.5})
	require.Len(t, cards, 4)
	assert.Equal(t, "$124,750", cards[0].Value)
	assert.Equal(t, "48,392", cards[1].Value)
	assert.Equal(t, "3.46%", cards[2].Value)
	assert.Equal(t, "12.5%", cards[3].Value)
}
