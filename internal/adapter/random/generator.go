// Package random is the mock data source: it fabricates a dashboard and
// drifts it on every refresh. All randomness comes from the injected
// *rand.Rand so output is reproducible for a given seed.
package random

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"campaign-insights/internal/core/domain"
)

var campaignNames = []string{
	"Summer Sale 2024", "Black Friday Campaign", "Brand Awareness Q1", "Product Launch",
	"Holiday Promotion", "Back to School", "Valentine's Special", "Spring Collection",
}

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// dataYear is the calendar year mock rows and chart points fall in.
const dataYear = 2024

// Generator produces mock dashboards. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
	p   *message.Printer
}

// NewGenerator returns a Generator drawing from rng. A nil now defaults to
// time.Now.
func NewGenerator(rng *rand.Rand, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now, p: message.NewPrinter(language.English)}
}

// NewSeeded returns a Generator seeded with seed, or with the current time
// when seed is zero.
func NewSeeded(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGenerator(rand.New(rand.NewSource(seed)), nil)
}

// between returns an integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return g.rng.Intn(hi-lo+1) + lo
}

// Dashboard builds a complete dataset with rowCount campaign rows.
func (g *Generator) Dashboard(rowCount int) domain.Dashboard {
	metrics := domain.MetricSnapshot{
		Revenue:           235000,
		Users:             10450,
		Conversions:       3.4,
		GrowthRate:        12.8,
		RevenueChange:     8.5,
		UsersChange:       -2.3,
		ConversionsChange: 5.2,
	}
	return domain.Dashboard{
		Metrics:     metrics,
		Cards:       g.Cards(metrics),
		Charts:      g.Charts(),
		Campaigns:   g.Campaigns(rowCount),
		GeneratedAt: g.now().UTC(),
	}
}

// Refresh replaces the campaign rows and cards wholesale and drifts the
// metric snapshot. Chart series are carried over unchanged.
func (g *Generator) Refresh(prev domain.Dashboard, rowCount int) domain.Dashboard {
	next := prev.Clone()
	next.Metrics = g.NextMetrics(prev.Metrics)
	next.Cards = g.Cards(next.Metrics)
	next.Campaigns = g.Campaigns(rowCount)
	next.GeneratedAt = g.now().UTC()
	return next
}

// Campaigns returns n rows with ids campaign-1..campaign-n. CTR and CPC
// are drawn independently of the counters, and clicks may exceed
// impressions.
func (g *Generator) Campaigns(n int) []domain.CampaignRow {
	rows := make([]domain.CampaignRow, n)
	for i := range rows {
		rows[i] = domain.CampaignRow{
			ID:          fmt.Sprintf("campaign-%d", i+1),
			Campaign:    campaignNames[g.rng.Intn(len(campaignNames))],
			Status:      domain.Statuses[g.rng.Intn(len(domain.Statuses))],
			Impressions: int64(g.between(10000, 500000)),
			Clicks:      int64(g.between(500, 25000)),
			Conversions: int64(g.between(20, 1200)),
			CTR:         round2(float64(g.between(1, 8)) + g.rng.Float64()),
			CPC:         round2(float64(g.between(1, 5)) + g.rng.Float64()),
			Revenue:     float64(g.between(1000, 50000)),
			Date:        time.Date(dataYear, time.Month(g.rng.Intn(12)+1), g.rng.Intn(28)+1, 0, 0, 0, 0, time.UTC).Format(time.DateOnly),
		}
	}
	return rows
}

// Cards formats the KPI tiles for m with random change badges.
func (g *Generator) Cards(m domain.MetricSnapshot) []domain.MetricCard {
	return []domain.MetricCard{
		{
			Title:      "Total Revenue",
			Value:      g.p.Sprintf("$%d", int64(math.Round(m.Revenue))),
			Change:     float64(g.between(-5, 25)),
			ChangeType: g.changeType(0.3),
			Icon:       "TrendingUp",
			Color:      "text-emerald-600",
		},
		{
			Title:      "Active Users",
			Value:      g.p.Sprintf("%d", m.Users),
			Change:     float64(g.between(-3, 18)),
			ChangeType: g.changeType(0.2),
			Icon:       "Users",
			Color:      "text-blue-600",
		},
		{
			Title:      "Conversions",
			Value:      fmt.Sprintf("%.2f%%", m.Conversions),
			Change:     float64(g.between(-8, 22)),
			ChangeType: g.changeType(0.25),
			Icon:       "Target",
			Color:      "text-purple-600",
		},
		{
			Title:      "Growth Rate",
			Value:      fmt.Sprintf("%.1f%%", m.GrowthRate),
			Change:     float64(g.between(-2, 15)),
			ChangeType: g.changeType(0.35),
			Icon:       "BarChart3",
			Color:      "text-orange-600",
		},
	}
}

func (g *Generator) changeType(decreaseOdds float64) domain.ChangeType {
	if g.rng.Float64() > decreaseOdds {
		return domain.ChangeIncrease
	}
	return domain.ChangeDecrease
}

// Charts builds every chart series for dataYear.
func (g *Generator) Charts() domain.Charts {
	var c domain.Charts
	for i, m := range months {
		date := time.Date(dataYear, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
		c.Revenue = append(c.Revenue, domain.ChartPoint{
			Name: m, Value: float64(g.between(80000, 160000)), Revenue: g.ptr(80000, 160000), Date: date,
		})
		c.UserGrowth = append(c.UserGrowth, domain.ChartPoint{
			Name: m, Value: float64(g.between(35000, 65000)), Users: g.ptr(35000, 65000), Date: date,
		})
		c.ConversionRate = append(c.ConversionRate, domain.ChartPoint{
			Name: m, Value: float64(g.between(2, 8)), Conversions: g.ptr(2000, 4000), Date: date,
		})
	}
	for _, ch := range []struct {
		name   string
		lo, hi int
	}{
		{"Google Ads", 25, 35}, {"Facebook", 20, 30}, {"Instagram", 15, 25},
		{"LinkedIn", 10, 20}, {"Twitter", 5, 15}, {"Others", 5, 10},
	} {
		c.ChannelBreakdown = append(c.ChannelBreakdown, domain.ChartPoint{Name: ch.name, Value: float64(g.between(ch.lo, ch.hi))})
	}
	for q, lo := range []int{70, 75, 80, 85} {
		c.PerformanceComparison = append(c.PerformanceComparison, domain.ChartPoint{
			Name:    fmt.Sprintf("Q%d", q+1),
			Value:   float64(g.between(lo, lo+20)),
			Revenue: g.ptr(300000+q*50000, 400000+q*50000),
			Date:    time.Date(dataYear, time.Month(q*3+1), 1, 0, 0, 0, 0, time.UTC).Format(time.DateOnly),
		})
	}
	return c
}

func (g *Generator) ptr(lo, hi int) *float64 {
	v := float64(g.between(lo, hi))
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
