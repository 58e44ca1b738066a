package random

import "campaign-insights/internal/core/domain"

// Bounds of the per-refresh drift applied by NextMetrics.
const (
	revenueDrift     = 2500
	usersDrift       = 50
	conversionsDrift = 0.1
	growthDrift      = 0.25
)

// NextMetrics applies an independent bounded random delta to each drifting
// metric of prev. Values never drop below zero; the change percentages are
// left untouched.
func (g *Generator) NextMetrics(prev domain.MetricSnapshot) domain.MetricSnapshot {
	next := prev
	next.Revenue = max(0, prev.Revenue+float64(g.rng.Intn(2*revenueDrift)-revenueDrift))
	next.Users = max(0, prev.Users+int64(g.rng.Intn(2*usersDrift)-usersDrift))
	next.Conversions = max(0, round2(prev.Conversions+g.drift(conversionsDrift)))
	next.GrowthRate = max(0, round2(prev.GrowthRate+g.drift(growthDrift)))
	return next
}

// drift returns a value in [-bound, bound).
func (g *Generator) drift(bound float64) float64 {
	return g.rng.Float64()*2*bound - bound
}
