package domain

import "time"

// MetricSnapshot holds the headline numbers that drift on every refresh.
type MetricSnapshot struct {
	Revenue           float64 `json:"revenue"`
	Users             int64   `json:"users"`
	Conversions       float64 `json:"conversions"` // conversion rate, percent
	GrowthRate        float64 `json:"growthRate"`
	RevenueChange     float64 `json:"revenueChange"`
	UsersChange       float64 `json:"usersChange"`
	ConversionsChange float64 `json:"conversionsChange"`
}

// ChangeType tells whether a metric moved up or down.
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
)

// MetricCard is a pre-formatted KPI tile.
type MetricCard struct {
	Title      string     `json:"title"`
	Value      string     `json:"value"`
	Change     float64    `json:"change"`
	ChangeType ChangeType `json:"changeType"`
	Icon       string     `json:"icon"`
	Color      string     `json:"color"`
}

// ChartPoint is one point of a chart series. Optional fields are nil when
// the series does not carry them.
type ChartPoint struct {
	Name        string   `json:"name"`
	Value       float64  `json:"value"`
	Revenue     *float64 `json:"revenue,omitempty"`
	Users       *float64 `json:"users,omitempty"`
	Conversions *float64 `json:"conversions,omitempty"`
	Date        string   `json:"date,omitempty"`
}

// Charts groups every chart series shown on the dashboard.
type Charts struct {
	Revenue               []ChartPoint `json:"revenue"`
	UserGrowth            []ChartPoint `json:"userGrowth"`
	ConversionRate        []ChartPoint `json:"conversionRate"`
	ChannelBreakdown      []ChartPoint `json:"channelBreakdown"`
	PerformanceComparison []ChartPoint `json:"performanceComparison"`
}

// Dashboard is the complete dataset behind one render of the dashboard. It
// is always replaced wholesale, never patched.
type Dashboard struct {
	Metrics     MetricSnapshot `json:"metrics"`
	Cards       []MetricCard   `json:"cards"`
	Charts      Charts         `json:"charts"`
	Campaigns   []CampaignRow  `json:"campaigns"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

// Clone returns a deep copy of d.
func (d Dashboard) Clone() Dashboard {
	out := d
	out.Cards = cloneSlice(d.Cards)
	out.Campaigns = cloneSlice(d.Campaigns)
	out.Charts = Charts{
		Revenue:               clonePoints(d.Charts.Revenue),
		UserGrowth:            clonePoints(d.Charts.UserGrowth),
		ConversionRate:        clonePoints(d.Charts.ConversionRate),
		ChannelBreakdown:      clonePoints(d.Charts.ChannelBreakdown),
		PerformanceComparison: clonePoints(d.Charts.PerformanceComparison),
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func clonePoints(in []ChartPoint) []ChartPoint {
	out := cloneSlice(in)
	for i := range out {
		out[i].Revenue = cloneFloat(out[i].Revenue)
		out[i].Users = cloneFloat(out[i].Users)
		out[i].Conversions = cloneFloat(out[i].Conversions)
	}
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
