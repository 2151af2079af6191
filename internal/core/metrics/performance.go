package metrics

import "hrdesk/internal/core/domain"

// Trend summarises a monthly series
type Trend struct {
	Total                   float64 `json:"total"`
	Average                 float64 `json:"average"`
	PercentChangeLastPeriod float64 `json:"percent_change_last_period"`
}

// ComputePerformanceTrend totals and averages the series. The percent change
// compares the last two points and is 0 when it is undefined.
func ComputePerformanceTrend(series []float64) Trend {
	var t Trend
	for _, v := range series {
		t.Total += v
	}
	if n := len(series); n > 0 {
		t.Average = t.Total / float64(n)
	}
	if n := len(series); n >= 2 && series[n-2] != 0 {
		last, prev := series[n-1], series[n-2]
		t.PercentChangeLastPeriod = (last - prev) / prev * 100
	}
	return t
}

// Scores extracts the score series from performance points
func Scores(points []domain.PerformancePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Score
	}
	return out
}
