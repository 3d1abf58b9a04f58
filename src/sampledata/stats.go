package sampledata

import (
	"fmt"
	"math/rand"

	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics for one series.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

// Describe computes descriptive statistics for xs.
func Describe(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, fmt.Errorf("describe: empty series")
	}
	s := Summary{Count: len(xs)}
	var err error
	if s.Mean, err = stats.Mean(xs); err != nil {
		return Summary{}, fmt.Errorf("mean: %w", err)
	}
	if s.Median, err = stats.Median(xs); err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}
	if s.Min, err = stats.Min(xs); err != nil {
		return Summary{}, fmt.Errorf("min: %w", err)
	}
	if s.Max, err = stats.Max(xs); err != nil {
		return Summary{}, fmt.Errorf("max: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviation(xs); err != nil {
		return Summary{}, fmt.Errorf("stddev: %w", err)
	}
	return s, nil
}

// CorrelationMatrix returns the Pearson correlation matrix of the given
// series. All series must share one length. The result is symmetric with a
// unit diagonal.
func CorrelationMatrix(series [][]float64) ([][]float64, error) {
	n := len(series)
	if n == 0 {
		return nil, fmt.Errorf("correlation matrix: no series")
	}
	for i := 1; i < n; i++ {
		if len(series[i]) != len(series[0]) {
			return nil, fmt.Errorf("correlation matrix: series %d has %d samples, want %d", i, len(series[i]), len(series[0]))
		}
	}
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c, err := stats.Pearson(series[i], series[j])
			if err != nil {
				return nil, fmt.Errorf("pearson(%d,%d): %w", i, j, err)
			}
			m[i][j] = c
			m[j][i] = c
		}
	}
	return m, nil
}

// BusinessMetricNames lists the synthetic metrics used by the correlation
// heatmap, in matrix order.
var BusinessMetricNames = []string{
	"Revenue", "Profit", "Employees", "R&D Spend",
	"Marketing", "Customer Sat", "Market Share", "Innovation Index",
}

// BusinessMetrics synthesizes one series per business metric. A few pairs
// are engineered to correlate strongly (revenue/profit, revenue/market
// share, R&D/innovation) so the heatmap has visible structure.
func BusinessMetrics(r *rand.Rand, samples int) [][]float64 {
	base := make([][]float64, len(BusinessMetricNames))
	for i := range base {
		base[i] = Normal(r, samples, 0, 1)
	}
	mix := func(dst, src int, weight float64) {
		for k := range base[dst] {
			base[dst][k] = weight*base[src][k] + (1-weight)*base[dst][k]
		}
	}
	mix(1, 0, 0.85) // profit follows revenue
	mix(6, 0, 0.70) // market share follows revenue
	mix(7, 3, 0.65) // innovation follows R&D spend
	return base
}
