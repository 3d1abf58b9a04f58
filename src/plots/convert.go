// Package plots builds the gallery's chart objects. Every constructor takes
// plain data slices and returns a configured go-echarts chart, so the
// binaries stay thin: synthesize data, build charts, compose a page.
package plots

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/opts"
)

// axisLabels formats numeric x values as category labels.
func axisLabels(xs []float64) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = fmt.Sprintf("%.2f", x)
	}
	return out
}

func lineData(ys []float64) []opts.LineData {
	out := make([]opts.LineData, len(ys))
	for i, y := range ys {
		out[i] = opts.LineData{Value: y}
	}
	return out
}

func barData(vs []int) []opts.BarData {
	out := make([]opts.BarData, len(vs))
	for i, v := range vs {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

// xyScatterData pairs xs and ys into value-axis scatter points with one
// symbol size for all points.
func xyScatterData(xs, ys []float64, symbolSize int) []opts.ScatterData {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	out := make([]opts.ScatterData, n)
	for i := 0; i < n; i++ {
		out[i] = opts.ScatterData{Value: []interface{}{xs[i], ys[i]}, SymbolSize: symbolSize}
	}
	return out
}
