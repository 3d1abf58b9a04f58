// Package sampledata synthesizes the small in-memory datasets the gallery
// binaries feed into their charts: numeric sequences, random series,
// category labels and a small example network.
//
// Everything is deterministic from an injected *rand.Rand so the generated
// HTML artifacts are reproducible under a fixed -seed.
package sampledata

import (
	"math"
	"math/rand"
)

// Linspace returns n evenly spaced values from start to stop inclusive.
// n < 2 yields a single-element slice containing start.
func Linspace(start, stop float64, n int) []float64 {
	if n < 2 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Wave evaluates amp*sin(freq*x + phase) for every x.
func Wave(xs []float64, amp, freq, phase float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = amp * math.Sin(freq*x+phase)
	}
	return out
}

// CosWave evaluates amp*cos(freq*x + phase) for every x.
func CosWave(xs []float64, amp, freq, phase float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = amp * math.Cos(freq*x+phase)
	}
	return out
}

// Offset returns a copy of xs shifted by d.
func Offset(xs []float64, d float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x + d
	}
	return out
}

// RandomScatter returns n uniform points in [0,max) per axis.
// The returned x and y slices always have equal length.
func RandomScatter(r *rand.Rand, n int, max float64) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = r.Float64() * max
		ys[i] = r.Float64() * max
	}
	return xs, ys
}

// RandomInts returns n integers in [lo,hi).
func RandomInts(r *rand.Rand, n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + r.Intn(hi-lo)
	}
	return out
}

// RandomChoice returns n elements drawn with replacement from options.
func RandomChoice(r *rand.Rand, options []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = options[r.Intn(len(options))]
	}
	return out
}

// Normal returns n samples from N(mean, stddev²).
func Normal(r *rand.Rand, n int, mean, stddev float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.NormFloat64()*stddev + mean
	}
	return out
}

// RandomWalk returns a series starting at start where each step adds a
// N(0, step²) increment. Used for synthetic price histories.
func RandomWalk(r *rand.Rand, n int, start, step float64) []float64 {
	out := make([]float64, n)
	v := start
	for i := 0; i < n; i++ {
		v += r.NormFloat64() * step
		out[i] = v
	}
	return out
}

// CumSum returns the running sum of xs.
func CumSum(xs []float64) []float64 {
	out := make([]float64, len(xs))
	sum := 0.0
	for i, x := range xs {
		sum += x
		out[i] = sum
	}
	return out
}

// MovingAverage returns the rolling mean of xs over the given window. The
// first window-1 positions are NaN: the mean is undefined until a full
// window of samples exists. Callers rendering to JSON must map NaN to null.
func MovingAverage(xs []float64, window int) []float64 {
	out := make([]float64, len(xs))
	if window <= 0 {
		window = 1
	}
	sum := 0.0
	for i, x := range xs {
		sum += x
		if i >= window {
			sum -= xs[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// Histogram bins xs into the given number of equal-width bins over
// [min(xs), max(xs)]. It returns the per-bin counts and the bins+1 edges.
// The top edge is inclusive so every sample lands in exactly one bin.
func Histogram(xs []float64, bins int) (counts []int, edges []float64) {
	if bins <= 0 || len(xs) == 0 {
		return nil, nil
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	if hi == lo {
		hi = lo + 1 // all samples identical: single degenerate bin range
	}
	counts = make([]int, bins)
	edges = make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	for _, x := range xs {
		idx := int((x - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts, edges
}
