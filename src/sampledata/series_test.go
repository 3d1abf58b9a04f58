package sampledata

import (
	"math"
	"math/rand"
	"testing"
)

func TestLinspace(t *testing.T) {
	xs := Linspace(0, 4*math.Pi, 100)
	if len(xs) != 100 {
		t.Fatalf("expected 100 values got %d", len(xs))
	}
	if xs[0] != 0 {
		t.Fatalf("first value should be start, got %g", xs[0])
	}
	if math.Abs(xs[99]-4*math.Pi) > 1e-12 {
		t.Fatalf("last value should be stop, got %g", xs[99])
	}
	// single element degenerate case
	if got := Linspace(3, 9, 1); len(got) != 1 || got[0] != 3 {
		t.Fatalf("n=1 should yield [start], got %v", got)
	}
}

func TestWaveLengthsMatch(t *testing.T) {
	xs := Linspace(0, 2*math.Pi, 50)
	ys := Wave(xs, 1, 1, 0)
	yc := CosWave(xs, 1, 1, 0)
	if len(ys) != len(xs) || len(yc) != len(xs) {
		t.Fatalf("series length mismatch: x=%d sin=%d cos=%d", len(xs), len(ys), len(yc))
	}
	if math.Abs(ys[0]) > 1e-12 {
		t.Fatalf("sin(0) should be 0, got %g", ys[0])
	}
	if math.Abs(yc[0]-1) > 1e-12 {
		t.Fatalf("cos(0) should be 1, got %g", yc[0])
	}
}

func TestRandomScatterDeterministic(t *testing.T) {
	x1, y1 := RandomScatter(rand.New(rand.NewSource(42)), 100, 100)
	x2, y2 := RandomScatter(rand.New(rand.NewSource(42)), 100, 100)
	if len(x1) != 100 || len(y1) != 100 {
		t.Fatalf("expected 100 points got x=%d y=%d", len(x1), len(y1))
	}
	for i := range x1 {
		if x1[i] != x2[i] || y1[i] != y2[i] {
			t.Fatalf("same seed should reproduce point %d", i)
		}
		if x1[i] < 0 || x1[i] >= 100 || y1[i] < 0 || y1[i] >= 100 {
			t.Fatalf("point %d out of range: (%g,%g)", i, x1[i], y1[i])
		}
	}
}

func TestRandomIntsRange(t *testing.T) {
	vals := RandomInts(rand.New(rand.NewSource(1)), 200, 10, 30)
	for i, v := range vals {
		if v < 10 || v >= 30 {
			t.Fatalf("value %d out of [10,30): %d", i, v)
		}
	}
}

func TestRandomChoice(t *testing.T) {
	options := []string{"red", "green", "blue"}
	got := RandomChoice(rand.New(rand.NewSource(7)), options, 50)
	if len(got) != 50 {
		t.Fatalf("expected 50 choices got %d", len(got))
	}
	allowed := map[string]bool{"red": true, "green": true, "blue": true}
	for i, c := range got {
		if !allowed[c] {
			t.Fatalf("choice %d not from options: %q", i, c)
		}
	}
}

func TestMovingAverage(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ma := MovingAverage(xs, 3)
	if len(ma) != len(xs) {
		t.Fatalf("length mismatch: %d vs %d", len(ma), len(xs))
	}
	if !math.IsNaN(ma[0]) || !math.IsNaN(ma[1]) {
		t.Fatalf("first window-1 entries should be NaN: %v", ma[:2])
	}
	want := []float64{2, 3, 4}
	for i, w := range want {
		if math.Abs(ma[i+2]-w) > 1e-12 {
			t.Fatalf("ma[%d]=%g want %g", i+2, ma[i+2], w)
		}
	}
}

func TestCumSum(t *testing.T) {
	got := CumSum([]float64{1, -2, 3})
	want := []float64{1, -1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cumsum[%d]=%g want %g", i, got[i], want[i])
		}
	}
}

func TestHistogramConservesCounts(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	xs := Normal(r, 1000, 0, 1)
	counts, edges := Histogram(xs, 20)
	if len(counts) != 20 {
		t.Fatalf("expected 20 bins got %d", len(counts))
	}
	if len(edges) != 21 {
		t.Fatalf("expected 21 edges got %d", len(edges))
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != len(xs) {
		t.Fatalf("histogram lost samples: %d of %d", total, len(xs))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			t.Fatalf("edges not increasing at %d: %v", i, edges[i-1:i+1])
		}
	}
}

func TestHistogramDegenerate(t *testing.T) {
	counts, edges := Histogram([]float64{5, 5, 5}, 4)
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 3 {
		t.Fatalf("identical samples should still be counted, got %d", total)
	}
	if len(edges) != 5 {
		t.Fatalf("expected 5 edges got %d", len(edges))
	}
	if c, e := Histogram(nil, 10); c != nil || e != nil {
		t.Fatalf("empty input should yield nil histogram")
	}
}

func TestRandomWalkLength(t *testing.T) {
	prices := RandomWalk(rand.New(rand.NewSource(3)), 100, 100, 0.5)
	if len(prices) != 100 {
		t.Fatalf("expected 100 prices got %d", len(prices))
	}
}
