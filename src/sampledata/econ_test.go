package sampledata

import (
	"math"
	"testing"
)

func TestCountries(t *testing.T) {
	cs := Countries()
	if len(cs) != 8 {
		t.Fatalf("expected 8 countries got %d", len(cs))
	}
	for _, c := range cs {
		if c.GDPTrillion <= 0 || c.PopulationM <= 0 {
			t.Fatalf("%s has non-positive sample values", c.Name)
		}
	}
	// USA: 21.43e12 / 331e6 ≈ 64743
	usa := cs[0]
	if math.Abs(usa.GDPPerCapita()-64743) > 100 {
		t.Fatalf("USA per-capita=%g want ~64743", usa.GDPPerCapita())
	}
	zero := Country{Name: "none"}
	if zero.GDPPerCapita() != 0 {
		t.Fatalf("zero population should yield zero per-capita")
	}
}
