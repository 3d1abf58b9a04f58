package sampledata

import (
	"math"
	"testing"
)

func TestGraphBasics(t *testing.T) {
	g := NewGraph(4)
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatalf("add edge: %v", err)
	}
	if err := g.AddEdge(1, 0); err != nil {
		t.Fatalf("duplicate edge should be accepted silently: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("duplicate edge should not double count: %d", g.EdgeCount())
	}
	if err := g.AddEdge(2, 2); err == nil {
		t.Fatalf("self-loop should be rejected")
	}
	if err := g.AddEdge(0, 9); err == nil {
		t.Fatalf("out of range node should be rejected")
	}
}

func TestDegreeCentralityPath(t *testing.T) {
	// path 0-1-2
	g := NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	dc := g.DegreeCentrality()
	want := []float64{0.5, 1.0, 0.5}
	for i := range want {
		if math.Abs(dc[i]-want[i]) > 1e-12 {
			t.Fatalf("degree centrality[%d]=%g want %g", i, dc[i], want[i])
		}
	}
}

func TestBetweennessPath(t *testing.T) {
	// path 0-1-2-3: inner nodes carry all pair traffic
	g := NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	bc := g.BetweennessCentrality()
	// node 1 lies on 0-2, 0-3; normalized by (n-1)(n-2)/2 = 3
	want := []float64{0, 2.0 / 3.0, 2.0 / 3.0, 0}
	for i := range want {
		if math.Abs(bc[i]-want[i]) > 1e-9 {
			t.Fatalf("betweenness[%d]=%g want %g", i, bc[i], want[i])
		}
	}
}

func TestBetweennessStar(t *testing.T) {
	// star with center 0: center lies on every non-adjacent pair
	g := NewGraph(5)
	for leaf := 1; leaf < 5; leaf++ {
		g.AddEdge(0, leaf)
	}
	bc := g.BetweennessCentrality()
	if math.Abs(bc[0]-1) > 1e-9 {
		t.Fatalf("star center betweenness=%g want 1", bc[0])
	}
	for leaf := 1; leaf < 5; leaf++ {
		if bc[leaf] != 0 {
			t.Fatalf("leaf %d betweenness=%g want 0", leaf, bc[leaf])
		}
	}
}

func TestClusteringTriangle(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)
	for v, c := range g.ClusteringCoefficients() {
		if math.Abs(c-1) > 1e-12 {
			t.Fatalf("triangle node %d clustering=%g want 1", v, c)
		}
	}
}

func TestTinyGraphCentralities(t *testing.T) {
	g := NewGraph(1)
	if dc := g.DegreeCentrality(); dc[0] != 0 {
		t.Fatalf("single node degree centrality should be 0")
	}
	g2 := NewGraph(2)
	g2.AddEdge(0, 1)
	for v, b := range g2.BetweennessCentrality() {
		if b != 0 {
			t.Fatalf("two-node graph betweenness[%d]=%g want 0", v, b)
		}
	}
}

func TestKarateClubShape(t *testing.T) {
	g, factions := KarateClub()
	if g.NodeCount() != 34 {
		t.Fatalf("expected 34 members got %d", g.NodeCount())
	}
	if g.EdgeCount() != 78 {
		t.Fatalf("expected 78 friendships got %d", g.EdgeCount())
	}
	if len(factions) != 34 {
		t.Fatalf("expected faction per member, got %d", len(factions))
	}
	// the two social hubs
	if g.Degree(33) != 17 {
		t.Fatalf("officer hub degree=%d want 17", g.Degree(33))
	}
	if g.Degree(0) != 16 {
		t.Fatalf("instructor hub degree=%d want 16", g.Degree(0))
	}
	hi, officers := 0, 0
	for _, f := range factions {
		switch f {
		case 0:
			hi++
		case 1:
			officers++
		default:
			t.Fatalf("unknown faction %d", f)
		}
	}
	if hi != 17 || officers != 17 {
		t.Fatalf("faction split %d/%d want 17/17", hi, officers)
	}
}

func TestKarateClubBetweenness(t *testing.T) {
	g, _ := KarateClub()
	bc := g.BetweennessCentrality()
	maxNode := 0
	for v := range bc {
		if bc[v] > bc[maxNode] {
			maxNode = v
		}
	}
	if maxNode != 0 {
		t.Fatalf("instructor should have highest betweenness, got node %d", maxNode)
	}
	// published value for node 0 is ~0.4376
	if math.Abs(bc[0]-0.4376) > 0.01 {
		t.Fatalf("node 0 betweenness=%g want ~0.4376", bc[0])
	}
	if math.Abs(bc[33]-0.3041) > 0.01 {
		t.Fatalf("node 33 betweenness=%g want ~0.3041", bc[33])
	}
}
