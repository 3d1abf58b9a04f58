package sampledata

import "fmt"

// Graph is a small undirected simple graph over nodes 0..n-1. It carries
// just enough structure for the network chart: adjacency plus the metrics
// that drive node size and tooltips.
type Graph struct {
	n   int
	adj []map[int]struct{}
}

// Edge is one undirected edge.
type Edge struct {
	From, To int
}

// NewGraph returns an empty graph with n nodes.
func NewGraph(n int) *Graph {
	g := &Graph{n: n, adj: make([]map[int]struct{}, n)}
	for i := range g.adj {
		g.adj[i] = make(map[int]struct{})
	}
	return g
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.n }

// AddEdge adds an undirected edge. Self-loops are rejected; duplicate edges
// are ignored.
func (g *Graph) AddEdge(a, b int) error {
	if a == b {
		return fmt.Errorf("add edge: self-loop on node %d", a)
	}
	if a < 0 || a >= g.n || b < 0 || b >= g.n {
		return fmt.Errorf("add edge: node out of range (%d,%d)", a, b)
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
	return nil
}

// Degree returns the number of neighbors of node v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// Neighbors returns the neighbor set of node v.
func (g *Graph) Neighbors(v int) []int {
	out := make([]int, 0, len(g.adj[v]))
	for w := range g.adj[v] {
		out = append(out, w)
	}
	return out
}

// Edges returns every undirected edge exactly once, with From < To.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for v := 0; v < g.n; v++ {
		for w := range g.adj[v] {
			if v < w {
				out = append(out, Edge{From: v, To: w})
			}
		}
	}
	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for v := 0; v < g.n; v++ {
		total += len(g.adj[v])
	}
	return total / 2
}

// DegreeCentrality returns degree/(n-1) per node. Graphs with fewer than
// two nodes yield zeros rather than dividing by zero.
func (g *Graph) DegreeCentrality() []float64 {
	out := make([]float64, g.n)
	if g.n < 2 {
		return out
	}
	for v := 0; v < g.n; v++ {
		out[v] = float64(g.Degree(v)) / float64(g.n-1)
	}
	return out
}

// BetweennessCentrality returns normalized shortest-path betweenness per
// node (Brandes' algorithm over unweighted edges, undirected scaling
// 2/((n-1)(n-2))).
func (g *Graph) BetweennessCentrality() []float64 {
	cb := make([]float64, g.n)
	if g.n < 3 {
		return cb
	}
	// scratch buffers reused per source
	dist := make([]int, g.n)
	sigma := make([]float64, g.n)
	delta := make([]float64, g.n)
	pred := make([][]int, g.n)

	for s := 0; s < g.n; s++ {
		stack := make([]int, 0, g.n)
		for i := 0; i < g.n; i++ {
			dist[i] = -1
			sigma[i] = 0
			delta[i] = 0
			pred[i] = pred[i][:0]
		}
		dist[s] = 0
		sigma[s] = 1
		queue := []int{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)
			for w := range g.adj[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
			}
		}
		// accumulate dependencies in reverse BFS order
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}
	// each undirected pair was counted from both endpoints
	scale := 1.0 / (float64(g.n-1) * float64(g.n-2))
	for v := range cb {
		cb[v] *= scale
	}
	return cb
}

// ClusteringCoefficients returns the local clustering coefficient per node:
// the fraction of a node's neighbor pairs that are themselves connected.
func (g *Graph) ClusteringCoefficients() []float64 {
	out := make([]float64, g.n)
	for v := 0; v < g.n; v++ {
		k := g.Degree(v)
		if k < 2 {
			continue
		}
		links := 0
		for a := range g.adj[v] {
			for b := range g.adj[v] {
				if a < b {
					if _, ok := g.adj[a][b]; ok {
						links++
					}
				}
			}
		}
		out[v] = float64(2*links) / float64(k*(k-1))
	}
	return out
}

// karateEdges is Zachary's karate club network (34 members, 78 friendships).
var karateEdges = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {0, 8},
	{0, 10}, {0, 11}, {0, 12}, {0, 13}, {0, 17}, {0, 19}, {0, 21}, {0, 31},
	{1, 2}, {1, 3}, {1, 7}, {1, 13}, {1, 17}, {1, 19}, {1, 21}, {1, 30},
	{2, 3}, {2, 7}, {2, 8}, {2, 9}, {2, 13}, {2, 27}, {2, 28}, {2, 32},
	{3, 7}, {3, 12}, {3, 13},
	{4, 6}, {4, 10},
	{5, 6}, {5, 10}, {5, 16},
	{6, 16},
	{8, 30}, {8, 32}, {8, 33},
	{9, 33},
	{13, 33},
	{14, 32}, {14, 33},
	{15, 32}, {15, 33},
	{18, 32}, {18, 33},
	{19, 33},
	{20, 32}, {20, 33},
	{22, 32}, {22, 33},
	{23, 25}, {23, 27}, {23, 29}, {23, 32}, {23, 33},
	{24, 25}, {24, 27}, {24, 31},
	{25, 31},
	{26, 29}, {26, 33},
	{27, 33},
	{28, 31}, {28, 33},
	{29, 32}, {29, 33},
	{30, 32}, {30, 33},
	{31, 32}, {31, 33},
	{32, 33},
}

// karateOfficers lists the members who sided with the officers when the
// club split; everyone else stayed with instructor "Mr. Hi" (node 0).
var karateOfficers = map[int]bool{
	9: true, 14: true, 15: true, 18: true, 20: true, 22: true, 23: true,
	24: true, 25: true, 26: true, 27: true, 28: true, 29: true, 30: true,
	31: true, 32: true, 33: true,
}

// KarateClub returns Zachary's karate club graph together with the faction
// each member joined after the split (0 = Mr. Hi, 1 = Officers).
func KarateClub() (*Graph, []int) {
	g := NewGraph(34)
	for _, e := range karateEdges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			panic(err) // static dataset, cannot happen
		}
	}
	factions := make([]int, g.NodeCount())
	for v := range factions {
		if karateOfficers[v] {
			factions[v] = 1
		}
	}
	return g, factions
}
