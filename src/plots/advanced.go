package plots

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/iafilius/ChartGalleryGo/src/sampledata"
)

// divergingPalette maps correlation -1..1 onto red -> pale yellow -> blue.
var divergingPalette = []string{"#d73027", "#fee090", "#ffffbf", "#e0f3f8", "#4575b4"}

// CorrelationHeatmap renders a labeled correlation matrix with a draggable
// color bar. The y axis is reversed so the matrix reads top-down like a
// table.
func CorrelationHeatmap(names []string, matrix [][]float64) *charts.HeatMap {
	reversed := make([]string, len(names))
	for i, n := range names {
		reversed[len(names)-1-i] = n
	}
	data := make([]opts.HeatMapData, 0, len(names)*len(names))
	for i := range matrix {
		for j := range matrix[i] {
			v := math.Round(matrix[i][j]*100) / 100
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{i, len(names) - 1 - j, v},
			})
		}
	}
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Business Metrics Correlation Heatmap",
			Subtitle: "Red cells correlate negatively, blue positively; drag the color bar to filter",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      names,
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45},
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      reversed,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        -1,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: divergingPalette},
		}),
	)
	hm.AddSeries("correlation", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return hm
}

// NetworkGraph renders an undirected social graph with a force layout.
// Node size follows degree centrality; nodes are grouped into the given
// categories; tooltips carry the computed metrics per node.
func NetworkGraph(g *sampledata.Graph, factions []int, categoryNames []string) *charts.Graph {
	degree := g.DegreeCentrality()
	betweenness := g.BetweennessCentrality()
	clustering := g.ClusteringCoefficients()

	nodes := make([]opts.GraphNode, g.NodeCount())
	for v := 0; v < g.NodeCount(); v++ {
		nodes[v] = opts.GraphNode{
			Name:       nodeName(v, degree[v], betweenness[v], clustering[v]),
			Value:      float32(betweenness[v]),
			SymbolSize: float32(10 + degree[v]*50),
			Category:   factions[v],
		}
	}
	links := make([]opts.GraphLink, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		links = append(links, opts.GraphLink{Source: nodes[e.From].Name, Target: nodes[e.To].Name})
	}
	categories := make([]*opts.GraphCategory, len(categoryNames))
	for i, n := range categoryNames {
		categories[i] = &opts.GraphCategory{Name: n}
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "800px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Social Network Analysis - Karate Club Graph",
			Subtitle: "Node size follows degree centrality; pan, zoom and hover for per-member metrics",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Left: "left"}),
	)
	graph.AddSeries("members", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:     "force",
			Force:      &opts.GraphForce{Repulsion: 400, Gravity: 0.1, EdgeLength: 60},
			Roam:       opts.Bool(true),
			Categories: categories,
		}),
		// labels stay off: member metrics live in the node names and would
		// clutter the layout if painted next to every node
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
	)
	return graph
}

// nodeName folds the per-member metrics into the node label shown by the
// default tooltip.
func nodeName(v int, degree, betweenness, clustering float64) string {
	return fmt.Sprintf("Member %d (deg %.3f, btw %.3f, clu %.3f)", v, degree, betweenness, clustering)
}
