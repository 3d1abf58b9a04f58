package plots

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/iafilius/ChartGalleryGo/src/sampledata"
)

// highlightOnClick dims every series to 30% opacity and restores full
// opacity on the clicked series. Runs after the charts are initialized, so
// instances can be looked up straight from their container divs.
const highlightOnClick = `
window.addEventListener('load', function () {
    document.querySelectorAll('div[_echarts_instance_]').forEach(function (el) {
        var chart = echarts.getInstanceByDom(el);
        if (!chart) { return; }
        chart.on('click', function (params) {
            var n = chart.getOption().series.length;
            for (var i = 0; i < n; i++) {
                chart.setOption({series: [{seriesIndex: i, itemStyle: {opacity: i === params.seriesIndex ? 1.0 : 0.3}}]});
            }
        });
    });
});`

// ZoomableSine plots a dense sine wave with slider and scroll-wheel zoom
// widgets so the rendered window can be re-ranged client-side.
func ZoomableSine(xs, ys []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Interactive Sine Wave", Subtitle: "Drag the slider below the chart to re-window the series"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", Start: 0, End: 100, XAxisIndex: []int{0}},
			opts.DataZoom{Type: "inside", Start: 0, End: 100, XAxisIndex: []int{0}},
		),
	)
	line.SetXAxis(axisLabels(xs)).
		AddSeries("sin(x)", lineData(ys),
			charts.WithLineStyleOpts(opts.LineStyle{Width: 2, Color: "#1f77b4"}),
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

// SelectableScatter plots categorized random points with toolbox buttons
// (save, zoom, data view, restore) and a click handler that highlights the
// clicked category.
func SelectableScatter(xs, ys []float64, colors []string) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Selection and Highlighting", Subtitle: "Click a point to dim the other categories"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Left: "right"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true), Title: "save"},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: opts.Bool(true), Title: map[string]string{"zoom": "zoom", "back": "back"}},
				DataView:    &opts.ToolBoxFeatureDataView{Show: opts.Bool(true), Title: "data", Lang: []string{"data view", "close", "refresh"}},
				Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true), Title: "restore"},
			},
		}),
	)
	byColor := make(map[string][]opts.ScatterData)
	for i := range xs {
		c := colors[i]
		byColor[c] = append(byColor[c], opts.ScatterData{
			Value:      []interface{}{xs[i], ys[i]},
			SymbolSize: 15,
		})
	}
	for _, c := range scatterPalette {
		pts, ok := byColor[c]
		if !ok {
			continue
		}
		sc.AddSeries(c, pts,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: c, Opacity: 0.6}))
	}
	sc.AddJSFuncs(highlightOnClick)
	return sc
}

// GDPScatter plots GDP against population, symbol size scaled by GDP, with
// per-country tooltips carrying the derived GDP per capita.
func GDPScatter(countries []sampledata.Country) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "GDP vs Population"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Population (millions)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "GDP (trillions USD)", Type: "value"}),
	)
	pts := make([]opts.ScatterData, len(countries))
	for i, c := range countries {
		pts[i] = opts.ScatterData{
			Name:       fmt.Sprintf("%s ($%.0f/capita)", c.Name, c.GDPPerCapita()),
			Value:      []interface{}{c.PopulationM, c.GDPTrillion},
			SymbolSize: int(8 + c.GDPTrillion),
		}
	}
	sc.AddSeries("Countries", pts,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#000080", Opacity: 0.6}))
	return sc
}

// CrossfilterPair returns a scatter of normally distributed points and a
// histogram of the same X values, meant to sit side by side.
func CrossfilterPair(xs, ys []float64, bins int) (*charts.Scatter, *charts.Bar) {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "450px", Height: "320px"}),
		charts.WithTitleOpts(opts.Title{Title: "Plot 1: X vs Y"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside", Start: 0, End: 100, XAxisIndex: []int{0}}),
	)
	sc.AddSeries("points", xyScatterData(xs, ys, 8),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#2ca02c", Opacity: 0.6}))

	counts, edges := sampledata.Histogram(xs, bins)
	labels := make([]string, len(counts))
	for i := range counts {
		labels[i] = fmt.Sprintf("%.1f", (edges[i]+edges[i+1])/2)
	}
	hist := charts.NewBar()
	hist.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "450px", Height: "320px"}),
		charts.WithTitleOpts(opts.Title{Title: "Plot 2: Histogram of X"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x (bin center)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)
	hist.SetXAxis(labels).
		AddSeries("count", barData(counts),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#000080", Opacity: 0.7}),
			charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "0%"}))
	return sc, hist
}
