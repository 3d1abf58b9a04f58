package plots

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// palette used by the scatter examples, one series per color.
var scatterPalette = []string{"#d62728", "#2ca02c", "#1f77b4", "#ff7f0e", "#9467bd"}

// TrigLines plots sin(x) and cos(x) as two toggleable line series.
func TrigLines(xs, sin, cos []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Line Plot Example"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Left: "right"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y"}),
	)
	line.SetXAxis(axisLabels(xs)).
		AddSeries("sin(x)",
			lineData(sin),
			charts.WithLineStyleOpts(opts.LineStyle{Width: 2, Color: "#1f77b4"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#1f77b4"})).
		AddSeries("cos(x)",
			lineData(cos),
			charts.WithLineStyleOpts(opts.LineStyle{Width: 2, Color: "#d62728", Type: "dashed"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#d62728"}))
	return line
}

// HoverScatter plots randomly sized points grouped into one series per
// color, with per-point coordinate tooltips.
func HoverScatter(xs, ys []float64, sizes []int, colors []string) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Scatter Plot with Hover"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item", Formatter: "(X,Y): {c}"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X Value", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y Value", Type: "value"}),
	)
	// bucket points by color so each color renders as its own series
	byColor := make(map[string][]opts.ScatterData)
	for i := range xs {
		c := colors[i]
		byColor[c] = append(byColor[c], opts.ScatterData{
			Value:      []interface{}{xs[i], ys[i]},
			SymbolSize: sizes[i],
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
	return sc
}

// CategoryBar plots values per category with rotated axis labels.
func CategoryBar(categories []string, values []int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Bar Chart Example"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Categories",
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Values"}),
	)
	bar.SetXAxis(categories).
		AddSeries("Values", barData(values),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#000080", Opacity: 0.7}))
	return bar
}

// AreaBand plots a lower and an upper curve with the band between them
// filled. The band is drawn as a stacked pair: an invisible base at the
// lower curve plus the difference with an area style.
func AreaBand(xs, lower, upper []float64) *charts.Line {
	diff := make([]float64, len(lower))
	for i := range diff {
		diff[i] = upper[i] - lower[i]
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Area Plot Example"}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Data: []string{"lower", "upper"},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y"}),
	)
	line.SetXAxis(axisLabels(xs)).
		AddSeries("base", lineData(lower),
			charts.WithLineChartOpts(opts.LineChart{Stack: "band"}),
			charts.WithLineStyleOpts(opts.LineStyle{Opacity: 0})).
		AddSeries("band", lineData(diff),
			charts.WithLineChartOpts(opts.LineChart{Stack: "band"}),
			charts.WithLineStyleOpts(opts.LineStyle{Opacity: 0}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Color: "#add8e6", Opacity: 0.5})).
		AddSeries("lower", lineData(lower),
			charts.WithLineStyleOpts(opts.LineStyle{Width: 2, Color: "#1f77b4"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#1f77b4"})).
		AddSeries("upper", lineData(upper),
			charts.WithLineStyleOpts(opts.LineStyle{Width: 2, Color: "#d62728"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#d62728"}))
	return line
}
