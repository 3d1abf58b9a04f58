package plots

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
)

// WriteTrigPNG renders the trig line chart as a static PNG snapshot, for
// embedding gallery output where the interactive HTML cannot run (docs,
// READMEs). Mirrors the HTML chart produced by TrigLines.
func WriteTrigPNG(path string, xs, sin, cos []float64) error {
	ch := chart.Chart{
		Title:      "Line Plot Example",
		Width:      600,
		Height:     400,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: "x"},
		YAxis:      chart.YAxis{Name: "y"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "sin(x)",
				XValues: xs,
				YValues: sin,
				Style:   chart.Style{StrokeWidth: 2, StrokeColor: chart.ColorBlue},
			},
			chart.ContinuousSeries{
				Name:    "cos(x)",
				XValues: xs,
				YValues: cos,
				Style:   chart.Style{StrokeWidth: 2, StrokeColor: chart.ColorRed, StrokeDashArray: []float64{5, 5}},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := ch.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
