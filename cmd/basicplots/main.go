// basicplots renders the fundamental chart examples (multi-line trig plot,
// hover scatter, category bar, area band) into one static HTML page.
//
// Run with no arguments: writes basic_plots.html to the working directory.
// Optionally renders a PNG snapshot of the trig chart next to it.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/iafilius/ChartGalleryGo/src/gallery"
	"github.com/iafilius/ChartGalleryGo/src/plots"
	"github.com/iafilius/ChartGalleryGo/src/sampledata"
)

func main() {
	out := flag.String("out", "basic_plots.html", "Output HTML file")
	pngOut := flag.String("png", "", "Optional PNG snapshot of the trig chart (empty disables)")
	seed := flag.Int64("seed", 1, "Random seed for sample data")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	gallery.SetLogLevel(*logLevel)

	r := rand.New(rand.NewSource(*seed))

	// trig series
	xs := sampledata.Linspace(0, 4*math.Pi, 100)
	sin := sampledata.Wave(xs, 1, 1, 0)
	cos := sampledata.CosWave(xs, 1, 1, 0)

	// random scatter with per-point sizes and colors
	const points = 100
	sx, sy := sampledata.RandomScatter(r, points, 100)
	sizes := sampledata.RandomInts(r, points, 10, 30)
	colors := sampledata.RandomChoice(r, []string{"#d62728", "#2ca02c", "#1f77b4", "#ff7f0e", "#9467bd"}, points)

	// area band between sin(x) and sin(x)+1
	ax := sampledata.Linspace(0, 2*math.Pi, 50)
	lower := sampledata.Wave(ax, 1, 1, 0)
	upper := sampledata.Offset(lower, 1)

	err := gallery.WritePage(*out, "Basic Plots",
		plots.TrigLines(xs, sin, cos),
		plots.HoverScatter(sx, sy, sizes, colors),
		plots.CategoryBar([]string{"A", "B", "C", "D", "E"}, []int{20, 35, 30, 25, 40}),
		plots.AreaBand(ax, lower, upper),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *pngOut != "" {
		if err := plots.WriteTrigPNG(*pngOut, xs, sin, cos); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		gallery.Infof("wrote %s", *pngOut)
	}
	fmt.Printf("Basic plots saved to '%s'\n", *out)
}
