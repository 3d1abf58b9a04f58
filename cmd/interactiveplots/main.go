// interactiveplots renders the interactive chart examples: a zoomable sine
// wave, a click-to-highlight scatter with toolbox buttons, a GDP/population
// scatter with derived tooltips, and a crossfilter-style scatter/histogram
// pair. Writes interactive_plots.html; the GDP sample set is also printed
// as a console table.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/iafilius/ChartGalleryGo/src/gallery"
	"github.com/iafilius/ChartGalleryGo/src/plots"
	"github.com/iafilius/ChartGalleryGo/src/sampledata"
)

func printCountryTable(countries []sampledata.Country) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Country", "GDP (Trillions)", "Population (Millions)", "GDP per Capita"})
	for _, c := range countries {
		table.Append([]string{
			c.Name,
			fmt.Sprintf("%.2f", c.GDPTrillion),
			fmt.Sprintf("%.0f", c.PopulationM),
			fmt.Sprintf("$%.0f", c.GDPPerCapita()),
		})
	}
	table.Render()
}

func main() {
	out := flag.String("out", "interactive_plots.html", "Output HTML file")
	seed := flag.Int64("seed", 1, "Random seed for sample data")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	gallery.SetLogLevel(*logLevel)

	r := rand.New(rand.NewSource(*seed))

	// dense sine for the zoom widgets
	xs := sampledata.Linspace(0, 4*math.Pi, 400)
	sine := sampledata.Wave(xs, 1, 1, 0)

	// categorized points for selection/highlighting
	const points = 200
	px, py := sampledata.RandomScatter(r, points, 100)
	colors := sampledata.RandomChoice(r, []string{"#d62728", "#2ca02c", "#1f77b4", "#ff7f0e"}, points)

	// crossfilter pair over normal data
	cx := sampledata.Normal(r, 300, 0, 1)
	cy := sampledata.Normal(r, 300, 0, 1)
	crossScatter, crossHist := plots.CrossfilterPair(cx, cy, 20)

	countries := sampledata.Countries()

	err := gallery.WritePage(*out, "Interactive Plots",
		plots.ZoomableSine(xs, sine),
		plots.SelectableScatter(px, py, colors),
		plots.GDPScatter(countries),
		crossScatter,
		crossHist,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printCountryTable(countries)
	fmt.Printf("Interactive plots saved to '%s'\n", *out)
}
