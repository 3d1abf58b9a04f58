// dashboards renders the dashboard-layout examples into one static HTML
// report: a financial dashboard (price + moving average, volume, price
// distribution, summary statistics), a sales dashboard (trend, bars, pie,
// heatmap) and a tabbed dashboard (overview histogram, time series,
// correlation matrix). Writes dashboard_layouts.html; summary statistics
// are also printed as a console table.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/iafilius/ChartGalleryGo/src/gallery"
	"github.com/iafilius/ChartGalleryGo/src/report"
	"github.com/iafilius/ChartGalleryGo/src/sampledata"
)

const maWindow = 10

func histData(xs []float64, bins int) report.HistData {
	counts, edges := sampledata.Histogram(xs, bins)
	centers := make([]float64, len(counts))
	for i := range counts {
		centers[i] = (edges[i] + edges[i+1]) / 2
	}
	return report.HistData{Centers: centers, Counts: counts}
}

func buildFinancial(r *rand.Rand) (report.FinancialData, error) {
	const days = 100
	prices := sampledata.RandomWalk(r, days, 100, 0.5)
	volumes := sampledata.RandomInts(r, days, 1000, 10000)

	priceStats, err := sampledata.Describe(prices)
	if err != nil {
		return report.FinancialData{}, fmt.Errorf("price stats: %w", err)
	}
	volFloats := make([]float64, len(volumes))
	for i, v := range volumes {
		volFloats[i] = float64(v)
	}
	volStats, err := sampledata.Describe(volFloats)
	if err != nil {
		return report.FinancialData{}, fmt.Errorf("volume stats: %w", err)
	}

	return report.FinancialData{
		Dates:     sampledata.Dates(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), days),
		Prices:    prices,
		MovingAvg: report.MAPoints(sampledata.MovingAverage(prices, maWindow)),
		MAWindow:  maWindow,
		Volumes:   volumes,
		PriceHist: histData(prices, 20),
		Stats: []report.StatRow{
			{Metric: "Current Price", Value: fmt.Sprintf("$%.2f", prices[len(prices)-1])},
			{Metric: "Max Price", Value: fmt.Sprintf("$%.2f", priceStats.Max)},
			{Metric: "Min Price", Value: fmt.Sprintf("$%.2f", priceStats.Min)},
			{Metric: "Avg Volume", Value: fmt.Sprintf("%.0f", volStats.Mean)},
		},
	}, nil
}

func buildSales(r *rand.Rand) report.SalesData {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	products := []string{"Product A", "Product B", "Product C", "Product D"}
	cells := make([]report.HeatCell, 0, len(months)*len(products))
	for m := range months {
		for p := range products {
			cells = append(cells, report.HeatCell{m, p, 20 + r.Intn(80)})
		}
	}
	return report.SalesData{
		Months:       months,
		Products:     products,
		MonthlySales: []int{120, 150, 180, 160, 200, 220},
		ProductSales: []int{450, 320, 280, 150},
		Heatmap:      cells,
	}
}

func buildTabs(r *rand.Rand) (report.TabsData, error) {
	const seriesDays = 365
	labels := []string{"Var1", "Var2", "Var3", "Var4"}
	series := make([][]float64, len(labels))
	for i := range series {
		series[i] = sampledata.Normal(r, 100, 0, 1)
	}
	matrix, err := sampledata.CorrelationMatrix(series)
	if err != nil {
		return report.TabsData{}, fmt.Errorf("correlation matrix: %w", err)
	}
	return report.TabsData{
		OverviewHist: histData(sampledata.Normal(r, 1000, 0, 1), 50),
		SeriesDates:  sampledata.Dates(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), seriesDays),
		SeriesValues: sampledata.CumSum(sampledata.Normal(r, seriesDays, 0, 1)),
		CorrLabels:   labels,
		CorrMatrix:   matrix,
	}, nil
}

func printStatsTable(rows []report.StatRow) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	for _, row := range rows {
		table.Append([]string{row.Metric, row.Value})
	}
	table.Render()
}

func main() {
	out := flag.String("out", "dashboard_layouts.html", "Output HTML file")
	seed := flag.Int64("seed", 1, "Random seed for sample data")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	gallery.SetLogLevel(*logLevel)

	r := rand.New(rand.NewSource(*seed))

	financial, err := buildFinancial(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	tabs, err := buildTabs(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	data := &report.ReportData{
		Financial: financial,
		Sales:     buildSales(r),
		Tabs:      tabs,
	}

	html, err := report.Build("Dashboard Layout Examples", data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := gallery.WriteHTML(*out, html); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printStatsTable(financial.Stats)
	fmt.Printf("Dashboard layouts saved to '%s'\n", *out)
}
