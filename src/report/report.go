// Package report renders the dashboard-layouts page: a self-contained HTML
// document with a stats-card row, a financial section, a sales section and
// a tabbed section. The document carries one JSON data blob plus one ECharts
// init script per widget, so everything stays client-side and static.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// HistData is a pre-binned histogram: one bin-center label per count.
type HistData struct {
	Centers []float64 `json:"centers"`
	Counts  []int     `json:"counts"`
}

// StatRow is one row of the summary statistics table.
type StatRow struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// HeatCell is one month×product sales heatmap cell, as [x, y, value]
// category indices the way the heatmap series consumes them.
type HeatCell [3]int

// FinancialData feeds the financial dashboard section.
type FinancialData struct {
	Dates     []string   `json:"dates"`
	Prices    []float64  `json:"prices"`
	MovingAvg []*float64 `json:"movingAvg"` // null until a full window exists
	MAWindow  int        `json:"maWindow"`
	Volumes   []int      `json:"volumes"`
	PriceHist HistData   `json:"priceHist"`
	Stats     []StatRow  `json:"stats"`
}

// SalesData feeds the sales dashboard section.
type SalesData struct {
	Months       []string   `json:"months"`
	Products     []string   `json:"products"`
	MonthlySales []int      `json:"monthlySales"`
	ProductSales []int      `json:"productSales"`
	Heatmap      []HeatCell `json:"heatmap"`
}

// TabsData feeds the tabbed dashboard section.
type TabsData struct {
	OverviewHist HistData    `json:"overviewHist"`
	SeriesDates  []string    `json:"seriesDates"`
	SeriesValues []float64   `json:"seriesValues"`
	CorrLabels   []string    `json:"corrLabels"`
	CorrMatrix   [][]float64 `json:"corrMatrix"`
}

// ReportData is the full JSON payload embedded in the generated page.
type ReportData struct {
	Financial FinancialData `json:"financial"`
	Sales     SalesData     `json:"sales"`
	Tabs      TabsData      `json:"tabs"`
}

// MAPoints converts a moving-average series into JSON-safe points: NaN
// entries (the undefined leading window) become null.
func MAPoints(xs []float64) []*float64 {
	out := make([]*float64, len(xs))
	for i := range xs {
		if math.IsNaN(xs[i]) {
			continue
		}
		v := xs[i]
		out[i] = &v
	}
	return out
}

// Validate checks the internal length consistency the widgets rely on.
func (d *ReportData) Validate() error {
	f := d.Financial
	if len(f.Dates) != len(f.Prices) || len(f.Dates) != len(f.MovingAvg) || len(f.Dates) != len(f.Volumes) {
		return fmt.Errorf("financial series length mismatch: dates=%d prices=%d ma=%d volumes=%d",
			len(f.Dates), len(f.Prices), len(f.MovingAvg), len(f.Volumes))
	}
	if len(f.PriceHist.Centers) != len(f.PriceHist.Counts) {
		return fmt.Errorf("price histogram length mismatch: centers=%d counts=%d",
			len(f.PriceHist.Centers), len(f.PriceHist.Counts))
	}
	s := d.Sales
	if len(s.Months) != len(s.MonthlySales) {
		return fmt.Errorf("sales: %d months but %d monthly values", len(s.Months), len(s.MonthlySales))
	}
	if len(s.Products) != len(s.ProductSales) {
		return fmt.Errorf("sales: %d products but %d product values", len(s.Products), len(s.ProductSales))
	}
	if len(s.Heatmap) != len(s.Months)*len(s.Products) {
		return fmt.Errorf("sales heatmap has %d cells, want %d", len(s.Heatmap), len(s.Months)*len(s.Products))
	}
	t := d.Tabs
	if len(t.SeriesDates) != len(t.SeriesValues) {
		return fmt.Errorf("tab time series length mismatch: dates=%d values=%d", len(t.SeriesDates), len(t.SeriesValues))
	}
	if len(t.CorrMatrix) != len(t.CorrLabels) {
		return fmt.Errorf("correlation matrix is %d rows for %d labels", len(t.CorrMatrix), len(t.CorrLabels))
	}
	for i, row := range t.CorrMatrix {
		if len(row) != len(t.CorrLabels) {
			return fmt.Errorf("correlation matrix row %d has %d columns, want %d", i, len(row), len(t.CorrLabels))
		}
	}
	return nil
}

// Build renders the complete HTML document.
func Build(title string, data *ReportData) ([]byte, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("report data: %w", err)
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal report data: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(renderHead(title))
	sb.WriteString(`<body><div class="container">`)
	sb.WriteString(fmt.Sprintf(`
<header>
    <h1>%s</h1>
    <p>Financial, sales and tabbed dashboard layouts on one static page</p>
</header>`, title))
	sb.WriteString(renderStatsCards(data.Financial.Stats))
	sb.WriteString(financialSection)
	sb.WriteString(renderStatsTable(data.Financial.Stats))
	sb.WriteString(salesSection)
	sb.WriteString(tabsSection)
	sb.WriteString(`</div>`)
	sb.WriteString(renderScripts(payload))
	sb.WriteString(`</body></html>`)
	return []byte(sb.String()), nil
}

func renderHead(title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>
    <style>%s</style>
</head>`, title, pageCSS)
}

func renderStatsCards(rows []StatRow) string {
	var cards strings.Builder
	cards.WriteString(`
<div class="widget stats-grid">`)
	for _, r := range rows {
		cards.WriteString(fmt.Sprintf(`
    <div class="stat-card">
        <div class="number">%s</div>
        <div class="label">%s</div>
    </div>`, r.Value, r.Metric))
	}
	cards.WriteString(`
</div>`)
	return cards.String()
}

func renderStatsTable(rows []StatRow) string {
	var body strings.Builder
	for _, r := range rows {
		body.WriteString(fmt.Sprintf(`
        <tr><td>%s</td><td>%s</td></tr>`, r.Metric, r.Value))
	}
	return fmt.Sprintf(`
<div class="widget table-box">
    <h3>Summary Statistics</h3>
    <table>
        <thead><tr><th>Metric</th><th>Value</th></tr></thead>
        <tbody>%s</tbody>
    </table>
</div>`, body.String())
}

func renderScripts(payload []byte) string {
	return fmt.Sprintf(`
<script>
const data = %s;
const charts = [];

%s
%s
%s
%s
%s
%s
%s
%s

%s

window.addEventListener('resize', () => charts.forEach(c => c.resize()));
</script>`, string(payload),
		priceChartScript, volumeChartScript, priceHistScript,
		salesTrendScript, productBarScript, productPieScript, salesHeatmapScript,
		tabChartsScript, tabSwitchScript)
}
