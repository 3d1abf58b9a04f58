package report

import (
	"math"
	"strings"
	"testing"
)

func sampleData() *ReportData {
	ma := MAPoints([]float64{math.NaN(), math.NaN(), 3, 4})
	return &ReportData{
		Financial: FinancialData{
			Dates:     []string{"2023-01-01", "2023-01-02", "2023-01-03", "2023-01-04"},
			Prices:    []float64{100, 101, 100.5, 102},
			MovingAvg: ma,
			MAWindow:  3,
			Volumes:   []int{5000, 6000, 5500, 7000},
			PriceHist: HistData{Centers: []float64{100, 101, 102}, Counts: []int{1, 2, 1}},
			Stats: []StatRow{
				{Metric: "Current Price", Value: "$102.00"},
				{Metric: "Max Price", Value: "$102.00"},
			},
		},
		Sales: SalesData{
			Months:       []string{"Jan", "Feb"},
			Products:     []string{"Product A", "Product B"},
			MonthlySales: []int{120, 150},
			ProductSales: []int{450, 320},
			Heatmap:      []HeatCell{{0, 0, 10}, {0, 1, 20}, {1, 0, 30}, {1, 1, 40}},
		},
		Tabs: TabsData{
			OverviewHist: HistData{Centers: []float64{-1, 0, 1}, Counts: []int{10, 30, 10}},
			SeriesDates:  []string{"2023-01-01", "2023-01-02"},
			SeriesValues: []float64{0.5, 1.2},
			CorrLabels:   []string{"Var1", "Var2"},
			CorrMatrix:   [][]float64{{1, 0.5}, {0.5, 1}},
		},
	}
}

func TestMAPoints(t *testing.T) {
	pts := MAPoints([]float64{math.NaN(), 2.5})
	if len(pts) != 2 {
		t.Fatalf("expected 2 points got %d", len(pts))
	}
	if pts[0] != nil {
		t.Fatalf("NaN should map to nil, got %v", *pts[0])
	}
	if pts[1] == nil || *pts[1] != 2.5 {
		t.Fatalf("defined value should survive, got %v", pts[1])
	}
}

func TestBuildContainsWidgets(t *testing.T) {
	html, err := Build("Dashboard Examples", sampleData())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	doc := string(html)
	for _, want := range []string{
		"echarts.min.js",
		"Dashboard Examples",
		`id="price-chart"`,
		`id="volume-chart"`,
		`id="price-hist"`,
		`id="sales-trend"`,
		`id="product-bar"`,
		`id="product-pie"`,
		`id="sales-heatmap"`,
		`id="tab-overview"`,
		`id="tab-timeseries"`,
		`id="tab-correlations"`,
		"const data =",
		`"movingAvg":[null,null,3,4]`,
		"Summary Statistics",
		"Current Price",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q", want)
		}
	}
	// fmt escapes must not leak into the page
	if strings.Contains(doc, "%!") {
		t.Fatalf("document contains fmt artifact")
	}
	if strings.Contains(doc, "%%") {
		t.Fatalf("document contains doubled percent escape")
	}
}

func TestValidateLengthMismatches(t *testing.T) {
	d := sampleData()
	d.Financial.Volumes = d.Financial.Volumes[:2]
	if _, err := Build("x", d); err == nil {
		t.Fatalf("expected financial length mismatch error")
	}

	d = sampleData()
	d.Sales.Heatmap = d.Sales.Heatmap[:3]
	if _, err := Build("x", d); err == nil {
		t.Fatalf("expected heatmap cell count error")
	}

	d = sampleData()
	d.Tabs.CorrMatrix = [][]float64{{1}}
	if _, err := Build("x", d); err == nil {
		t.Fatalf("expected correlation matrix shape error")
	}
}
