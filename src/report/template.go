package report

// Static page sections. Chart divs are filled in by the init scripts below.

const financialSection = `
<h2 class="section-title">Financial Dashboard</h2>
<div class="widget row">
    <div class="chart-box wide">
        <h3>Stock Price</h3>
        <div id="price-chart" class="chart"></div>
        <h3>Trading Volume</h3>
        <div id="volume-chart" class="chart short"></div>
    </div>
    <div class="chart-box narrow">
        <h3>Price Distribution</h3>
        <div id="price-hist" class="chart"></div>
    </div>
</div>`

const salesSection = `
<h2 class="section-title">Sales Dashboard</h2>
<div class="widget grid-2x2">
    <div class="chart-box"><h3>Monthly Sales Trend</h3><div id="sales-trend" class="chart"></div></div>
    <div class="chart-box"><h3>Sales by Product</h3><div id="product-bar" class="chart"></div></div>
    <div class="chart-box"><h3>Product Sales Distribution</h3><div id="product-pie" class="chart"></div></div>
    <div class="chart-box"><h3>Sales Heatmap</h3><div id="sales-heatmap" class="chart"></div></div>
</div>`

const tabsSection = `
<h2 class="section-title">Tabbed Dashboard</h2>
<div class="widget chart-box">
    <div class="tab-bar">
        <button class="tab-button active" data-tab="tab-overview">Overview</button>
        <button class="tab-button" data-tab="tab-timeseries">Time Series</button>
        <button class="tab-button" data-tab="tab-correlations">Correlations</button>
    </div>
    <div id="tab-overview" class="tab-pane active"><div id="overview-hist" class="chart tall"></div></div>
    <div id="tab-timeseries" class="tab-pane"><div id="timeseries-chart" class="chart tall"></div></div>
    <div id="tab-correlations" class="tab-pane"><div id="corr-heatmap" class="chart tall"></div></div>
</div>`

// Chart initialization scripts, one IIFE per widget.

const priceChartScript = `
(function() {
    const el = document.getElementById('price-chart');
    if (!el) return;
    const chart = echarts.init(el);
    charts.push(chart);
    chart.setOption({
        tooltip: { trigger: 'axis' },
        legend: { data: ['Price', data.financial.maWindow + '-day MA'] },
        grid: { left: '8%', right: '4%', bottom: '12%' },
        xAxis: { type: 'category', data: data.financial.dates },
        yAxis: { type: 'value', scale: true },
        dataZoom: [{ type: 'inside' }, { type: 'slider' }],
        series: [
            { name: 'Price', type: 'line', data: data.financial.prices, showSymbol: false, lineStyle: { width: 2, color: '#1f77b4' }, itemStyle: { color: '#1f77b4' } },
            { name: data.financial.maWindow + '-day MA', type: 'line', data: data.financial.movingAvg, showSymbol: false, lineStyle: { width: 2, color: '#d62728', type: 'dashed' }, itemStyle: { color: '#d62728' } }
        ]
    });
})();
`

const volumeChartScript = `
(function() {
    const el = document.getElementById('volume-chart');
    if (!el) return;
    const chart = echarts.init(el);
    charts.push(chart);
    chart.setOption({
        tooltip: { trigger: 'axis' },
        grid: { left: '8%', right: '4%', bottom: '15%' },
        xAxis: { type: 'category', data: data.financial.dates },
        yAxis: { type: 'value' },
        series: [{ type: 'bar', data: data.financial.volumes, itemStyle: { color: '#2ca02c', opacity: 0.7 } }]
    });
})();
`

const priceHistScript = `
(function() {
    const el = document.getElementById('price-hist');
    if (!el) return;
    const chart = echarts.init(el);
    charts.push(chart);
    chart.setOption({
        tooltip: { trigger: 'axis' },
        grid: { left: '12%', right: '5%', bottom: '12%' },
        xAxis: { type: 'category', data: data.financial.priceHist.centers.map(c => c.toFixed(1)) },
        yAxis: { type: 'value' },
        series: [{ type: 'bar', barCategoryGap: '0%', data: data.financial.priceHist.counts, itemStyle: { color: '#000080', opacity: 0.7 } }]
    });
})();
`

const salesTrendScript = `
(function() {
    const el = document.getElementById('sales-trend');
    if (!el) return;
    const chart = echarts.init(el);
    charts.push(chart);
    chart.setOption({
        tooltip: { trigger: 'axis' },
        xAxis: { type: 'category', data: data.sales.months },
        yAxis: { type: 'value', min: 0 },
        series: [{ type: 'line', data: data.sales.monthlySales, symbolSize: 8, lineStyle: { width: 3, color: '#1f77b4' }, itemStyle: { color: '#1f77b4' } }]
    });
})();
`

const productBarScript = `
(function() {
    const el = document.getElementById('product-bar');
    if (!el) return;
    const chart = echarts.init(el);
    charts.push(chart);
    const palette = ['#1f77b4', '#ff7f0e', '#2ca02c', '#d62728'];
    chart.setOption({
        tooltip: { trigger: 'axis' },
        xAxis: { type: 'category', data: data.sales.products, axisLabel: { rotate: 45 } },
        yAxis: { type: 'value' },
        series: [{ type: 'bar', data: data.sales.productSales.map((v, i) => ({ value: v, itemStyle: { color: palette[i % palette.length], opacity: 0.8 } })) }]
    });
})();
`

const productPieScript = `
(function() {
    const el = document.getElementById('product-pie');
    if (!el) return;
    const chart = echarts.init(el);
    charts.push(chart);
    chart.setOption({
        tooltip: { trigger: 'item', formatter: '{b}: {c} ({d}%)' },
        legend: { bottom: 0 },
        series: [{
            type: 'pie',
            radius: ['35%', '65%'],
            itemStyle: { borderColor: '#fff', borderWidth: 2 },
            data: data.sales.products.map((name, i) => ({ name, value: data.sales.productSales[i] }))
        }]
    });
})();
`

const salesHeatmapScript = `
(function() {
    const el = document.getElementById('sales-heatmap');
    if (!el) return;
    const chart = echarts.init(el);
    charts.push(chart);
    const values = data.sales.heatmap.map(c => c[2]);
    chart.setOption({
        tooltip: { formatter: p => data.sales.months[p.data[0]] + ' / ' + data.sales.products[p.data[1]] + ': ' + p.data[2] },
        grid: { bottom: '25%' },
        xAxis: { type: 'category', data: data.sales.months, splitArea: { show: true } },
        yAxis: { type: 'category', data: data.sales.products, splitArea: { show: true } },
        visualMap: { min: Math.min(...values), max: Math.max(...values), orient: 'horizontal', left: 'center', bottom: 0 },
        series: [{ type: 'heatmap', data: data.sales.heatmap, label: { show: true } }]
    });
})();
`

const tabChartsScript = `
(function() {
    const hist = document.getElementById('overview-hist');
    if (hist) {
        const chart = echarts.init(hist);
        charts.push(chart);
        chart.setOption({
            tooltip: { trigger: 'axis' },
            xAxis: { type: 'category', data: data.tabs.overviewHist.centers.map(c => c.toFixed(2)) },
            yAxis: { type: 'value' },
            series: [{ type: 'bar', barCategoryGap: '0%', data: data.tabs.overviewHist.counts, itemStyle: { color: '#87ceeb', opacity: 0.8 } }]
        });
    }
    const ts = document.getElementById('timeseries-chart');
    if (ts) {
        const chart = echarts.init(ts);
        charts.push(chart);
        chart.setOption({
            tooltip: { trigger: 'axis' },
            xAxis: { type: 'category', data: data.tabs.seriesDates },
            yAxis: { type: 'value', scale: true },
            dataZoom: [{ type: 'inside' }, { type: 'slider' }],
            series: [{ type: 'line', data: data.tabs.seriesValues, showSymbol: false, lineStyle: { width: 2, color: '#2ca02c' } }]
        });
    }
    const corr = document.getElementById('corr-heatmap');
    if (corr) {
        const chart = echarts.init(corr);
        charts.push(chart);
        const cells = [];
        data.tabs.corrMatrix.forEach((row, i) => {
            row.forEach((v, j) => cells.push([j, i, Math.round(v * 100) / 100]));
        });
        chart.setOption({
            tooltip: { formatter: p => data.tabs.corrLabels[p.data[0]] + ' / ' + data.tabs.corrLabels[p.data[1]] + ': ' + p.data[2] },
            xAxis: { type: 'category', data: data.tabs.corrLabels, splitArea: { show: true } },
            yAxis: { type: 'category', data: data.tabs.corrLabels, splitArea: { show: true } },
            visualMap: { min: -1, max: 1, inRange: { color: ['#d73027', '#ffffbf', '#4575b4'] }, orient: 'horizontal', left: 'center', bottom: 0 },
            series: [{ type: 'heatmap', data: cells, label: { show: true }, itemStyle: { borderColor: '#fff', borderWidth: 1 } }]
        });
    }
})();
`

// Tab switching. Charts initialized inside hidden panes pick up a zero size,
// so every chart is resized when its pane becomes visible.
const tabSwitchScript = `
document.querySelectorAll('.tab-button').forEach(btn => {
    btn.addEventListener('click', () => {
        document.querySelectorAll('.tab-button').forEach(b => b.classList.remove('active'));
        document.querySelectorAll('.tab-pane').forEach(p => p.classList.remove('active'));
        btn.classList.add('active');
        document.getElementById(btn.dataset.tab).classList.add('active');
        charts.forEach(c => c.resize());
    });
});
`

const pageCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    background: #f5f7fa;
    color: #333;
}
.container { max-width: 1400px; margin: 0 auto; padding: 20px; }
header { text-align: center; padding: 25px 0; border-bottom: 1px solid #ddd; margin-bottom: 25px; }
header h1 { font-size: 2rem; margin-bottom: 8px; }
header p { color: #666; }
.section-title { margin: 30px 0 15px; font-size: 1.4rem; }
.widget { margin-bottom: 25px; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 16px; }
.stat-card { background: #fff; border-radius: 10px; padding: 18px; text-align: center; border: 1px solid #e0e0e0; }
.stat-card .number { font-size: 1.8rem; font-weight: bold; color: #1f77b4; }
.stat-card .label { color: #666; margin-top: 4px; }
.row { display: flex; gap: 20px; flex-wrap: wrap; }
.grid-2x2 { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; }
@media (max-width: 900px) { .grid-2x2 { grid-template-columns: 1fr; } }
.chart-box { background: #fff; border-radius: 10px; padding: 16px; border: 1px solid #e0e0e0; }
.chart-box.wide { flex: 2; min-width: 500px; }
.chart-box.narrow { flex: 1; min-width: 280px; }
.chart-box h3 { margin-bottom: 10px; font-size: 1.05rem; }
.chart { width: 100%; height: 300px; }
.chart.short { height: 200px; }
.chart.tall { height: 420px; }
.table-box { background: #fff; border-radius: 10px; padding: 16px; border: 1px solid #e0e0e0; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 10px 14px; text-align: left; border-bottom: 1px solid #eee; }
th { background: #f9f9f9; }
.tab-bar { display: flex; gap: 8px; margin-bottom: 14px; border-bottom: 1px solid #eee; }
.tab-button { padding: 10px 18px; border: none; background: none; cursor: pointer; font-size: 1rem; color: #666; border-bottom: 2px solid transparent; }
.tab-button.active { color: #1f77b4; border-bottom-color: #1f77b4; }
.tab-pane { display: none; }
.tab-pane.active { display: block; }
`
