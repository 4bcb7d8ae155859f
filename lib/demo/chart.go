package demo

import (
	"coolchart/lib/chart"
	"coolchart/lib/timeseries"
)

const (
	WindowTitle    = "coolness charted over time"
	ChartTitle     = "coolness graphed over time"
	TimeAxisLabel  = "Date"
	ValueAxisLabel = "coolness index"
	DateFormat     = "MMM-yyyy"
)

// CreateChart assembles the chart for dataset with the default theme.
func CreateChart(dataset *timeseries.Dataset) *chart.Chart {
	return CreateChartWithTheme(chart.DefaultTheme(), dataset)
}

// CreateChartWithTheme shows lines plus filled shapes at every data
// point, on a light grey plot with white gridlines and both crosshairs.
func CreateChartWithTheme(theme chart.Theme, dataset *timeseries.Dataset) *chart.Chart {
	return Assemble(NewBaseChart(theme, dataset))
}

// NewBaseChart is the stock time series chart with the demo's titles.
func NewBaseChart(theme chart.Theme, dataset *timeseries.Dataset) *chart.Chart {
	return chart.CreateTimeSeriesChartWithTheme(
		theme,
		ChartTitle,
		TimeAxisLabel,
		ValueAxisLabel,
		dataset,
		true,  // legend
		true,  // tooltips
		false, // urls
	)
}

// Assemble styles c in place and returns it. Shapes are only switched on
// when the plot's renderer can draw them.
func Assemble(c *chart.Chart) *chart.Chart {
	c.Background = chart.White

	plot := c.Plot
	plot.Background = chart.LightGray
	plot.DomainGridline = chart.White
	plot.RangeGridline = chart.White
	plot.AxisOffset = chart.Insets{Top: 5, Left: 5, Bottom: 5, Right: 5}
	plot.DomainCrosshairVisible = true
	plot.RangeCrosshairVisible = true

	if r, ok := plot.Renderer.(chart.LineAndShapeRenderer); ok {
		r.SetShapesVisible(true)
		r.SetShapesFilled(true)
		r.SetDrawSeriesLineAsPath(true)
	}

	plot.DomainAxis.SetDateFormatOverride(chart.JavaDateLayout(DateFormat))

	return c
}
