package chart

import (
	"fmt"
	"io"

	"coolchart/lib/timeseries"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// missing marks a gap in an echarts series.
const missing = "-"

// NewLine builds an interactive echarts line chart of the data inside v.
// The x axis holds the periods in view, labelled with the date axis
// format.
func NewLine(c *Chart, v Viewport, width, height int) *charts.Line {
	pl := c.Plot
	lines, shapes, _, _ := lineFlags(pl.Renderer)

	var periods []timeseries.Month
	for _, p := range c.Dataset.Periods() {
		if x := float64(p.Start().UnixNano()); x >= v.XMin && x <= v.XMax {
			periods = append(periods, p)
		}
	}
	labels := make([]string, len(periods))
	for i, p := range periods {
		labels[i] = pl.DomainAxis.Format(p.Start())
	}

	palette := make(opts.Colors, c.Dataset.SeriesCount())
	for i := range palette {
		palette[i] = Hex(pl.Renderer.SeriesColor(i))
	}

	tooltip := opts.Tooltip{Show: opts.Bool(c.Tooltips), Trigger: "axis"}
	if pl.DomainCrosshairVisible || pl.RangeCrosshairVisible {
		tooltip.AxisPointer = &opts.AxisPointer{Type: "cross"}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       c.Title,
			Width:           fmt.Sprintf("%dpx", width),
			Height:          fmt.Sprintf("%dpx", height),
			BackgroundColor: Hex(c.Background),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: c.Title,
			Left:  "center",
		}),
		charts.WithTooltipOpts(tooltip),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(c.Legend), Top: "bottom"}),
		charts.WithColorsOpts(palette),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      pl.DomainAxis.Label,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      pl.RangeAxis.Label,
			Min:       v.YMin,
			Max:       v.YMax,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)
	line.SetXAxis(labels)

	for _, s := range c.Dataset.Series() {
		data := make([]opts.LineData, len(periods))
		for i, p := range periods {
			if v, ok := s.Value(p); ok {
				data[i] = opts.LineData{Value: v}
			} else {
				data[i] = opts.LineData{Value: missing}
			}
		}
		lc := opts.LineChart{
			ShowSymbol:   opts.Bool(shapes),
			ConnectNulls: opts.Bool(true),
		}
		seriesOpts := []charts.SeriesOpts{charts.WithLineChartOpts(lc)}
		if !lines {
			seriesOpts = append(seriesOpts, charts.WithLineStyleOpts(opts.LineStyle{Color: "transparent"}))
		}
		if isArea(pl.Renderer) {
			seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{}))
		}
		line.AddSeries(s.Name(), data, seriesOpts...)
	}
	return line
}

// RenderHTML writes a standalone HTML page with the chart.
func RenderHTML(c *Chart, v Viewport, width, height int, w io.Writer) error {
	if err := NewLine(c, v, width, height).Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
