package chart

/*
A desktop time-series chart viewer.
Copyright (C) 2024 Haris Khan

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"image/color"

	"coolchart/lib/timeseries"
)

// Insets is spacing around a rectangle, in pixels.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Plot holds everything drawn inside the axes.
type Plot struct {
	Background             color.RGBA
	DomainGridline         color.RGBA
	RangeGridline          color.RGBA
	AxisOffset             Insets
	DomainCrosshairVisible bool
	RangeCrosshairVisible  bool
	Renderer               Renderer
	DomainAxis             *DateAxis
	RangeAxis              *NumberAxis
}

// Chart is a dataset plus everything needed to draw it.
type Chart struct {
	Title      string
	Legend     bool
	Tooltips   bool
	URLs       bool
	Background color.RGBA
	Theme      Theme
	Plot       *Plot
	Dataset    *timeseries.Dataset
}

// ChartConfig is a read-only snapshot of a chart's display options.
type ChartConfig struct {
	Title                  string
	TimeAxisLabel          string
	ValueAxisLabel         string
	Legend                 bool
	Tooltips               bool
	URLs                   bool
	Background             color.RGBA
	PlotBackground         color.RGBA
	DomainGridline         color.RGBA
	RangeGridline          color.RGBA
	AxisOffset             Insets
	DateFormat             string
	RendererKind           string
	LinesVisible           bool
	ShapesVisible          bool
	ShapesFilled           bool
	DrawSeriesLineAsPath   bool
	DomainCrosshairVisible bool
	RangeCrosshairVisible  bool
	ThemeName              string
}

// CreateTimeSeriesChart creates a chart with a date domain axis, a value
// range axis that does not force zero into view and a line renderer
// without shapes.
func CreateTimeSeriesChart(title, timeAxisLabel, valueAxisLabel string, dataset *timeseries.Dataset, legend, tooltips, urls bool) *Chart {
	return CreateTimeSeriesChartWithTheme(DefaultTheme(), title, timeAxisLabel, valueAxisLabel, dataset, legend, tooltips, urls)
}

func CreateTimeSeriesChartWithTheme(theme Theme, title, timeAxisLabel, valueAxisLabel string, dataset *timeseries.Dataset, legend, tooltips, urls bool) *Chart {
	return &Chart{
		Title:      title,
		Legend:     legend,
		Tooltips:   tooltips,
		URLs:       urls,
		Background: White,
		Theme:      theme,
		Dataset:    dataset,
		Plot: &Plot{
			Background:     LightGray,
			DomainGridline: White,
			RangeGridline:  White,
			AxisOffset:     Insets{Top: 4, Left: 4, Bottom: 4, Right: 4},
			Renderer:       NewXYLineAndShapeRenderer(theme, true, false),
			DomainAxis:     &DateAxis{Label: timeAxisLabel, Margin: DefaultAxisMargin},
			RangeAxis:      &NumberAxis{Label: valueAxisLabel, Margin: DefaultAxisMargin},
		},
	}
}

// Config captures the current display options.
func (c *Chart) Config() ChartConfig {
	lines, shapes, filled, asPath := lineFlags(c.Plot.Renderer)
	return ChartConfig{
		Title:                  c.Title,
		TimeAxisLabel:          c.Plot.DomainAxis.Label,
		ValueAxisLabel:         c.Plot.RangeAxis.Label,
		Legend:                 c.Legend,
		Tooltips:               c.Tooltips,
		URLs:                   c.URLs,
		Background:             c.Background,
		PlotBackground:         c.Plot.Background,
		DomainGridline:         c.Plot.DomainGridline,
		RangeGridline:          c.Plot.RangeGridline,
		AxisOffset:             c.Plot.AxisOffset,
		DateFormat:             c.Plot.DomainAxis.DateFormat,
		RendererKind:           c.Plot.Renderer.Kind(),
		LinesVisible:           lines,
		ShapesVisible:          shapes,
		ShapesFilled:           filled,
		DrawSeriesLineAsPath:   asPath,
		DomainCrosshairVisible: c.Plot.DomainCrosshairVisible,
		RangeCrosshairVisible:  c.Plot.RangeCrosshairVisible,
		ThemeName:              c.Theme.Name,
	}
}
