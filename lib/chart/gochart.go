package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/sirupsen/logrus"
	gochart "github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"
)

var log = logrus.StandardLogger()

const (
	titleSpace    = 24
	lineWidth     = 1.5
	shapeDiameter = 6.0
	// pixels per date tick label
	tickSpacing = 80
)

// Rendering is a rendered PNG plus the mapping between its pixels and data.
type Rendering struct {
	PNG      []byte
	Geometry Geometry
}

// Geometry locates the plot area inside a rendered image.
type Geometry struct {
	Left, Top, Right, Bottom int
	Viewport                 Viewport
}

func (g Geometry) InPlot(px, py float64) bool {
	return px >= float64(g.Left) && px <= float64(g.Right) && py >= float64(g.Top) && py <= float64(g.Bottom)
}

// ToPixel maps a data coordinate to image pixels.
func (g Geometry) ToPixel(x, y float64) (float64, float64) {
	v := g.Viewport
	px := float64(g.Left) + (x-v.XMin)/v.Width()*float64(g.Right-g.Left)
	py := float64(g.Bottom) - (y-v.YMin)/v.Height()*float64(g.Bottom-g.Top)
	return px, py
}

// ToData maps image pixels to a data coordinate.
func (g Geometry) ToData(px, py float64) (float64, float64) {
	v := g.Viewport
	w, h := float64(g.Right-g.Left), float64(g.Bottom-g.Top)
	if w <= 0 || h <= 0 {
		return v.XMin, v.YMin
	}
	x := v.XMin + (px-float64(g.Left))/w*v.Width()
	y := v.YMin + (float64(g.Bottom)-py)/h*v.Height()
	return x, y
}

// transparent is fully transparent but non-zero, so go-chart does not
// substitute its default colour.
var transparent = drawing.Color{R: 1, A: 0}

func drawingColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func isArea(r Renderer) bool {
	_, ok := r.(*XYAreaRenderer)
	return ok
}

// RenderPNG draws the chart through go-chart at the given pixel size,
// showing only the data inside v.
func RenderPNG(c *Chart, v Viewport, width, height int) (*Rendering, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid chart size %dx%d", width, height)
	}
	if v.Width() <= 0 || v.Height() <= 0 {
		return nil, fmt.Errorf("empty viewport")
	}
	plot := c.Plot
	lines, shapes, filled, _ := lineFlags(plot.Renderer)
	area := isArea(plot.Renderer)

	// go-chart needs one visible series even when everything is zoomed out
	// of view, so a transparent one spans the viewport
	series := []gochart.Series{
		gochart.TimeSeries{
			Name:    "",
			Style:   gochart.Style{Show: true, StrokeColor: transparent, StrokeWidth: 1},
			XValues: []time.Time{TimeOf(v.XMin), TimeOf(v.XMax)},
			YValues: []float64{v.YMin, v.YMax},
		},
	}
	var legendSeries []gochart.Series

	for i, s := range c.Dataset.Series() {
		col := drawingColor(plot.Renderer.SeriesColor(i))
		lineStyle := gochart.Style{
			Show:        true,
			StrokeColor: col,
			StrokeWidth: lineWidth,
		}
		if area {
			fill := col
			fill.A = 0x80
			lineStyle.FillColor = fill
		}
		legendSeries = append(legendSeries, gochart.TimeSeries{Name: s.Name(), Style: lineStyle})

		pts := SeriesXY(c, i)
		if lines || area {
			for _, piece := range ClipPolyline(pts, v) {
				if len(piece) < 2 {
					continue
				}
				series = append(series, timeSeries(s.Name(), lineStyle, piece))
			}
		}
		if shapes {
			var inside []XY
			for _, p := range pts {
				if v.Contains(p.X, p.Y) {
					inside = append(inside, p)
				}
			}
			if len(inside) == 0 {
				continue
			}
			dot := drawingColor(plot.Background)
			if filled {
				dot = col
			}
			series = append(series, timeSeries(s.Name(), gochart.Style{
				Show: true,
				StrokeColor: transparent,
				StrokeWidth: 1,
				DotColor:    dot,
				DotWidth:    shapeDiameter / 2,
			}, inside))
		}
	}

	var ticks []gochart.Tick
	for _, t := range DateTicks(plot.DomainAxis, v.XMin, v.XMax, width/tickSpacing) {
		ticks = append(ticks, gochart.Tick{Value: t.X, Label: t.Label})
	}

	axisColor := drawingColor(c.Theme.AxisColor)
	offset := plot.AxisOffset
	graph := gochart.Chart{
		Title:      c.Title,
		TitleStyle: gochart.Style{Show: c.Title != "", FontColor: drawingColor(c.Theme.TitleColor)},
		Width:      width,
		Height:     height,
		Background: gochart.Style{
			FillColor: drawingColor(c.Background),
			Padding: gochart.Box{
				Top:    titleSpace + int(offset.Top),
				Left:   10 + int(offset.Left),
				Right:  10 + int(offset.Right),
				Bottom: 10 + int(offset.Bottom),
			},
		},
		Canvas: gochart.Style{FillColor: drawingColor(plot.Background)},
		XAxis: gochart.XAxis{
			Name:      plot.DomainAxis.Label,
			NameStyle: gochart.Style{Show: plot.DomainAxis.Label != "", FontColor: axisColor},
			Style:     gochart.Style{Show: true, FontColor: axisColor, StrokeColor: axisColor},
			Range:     &gochart.ContinuousRange{Min: v.XMin, Max: v.XMax},
			Ticks:     ticks,
			GridMajorStyle: gochart.Style{
				Show:        true,
				StrokeColor: drawingColor(plot.DomainGridline),
				StrokeWidth: 1,
			},
		},
		YAxis: gochart.YAxis{
			Name:      plot.RangeAxis.Label,
			NameStyle: gochart.Style{Show: plot.RangeAxis.Label != "", FontColor: axisColor},
			Style:     gochart.Style{Show: true, FontColor: axisColor, StrokeColor: axisColor},
			Range:     &gochart.ContinuousRange{Min: v.YMin, Max: v.YMax},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return FormatValue(f)
				}
				return ""
			},
			GridMajorStyle: gochart.Style{
				Show:        true,
				StrokeColor: drawingColor(plot.RangeGridline),
				StrokeWidth: 1,
			},
		},
		Series: series,
	}

	var box gochart.Box
	graph.Elements = []gochart.Renderable{
		func(_ gochart.Renderer, canvasBox gochart.Box, _ gochart.Style) {
			box = canvasBox
		},
	}
	if c.Legend {
		legendChart := graph
		legendChart.Series = legendSeries
		graph.Elements = append(graph.Elements, gochart.Legend(&legendChart))
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		log.Debugf("Failed to render chart: %v", err)
		return nil, fmt.Errorf("render chart: %w", err)
	}
	log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"bytes":  buf.Len(),
	}).Debug("Rendered chart PNG")

	return &Rendering{
		PNG: buf.Bytes(),
		Geometry: Geometry{
			Left:     box.Left,
			Top:      box.Top,
			Right:    box.Right,
			Bottom:   box.Bottom,
			Viewport: v,
		},
	}, nil
}

func timeSeries(name string, style gochart.Style, pts []XY) gochart.TimeSeries {
	ts := gochart.TimeSeries{
		Name:    name,
		Style:   style,
		XValues: make([]time.Time, len(pts)),
		YValues: make([]float64, len(pts)),
	}
	for i, p := range pts {
		ts.XValues[i] = TimeOf(p.X)
		ts.YValues[i] = p.Y
	}
	return ts
}
