package chart

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotFormats are the formats gonum/plot can write.
var PlotFormats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

func isPlotFormat(format string) bool {
	for _, f := range PlotFormats {
		if f == format {
			return true
		}
	}
	return false
}

// seconds converts an x coordinate to the Unix seconds gonum's time ticks use.
func seconds(x float64) float64 {
	return x / 1e9
}

// NewPlot builds a gonum plot of the chart restricted to v.
func NewPlot(c *Chart, v Viewport) (*plot.Plot, error) {
	pl := c.Plot
	lines, shapes, filled, asPath := lineFlags(pl.Renderer)

	p := plot.New()
	p.Title.Text = c.Title
	p.Title.TextStyle.Color = c.Theme.TitleColor
	p.BackgroundColor = c.Background
	p.X.Label.Text = pl.DomainAxis.Label
	p.Y.Label.Text = pl.RangeAxis.Label
	p.X.Tick.Marker = plot.TimeTicks{Format: dateLayout(pl.DomainAxis)}

	grid := plotter.NewGrid()
	grid.Vertical.Color = pl.DomainGridline
	grid.Horizontal.Color = pl.RangeGridline
	p.Add(grid)

	for i, s := range c.Dataset.Series() {
		col := pl.Renderer.SeriesColor(i)
		xys := make(plotter.XYs, 0, s.Len())
		for _, pt := range SeriesXY(c, i) {
			xys = append(xys, plotter.XY{X: seconds(pt.X), Y: pt.Y})
		}
		var thumbs []plot.Thumbnailer

		if lines && len(xys) > 1 {
			lns, err := seriesLines(xys, col, asPath)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Name(), err)
			}
			for _, l := range lns {
				p.Add(l)
			}
			thumbs = append(thumbs, lns[0])
		}
		if shapes && len(xys) > 0 {
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Name(), err)
			}
			sc.GlyphStyle = draw.GlyphStyle{
				Color:  col,
				Radius: vg.Points(3),
				Shape:  draw.RingGlyph{},
			}
			if filled {
				sc.GlyphStyle.Shape = draw.CircleGlyph{}
			}
			p.Add(sc)
			thumbs = append(thumbs, sc)
		}
		if c.Legend && len(thumbs) > 0 {
			p.Legend.Add(s.Name(), thumbs...)
		}
	}
	p.Legend.Top = true

	// Add widens the axes to each plotter's data range, so the viewport
	// is applied last
	p.X.Min, p.X.Max = seconds(v.XMin), seconds(v.XMax)
	p.Y.Min, p.Y.Max = v.YMin, v.YMax
	return p, nil
}

// seriesLines draws a series as one path, or as independent segments.
func seriesLines(xys plotter.XYs, col color.RGBA, asPath bool) ([]*plotter.Line, error) {
	style := func(l *plotter.Line) {
		l.LineStyle.Color = col
		l.LineStyle.Width = vg.Points(lineWidth)
	}
	if asPath {
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		style(l)
		return []*plotter.Line{l}, nil
	}
	out := make([]*plotter.Line, 0, len(xys)-1)
	for i := 1; i < len(xys); i++ {
		l, err := plotter.NewLine(plotter.XYs{xys[i-1], xys[i]})
		if err != nil {
			return nil, err
		}
		style(l)
		out = append(out, l)
	}
	return out, nil
}

func dateLayout(a *DateAxis) string {
	if a.DateFormat != "" {
		return a.DateFormat
	}
	return "Jan 2006"
}

// RenderPlot writes the chart in one of PlotFormats at the given size.
func RenderPlot(c *Chart, v Viewport, width, height vg.Length, format string, w io.Writer) error {
	format = strings.ToLower(format)
	if !isPlotFormat(format) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	p, err := NewPlot(c, v)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("prepare %s writer: %w", format, err)
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	log.WithField("format", format).Debugf("Wrote %d bytes", n)
	return nil
}
