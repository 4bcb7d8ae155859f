package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
)

// chartPanelRenderer draws the chart image with the zoom rectangle,
// crosshairs and tooltip on top.
type chartPanelRenderer struct {
	panel *ChartPanel

	zoomRect *canvas.Rectangle
	domain   *canvas.Line
	rng      *canvas.Line
	tipBG    *canvas.Rectangle
	tip      *canvas.Text

	objects []fyne.CanvasObject
}

func newChartPanelRenderer(p *ChartPanel) *chartPanelRenderer {
	r := &chartPanelRenderer{
		panel:    p,
		zoomRect: canvas.NewRectangle(zoomFill),
		domain:   canvas.NewLine(crosshairColour),
		rng:      canvas.NewLine(crosshairColour),
		tipBG:    canvas.NewRectangle(tooltipBG),
		tip:      canvas.NewText("", color.Black),
	}
	r.zoomRect.StrokeColor = zoomOutline
	r.zoomRect.StrokeWidth = 1
	r.domain.StrokeWidth = 1
	r.rng.StrokeWidth = 1
	r.tip.TextSize = theme.CaptionTextSize()
	r.objects = []fyne.CanvasObject{p.image, r.zoomRect, r.domain, r.rng, r.tipBG, r.tip}
	return r
}

func (r *chartPanelRenderer) Layout(size fyne.Size) {
	p := r.panel
	p.image.Move(fyne.NewPos(0, 0))
	p.image.Resize(size)

	p.mu.Lock()
	dragging, start, end := p.dragging, p.dragStart, p.dragEnd
	cross, locked := p.crosshair, p.locked
	tip, tipPos := p.tooltip, p.tipPos
	g := p.geometry
	fill := p.FillZoomRectangle
	p.mu.Unlock()

	r.zoomRect.Hidden = !dragging || end.X < start.X
	if !r.zoomRect.Hidden {
		x0, y0 := clampToPlot(g, start)
		x1, y1 := clampToPlot(g, end)
		r.zoomRect.Move(fyne.NewPos(float32(min(x0, x1)), float32(min(y0, y1))))
		r.zoomRect.Resize(fyne.NewSize(float32(abs(x1-x0)), float32(abs(y1-y0))))
		if fill {
			r.zoomRect.FillColor = zoomFill
		} else {
			r.zoomRect.FillColor = nil
		}
	}

	r.domain.Hidden, r.rng.Hidden = true, true
	if locked {
		px, py := g.ToPixel(cross.Domain, cross.Range)
		if cross.DomainVisible && px >= float64(g.Left) && px <= float64(g.Right) {
			r.domain.Position1 = fyne.NewPos(float32(px), float32(g.Top))
			r.domain.Position2 = fyne.NewPos(float32(px), float32(g.Bottom))
			r.domain.Hidden = false
		}
		if cross.RangeVisible && py >= float64(g.Top) && py <= float64(g.Bottom) {
			r.rng.Position1 = fyne.NewPos(float32(g.Left), float32(py))
			r.rng.Position2 = fyne.NewPos(float32(g.Right), float32(py))
			r.rng.Hidden = false
		}
	}

	r.tip.Text = tip
	r.tip.Hidden, r.tipBG.Hidden = tip == "", tip == ""
	if tip != "" {
		ts := r.tip.MinSize()
		pad := theme.Padding() / 2
		pos := fyne.NewPos(tipPos.X+12, tipPos.Y+12)
		if pos.X+ts.Width+2*pad > size.Width {
			pos.X = tipPos.X - ts.Width - 2*pad - 4
		}
		if pos.Y+ts.Height+2*pad > size.Height {
			pos.Y = tipPos.Y - ts.Height - 2*pad - 4
		}
		r.tipBG.Move(pos)
		r.tipBG.Resize(fyne.NewSize(ts.Width+2*pad, ts.Height+2*pad))
		r.tip.Move(fyne.NewPos(pos.X+pad, pos.Y+pad))
		r.tip.Resize(ts)
	}
}

func (r *chartPanelRenderer) MinSize() fyne.Size {
	return r.panel.MinSize()
}

func (r *chartPanelRenderer) Refresh() {
	r.Layout(r.panel.Size())
	for _, o := range r.objects[1:] {
		o.Refresh()
	}
}

func (r *chartPanelRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy leaves the render loop running; the renderer may be rebuilt
// while the panel lives on. The window stops it on close.
func (r *chartPanelRenderer) Destroy() {
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
