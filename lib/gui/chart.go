package gui

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"coolchart/lib/chart"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	// wheelZoomFactor is applied per wheel notch; its inverse zooms out.
	wheelZoomFactor = 0.9
	// minimum drag, in pixels, before a zoom rectangle counts
	zoomTriggerDistance = 10
	// how close, in pixels, the cursor must be to an item for a tooltip
	tooltipRadius = 8
)

var (
	zoomFill        = color.NRGBA{R: 0, G: 0, B: 255, A: 63}
	zoomOutline     = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	crosshairColour = color.NRGBA{R: 0, G: 0, B: 255, A: 200}
	tooltipBG       = color.NRGBA{R: 255, G: 255, B: 220, A: 240}
)

// ChartPanel shows a chart and lets the user zoom it with the mouse
// wheel or a dragged rectangle, lock crosshairs to a data item and see
// tooltips.
type ChartPanel struct {
	widget.BaseWidget

	MouseWheelEnabled bool
	FillZoomRectangle bool

	chart *chart.Chart
	image *canvas.Image

	mu        sync.Mutex
	auto      chart.Viewport
	viewport  chart.Viewport
	geometry  chart.Geometry
	rendered  fyne.Size
	crosshair chart.Crosshair
	locked    bool
	dragging  bool
	dragStart fyne.Position
	dragEnd   fyne.Position
	tooltip   string
	tipPos    fyne.Position

	renderCh chan struct{}
	done     chan struct{}
	once     sync.Once
}

// NewChartPanel creates a panel for c showing its full data range.
func NewChartPanel(c *chart.Chart) (*ChartPanel, error) {
	auto, err := chart.AutoRange(c)
	if err != nil {
		return nil, fmt.Errorf("chart range: %w", err)
	}
	p := &ChartPanel{
		MouseWheelEnabled: true,
		chart:             c,
		image:             canvas.NewImageFromResource(nil),
		auto:              auto,
		viewport:          auto,
		renderCh:          make(chan struct{}, 1),
		done:              make(chan struct{}),
	}
	p.image.FillMode = canvas.ImageFillStretch
	p.ExtendBaseWidget(p)
	go p.renderLoop()
	return p, nil
}

func (p *ChartPanel) CreateRenderer() fyne.WidgetRenderer {
	return newChartPanelRenderer(p)
}

func (p *ChartPanel) MinSize() fyne.Size {
	p.ExtendBaseWidget(p)
	return fyne.NewSize(200, 120)
}

// Chart returns the displayed chart.
func (p *ChartPanel) Chart() *chart.Chart {
	return p.chart
}

// Viewport returns the visible data window.
func (p *ChartPanel) Viewport() chart.Viewport {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewport
}

func (p *ChartPanel) setViewport(v chart.Viewport) {
	p.mu.Lock()
	p.viewport = v
	p.mu.Unlock()
	log.Debugf("Viewport set to %+v", v)
	p.requestRender()
}

// RestoreAutoBounds shows the full data range again.
func (p *ChartPanel) RestoreAutoBounds() {
	p.setViewport(p.auto)
}

// ZoomIn zooms around the centre of the plot.
func (p *ChartPanel) ZoomIn() {
	p.zoomCentre(wheelZoomFactor)
}

func (p *ChartPanel) ZoomOut() {
	p.zoomCentre(1 / wheelZoomFactor)
}

func (p *ChartPanel) zoomCentre(factor float64) {
	v := p.Viewport()
	p.setViewport(v.ZoomAt(factor, (v.XMin+v.XMax)/2, (v.YMin+v.YMax)/2))
}

// Crosshair returns the locked crosshair, if any.
func (p *ChartPanel) Crosshair() (chart.Crosshair, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.crosshair, p.locked
}

// Geometry returns the plot geometry of the last rendering.
func (p *ChartPanel) Geometry() chart.Geometry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.geometry
}

func (p *ChartPanel) Resize(size fyne.Size) {
	p.BaseWidget.Resize(size)
	p.requestRender()
}

// Scrolled zooms around the cursor.
func (p *ChartPanel) Scrolled(ev *fyne.ScrollEvent) {
	if !p.MouseWheelEnabled || ev.Scrolled.DY == 0 {
		return
	}
	g := p.Geometry()
	if !g.InPlot(float64(ev.Position.X), float64(ev.Position.Y)) {
		return
	}
	x, y := g.ToData(float64(ev.Position.X), float64(ev.Position.Y))
	factor := wheelZoomFactor
	if ev.Scrolled.DY < 0 {
		factor = 1 / wheelZoomFactor
	}
	p.setViewport(p.Viewport().ZoomAt(factor, x, y))
}

func (p *ChartPanel) Dragged(ev *fyne.DragEvent) {
	p.mu.Lock()
	if !p.dragging {
		p.dragging = true
		p.dragStart = fyne.NewPos(ev.Position.X-ev.Dragged.DX, ev.Position.Y-ev.Dragged.DY)
	}
	p.dragEnd = ev.Position
	p.mu.Unlock()
	p.Refresh()
}

// DragEnd zooms to the dragged rectangle. Dragging towards the left
// restores the full data range.
func (p *ChartPanel) DragEnd() {
	p.mu.Lock()
	start, end := p.dragStart, p.dragEnd
	p.dragging = false
	g := p.geometry
	p.mu.Unlock()

	v, ok := dragZoom(g, start, end)
	switch {
	case ok:
		p.setViewport(v)
	case end.X < start.X:
		p.RestoreAutoBounds()
	default:
		p.Refresh()
	}
}

// dragZoom converts a drag from start to end into a viewport. ok is
// false for leftward drags and drags too small to mean a zoom.
func dragZoom(g chart.Geometry, start, end fyne.Position) (chart.Viewport, bool) {
	if end.X < start.X {
		return g.Viewport, false
	}
	if math.Abs(float64(end.X-start.X)) < zoomTriggerDistance || math.Abs(float64(end.Y-start.Y)) < zoomTriggerDistance {
		return g.Viewport, false
	}
	sx, sy := clampToPlot(g, start)
	ex, ey := clampToPlot(g, end)
	x0, y0 := g.ToData(sx, sy)
	x1, y1 := g.ToData(ex, ey)
	return g.Viewport.ZoomTo(x0, y0, x1, y1)
}

func clampToPlot(g chart.Geometry, pos fyne.Position) (float64, float64) {
	x := math.Max(float64(g.Left), math.Min(float64(g.Right), float64(pos.X)))
	y := math.Max(float64(g.Top), math.Min(float64(g.Bottom), float64(pos.Y)))
	return x, y
}

// Tapped locks the crosshairs to the nearest data item.
func (p *ChartPanel) Tapped(ev *fyne.PointEvent) {
	plot := p.chart.Plot
	if !plot.DomainCrosshairVisible && !plot.RangeCrosshairVisible {
		return
	}
	g := p.Geometry()
	px, py := float64(ev.Position.X), float64(ev.Position.Y)
	if !g.InPlot(px, py) {
		return
	}
	x, y := g.ToData(px, py)
	item, ok := chart.NearestItem(p.chart, g.Viewport, x, y)
	if !ok {
		return
	}
	p.mu.Lock()
	p.crosshair = plot.LockTo(item)
	p.locked = true
	p.mu.Unlock()
	log.Debugf("Crosshair locked to %s", chart.ToolTip(item, plot.DomainAxis))
	p.Refresh()
}

func (p *ChartPanel) MouseIn(ev *desktop.MouseEvent) {
	p.MouseMoved(ev)
}

// MouseMoved shows a tooltip when the cursor is over a data item.
func (p *ChartPanel) MouseMoved(ev *desktop.MouseEvent) {
	if !p.chart.Tooltips {
		return
	}
	tip := p.tooltipAt(ev.Position)
	p.mu.Lock()
	changed := tip != p.tooltip
	p.tooltip = tip
	p.tipPos = ev.Position
	p.mu.Unlock()
	if changed {
		p.Refresh()
	}
}

func (p *ChartPanel) MouseOut() {
	p.mu.Lock()
	p.tooltip = ""
	p.mu.Unlock()
	p.Refresh()
}

func (p *ChartPanel) tooltipAt(pos fyne.Position) string {
	g := p.Geometry()
	px, py := float64(pos.X), float64(pos.Y)
	if !g.InPlot(px, py) {
		return ""
	}
	x, y := g.ToData(px, py)
	item, ok := chart.NearestItem(p.chart, g.Viewport, x, y)
	if !ok {
		return ""
	}
	xy := item.XY()
	ix, iy := g.ToPixel(xy.X, xy.Y)
	if math.Hypot(ix-px, iy-py) > tooltipRadius {
		return ""
	}
	return chart.ToolTip(item, p.chart.Plot.DomainAxis)
}

// Close stops the background renderer.
func (p *ChartPanel) Close() {
	p.once.Do(func() { close(p.done) })
}

var (
	_ fyne.Widget       = (*ChartPanel)(nil)
	_ fyne.Scrollable   = (*ChartPanel)(nil)
	_ fyne.Draggable    = (*ChartPanel)(nil)
	_ fyne.Tappable     = (*ChartPanel)(nil)
	_ desktop.Hoverable = (*ChartPanel)(nil)
)
