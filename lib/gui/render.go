package gui

import (
	"fmt"

	"coolchart/lib/chart"

	"fyne.io/fyne/v2"
)

// requestRender asks the render loop for a fresh image. Requests made
// while one is pending are merged.
func (p *ChartPanel) requestRender() {
	select {
	case p.renderCh <- struct{}{}:
	default:
	}
}

// renderLoop redraws the chart image off the UI goroutine until the
// panel is closed.
func (p *ChartPanel) renderLoop() {
	for {
		select {
		case <-p.done:
			return
		case <-p.renderCh:
			if err := p.renderNow(); err != nil {
				log.WithError(err).Error("Failed to render chart")
			}
		}
	}
}

// renderNow draws the current viewport at the panel's size.
func (p *ChartPanel) renderNow() error {
	size := p.Size()
	w, h := int(size.Width), int(size.Height)
	if w <= 0 || h <= 0 {
		return nil
	}
	v := p.Viewport()

	r, err := chart.RenderPNG(p.chart, v, w, h)
	if err != nil {
		return fmt.Errorf("render %dx%d: %w", w, h, err)
	}

	p.mu.Lock()
	p.geometry = r.Geometry
	p.rendered = size
	p.mu.Unlock()

	p.image.Resource = fyne.NewStaticResource("chart.png", r.PNG)
	p.image.Refresh()
	p.Refresh()
	log.Debugf("Rendered chart at %dx%d", w, h)
	return nil
}
