package chart

import "image/color"

// Renderer turns a dataset into marks. Back ends query it for per-series
// styling and, through LineAndShapeRenderer, for line and shape flags.
type Renderer interface {
	Kind() string
	SeriesColor(i int) color.RGBA
}

// LineAndShapeRenderer is the capability of drawing connecting lines and a
// shape at every data item.
type LineAndShapeRenderer interface {
	Renderer
	LinesVisible() bool
	ShapesVisible() bool
	ShapesFilled() bool
	DrawSeriesLineAsPath() bool
	SetShapesVisible(bool)
	SetShapesFilled(bool)
	SetDrawSeriesLineAsPath(bool)
}

type XYLineAndShapeRenderer struct {
	theme         Theme
	linesVisible  bool
	shapesVisible bool
	shapesFilled  bool
	lineAsPath    bool
}

func NewXYLineAndShapeRenderer(theme Theme, lines, shapes bool) *XYLineAndShapeRenderer {
	return &XYLineAndShapeRenderer{
		theme:         theme,
		linesVisible:  lines,
		shapesVisible: shapes,
	}
}

func (r *XYLineAndShapeRenderer) Kind() string                   { return "line-and-shape" }
func (r *XYLineAndShapeRenderer) SeriesColor(i int) color.RGBA   { return r.theme.SeriesColor(i) }
func (r *XYLineAndShapeRenderer) LinesVisible() bool             { return r.linesVisible }
func (r *XYLineAndShapeRenderer) ShapesVisible() bool            { return r.shapesVisible }
func (r *XYLineAndShapeRenderer) ShapesFilled() bool             { return r.shapesFilled }
func (r *XYLineAndShapeRenderer) DrawSeriesLineAsPath() bool     { return r.lineAsPath }
func (r *XYLineAndShapeRenderer) SetShapesVisible(v bool)        { r.shapesVisible = v }
func (r *XYLineAndShapeRenderer) SetShapesFilled(v bool)         { r.shapesFilled = v }
func (r *XYLineAndShapeRenderer) SetDrawSeriesLineAsPath(v bool) { r.lineAsPath = v }

// XYAreaRenderer fills the area under each series. It has no shape support.
type XYAreaRenderer struct {
	theme Theme
}

func NewXYAreaRenderer(theme Theme) *XYAreaRenderer {
	return &XYAreaRenderer{theme: theme}
}

func (r *XYAreaRenderer) Kind() string                 { return "area" }
func (r *XYAreaRenderer) SeriesColor(i int) color.RGBA { return r.theme.SeriesColor(i) }

// lineFlags reports how a renderer wants lines and shapes drawn. Renderers
// without the line-and-shape capability draw plain lines.
func lineFlags(r Renderer) (lines, shapes, filled, asPath bool) {
	if ls, ok := r.(LineAndShapeRenderer); ok {
		return ls.LinesVisible(), ls.ShapesVisible(), ls.ShapesFilled(), ls.DrawSeriesLineAsPath()
	}
	return true, false, false, true
}

var _ LineAndShapeRenderer = (*XYLineAndShapeRenderer)(nil)
var _ Renderer = (*XYAreaRenderer)(nil)
