package chart

import (
	"math"
	"time"
)

const (
	minViewportWidth  = float64(24 * time.Hour)
	minViewportHeight = 1e-3
)

// XY is a data coordinate: x in Unix nanoseconds, y in value units.
type XY struct {
	X, Y float64
}

// Viewport is the visible data window of a plot.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (v Viewport) Width() float64  { return v.XMax - v.XMin }
func (v Viewport) Height() float64 { return v.YMax - v.YMin }

func (v Viewport) Contains(x, y float64) bool {
	return x >= v.XMin && x <= v.XMax && y >= v.YMin && y <= v.YMax
}

// ZoomAt scales the viewport around (ax, ay). A factor below one zooms in.
// The anchor stays at the same relative position.
func (v Viewport) ZoomAt(factor, ax, ay float64) Viewport {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return v
	}
	xmin, xmax := scaleAround(v.XMin, v.XMax, ax, factor, minViewportWidth)
	ymin, ymax := scaleAround(v.YMin, v.YMax, ay, factor, minViewportHeight)
	return Viewport{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

// ZoomTo returns the viewport spanned by two corners in any order. ok is
// false when the rectangle has no area.
func (v Viewport) ZoomTo(x0, y0, x1, y1 float64) (Viewport, bool) {
	xmin, xmax := math.Min(x0, x1), math.Max(x0, x1)
	ymin, ymax := math.Min(y0, y1), math.Max(y0, y1)
	if xmax-xmin <= 0 || ymax-ymin <= 0 {
		return v, false
	}
	xmin, xmax = widenTo(xmin, xmax, minViewportWidth)
	ymin, ymax = widenTo(ymin, ymax, minViewportHeight)
	return Viewport{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}, true
}

func (v Viewport) Pan(dx, dy float64) Viewport {
	return Viewport{XMin: v.XMin + dx, XMax: v.XMax + dx, YMin: v.YMin + dy, YMax: v.YMax + dy}
}

func scaleAround(lo, hi, anchor, factor, minSpan float64) (float64, float64) {
	nlo := anchor - (anchor-lo)*factor
	nhi := anchor + (hi-anchor)*factor
	if nhi-nlo >= minSpan {
		return nlo, nhi
	}
	frac := 0.5
	if hi > lo {
		frac = (anchor - lo) / (hi - lo)
	}
	return anchor - frac*minSpan, anchor + (1-frac)*minSpan
}

func widenTo(lo, hi, minSpan float64) (float64, float64) {
	if hi-lo >= minSpan {
		return lo, hi
	}
	mid := (lo + hi) / 2
	return mid - minSpan/2, mid + minSpan/2
}

// AutoRange fits the viewport to the chart's data plus the axis margins.
func AutoRange(c *Chart) (Viewport, error) {
	first, last, err := c.Dataset.DomainRange()
	if err != nil {
		return Viewport{}, err
	}
	lo, hi, err := c.Dataset.ValueRange()
	if err != nil {
		return Viewport{}, err
	}

	xmin := float64(first.Start().UnixNano())
	xmax := float64(last.Start().UnixNano())
	if xmax <= xmin {
		xmin = float64(first.Previous().Start().UnixNano())
		xmax = float64(last.Next().Start().UnixNano())
	}
	m := c.Plot.DomainAxis.Margin * (xmax - xmin)
	xmin, xmax = xmin-m, xmax+m

	if c.Plot.RangeAxis.AutoRangeIncludesZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if hi <= lo {
		lo, hi = lo-1, hi+1
	}
	m = c.Plot.RangeAxis.Margin * (hi - lo)
	return Viewport{XMin: xmin, XMax: xmax, YMin: lo - m, YMax: hi + m}, nil
}

// SeriesXY converts a series of the chart's dataset to data coordinates.
func SeriesXY(c *Chart, i int) []XY {
	s := c.Dataset.SeriesAt(i)
	out := make([]XY, s.Len())
	for j := 0; j < s.Len(); j++ {
		p := s.At(j)
		out[j] = XY{X: float64(p.Period.Start().UnixNano()), Y: p.Value}
	}
	return out
}

// ClipPolyline cuts a polyline to the viewport. Segments leaving the
// viewport end a piece; a lone point inside the viewport is its own piece.
func ClipPolyline(pts []XY, v Viewport) [][]XY {
	if len(pts) == 1 {
		if v.Contains(pts[0].X, pts[0].Y) {
			return [][]XY{{pts[0]}}
		}
		return nil
	}
	var pieces [][]XY
	var cur []XY
	for i := 1; i < len(pts); i++ {
		a, b, ok := clipSegment(pts[i-1], pts[i], v)
		if !ok {
			if len(cur) > 0 {
				pieces = append(pieces, cur)
				cur = nil
			}
			continue
		}
		if len(cur) > 0 && cur[len(cur)-1] == a {
			cur = append(cur, b)
			continue
		}
		if len(cur) > 0 {
			pieces = append(pieces, cur)
		}
		cur = []XY{a, b}
	}
	if len(cur) > 0 {
		pieces = append(pieces, cur)
	}
	return pieces
}

// clipSegment is Liang-Barsky clipping of a-b against v.
func clipSegment(a, b XY, v Viewport) (XY, XY, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - v.XMin},
		{dx, v.XMax - a.X},
		{-dy, a.Y - v.YMin},
		{dy, v.YMax - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return XY{}, XY{}, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return XY{}, XY{}, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return XY{}, XY{}, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = XY{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	if t1 < 1 {
		cb = XY{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}
	return ca, cb, true
}
