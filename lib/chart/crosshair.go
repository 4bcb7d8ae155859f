package chart

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"coolchart/lib/timeseries"
)

// Item identifies one data point of a chart.
type Item struct {
	Series      string
	SeriesIndex int
	Index       int
	Point       timeseries.DataPoint
}

func (it Item) XY() XY {
	return XY{X: float64(it.Point.Period.Start().UnixNano()), Y: it.Point.Value}
}

// NearestItem finds the data item closest to (x, y). Distances are
// measured relative to the viewport size so both axes weigh equally.
func NearestItem(c *Chart, v Viewport, x, y float64) (Item, bool) {
	w, h := v.Width(), v.Height()
	if w <= 0 || h <= 0 {
		return Item{}, false
	}
	best := math.Inf(1)
	var found Item
	ok := false
	for si, s := range c.Dataset.Series() {
		for i := 0; i < s.Len(); i++ {
			p := s.At(i)
			dx := (float64(p.Period.Start().UnixNano()) - x) / w
			dy := (p.Value - y) / h
			d := dx*dx + dy*dy
			if d < best {
				best = d
				found = Item{Series: s.Name(), SeriesIndex: si, Index: i, Point: p}
				ok = true
			}
		}
	}
	return found, ok
}

// Crosshair is the pair of lines locked to a data item.
type Crosshair struct {
	Domain        float64
	Range         float64
	DomainVisible bool
	RangeVisible  bool
}

// LockTo places the crosshair on item, showing only the lines the plot
// has enabled.
func (p *Plot) LockTo(item Item) Crosshair {
	xy := item.XY()
	return Crosshair{
		Domain:        xy.X,
		Range:         xy.Y,
		DomainVisible: p.DomainCrosshairVisible,
		RangeVisible:  p.RangeCrosshairVisible,
	}
}

// ToolTip formats item as "series: (date, value)".
func ToolTip(item Item, axis *DateAxis) string {
	return fmt.Sprintf("%s: (%s, %s)", item.Series, axis.Format(item.Point.Period.Start()), FormatValue(item.Point.Value))
}

// FormatValue prints v with at most two decimals.
func FormatValue(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// TimeOf converts an x coordinate back to a time.
func TimeOf(x float64) time.Time {
	return time.Unix(0, int64(x)).UTC()
}
