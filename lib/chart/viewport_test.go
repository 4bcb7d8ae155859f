package chart

import (
	"testing"
	"time"

	"coolchart/lib/timeseries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testViewport() Viewport {
	day := float64(24 * time.Hour)
	return Viewport{XMin: 0, XMax: 100 * day, YMin: 0, YMax: 1000}
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	v := testViewport()
	ax, ay := v.XMin+0.25*v.Width(), 750.0
	z := v.ZoomAt(0.5, ax, ay)

	assert.InDelta(t, v.Width()/2, z.Width(), 1)
	assert.InDelta(t, 500, z.Height(), 1e-9)
	// the anchor keeps its relative position
	assert.InDelta(t, 0.25, (ax-z.XMin)/z.Width(), 1e-9)
	assert.InDelta(t, 0.75, (ay-z.YMin)/z.Height(), 1e-9)

	back := z.ZoomAt(2, ax, ay)
	assert.InDelta(t, v.XMin, back.XMin, 1)
	assert.InDelta(t, v.YMax, back.YMax, 1e-9)
}

func TestZoomAtClampsToMinimum(t *testing.T) {
	v := testViewport()
	z := v.ZoomAt(1e-9, v.XMin+v.Width()/2, 500)
	assert.InDelta(t, minViewportWidth, z.Width(), 1)
	assert.InDelta(t, minViewportHeight, z.Height(), 1e-12)
}

func TestZoomAtIgnoresBadFactor(t *testing.T) {
	v := testViewport()
	assert.Equal(t, v, v.ZoomAt(0, 1, 1))
	assert.Equal(t, v, v.ZoomAt(-2, 1, 1))
}

func TestZoomToNormalises(t *testing.T) {
	v := testViewport()
	day := float64(24 * time.Hour)
	z, ok := v.ZoomTo(40*day, 800, 10*day, 200)
	require.True(t, ok)
	assert.Equal(t, Viewport{XMin: 10 * day, XMax: 40 * day, YMin: 200, YMax: 800}, z)

	_, ok = v.ZoomTo(10*day, 200, 10*day, 800)
	assert.False(t, ok)
}

func TestPan(t *testing.T) {
	v := testViewport().Pan(10, -5)
	assert.Equal(t, 10.0, v.XMin)
	assert.Equal(t, -5.0, v.YMin)
	assert.Equal(t, testViewport().Width(), v.Width())
}

func TestClipPolyline(t *testing.T) {
	v := Viewport{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

	inside := []XY{{1, 1}, {2, 2}, {3, 3}}
	assert.Equal(t, [][]XY{inside}, ClipPolyline(inside, v))

	crossing := []XY{{-5, 5}, {5, 5}, {15, 5}}
	assert.Equal(t, [][]XY{{{0, 5}, {5, 5}, {10, 5}}}, ClipPolyline(crossing, v))

	// leaves through the top and comes back
	excursion := []XY{{1, 5}, {2, 20}, {3, 5}}
	pieces := ClipPolyline(excursion, v)
	require.Len(t, pieces, 2)
	assert.Equal(t, XY{1, 5}, pieces[0][0])
	assert.InDelta(t, 10, pieces[0][1].Y, 1e-9)
	assert.InDelta(t, 10, pieces[1][0].Y, 1e-9)
	assert.Equal(t, XY{3, 5}, pieces[1][1])

	outside := []XY{{20, 20}, {30, 30}}
	assert.Empty(t, ClipPolyline(outside, v))

	assert.Equal(t, [][]XY{{{5, 5}}}, ClipPolyline([]XY{{5, 5}}, v))
	assert.Empty(t, ClipPolyline([]XY{{50, 5}}, v))
}

func TestNearestItem(t *testing.T) {
	c := testChart(t)
	v, err := AutoRange(c)
	require.NoError(t, err)

	target := float64(timeseries.MustMonth(1, 2011).Start().UnixNano())
	item, ok := NearestItem(c, v, target+float64(time.Hour), 290)
	require.True(t, ok)
	assert.Equal(t, "a", item.Series)
	assert.Equal(t, 0, item.SeriesIndex)
	assert.Equal(t, 1, item.Index)
	assert.Equal(t, 300.0, item.Point.Value)

	item, ok = NearestItem(c, v, target, 140)
	require.True(t, ok)
	assert.Equal(t, "b", item.Series)
	assert.Equal(t, 150.0, item.Point.Value)

	_, ok = NearestItem(c, Viewport{}, 0, 0)
	assert.False(t, ok)
}

func TestLockToAndToolTip(t *testing.T) {
	c := testChart(t)
	c.Plot.DomainCrosshairVisible = true
	item := Item{Series: "uly", Point: timeseries.DataPoint{Period: timeseries.MustMonth(11, 2004), Value: 630.56}}

	ch := c.Plot.LockTo(item)
	assert.True(t, ch.DomainVisible)
	assert.False(t, ch.RangeVisible)
	assert.Equal(t, 630.56, ch.Range)
	assert.Equal(t, timeseries.MustMonth(11, 2004).Start(), TimeOf(ch.Domain))

	axis := &DateAxis{DateFormat: "Jan-2006"}
	assert.Equal(t, "uly: (Nov-2004, 630.56)", ToolTip(item, axis))
	assert.Equal(t, "1000", FormatValue(1000))
	assert.Equal(t, "600.5", FormatValue(600.5))
}

func TestGeometryRoundTrip(t *testing.T) {
	g := Geometry{Left: 40, Top: 30, Right: 440, Bottom: 230, Viewport: testViewport()}
	x, y := g.ToData(140, 130)
	px, py := g.ToPixel(x, y)
	assert.InDelta(t, 140, px, 1e-6)
	assert.InDelta(t, 130, py, 1e-6)
	assert.InDelta(t, 500, y, 1e-9)

	assert.True(t, g.InPlot(40, 230))
	assert.False(t, g.InPlot(39, 100))
}
