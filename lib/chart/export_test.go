package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func shapedChart(t *testing.T) *Chart {
	c := testChart(t)
	r := c.Plot.Renderer.(LineAndShapeRenderer)
	r.SetShapesVisible(true)
	r.SetShapesFilled(true)
	c.Plot.DomainAxis.DateFormat = "Jan-2006"
	return c
}

func TestRenderPNG(t *testing.T) {
	c := shapedChart(t)
	v, err := AutoRange(c)
	require.NoError(t, err)

	r, err := RenderPNG(c, v, 500, 270)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(r.PNG, pngMagic), "output should be a PNG")

	g := r.Geometry
	assert.Equal(t, v, g.Viewport)
	assert.Greater(t, g.Right, g.Left)
	assert.Greater(t, g.Bottom, g.Top)
	assert.LessOrEqual(t, g.Right, 500)
	assert.LessOrEqual(t, g.Bottom, 270)
}

func TestRenderPNGZoomedOutOfData(t *testing.T) {
	c := shapedChart(t)
	v, err := AutoRange(c)
	require.NoError(t, err)
	empty := v.Pan(10*v.Width(), 0)

	r, err := RenderPNG(c, empty, 300, 200)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(r.PNG, pngMagic))
}

func TestRenderPNGAfterWheelZoomIntoCorner(t *testing.T) {
	c := shapedChart(t)
	v, err := AutoRange(c)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		v = v.ZoomAt(0.9, v.XMin, v.YMax)
	}

	r, err := RenderPNG(c, v, 500, 270)
	require.NoError(t, err)
	assert.Equal(t, v, r.Geometry.Viewport)

	var buf bytes.Buffer
	require.NoError(t, Export(c, v, "png", 500, 270, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestNewPlotKeepsZoomedViewport(t *testing.T) {
	c := shapedChart(t)
	v, err := AutoRange(c)
	require.NoError(t, err)
	zoomed := v.ZoomAt(0.5, (v.XMin+v.XMax)/2, (v.YMin+v.YMax)/2)

	p, err := NewPlot(c, zoomed)
	require.NoError(t, err)
	assert.Equal(t, zoomed.XMin/1e9, p.X.Min)
	assert.Equal(t, zoomed.XMax/1e9, p.X.Max)
	assert.Equal(t, zoomed.YMin, p.Y.Min)
	assert.Equal(t, zoomed.YMax, p.Y.Max)
}

func TestRenderPNGRejectsBadSize(t *testing.T) {
	c := testChart(t)
	v, err := AutoRange(c)
	require.NoError(t, err)
	_, err = RenderPNG(c, v, 0, 100)
	assert.Error(t, err)
	_, err = RenderPNG(c, Viewport{}, 100, 100)
	assert.Error(t, err)
}

func TestExportFormats(t *testing.T) {
	c := shapedChart(t)
	v, err := AutoRange(c)
	require.NoError(t, err)

	var svg bytes.Buffer
	require.NoError(t, Export(c, v, "svg", 500, 270, &svg))
	assert.Contains(t, svg.String(), "<svg")

	var html bytes.Buffer
	require.NoError(t, Export(c, v, "HTML", 500, 270, &html))
	assert.Contains(t, html.String(), "echarts")
	assert.Contains(t, html.String(), "Jan-2010")

	var png bytes.Buffer
	require.NoError(t, Export(c, v, ".png", 500, 270, &png))
	assert.True(t, bytes.HasPrefix(png.Bytes(), pngMagic))

	err = Export(c, v, "bmp", 500, 270, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRenderHTMLShowsOnlyViewport(t *testing.T) {
	c := shapedChart(t)
	v, err := AutoRange(c)
	require.NoError(t, err)
	v.XMin = float64(time.Date(2010, time.July, 1, 0, 0, 0, 0, time.UTC).UnixNano())
	v.XMax = float64(time.Date(2012, time.June, 1, 0, 0, 0, 0, time.UTC).UnixNano())

	var html bytes.Buffer
	require.NoError(t, Export(c, v, "html", 500, 270, &html))
	out := html.String()
	assert.Contains(t, out, "Jan-2011")
	assert.Contains(t, out, "Jul-2011")
	assert.Contains(t, out, "Jan-2012")
	assert.NotContains(t, out, "Jan-2010")
}

func TestSeriesLinesSegmentsWhenNotPath(t *testing.T) {
	xys := plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}}

	segs, err := seriesLines(xys, Black, false)
	require.NoError(t, err)
	assert.Len(t, segs, 2)
	assert.Equal(t, Black, segs[0].LineStyle.Color)

	path, err := seriesLines(xys, Black, true)
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Len(t, path[0].XYs, 3)
}

func TestExportFile(t *testing.T) {
	c := shapedChart(t)
	v, err := AutoRange(c)
	require.NoError(t, err)
	dir := t.TempDir()

	path := filepath.Join(dir, "chart.svg")
	require.NoError(t, ExportFile(c, v, path, 400, 300))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	bad := filepath.Join(dir, "chart.doc")
	assert.ErrorIs(t, ExportFile(c, v, bad, 400, 300), ErrUnsupportedFormat)
	_, err = os.Stat(bad)
	assert.True(t, os.IsNotExist(err), "failed export should not leave a file behind")

	assert.ErrorIs(t, ExportFile(c, v, filepath.Join(dir, "noext"), 400, 300), ErrUnsupportedFormat)
}
