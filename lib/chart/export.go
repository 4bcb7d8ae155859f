package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// pixel is one CSS pixel (1/96 inch).
const pixel = vg.Inch / 96

// Formats lists every export format.
func Formats() []string {
	return append([]string{"html"}, PlotFormats...)
}

// Export writes the chart restricted to v. PNG goes through go-chart so
// files match the window; html goes through echarts; every other format
// goes through gonum/plot.
func Export(c *Chart, v Viewport, format string, width, height int, w io.Writer) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	switch format {
	case "png":
		r, err := RenderPNG(c, v, width, height)
		if err != nil {
			return err
		}
		_, err = w.Write(r.PNG)
		return err
	case "html", "htm":
		return RenderHTML(c, v, width, height, w)
	}
	if !isPlotFormat(format) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return RenderPlot(c, v, vg.Length(width)*pixel, vg.Length(height)*pixel, format, w)
}

// ExportFile picks the format from the file extension.
func ExportFile(c *Chart, v Viewport, path string, width, height int) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Export(c, v, format, width, height, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Infof("Saved chart to %s", path)
	return nil
}
