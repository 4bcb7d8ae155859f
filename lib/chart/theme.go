package chart

import (
	"fmt"
	"image/color"
	"strings"
)

var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGray = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	Gray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	DarkGray  = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Theme supplies the colours a chart is created with.
type Theme struct {
	Name       string
	Palette    []color.RGBA
	TitleColor color.RGBA
	AxisColor  color.RGBA
}

// DefaultTheme is the standard red/blue/green series palette.
func DefaultTheme() Theme {
	return Theme{
		Name: "JFree",
		Palette: []color.RGBA{
			{R: 0xFF, G: 0x55, B: 0x55, A: 0xFF},
			{R: 0x55, G: 0x55, B: 0xFF, A: 0xFF},
			{R: 0x55, G: 0xFF, B: 0x55, A: 0xFF},
			{R: 0xFF, G: 0xFF, B: 0x55, A: 0xFF},
			{R: 0xFF, G: 0x55, B: 0xFF, A: 0xFF},
			{R: 0x55, G: 0xFF, B: 0xFF, A: 0xFF},
			{R: 0xFF, G: 0xAF, B: 0xAF, A: 0xFF},
			Gray,
			{R: 0xC0, G: 0x00, B: 0x00, A: 0xFF},
			{R: 0x00, G: 0x00, B: 0xC0, A: 0xFF},
			{R: 0x00, G: 0xC0, B: 0x00, A: 0xFF},
		},
		TitleColor: Black,
		AxisColor:  DarkGray,
	}
}

// GrayTheme renders every series in shades of grey, for printing.
func GrayTheme() Theme {
	return Theme{
		Name: "Gray",
		Palette: []color.RGBA{
			Black,
			{R: 0x60, G: 0x60, B: 0x60, A: 0xFF},
			{R: 0x90, G: 0x90, B: 0x90, A: 0xFF},
			DarkGray,
		},
		TitleColor: Black,
		AxisColor:  Black,
	}
}

// ThemeByName resolves the theme names accepted in configuration.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "", "jfree", "default":
		return DefaultTheme(), nil
	case "gray", "grey":
		return GrayTheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// SeriesColor cycles through the palette.
func (t Theme) SeriesColor(i int) color.RGBA {
	if len(t.Palette) == 0 {
		return Black
	}
	if i < 0 {
		i = -i
	}
	return t.Palette[i%len(t.Palette)]
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
