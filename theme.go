package chartkit

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Size is a figure size in pixels.
type Size struct{ Width, Height int }

// Margin is the padding around the plot area, in pixels.
type Margin struct{ Left, Right, Top, Bottom int }

// Size presets, keyed by the names used in slide layouts.
var sizePresets = map[string]Size{
	"full": {1200, 800},
	"half": {600, 400},
	"18:9": {18 * 96, 9 * 96},
	"3:1":  {18 * 96, 6 * 96},
	"1:1":  {12 * 96, 12 * 96},
}

var marginPresets = map[string]Margin{
	"minimal":  {20, 20, 20, 20},
	"standard": {40, 40, 40, 40},
	"wide":     {60, 60, 60, 60},
}

// SizePreset returns a named size preset.
func SizePreset(name string) (Size, bool) {
	s, ok := sizePresets[name]
	return s, ok
}

// MarginPreset returns a named margin preset.
func MarginPreset(name string) (Margin, bool) {
	m, ok := marginPresets[name]
	return m, ok
}

// Theme is the visual configuration applied to every figure.
//
// It is a plain value passed explicitly to render calls; there is no
// process-wide theme registration.
type Theme struct {
	Background drawing.Color
	Grid       drawing.Color // axis lines, tick marks and horizontal grid lines
	Text       drawing.Color
	FontSize   float64
	Size       Size
	Margin     Margin
}

// DefaultTheme returns the house theme: white background, light grey grid,
// dark grey text, full slide size and minimal margins.
func DefaultTheme() Theme {
	return Theme{
		Background: Hex("ffffff"),
		Grid:       Hex("C1C8CD"),
		Text:       Hex("1B252A"),
		FontSize:   25,
		Size:       sizePresets["full"],
		Margin:     marginPresets["minimal"],
	}
}

// WithSize returns a copy of the theme using the named size preset.
// Unknown names leave the size unchanged.
func (t Theme) WithSize(name string) Theme {
	if s, ok := sizePresets[name]; ok {
		t.Size = s
	}
	return t
}

// WithMargin returns a copy of the theme using the named margin preset.
func (t Theme) WithMargin(name string) Theme {
	if m, ok := marginPresets[name]; ok {
		t.Margin = m
	}
	return t
}

// padding converts the theme margin to a go-chart box.
func (t Theme) padding() chart.Box {
	return chart.Box{
		Left:   t.Margin.Left,
		Right:  t.Margin.Right,
		Top:    t.Margin.Top,
		Bottom: t.Margin.Bottom,
	}
}

// textStyle is the style for all figure text.
func (t Theme) textStyle() chart.Style {
	return chart.Style{FontSize: t.FontSize, FontColor: t.Text}
}

// axisStyle is the style for axis lines and tick marks.
func (t Theme) axisStyle() chart.Style {
	return chart.Style{
		StrokeColor: t.Grid,
		StrokeWidth: 1,
		FontSize:    t.FontSize,
		FontColor:   t.Text,
	}
}

// gridStyle is the style for the horizontal grid lines of the value axis.
func (t Theme) gridStyle() chart.Style {
	return chart.Style{StrokeColor: t.Grid, StrokeWidth: 1}
}
