package chartkit

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Heatmap is a grid of values colored along a ramp between Low and High.
// Row i of Values belongs to YLabels[i], column j to XLabels[j]. Rows are
// drawn top to bottom in slice order.
type Heatmap struct {
	Theme   Theme
	Title   string
	XLabels []string
	YLabels []string
	Values  [][]float64

	// Low and High are the color ramp endpoints, default white to dark teal.
	Low  drawing.Color
	High drawing.Color
}

// NewHeatmap returns a heatmap for the given grid and labels.
func NewHeatmap(t Theme, xLabels, yLabels []string, values [][]float64) *Heatmap {
	return &Heatmap{
		Theme:   t,
		XLabels: xLabels,
		YLabels: yLabels,
		Values:  values,
		Low:     Hex("ffffff"),
		High:    Hex("006472"),
	}
}

func (h *Heatmap) validate() error {
	if len(h.Values) == 0 {
		return fmt.Errorf("heatmap has no values")
	}
	if len(h.Values) != len(h.YLabels) {
		return fmt.Errorf("heatmap has %d rows for %d y labels", len(h.Values), len(h.YLabels))
	}
	for i, row := range h.Values {
		if len(row) != len(h.XLabels) {
			return fmt.Errorf("heatmap row %d has %d values for %d x labels", i, len(row), len(h.XLabels))
		}
	}
	return nil
}

// bounds returns the finite value range of the grid.
func (h *Heatmap) bounds() (lo, hi float64, ok bool) {
	for _, row := range h.Values {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi, ok
}

// cellColor maps a value into the Low..High ramp. A flat grid sits in the
// middle of the ramp.
func (h *Heatmap) cellColor(v, lo, hi float64) drawing.Color {
	t := 0.5
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	return lerpColor(h.Low, h.High, t)
}

func lerpColor(a, b drawing.Color, t float64) drawing.Color {
	mix := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// Render draws the heatmap to w in the given format.
//
// The chart backend has no heatmap primitive, so the grid is drawn directly
// on its renderer: one filled rectangle per finite cell, x labels centered
// under their columns, y labels right-aligned next to their rows.
func (h *Heatmap) Render(w io.Writer, format Format) error {
	if err := h.validate(); err != nil {
		return err
	}
	provider, err := rendererProvider(format)
	if err != nil {
		return err
	}

	t := h.Theme
	r, err := provider(t.Size.Width, t.Size.Height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetFont(font)
	r.SetFontSize(t.FontSize)
	r.SetFontColor(t.Text)

	fillRect(r, 0, 0, t.Size.Width, t.Size.Height, t.Background)

	// Gutters: title row on top, y labels on the left, x labels below.
	const labelPad = 10
	pad := t.padding()
	top := pad.Top
	if h.Title != "" {
		top += int(t.FontSize) + labelPad
	}
	yGutter := 0
	for _, label := range h.YLabels {
		if w := r.MeasureText(label).Width(); w > yGutter {
			yGutter = w
		}
	}
	labelHeight := r.MeasureText("W").Height()
	plot := chart.Box{
		Left:   pad.Left + yGutter + labelPad,
		Top:    top,
		Right:  t.Size.Width - pad.Right,
		Bottom: t.Size.Height - pad.Bottom - labelHeight - labelPad,
	}
	if plot.Right <= plot.Left || plot.Bottom <= plot.Top {
		return fmt.Errorf("heatmap does not fit in %dx%d", t.Size.Width, t.Size.Height)
	}

	if h.Title != "" {
		tb := r.MeasureText(h.Title)
		r.Text(h.Title, (t.Size.Width-tb.Width())/2, pad.Top+int(t.FontSize))
	}

	// Cells. Edges are computed per index so the grid tiles without gaps.
	lo, hi, ok := h.bounds()
	cols, rows := len(h.XLabels), len(h.YLabels)
	xAt := func(j int) int { return plot.Left + j*(plot.Right-plot.Left)/cols }
	yAt := func(i int) int { return plot.Top + i*(plot.Bottom-plot.Top)/rows }
	for i, row := range h.Values {
		for j, v := range row {
			if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			fillRect(r, xAt(j), yAt(i), xAt(j+1), yAt(i+1), h.cellColor(v, lo, hi))
		}
	}

	r.SetFontColor(t.Text)
	for j, label := range h.XLabels {
		tb := r.MeasureText(label)
		x := (xAt(j)+xAt(j+1))/2 - tb.Width()/2
		r.Text(label, x, plot.Bottom+labelPad+labelHeight)
	}
	for i, label := range h.YLabels {
		tb := r.MeasureText(label)
		y := (yAt(i)+yAt(i+1))/2 + labelHeight/2
		r.Text(label, plot.Left-labelPad-tb.Width(), y)
	}

	return r.Save(w)
}

// Export renders the heatmap to a file, deriving the format from the
// extension.
func (h *Heatmap) Export(filename string) error {
	return exportFile(filename, h.Render)
}

func fillRect(r chart.Renderer, x0, y0, x1, y1 int, c drawing.Color) {
	r.SetFillColor(c)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
}
