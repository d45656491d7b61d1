package chartkit

import "github.com/wcharczuk/go-chart/v2/drawing"

// The brand palette, in presentation order.
var BrandColors = []drawing.Color{
	Hex("45b979"), // green
	Hex("a7d8b5"), // light green
	Hex("006472"), // dark teal
	Hex("62a0ad"), // light teal
	Hex("6c6b71"), // dark grey
	Hex("b7b6b9"), // light grey
	Hex("4f2984"), // purple
	Hex("927fb5"), // light purple
	Hex("00b6c9"), // turquoise
	Hex("91d6e0"), // light turquoise
	Hex("f05b72"), // red
}

// hierarchy holds the curated color selections for small trace counts.
// Beyond six traces, the palette simply cycles.
var hierarchy = map[int][]drawing.Color{
	1: {Hex("45b979")},
	2: {Hex("45b979"), Hex("6c6b71")},
	3: {Hex("45b979"), Hex("006472"), Hex("6c6b71")},
	4: {Hex("45b979"), Hex("a7d8b5"), Hex("006472"), Hex("6c6b71")},
	5: {Hex("45b979"), Hex("a7d8b5"), Hex("006472"), Hex("62a0ad"), Hex("6c6b71")},
	6: {Hex("45b979"), Hex("a7d8b5"), Hex("006472"), Hex("62a0ad"), Hex("6c6b71"), Hex("b7b6b9")},
}

// Hex returns the color for a hex string like "45b979" or "#45b979".
func Hex(h string) drawing.Color {
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}
	return drawing.ColorFromHex(h)
}

// Palette returns n colors for n traces.
//
// For up to six traces it returns a curated selection that keeps adjacent
// traces distinguishable; beyond that it cycles through the full brand palette.
func Palette(n int) []drawing.Color {
	if n <= 0 {
		return nil
	}
	if sel, ok := hierarchy[n]; ok {
		out := make([]drawing.Color, n)
		copy(out, sel)
		return out
	}
	out := make([]drawing.Color, n)
	for i := range out {
		out[i] = BrandColors[i%len(BrandColors)]
	}
	return out
}
