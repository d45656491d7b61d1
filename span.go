package chartkit

import "math"

// Span is a numeric range on a value axis.
type Span struct{ Min, Max float64 }

// Buffer fractions for the value axis. The pad is at least two percent of the
// observed span, and never less than half a percent of the max magnitude, so
// a flat series still gets a visible pad.
const (
	spanBufferFraction = 0.02
	spanBufferFloor    = 0.005
)

// BufferedRange computes the padded range of a value axis from the plotted
// values, so that the maximum value is not clipped against the plot edge.
//
// Non-finite values are ignored. If no finite value remains, it returns
// ok=false and the axis range should be left alone. Only the upper bound is
// padded; the lower bound stays anchored at the observed minimum.
func BufferedRange(values []float64) (s Span, ok bool) {
	n := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if n == 0 {
			s.Min, s.Max = v, v
		} else {
			s.Min = math.Min(s.Min, v)
			s.Max = math.Max(s.Max, v)
		}
		n++
	}
	if n == 0 {
		return Span{}, false
	}
	buffer := math.Max((s.Max-s.Min)*spanBufferFraction, math.Abs(s.Max)*spanBufferFloor)
	s.Max += buffer
	return s, true
}

// Axis designates one of the two figure axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}
