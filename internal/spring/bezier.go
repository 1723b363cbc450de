package spring

import (
	"fmt"
	"math"
	"strconv"
)

// Bezier holds the two control points of a cubic easing curve over the unit
// time/value square, the declarative stand-in for per-frame spring physics.
// A cubic can only overshoot once, so multi-oscillation springs collapse to
// a single smooth overshoot here; that is the cost of handing playback to
// the host surface's own interpolation.
type Bezier struct {
	X1, Y1, X2, Y2 float64
}

// Bezier approximates the spring's motion curve with control points derived
// from Bounce alone. Two springs with equal bounce get identical control
// points no matter their duration or mass.
func (s Spring) Bezier() Bezier {
	if s.Bounce > 0 {
		overshoot := s.Bounce * 0.2
		return Bezier{X1: 0.2, Y1: 0.2 + overshoot, X2: 0.8, Y2: 1 + overshoot}
	}
	mag := -s.Bounce
	return Bezier{X1: 0.16 + 0.12*mag, Y1: 0, X2: 0.28 + 0.12*mag, Y2: 1}
}

// CSS renders the curve in the cubic-bezier(x1, y1, x2, y2) textual form
// consumed by declarative transition mechanisms.
func (b Bezier) CSS() string {
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)",
		fmtCoord(b.X1), fmtCoord(b.Y1), fmtCoord(b.X2), fmtCoord(b.Y2))
}

// At maps a time fraction x in [0, 1] to the eased progress fraction. The
// curve's x(t) polynomial is inverted with a few Newton iterations, then
// y(t) is evaluated at the solved parameter. For positive-bounce curves the
// result exceeds 1 mid-flight and returns to 1 at x = 1.
func (b Bezier) At(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	t := x
	for i := 0; i < 8; i++ {
		d := 1 - t
		xt := 3*d*d*t*b.X1 + 3*d*t*t*b.X2 + t*t*t
		dxdt := 3*d*d*b.X1 + 6*d*t*(b.X2-b.X1) + 3*t*t*(1-b.X2)
		if dxdt == 0 {
			break
		}
		t -= (xt - x) / dxdt
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	d := 1 - t
	return 3*d*d*t*b.Y1 + 3*d*t*t*b.Y2 + t*t*t
}

// fmtCoord renders a control point coordinate as a plain numeric literal,
// rounded past float artifacts (0.16 + 0.12*0.2 prints as 0.184, not
// 0.18400000000000003).
func fmtCoord(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}
