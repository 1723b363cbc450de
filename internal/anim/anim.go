// Package anim holds the per-request bookkeeping between the pure spring
// evaluator and a frame-driven rendering loop: which values to interpolate,
// which curve flavor to play, and when to stop asking and snap.
package anim

import (
	"time"

	"github.com/OZORDI/spring-animations/internal/spring"
)

// Curve selects how a request is played back.
type Curve int

const (
	// CurveSpring evaluates the exact spring physics every frame.
	CurveSpring Curve = iota
	// CurveBezier plays the cubic approximation instead, the shape a
	// declarative transition mechanism would run on its own.
	CurveBezier
)

// String returns the display name of the curve flavor.
func (c Curve) String() string {
	if c == CurveBezier {
		return "bezier"
	}
	return "spring"
}

// Toggle flips between the two playback flavors.
func (c Curve) Toggle() Curve {
	if c == CurveSpring {
		return CurveBezier
	}
	return CurveSpring
}

// SettleFactor bounds the visible length of an animation: the decay is
// asymptotic and never reaches the target exactly, so past
// SettleFactor × duration the driving loop snaps to the end value.
const SettleFactor = 1.5

// Request describes one animation: move Properties from From to To along
// the spring's motion curve. A Request is created when an animation is
// triggered, consumed by the driving loop until completion, and discarded;
// the engine never retains it.
type Request struct {
	From       float64
	To         float64
	Spring     spring.Spring
	Properties []string
	Curve      Curve
}

// Duration returns the nominal settling time of the request's spring.
func (r Request) Duration() time.Duration {
	return time.Duration(r.Spring.Duration * float64(time.Second))
}

// Done reports whether the request has passed its settle cutoff.
func (r Request) Done(elapsed time.Duration) bool {
	return elapsed.Seconds() >= r.Spring.Duration*SettleFactor
}

// At returns the animated value at the given elapsed time. Once Done, the
// value is exactly To regardless of the residual the curve would report.
func (r Request) At(elapsed time.Duration) float64 {
	if r.Done(elapsed) {
		return r.To
	}
	sec := elapsed.Seconds()
	if sec < 0 {
		sec = 0
	}

	var progress float64
	if r.Curve == CurveBezier {
		progress = r.Spring.Bezier().At(sec / r.Spring.Duration)
	} else {
		progress = 1 - r.Spring.Value(sec)
	}
	return r.From + (r.To-r.From)*progress
}
