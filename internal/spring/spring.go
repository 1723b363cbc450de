package spring

import (
	"errors"
	"fmt"
	"math"
)

// Spring is the canonical physical description of a motion curve: a damped
// harmonic oscillator plus the duration/bounce pair it was derived from (or
// that was derived from it). Values are immutable once constructed; build a
// new Spring instead of mutating one that an in-flight animation may hold.
type Spring struct {
	Mass      float64 // inertial term, > 0
	Stiffness float64 // restoring force coefficient, > 0
	Damping   float64 // resistive force coefficient, >= 0
	Duration  float64 // nominal settling time in seconds, > 0
	Bounce    float64 // overshoot control in [-1, 1]
}

var (
	// ErrUnknownPreset reports a preset name missing from the preset table.
	ErrUnknownPreset = errors.New("unknown spring preset")
	// ErrInvalidParameter reports an out-of-range or incomplete construction
	// parameter.
	ErrInvalidParameter = errors.New("invalid spring parameter")
)

const fourPi = 4 * math.Pi

// FromDurationAndBounce builds a Spring from a settling duration in seconds
// and a bounce in [-1, 1]. Positive bounce oscillates past the target, zero
// is critically damped, negative approaches sluggishly. Bounce outside the
// range is clamped; a non-positive duration is an error.
func FromDurationAndBounce(duration, bounce float64) (Spring, error) {
	if !(duration > 0) || math.IsInf(duration, 1) {
		return Spring{}, fmt.Errorf("%w: duration must be a positive number of seconds, got %v", ErrInvalidParameter, duration)
	}
	bounce = clampBounce(bounce)

	omega := 2 * math.Pi / duration
	stiffness := omega * omega

	// A single bounce axis selects both the regime and its strength: the
	// formula family switches at the zero crossing so that the damping
	// ratio is 1-bounce when oscillating and 1/(1+bounce) when not. The
	// divisor is floored because bounce == -1 would mean infinite damping.
	var damping float64
	if bounce >= 0 {
		damping = fourPi * (1 - bounce) / duration
	} else {
		damping = fourPi / (duration * math.Max(1+bounce, 1e-9))
	}

	return Spring{
		Mass:      1,
		Stiffness: stiffness,
		Damping:   damping,
		Duration:  duration,
		Bounce:    bounce,
	}, nil
}

// FromPhysics builds a Spring from raw oscillator parameters. All three are
// required: mass and stiffness must be positive, damping non-negative. The
// nominal duration is the natural period 2π·√(mass/stiffness), and bounce is
// recovered from the damping ratio so that a round trip through
// FromDurationAndBounce reproduces the same stiffness and damping.
func FromPhysics(mass, stiffness, damping float64) (Spring, error) {
	if !(mass > 0) {
		return Spring{}, fmt.Errorf("%w: mass must be positive, got %v", ErrInvalidParameter, mass)
	}
	if !(stiffness > 0) {
		return Spring{}, fmt.Errorf("%w: stiffness must be positive, got %v", ErrInvalidParameter, stiffness)
	}
	if !(damping >= 0) {
		return Spring{}, fmt.Errorf("%w: damping must be non-negative, got %v", ErrInvalidParameter, damping)
	}

	duration := 2 * math.Pi * math.Sqrt(mass/stiffness)
	zeta := damping / (2 * math.Sqrt(mass*stiffness))

	var bounce float64
	if zeta <= 1 {
		bounce = 1 - zeta
	} else {
		bounce = 1/zeta - 1
	}

	return Spring{
		Mass:      mass,
		Stiffness: stiffness,
		Damping:   damping,
		Duration:  duration,
		Bounce:    clampBounce(bounce),
	}, nil
}

// DampingRatio returns the ratio of Damping to critical damping: below 1 the
// spring oscillates, at 1 it is critical, above 1 it is overdamped.
func (s Spring) DampingRatio() float64 {
	return s.Damping / (2 * math.Sqrt(s.Mass*s.Stiffness))
}

func clampBounce(b float64) float64 {
	if b < -1 {
		return -1
	}
	if b > 1 {
		return 1
	}
	return b
}
