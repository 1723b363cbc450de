package spring

import "math"

// Value evaluates the spring's motion curve at the given elapsed time in
// seconds and returns the decaying residual: 1 at t = 0, converging to 0 as
// the spring settles. The fraction traveled toward the target is 1 - Value.
//
// Time is normalized against Duration before evaluation, so two springs with
// the same bounce trace the same shape regardless of how long they run. The
// regime is selected strictly by the sign of Bounce: positive bounce decays
// along a cosine and crosses zero, zero and negative bounce decay
// monotonically with no overshoot. Both branches reduce to exp(-2π·tn) at
// the bounce = 0 boundary.
func (s Spring) Value(elapsed float64) float64 {
	if elapsed <= 0 {
		return 1
	}
	tn := elapsed / s.Duration
	zeta := s.DampingRatio()

	if s.Bounce > 0 {
		decay := math.Exp(-zeta * 2 * math.Pi * tn)
		omegaD := 2 * math.Pi * math.Sqrt(1-zeta*zeta)
		return decay * math.Cos(omegaD*tn)
	}

	// Overdamped or critical: two real characteristic roots. The smaller
	// root is computed by reciprocal to avoid cancellation when zeta is
	// large.
	root := math.Sqrt(math.Max(zeta*zeta-1, 0))
	a := 2 * math.Pi * (zeta + root)
	b := 2 * math.Pi / (zeta + root)
	return (math.Exp(-a*tn) + math.Exp(-b*tn)) / 2
}
