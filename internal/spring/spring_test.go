package spring

import (
	"errors"
	"math"
	"testing"
)

func TestFromPresetBouncy(t *testing.T) {
	s, err := FromPreset("bouncy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Duration != 0.7 {
		t.Fatalf("expected duration 0.7, got %v", s.Duration)
	}
	if s.Bounce != 0.4 {
		t.Fatalf("expected bounce 0.4, got %v", s.Bounce)
	}
	if s.Mass != 1 {
		t.Fatalf("expected mass 1, got %v", s.Mass)
	}
}

func TestFromPresetIsDeterministic(t *testing.T) {
	for _, name := range PresetNames() {
		first, err := FromPreset(name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		second, err := FromPreset(name)
		if err != nil {
			t.Fatalf("%s: unexpected error on second call: %v", name, err)
		}
		if first != second {
			t.Fatalf("%s: expected identical models, got %+v and %+v", name, first, second)
		}
		d, b, ok := PresetParams(name)
		if !ok {
			t.Fatalf("%s: expected preset params", name)
		}
		if first.Duration != d || first.Bounce != b {
			t.Fatalf("%s: model (%v, %v) does not match table (%v, %v)",
				name, first.Duration, first.Bounce, d, b)
		}
	}
}

func TestFromPresetUnknownName(t *testing.T) {
	_, err := FromPreset("giggly")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestFromDurationAndBounceClampsBounce(t *testing.T) {
	s, err := FromDurationAndBounce(0.5, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Bounce != 1 {
		t.Fatalf("expected bounce clamped to 1, got %v", s.Bounce)
	}

	s, err = FromDurationAndBounce(0.5, -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Bounce != -1 {
		t.Fatalf("expected bounce clamped to -1, got %v", s.Bounce)
	}
}

func TestFromDurationAndBounceRejectsBadDuration(t *testing.T) {
	for _, d := range []float64{0, -0.5, math.NaN()} {
		if _, err := FromDurationAndBounce(d, 0); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("duration %v: expected ErrInvalidParameter, got %v", d, err)
		}
	}
}

func TestFromDurationAndBounceZeroBounceIsCritical(t *testing.T) {
	s, err := FromDurationAndBounce(0.5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zeta := s.DampingRatio(); math.Abs(zeta-1) > 1e-12 {
		t.Fatalf("expected damping ratio 1 at bounce 0, got %v", zeta)
	}
}

func TestFromPhysicsDerivesDurationAndBounce(t *testing.T) {
	s, err := FromPhysics(1, 100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 2 * math.Pi / 10 // 2π/√100
	if math.Abs(s.Duration-want) > 1e-9 {
		t.Fatalf("expected duration %v, got %v", want, s.Duration)
	}
	if s.Bounce < -1 || s.Bounce > 1 {
		t.Fatalf("expected bounce in [-1, 1], got %v", s.Bounce)
	}
	if s.Bounce <= 0 {
		t.Fatalf("damping below critical should give positive bounce, got %v", s.Bounce)
	}
}

func TestFromPhysicsRejectsNonPositiveTerms(t *testing.T) {
	cases := []struct {
		name      string
		mass      float64
		stiffness float64
		damping   float64
	}{
		{"zero mass", 0, 100, 10},
		{"negative mass", -1, 100, 10},
		{"zero stiffness", 1, 0, 10},
		{"negative stiffness", 1, -100, 10},
		{"negative damping", 1, 100, -10},
		{"NaN mass", math.NaN(), 100, 10},
	}
	for _, tc := range cases {
		if _, err := FromPhysics(tc.mass, tc.stiffness, tc.damping); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%s: expected ErrInvalidParameter, got %v", tc.name, err)
		}
	}
}

func TestPhysicsRoundTrip(t *testing.T) {
	cases := []struct {
		name      string
		stiffness float64
		damping   float64
	}{
		{"underdamped", 100, 10},
		{"critical", 100, 20},
		{"overdamped", 100, 35},
		{"stiff underdamped", 900, 12},
	}
	for _, tc := range cases {
		orig, err := FromPhysics(1, tc.stiffness, tc.damping)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		back, err := FromDurationAndBounce(orig.Duration, orig.Bounce)
		if err != nil {
			t.Fatalf("%s: unexpected error on round trip: %v", tc.name, err)
		}
		if rel := math.Abs(back.Stiffness-tc.stiffness) / tc.stiffness; rel > 1e-6 {
			t.Fatalf("%s: stiffness %v round-tripped to %v (rel err %v)",
				tc.name, tc.stiffness, back.Stiffness, rel)
		}
		if rel := math.Abs(back.Damping-tc.damping) / tc.damping; rel > 1e-6 {
			t.Fatalf("%s: damping %v round-tripped to %v (rel err %v)",
				tc.name, tc.damping, back.Damping, rel)
		}
	}
}
