package surface

import "testing"

func TestFormatValuePixelProperties(t *testing.T) {
	cases := []struct {
		prop string
		v    float64
		want string
	}{
		{"transform", 64, "64px"},
		{"transform", 63.6, "64px"},
		{"translateX", -12.2, "-12px"},
		{"width", 0, "0px"},
		{"opacity", 0.5, "0.5"},
		{"scale", 1.08, "1.08"},
		{"letter-spacing-ish", 2.5, "2.5"},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.prop, tc.v); got != tc.want {
			t.Fatalf("FormatValue(%q, %v) = %q, want %q", tc.prop, tc.v, got, tc.want)
		}
	}
}

func TestStateClampsOpacity(t *testing.T) {
	s := NewState()
	s.Set("opacity", 1.4)
	if v, _ := s.Get("opacity"); v != 1 {
		t.Fatalf("expected opacity clamped to 1, got %v", v)
	}
	s.Set("opacity", -0.2)
	if v, _ := s.Get("opacity"); v != 0 {
		t.Fatalf("expected opacity clamped to 0, got %v", v)
	}
	s.Set("scale", 1.4)
	if v, _ := s.Get("scale"); v != 1.4 {
		t.Fatalf("expected scale unclamped, got %v", v)
	}
}

func TestStateGetOr(t *testing.T) {
	s := NewState()
	if v := s.GetOr("transform", 7); v != 7 {
		t.Fatalf("expected default 7, got %v", v)
	}
	s.Set("transform", 42)
	if v := s.GetOr("transform", 7); v != 42 {
		t.Fatalf("expected recorded 42, got %v", v)
	}
	if _, ok := s.Get("missing"); ok {
		t.Fatal("expected missing property to report not set")
	}
}
