package timeline

import (
	"testing"

	"github.com/OZORDI/spring-animations/internal/anim"
	"github.com/OZORDI/spring-animations/internal/spring"
)

func steps(t *testing.T, labels ...string) []Step {
	t.Helper()
	s, err := spring.FromPreset("smooth")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := make([]Step, len(labels))
	for i, l := range labels {
		out[i] = Step{Label: l, Request: anim.Request{From: 0, To: 1, Spring: s, Properties: []string{l}}}
	}
	return out
}

func TestNewStartsFirstStep(t *testing.T) {
	tl := New(steps(t, "slide", "fade"))
	cur := tl.Current()
	if cur == nil || cur.Label != "slide" {
		t.Fatalf("expected first step running, got %+v", cur)
	}
	if cur.State != Running {
		t.Fatalf("expected Running state, got %v", cur.State)
	}
}

func TestAdvanceMovesExactlyOneStep(t *testing.T) {
	tl := New(steps(t, "slide", "fade", "grow"))
	if !tl.Advance() {
		t.Fatal("expected a next step")
	}
	if tl.Index() != 1 || tl.Current().Label != "fade" {
		t.Fatalf("expected to be on fade, got index %d", tl.Index())
	}
	if tl.Step(0).State != Settled {
		t.Fatal("expected first step settled after advancing")
	}
	if tl.Step(2).State != Pending {
		t.Fatal("expected last step still pending")
	}
}

func TestAdvancePastEndFinishes(t *testing.T) {
	tl := New(steps(t, "slide"))
	if tl.Advance() {
		t.Fatal("expected no next step")
	}
	if !tl.Finished() {
		t.Fatal("expected timeline finished")
	}
	if tl.Current() != nil {
		t.Fatal("expected nil current after finish")
	}
	if tl.Step(0).State != Settled {
		t.Fatal("expected the only step settled")
	}
}

func TestRestartRewinds(t *testing.T) {
	tl := New(steps(t, "slide", "fade"))
	tl.Advance()
	tl.Advance()
	tl.Restart()
	if tl.Finished() {
		t.Fatal("expected timeline unfinished after restart")
	}
	if cur := tl.Current(); cur == nil || cur.Label != "slide" || cur.State != Running {
		t.Fatalf("expected first step running again, got %+v", cur)
	}
	if tl.Step(1).State != Pending {
		t.Fatal("expected second step pending again")
	}
}

func TestSetCurveAppliesToAllSteps(t *testing.T) {
	tl := New(steps(t, "slide", "fade"))
	tl.SetCurve(anim.CurveBezier)
	for i := 0; i < tl.Len(); i++ {
		if tl.Step(i).Request.Curve != anim.CurveBezier {
			t.Fatalf("step %d: expected bezier flavor", i)
		}
	}
}

func TestEmptyTimeline(t *testing.T) {
	tl := New(nil)
	if tl.Current() != nil {
		t.Fatal("expected nil current on empty timeline")
	}
	if !tl.Finished() {
		t.Fatal("expected empty timeline to be finished")
	}
	if tl.Advance() {
		t.Fatal("expected no advance on empty timeline")
	}
}
