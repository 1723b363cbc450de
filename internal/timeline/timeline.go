package timeline

import "github.com/OZORDI/spring-animations/internal/anim"

// StepState represents the playback state of a step.
type StepState int

const (
	Pending StepState = iota
	Running
	Settled
)

// Step is a single animation in a sequence, with a label for display.
type Step struct {
	Label   string
	Request anim.Request
	State   StepState
}

// Timeline plays an ordered list of animation steps one at a time.
// It is only mutated from Bubbletea's single-threaded Update loop.
type Timeline struct {
	steps   []Step
	current int
}

// New creates a Timeline from the given steps. The first step starts out
// Running.
func New(steps []Step) *Timeline {
	t := &Timeline{steps: steps}
	if len(t.steps) > 0 {
		t.steps[0].State = Running
	}
	return t
}

// Current returns a pointer to the step being played, or nil when the
// timeline is empty or finished.
func (t *Timeline) Current() *Step {
	if t.current < 0 || t.current >= len(t.steps) {
		return nil
	}
	return &t.steps[t.current]
}

// Advance marks the current step settled and moves to the next one.
// Returns false when there is no next step.
func (t *Timeline) Advance() bool {
	if cur := t.Current(); cur != nil {
		cur.State = Settled
	}
	if t.current+1 >= len(t.steps) {
		t.current = len(t.steps)
		return false
	}
	t.current++
	t.steps[t.current].State = Running
	return true
}

// Finished reports whether every step has settled.
func (t *Timeline) Finished() bool {
	return t.current >= len(t.steps)
}

// Restart resets every step to Pending and rewinds to the first one.
func (t *Timeline) Restart() {
	for i := range t.steps {
		t.steps[i].State = Pending
	}
	t.current = 0
	if len(t.steps) > 0 {
		t.steps[0].State = Running
	}
}

// Len returns the total number of steps.
func (t *Timeline) Len() int {
	return len(t.steps)
}

// Index returns the zero-based index of the current step. Once the timeline
// has finished it equals Len.
func (t *Timeline) Index() int {
	return t.current
}

// Step returns a pointer to the step at the given index, or nil if out of
// range.
func (t *Timeline) Step(i int) *Step {
	if i < 0 || i >= len(t.steps) {
		return nil
	}
	return &t.steps[i]
}

// SetCurve sets the playback flavor on every step. Switching flavors applies
// to the whole sequence, not just the step in flight.
func (t *Timeline) SetCurve(c anim.Curve) {
	for i := range t.steps {
		t.steps[i].Request.Curve = c
	}
}
