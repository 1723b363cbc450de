package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/OZORDI/spring-animations/internal/spring"
)

// follower integrates a harmonica spring toward a target each frame: the
// same feel as the closed-form evaluator, produced by per-frame numeric
// integration instead of an exact formula. It drives the comparison lane.
type follower struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newFollower(fps int, sp spring.Spring) follower {
	omega := 2 * math.Pi / sp.Duration
	return follower{spring: harmonica.NewSpring(harmonica.FPS(fps), omega, sp.DampingRatio())}
}

func (f *follower) step(target float64) float64 {
	f.pos, f.vel = f.spring.Update(f.pos, f.vel, target)
	return f.pos
}

func (f *follower) reset(v float64) {
	f.pos = v
	f.vel = 0
}
