// Package surface maps abstract animated property names (transform,
// opacity, scale, arbitrary numeric styles) onto a rendering surface. The
// engine only produces numbers; this layer knows which of them are
// pixel-valued, which must stay inside [0, 1], and how they spell
// themselves in declarative form.
package surface

import (
	"math"
	"strconv"
)

// Writer applies animated property values to a rendering surface. One
// animation request drives at most one Set per property per frame.
type Writer interface {
	Set(prop string, value float64)
}

// pixelProps lists the property names whose values are pixel distances and
// therefore carry a px suffix in declarative form.
var pixelProps = map[string]bool{
	"transform":  true,
	"translateX": true,
	"translateY": true,
	"x":          true,
	"y":          true,
	"width":      true,
	"height":     true,
}

// IsPixelValued reports whether a property takes a px-suffixed value.
func IsPixelValued(prop string) bool {
	return pixelProps[prop]
}

// FormatValue renders a property value in the host surface's declarative
// textual form: pixel-valued properties round to whole pixels and carry the
// px suffix, everything else prints as a plain number.
func FormatValue(prop string, v float64) string {
	if IsPixelValued(prop) {
		return strconv.Itoa(int(math.Round(v))) + "px"
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// State is an in-memory Writer for a terminal surface. It remembers the
// latest value written per property; the view reads them back each frame.
// Opacity is clamped to [0, 1] on write since the renderer cannot dim past
// fully transparent or brighten past fully opaque.
type State struct {
	values map[string]float64
}

// NewState returns an empty surface state.
func NewState() *State {
	return &State{values: make(map[string]float64)}
}

// Set records the latest value for a property.
func (s *State) Set(prop string, value float64) {
	if prop == "opacity" {
		value = math.Min(1, math.Max(0, value))
	}
	s.values[prop] = value
}

// Get returns the recorded value for a property and whether one was set.
func (s *State) Get(prop string) (float64, bool) {
	v, ok := s.values[prop]
	return v, ok
}

// GetOr returns the recorded value for a property, or def when none was set.
func (s *State) GetOr(prop string, def float64) float64 {
	if v, ok := s.values[prop]; ok {
		return v
	}
	return def
}
