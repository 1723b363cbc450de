package spring

import (
	"fmt"
	"sort"
)

type preset struct {
	duration float64
	bounce   float64
}

// Named feels, each a fixed duration/bounce pair.
var presets = map[string]preset{
	"bouncy":    {duration: 0.7, bounce: 0.4},
	"smooth":    {duration: 0.5, bounce: 0},
	"flattened": {duration: 0.4, bounce: -0.2},
}

// FromPreset builds the Spring for a named preset. The name must match the
// preset table exactly; anything else fails with ErrUnknownPreset rather
// than falling back to a default feel.
func FromPreset(name string) (Spring, error) {
	p, ok := presets[name]
	if !ok {
		return Spring{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return FromDurationAndBounce(p.duration, p.bounce)
}

// PresetNames returns the known preset names sorted alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetParams returns the duration/bounce pair behind a preset name.
// The second return is false for unknown names.
func PresetParams(name string) (duration, bounce float64, ok bool) {
	p, ok := presets[name]
	return p.duration, p.bounce, ok
}
