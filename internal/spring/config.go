package spring

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults for the duration/bounce path when a field is left unset.
const (
	DefaultDuration = 0.5
	DefaultBounce   = 0.0
)

// Config carries exactly one of the three construction shapes accepted by
// Resolve. Nil pointer fields mean "not given", which is how a complete
// physics triple is told apart from an accidental partial one.
type Config struct {
	Preset    string
	Duration  *float64
	Bounce    *float64
	Mass      *float64
	Stiffness *float64
	Damping   *float64
}

// Resolve normalizes a Config into a canonical Spring. A preset name wins;
// next a complete mass/stiffness/damping triple; otherwise duration and
// bounce with their defaults. A partial physics triple is an error, never a
// silent fallback to defaults.
func Resolve(cfg Config) (Spring, error) {
	if cfg.Preset != "" {
		return FromPreset(cfg.Preset)
	}

	physics := 0
	for _, f := range []*float64{cfg.Mass, cfg.Stiffness, cfg.Damping} {
		if f != nil {
			physics++
		}
	}
	switch physics {
	case 3:
		return FromPhysics(*cfg.Mass, *cfg.Stiffness, *cfg.Damping)
	case 0:
	default:
		return Spring{}, fmt.Errorf("%w: mass, stiffness and damping must be given together", ErrInvalidParameter)
	}

	duration := DefaultDuration
	if cfg.Duration != nil {
		duration = *cfg.Duration
	}
	bounce := DefaultBounce
	if cfg.Bounce != nil {
		bounce = *cfg.Bounce
	}
	return FromDurationAndBounce(duration, bounce)
}

// Parse reads the shorthand configuration grammar. A bare word is a preset
// name; otherwise the input is comma-separated key:value pairs, e.g.
// "duration:0.5, bounce:0.3" or "mass:1, stiffness:100, damping:10".
func Parse(s string) (Config, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Config{}, nil
	}
	if !strings.Contains(s, ":") {
		return Config{Preset: s}, nil
	}

	var cfg Config
	for _, field := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			return Config{}, fmt.Errorf("%w: %q is not a key:value pair", ErrInvalidParameter, strings.TrimSpace(field))
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidParameter, key, value)
		}

		switch key {
		case "duration":
			cfg.Duration = &v
		case "bounce":
			cfg.Bounce = &v
		case "mass":
			cfg.Mass = &v
		case "stiffness":
			cfg.Stiffness = &v
		case "damping":
			cfg.Damping = &v
		default:
			return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidParameter, key)
		}
	}
	return cfg, nil
}
