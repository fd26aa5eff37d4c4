// Package config holds runtime configuration for the puzzle, loaded from YAML
// with an embedded default.
package config

import "math"

// Config is the full runtime configuration.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
}

// AnimationConfig tunes the roll animation. Durations are in ticks of the
// platform loop, so the wall-clock feel scales with the configured FPS.
type AnimationConfig struct {
	RollTicks      int     `yaml:"roll_ticks"`       // duration of a legal roll
	BounceTicks    int     `yaml:"bounce_ticks"`     // duration of a rejected roll
	BounceAngleDeg float64 `yaml:"bounce_angle_deg"` // how far a rejected roll leans
}

// BounceAngle returns the bounce lean in radians.
func (a AnimationConfig) BounceAngle() float64 {
	return a.BounceAngleDeg * math.Pi / 180
}

// Normalize clamps out-of-range values to something playable.
func (c *Config) Normalize() {
	if c.Animation.RollTicks < 1 {
		c.Animation.RollTicks = 1
	}
	if c.Animation.BounceTicks < 1 {
		c.Animation.BounceTicks = 1
	}
	if c.Animation.BounceAngleDeg <= 0 || c.Animation.BounceAngleDeg > 89 {
		c.Animation.BounceAngleDeg = 30
	}
}

// SpeedPreset selects one of the built-in animation speeds.
type SpeedPreset int

const (
	SpeedNormal SpeedPreset = iota
	SpeedRelaxed
	SpeedSnappy
)

// ParseSpeedPreset parses a preset name from the CLI.
func ParseSpeedPreset(s string) (SpeedPreset, bool) {
	switch s {
	case "normal", "":
		return SpeedNormal, true
	case "relaxed":
		return SpeedRelaxed, true
	case "snappy":
		return SpeedSnappy, true
	default:
		return SpeedNormal, false
	}
}

// String returns the CLI name of the preset.
func (p SpeedPreset) String() string {
	switch p {
	case SpeedRelaxed:
		return "relaxed"
	case SpeedSnappy:
		return "snappy"
	default:
		return "normal"
	}
}

// ApplyPreset scales the animation durations for a preset. Normal leaves the
// loaded values untouched.
func ApplyPreset(cfg *Config, preset SpeedPreset) {
	switch preset {
	case SpeedRelaxed:
		cfg.Animation.RollTicks *= 2
		cfg.Animation.BounceTicks *= 2
	case SpeedSnappy:
		cfg.Animation.RollTicks = max(1, cfg.Animation.RollTicks/2)
		cfg.Animation.BounceTicks = max(1, cfg.Animation.BounceTicks/2)
	}
}
