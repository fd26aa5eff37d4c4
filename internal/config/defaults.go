package config

import (
	_ "embed"
)

//go:embed defaults/blockroll.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Animation: AnimationConfig{
			RollTicks:      8,
			BounceTicks:    6,
			BounceAngleDeg: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
