package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the hard-coded default configuration.
// It matches defaults/invaders.yaml.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 320,
		},
		Difficulty: DifficultyConfig{
			Preset:     DifficultyNormal,
			SpeedScale: 1.0,
			FireScale:  1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
