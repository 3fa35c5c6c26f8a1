// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// Minimum field dimensions. The formation spans 270px and the player sits
// 30px above the bottom edge.
const (
	MinFieldWidth  = 300
	MinFieldHeight = 150
)

// InvadersConfig contains all configuration for the game.
type InvadersConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play field in pixels.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DifficultyConfig scales the formation speed and enemy fire chance.
type DifficultyConfig struct {
	Preset     DifficultyPreset `yaml:"preset"`
	SpeedScale float64          `yaml:"speed_scale"` // Multiplier on formation speed
	FireScale  float64          `yaml:"fire_scale"`  // Multiplier on per-frame enemy fire chance
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI/YAML string to a preset.
// The empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset sets the difficulty scales for a preset.
func ApplyPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.SpeedScale = 0.5
		cfg.Difficulty.FireScale = 0.5
	case DifficultyHard:
		cfg.Difficulty.SpeedScale = 1.5
		cfg.Difficulty.FireScale = 2.0
	default:
		cfg.Difficulty.SpeedScale = 1.0
		cfg.Difficulty.FireScale = 1.0
	}
}

// Validate checks that the configuration can host the formation and player.
func (c InvadersConfig) Validate() error {
	var errs []error
	if c.Field.Width < MinFieldWidth {
		errs = append(errs, fmt.Errorf("field width %d is below %d", c.Field.Width, MinFieldWidth))
	}
	if c.Field.Height < MinFieldHeight {
		errs = append(errs, fmt.Errorf("field height %d is below %d", c.Field.Height, MinFieldHeight))
	}
	if c.Difficulty.SpeedScale <= 0 {
		errs = append(errs, fmt.Errorf("speed_scale must be positive, got %v", c.Difficulty.SpeedScale))
	}
	if c.Difficulty.FireScale < 0 {
		errs = append(errs, fmt.Errorf("fire_scale must not be negative, got %v", c.Difficulty.FireScale))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
