package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.invaders/config.yaml -> ./configs/invaders.yaml -> embedded default
//
// Files are decoded over the defaults, so a file may set only the keys it
// cares about. Only an explicit customPath reports read or parse errors; the
// other locations are skipped when missing or broken.
func Load(customPath string) (InvadersConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "invaders.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// A preset without explicit scales gets the preset's scales.
func Parse(data []byte) (InvadersConfig, error) {
	var raw struct {
		Difficulty struct {
			SpeedScale *float64 `yaml:"speed_scale"`
			FireScale  *float64 `yaml:"fire_scale"`
		} `yaml:"difficulty"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return InvadersConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	preset, err := ParsePreset(string(cfg.Difficulty.Preset))
	if err != nil {
		return InvadersConfig{}, err
	}
	speed, fire := cfg.Difficulty.SpeedScale, cfg.Difficulty.FireScale
	ApplyPreset(&cfg, preset)
	if raw.Difficulty.SpeedScale != nil {
		cfg.Difficulty.SpeedScale = speed
	}
	if raw.Difficulty.FireScale != nil {
		cfg.Difficulty.FireScale = fire
	}

	if err := cfg.Validate(); err != nil {
		return InvadersConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", filename)
}
