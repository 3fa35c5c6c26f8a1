package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded default) failed: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded default %+v differs from DefaultInvadersConfig() %+v", cfg, DefaultInvadersConfig())
	}
}

func TestParsePartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("field:\n  width: 640\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Field.Width != 640 {
		t.Errorf("Field.Width = %d, expected 640", cfg.Field.Width)
	}
	if cfg.Field.Height != 320 {
		t.Errorf("Field.Height = %d, expected default 320", cfg.Field.Height)
	}
	if cfg.Difficulty.SpeedScale != 1.0 || cfg.Difficulty.FireScale != 1.0 {
		t.Errorf("expected normal scales, got %+v", cfg.Difficulty)
	}
}

func TestParsePresetFillsScales(t *testing.T) {
	cfg, err := Parse([]byte("difficulty:\n  preset: hard\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Difficulty.SpeedScale != 1.5 || cfg.Difficulty.FireScale != 2.0 {
		t.Errorf("hard preset scales = %+v", cfg.Difficulty)
	}
}

func TestParseExplicitScaleOverridesPreset(t *testing.T) {
	cfg, err := Parse([]byte("difficulty:\n  preset: easy\n  fire_scale: 3\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Difficulty.SpeedScale != 0.5 {
		t.Errorf("SpeedScale = %v, expected easy 0.5", cfg.Difficulty.SpeedScale)
	}
	if cfg.Difficulty.FireScale != 3 {
		t.Errorf("FireScale = %v, expected explicit 3", cfg.Difficulty.FireScale)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"narrow field", "field:\n  width: 100\n"},
		{"short field", "field:\n  height: 40\n"},
		{"zero speed", "difficulty:\n  speed_scale: 0\n"},
		{"unknown preset", "difficulty:\n  preset: nightmare\n"},
		{"broken yaml", "field: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	if err := os.WriteFile(path, []byte("field:\n  width: 800\n  height: 600\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Field.Width != 800 || cfg.Field.Height != 600 {
		t.Errorf("Field = %+v, expected 800x600", cfg.Field)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("expected defaults alongside the error, got %+v", cfg)
	}
}
