package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseJump(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultJumpConfig()) {
		t.Errorf("embedded defaults differ from DefaultJumpConfig():\n got %+v\nwant %+v", cfg, DefaultJumpConfig())
	}
}

func TestLoadJumpFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := LoadJump("")
	if err != nil {
		t.Fatalf("LoadJump(\"\") failed: %v", err)
	}
	if cfg.Obstacles.Width != 10 || cfg.Obstacles.Height != 20 {
		t.Errorf("expected 10x20 obstacles, got %dx%d", cfg.Obstacles.Width, cfg.Obstacles.Height)
	}
	if cfg.Scroll.StartSpeed != 200 {
		t.Errorf("expected start speed 200, got %v", cfg.Scroll.StartSpeed)
	}
}

func TestLoadJumpSearchOrder(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "configs", "jump.yaml"), "scroll:\n  start_speed: 111\n")
	cfg, err := LoadJump("")
	if err != nil {
		t.Fatalf("LoadJump(\"\") failed: %v", err)
	}
	if cfg.Scroll.StartSpeed != 111 {
		t.Errorf("local config not used: start speed %v", cfg.Scroll.StartSpeed)
	}

	writeFile(t, filepath.Join(dir, ".jumper", "configs", "jump.yaml"), "scroll:\n  start_speed: 222\n")
	cfg, err = LoadJump("")
	if err != nil {
		t.Fatalf("LoadJump(\"\") failed: %v", err)
	}
	if cfg.Scroll.StartSpeed != 222 {
		t.Errorf("user config should win over local config: start speed %v", cfg.Scroll.StartSpeed)
	}
}

func TestLoadJumpCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "obstacles:\n  min_offset: 5\n  max_offset: 6\n")

	cfg, err := LoadJump(path)
	if err != nil {
		t.Fatalf("LoadJump() failed: %v", err)
	}
	if cfg.Obstacles.MinOffset != 5 || cfg.Obstacles.MaxOffset != 6 {
		t.Errorf("offsets not loaded: %+v", cfg.Obstacles)
	}
	// Unset fields keep their defaults
	if cfg.Obstacles.Width != 10 || cfg.Viewport.Width != 1280 {
		t.Errorf("partial config should keep defaults, got %+v", cfg)
	}
}

func TestLoadJumpCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadJump(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "obstacles: [not, a, map]\n")
	if _, err := LoadJump(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "obstacles:\n  min_offset: 300\n  max_offset: 25\n")
	if _, err := LoadJump(invalid); err == nil {
		t.Error("expected error for empty offset range")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*JumpConfig)
		wantErr bool
	}{
		{"defaults", func(*JumpConfig) {}, false},
		{"zero obstacle width", func(c *JumpConfig) { c.Obstacles.Width = 0 }, true},
		{"negative speed", func(c *JumpConfig) { c.Scroll.StartSpeed = -1 }, true},
		{"negative step", func(c *JumpConfig) { c.Scroll.SpeedStep = -0.1 }, true},
		{"zero step", func(c *JumpConfig) { c.Scroll.SpeedStep = 0 }, false},
		{"zero terminal cell", func(c *JumpConfig) { c.Terminal.CellHeight = 0 }, true},
		{"zero viewport", func(c *JumpConfig) { c.Viewport.Height = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultJumpConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyJumpPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantSpeed float64
		wantStep  float64
	}{
		{DifficultyEasy, 150, 0.0005},
		{DifficultyNormal, 200, 0.001},
		{DifficultyHard, 300, 0.002},
		{DifficultyFixed, 200, 0},
		{"", 200, 0.001},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultJumpConfig()
			ApplyJumpPreset(&cfg, tc.preset)
			if cfg.Scroll.StartSpeed != tc.wantSpeed || cfg.Scroll.SpeedStep != tc.wantStep {
				t.Errorf("preset %q: got speed %v step %v, want %v %v",
					tc.preset, cfg.Scroll.StartSpeed, cfg.Scroll.SpeedStep, tc.wantSpeed, tc.wantStep)
			}
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParseDifficultyPreset(s); err != nil {
			t.Errorf("ParseDifficultyPreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseDifficultyPreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}
