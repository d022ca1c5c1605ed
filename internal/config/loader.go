package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const jumpConfigFile = "jump.yaml"

// LoadJump loads the jump game configuration.
// Search order: customPath -> ~/.jumper/configs/jump.yaml -> ./configs/jump.yaml -> embedded default
// Only a custom path reports read and parse errors; the other locations are skipped when unusable.
func LoadJump(customPath string) (JumpConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JumpConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseJump(data)
		if err != nil {
			return JumpConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseJump(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseJump(defaultJumpYAML)
	if err != nil {
		return DefaultJumpConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseJump decodes YAML over the defaults so partial files only override what they set.
func parseJump(data []byte) (JumpConfig, error) {
	cfg := DefaultJumpConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JumpConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return JumpConfig{}, err
	}
	return cfg, nil
}

// searchPaths returns the non-custom config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(jumpConfigFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", jumpConfigFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", "configs", filename)
}

// ApplyJumpPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyJumpPreset(cfg *JumpConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Scroll.StartSpeed = 150
		cfg.Scroll.SpeedStep = 0.0005
	case DifficultyNormal:
		cfg.Scroll.StartSpeed = 200
		cfg.Scroll.SpeedStep = 0.001
	case DifficultyHard:
		cfg.Scroll.StartSpeed = 300
		cfg.Scroll.SpeedStep = 0.002
	case DifficultyFixed:
		cfg.Scroll.SpeedStep = 0
	}
}
