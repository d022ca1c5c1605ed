package config

import (
	_ "embed"
)

//go:embed defaults/jump.yaml
var defaultJumpYAML []byte

// DefaultJumpConfig returns the default jump game configuration.
// It mirrors defaults/jump.yaml and is used when the embedded file cannot be parsed.
func DefaultJumpConfig() JumpConfig {
	return JumpConfig{
		Window: WindowConfig{
			Title: "jumper",
		},
		Viewport: ViewportConfig{
			Width:  16 * 80,
			Height: 9 * 80,
		},
		Obstacles: ObstacleConfig{
			Width:     10,
			Height:    20,
			MinOffset: 25,
			MaxOffset: 300,
		},
		Scroll: ScrollConfig{
			StartSpeed: 200,
			SpeedStep:  0.001,
		},
		Ground: GroundConfig{
			Thickness: 10,
		},
		Runner: RunnerConfig{
			X:    80,
			Size: 30,
			Spin: 2.0,
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultJumpYAML
}
