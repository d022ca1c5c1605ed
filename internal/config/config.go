// Package config provides YAML-based game configuration loading and
// difficulty presets for the jump game.
package config

import (
	"errors"
	"fmt"
)

// JumpConfig contains all configuration for the jump game.
type JumpConfig struct {
	Window    WindowConfig   `yaml:"window"`
	Viewport  ViewportConfig `yaml:"viewport"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Scroll    ScrollConfig   `yaml:"scroll"`
	Ground    GroundConfig   `yaml:"ground"`
	Runner    RunnerConfig   `yaml:"runner"`
	Terminal  TerminalConfig `yaml:"terminal"`
}

// WindowConfig defines window host settings.
type WindowConfig struct {
	Title string `yaml:"title"`
}

// ViewportConfig defines the logical pixel size of the window host.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ObstacleConfig defines obstacle size and spawn spacing.
type ObstacleConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MinOffset int `yaml:"min_offset"` // Inclusive
	MaxOffset int `yaml:"max_offset"` // Exclusive
}

// ScrollConfig defines the scroll speed and its per-tick growth.
type ScrollConfig struct {
	StartSpeed float64 `yaml:"start_speed"` // Pixels per second
	SpeedStep  float64 `yaml:"speed_step"`  // Added every tick
}

// GroundConfig defines the ground line.
type GroundConfig struct {
	Thickness int `yaml:"thickness"`
}

// RunnerConfig defines the rotating square resting on the ground.
type RunnerConfig struct {
	X    int     `yaml:"x"`
	Size int     `yaml:"size"`
	Spin float64 `yaml:"spin"` // Radians per second
}

// TerminalConfig defines how many pixels a terminal cell covers.
type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// Validate reports every invalid field of the configuration.
func (c JumpConfig) Validate() error {
	var errs []error

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, fmt.Errorf("obstacle size must be positive, got %dx%d", c.Obstacles.Width, c.Obstacles.Height))
	}
	if c.Obstacles.MinOffset >= c.Obstacles.MaxOffset {
		errs = append(errs, fmt.Errorf("obstacle offset range [%d, %d) is empty", c.Obstacles.MinOffset, c.Obstacles.MaxOffset))
	}
	if c.Scroll.StartSpeed < 0 {
		errs = append(errs, fmt.Errorf("start_speed must not be negative, got %v", c.Scroll.StartSpeed))
	}
	if c.Scroll.SpeedStep < 0 {
		errs = append(errs, fmt.Errorf("speed_step must not be negative, got %v", c.Scroll.SpeedStep))
	}
	if c.Ground.Thickness < 0 {
		errs = append(errs, fmt.Errorf("ground thickness must not be negative, got %d", c.Ground.Thickness))
	}
	if c.Runner.Size < 0 {
		errs = append(errs, fmt.Errorf("runner size must not be negative, got %d", c.Runner.Size))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("terminal cell must be positive, got %dx%d", c.Terminal.CellWidth, c.Terminal.CellHeight))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid jump config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI value to a preset.
// An empty string means "keep the config as loaded".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
