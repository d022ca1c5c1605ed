package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Run in a native window",
	Long: `Open a fixed-size window and run the game at --fps ticks per second.

Controls:
  P          - Pause
  R          - Restart with a new seed
  Esc        - Quit
  any other  - Log elapsed ticks and time

Examples:
  jumper window
  jumper window --fps 120 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	return window.Run(cfg, flagSeed, flagFPS, logger)
}
