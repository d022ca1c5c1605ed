package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run in the terminal",
	Long: `Run the game in the terminal. The pixel world is projected onto
character cells (see terminal.cell_width and terminal.cell_height in the config).

Controls:
  P          - Pause
  R          - Restart with a new seed
  Ctrl+S     - Save a screenshot to ~/.jumper/screenshots
  Q/Esc      - Quit
  any other  - Log elapsed ticks and time

Logs are discarded unless --log-file is set, since the game owns the terminal.

Examples:
  jumper play
  jumper play --difficulty fixed
  jumper play --config ./my-jump.yaml --log-file jumper.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
