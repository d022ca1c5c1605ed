package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/games/jump"
)

var (
	flagTicks  int
	flagDT     float64
	flagWidth  int
	flagHeight int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless and print the obstacle list",
	Long: `Run the game without any display for a number of ticks and print the
live obstacles. Useful for checking a config or a seed.

Width and height default to the config's viewport. The tick length
defaults to 1/--fps seconds.

Examples:
  jumper sim
  jumper sim --ticks 3600 --seed 42
  jumper sim --dt 0.5 --width 640 --height 360`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().Float64Var(&flagDT, "dt", 0, "Seconds per tick (0 = 1/fps)")
	simCmd.Flags().IntVar(&flagWidth, "width", 0, "Viewport width in pixels (0 = config)")
	simCmd.Flags().IntVar(&flagHeight, "height", 0, "Viewport height in pixels (0 = config)")
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := cfg.Viewport.Width, cfg.Viewport.Height
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}
	dt := flagDT
	if dt <= 0 {
		fps := flagFPS
		if fps <= 0 {
			fps = 60
		}
		dt = 1.0 / float64(fps)
	}
	if flagTicks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", flagTicks)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := jump.New(cfg, seed)
	for range flagTicks {
		game.Update(dt, width, height)
	}

	st := game.Stats()
	logger.Debug("simulation finished", "ticks", st.Ticks, "elapsed", st.Elapsed, "seed", seed)

	fmt.Printf("Ticks: %d  Elapsed: %.2fs  Speed: %.3f px/s  Viewport: %dx%d\n",
		st.Ticks, st.Elapsed, st.Speed, width, height)
	fmt.Println()

	obstacles := game.Scroller().Obstacles()
	if len(obstacles) == 0 {
		fmt.Println("No obstacles.")
		return nil
	}

	fmt.Printf("  %3s  %6s  %6s  %5s  %6s\n", "#", "X", "Y", "W", "H")
	fmt.Printf("  %3s  %6s  %6s  %5s  %6s\n", "-", "-", "-", "-", "-")
	for i, o := range obstacles {
		fmt.Printf("  %3d  %6d  %6d  %5d  %6d\n", i, o.X, o.Y, o.Width, o.Height)
	}
	return nil
}
