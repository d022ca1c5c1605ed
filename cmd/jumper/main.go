// jumper is a side-scrolling obstacle toy: a spinning square sits on the
// ground while obstacles drift past at an ever-growing speed.
//
// Usage:
//
//	jumper play              - Run in the terminal
//	jumper window            - Run in a native window
//	jumper sim               - Run headless and print the obstacle list
//	jumper config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - a spinning square and an endless stream of obstacles",
	Long: `Jumper scrolls obstacles past a spinning square at a speed that keeps
growing every tick. There is no goal and no way to lose.

Available commands:
  play     - Run in the terminal
  window   - Run in a native window
  sim      - Run headless and print the obstacle list
  config   - Print the default game config

Examples:
  jumper play
  jumper play --difficulty hard --log-file jumper.log
  jumper window --seed 42
  jumper sim --ticks 600
  jumper config > ~/.jumper/configs/jump.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.JumpConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.JumpConfig{}, err
	}
	cfg, err := config.LoadJump(flagConfig)
	if err != nil {
		return config.JumpConfig{}, err
	}
	config.ApplyJumpPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds the logger. Logs go to --log-file when set, otherwise to
// fallback. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumper",
		Level:           level,
	})
	return logger, closeFn, nil
}
