package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML.

Config files are searched in this order:
  --config <path>
  ~/.jumper/configs/jump.yaml
  ./configs/jump.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}
