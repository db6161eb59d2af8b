package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/friday-breakfast/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying the
search order: --config, ~/.breakfast/breakfast.yaml,
./configs/breakfast.yaml, then the built-in defaults.

Examples:
  breakfast config > ~/.breakfast/breakfast.yaml
  breakfast config --config ./tuned.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
