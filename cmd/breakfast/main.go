// breakfast is a terminal rendition of Friday Breakfast: walk up a long
// office floor to the breakfast table without bumping into anything.
//
// Usage:
//
//	breakfast play       - Play in the terminal
//	breakfast gen        - Print a generated layout as YAML
//	breakfast simulate   - Run a headless game with a fixed input
//	breakfast config     - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.breakfast, ./configs)
//	--seed <value>      - RNG seed for reproducible layouts
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/friday-breakfast/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakfast",
	Short: "Friday Breakfast - reach the breakfast table in your terminal",
	Long: `Friday Breakfast is a small vertical avoidance game. Steer from the
bottom of the office floor to the breakfast table at the top, dodging
cubicles and coworkers on the way.

Available commands:
  play      - Play in the terminal
  gen       - Print a generated layout as YAML
  simulate  - Run a headless game with a fixed input
  config    - Print the effective configuration

Examples:
  breakfast play
  breakfast play --seed 42 --log-file breakfast.log
  breakfast gen --seed 42
  breakfast simulate --no-hazards
  breakfast config --config ./configs/breakfast.yaml`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration named by --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// resolveSeed returns --seed, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger creates a logger writing to w at the --log-level threshold.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}
