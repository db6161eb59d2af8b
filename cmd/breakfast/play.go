package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/friday-breakfast/internal/game"
	"github.com/vovakirdan/friday-breakfast/internal/platform/tui"
)

var (
	flagFPS     int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Up/W          - Walk toward the breakfast table
  Left/A        - Step left
  Right/D       - Step right
  Mouse drag    - Steer with the joystick in the bottom-right corner
  Enter/Click   - Start or restart
  ?             - Toggle help
  Q/Esc/Ctrl+C  - Quit

The screen belongs to the game while it runs, so logs only go to a file
when --log-file is set.

Examples:
  breakfast play
  breakfast play --seed 7
  breakfast play --fps 30 --log-file breakfast.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = use config)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagFPS < 0 {
		return fmt.Errorf("--fps must not be negative, got %d", flagFPS)
	}
	if flagFPS > 0 {
		cfg.TUI.FPS = flagFPS
	}

	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out, "breakfast")
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := resolveSeed()
	logger.Info("starting", "seed", seed, "fps", cfg.TUI.FPS, "cols", width, "rows", height)

	session := game.NewSession(cfg, seed)
	if err := tui.Run(session, logger, seed, width, height); err != nil {
		logger.Error("program failed", "error", err)
		return err
	}
	return nil
}
