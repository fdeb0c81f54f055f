package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagGravity time.Duration
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  ←/h/a  →/l/d   - Move left / right
  ↓/j/s          - Soft drop
  ↑/k/w/x        - Rotate clockwise
  Space          - Hard drop
  P/Esc          - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit

Examples:
  tetris play
  tetris play --gravity 300ms
  tetris play --seed 7 --log-file ./tetris.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagGravity, "gravity", 0, "Gravity interval, overrides the config (e.g. 500ms)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := loadRuntime(width, height)
	if err != nil {
		return err
	}
	if flagGravity < 0 {
		return fmt.Errorf("invalid --gravity %s: must be positive", flagGravity)
	}
	if flagGravity > 0 {
		cfg.Gravity = flagGravity
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting game",
		"board", fmt.Sprintf("%dx%d", cfg.BoardW, cfg.BoardH),
		"gravity", cfg.Gravity,
		"seed", cfg.Seed,
	)
	if err := tui.Run(cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// openLogger returns a debug logger writing to path. The alternate screen
// owns the terminal, so without a path logs are discarded.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
