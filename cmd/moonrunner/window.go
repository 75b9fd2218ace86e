package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/moonrunner/internal/leaderboard"
	"github.com/vovakirdan/moonrunner/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a resizable window.

Controls:
  Space/W/Up or click the top half       - Jump (also starts a run)
  S/Down or click the bottom half        - Fast fall
  Enter/R                                - Run again
  Q                                      - Quit

The window keeps its leaderboard in the per-user data directory. Runs are
also recorded in the scores database when it can be opened.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", window.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", window.DefaultHeight, "Window height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	opts := window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Width:  flagWidth,
		Height: flagHeight,
		Logger: logger,
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
		opts.History = store
	}

	// Prefer gdata so the window and browser builds share one layout.
	if backend, err := leaderboard.OpenGdata(leaderboard.GdataAppName); err == nil {
		opts.Board = leaderboard.New(backend, logger)
	} else {
		logger.Warn("gdata unavailable, using the scores database", "error", err)
		opts.Board = boardFor(store, logger)
	}

	if err := window.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
