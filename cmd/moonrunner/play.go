package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/moonrunner/internal/core"
	"github.com/vovakirdan/moonrunner/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Space/W/Up    - Jump (also starts a run)
  S/Down        - Fast fall
  Enter/R       - Start or run again
  Ctrl+S        - Save a screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Half the speed ramp
  normal - Default ramp
  hard   - One and a half times the ramp
  fixed  - No ramp, the course keeps its starting speed

Examples:
  moonrunner play
  moonrunner play --difficulty easy
  moonrunner play --config ./my-moonrunner.yaml
  moonrunner play --config ./my-moonrunner.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config (.yaml or .toml)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config (.yaml or .toml)")
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, logFile, err := newTerminalLogger()
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	// Continue without storage if the database cannot be opened
	store := openStore(logger)
	if store != nil {
		defer store.Close()
		opts.History = store
	}
	opts.Board = boardFor(store, logger)

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
