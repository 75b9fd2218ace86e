package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moonrunner/internal/config"
	"github.com/vovakirdan/moonrunner/internal/leaderboard"
	"github.com/vovakirdan/moonrunner/internal/storage"
)

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "moonrunner",
		Level:           level,
	})
	return logger, nil
}

// logFilePath is where the terminal frontend writes debug logs.
func logFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".moonrunner", "moonrunner.log"), nil
}

// newTerminalLogger returns a logger that stays off the alt screen: a log
// file at debug level, nothing otherwise. The returned closer is never nil.
func newTerminalLogger() (*log.Logger, io.Closer, error) {
	if flagLogLevel != "debug" {
		logger, err := newLogger(io.Discard)
		return logger, io.NopCloser(nil), err
	}

	path, err := logFilePath()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// loadConfig reads the game config and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if difficulty != "" {
		preset := config.ParsePreset(difficulty)
		if preset == "" {
			return config.Config{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// openStore opens the scores database. On failure it logs a warning and
// returns nil; callers fall back to an in-memory board.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// boardFor wraps the store, or memory when there is none.
func boardFor(store *storage.Store, logger *log.Logger) *leaderboard.Board {
	if store == nil {
		return leaderboard.New(leaderboard.NewMemoryBackend(), logger)
	}
	return leaderboard.New(store, logger)
}
