//go:build js

// moonrunner-web is the browser build of the moon runner. The leaderboard is
// kept in localStorage through gdata.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o moonrunner.wasm ./cmd/moonrunner-web
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moonrunner/internal/config"
	"github.com/vovakirdan/moonrunner/internal/leaderboard"
	"github.com/vovakirdan/moonrunner/internal/platform/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "moonrunner",
	})

	opts := window.Options{
		Config: config.DefaultConfig(),
		Seed:   time.Now().UnixNano(),
		Logger: logger,
	}

	if backend, err := leaderboard.OpenGdata(leaderboard.GdataAppName); err == nil {
		opts.Board = leaderboard.New(backend, logger)
	} else {
		logger.Warn("localStorage unavailable, scores will not persist", "error", err)
	}

	if err := window.Run(opts); err != nil {
		logger.Fatal("game stopped", "error", err)
	}
}
