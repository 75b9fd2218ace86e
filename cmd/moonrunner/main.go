// moonrunner is an endless runner on the Moon, playable in the terminal or
// in a window.
//
// Usage:
//
//	moonrunner play           - Play in the terminal
//	moonrunner window         - Play in a desktop window
//	moonrunner scores         - Show the leaderboard and run history
//	moonrunner config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for a reproducible course
//	--db <path>           - Set database path (default: ~/.moonrunner/moonrunner.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/moonrunner/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moonrunner",
	Short: "Moon Runner - an endless runner on the lunar surface",
	Long: `Moon Runner is an endless runner: jump over rocks and rovers, clear
craters, grab anti-gravity orbs and survive as long as you can while the
course speeds up.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - View the leaderboard and run history
  config   - Print the default configuration

Examples:
  moonrunner play
  moonrunner play --difficulty hard
  moonrunner window --seed 42
  moonrunner scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
