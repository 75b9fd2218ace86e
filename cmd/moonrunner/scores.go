package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/moonrunner/internal/leaderboard"
	"github.com/vovakirdan/moonrunner/internal/storage"
)

var (
	flagClear  bool
	flagRecent int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and run history",
	Long: `Display the top 5 runs by time survived, aggregate statistics and the
most recent runs.

Examples:
  moonrunner scores
  moonrunner scores --recent 20
  moonrunner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the leaderboard and run history")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent runs to list")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	board := leaderboard.New(store, logger)

	if flagClear {
		if err := board.Clear(); err != nil {
			return fmt.Errorf("error clearing leaderboard: %w", err)
		}
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("error clearing run history: %w", err)
		}
		fmt.Println("Leaderboard and run history cleared.")
		return nil
	}

	printLeaderboard(board.Load())

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}
	if stats.Runs == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("Runs: %d   Best: %.1fs   Average: %.1fs   Total: %.1fs\n",
		stats.Runs, stats.Best, stats.Average, stats.TotalTime)
	fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))

	runs, err := store.RecentRuns(flagRecent)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Printf("  %-8s  %-8s  %s\n", "Time", "Cause", "Date")
	fmt.Printf("  %-8s  %-8s  %s\n", "----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-8s  %s\n", fmt.Sprintf("%.1fs", r.Elapsed), r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printLeaderboard(entries []leaderboard.Entry) {
	fmt.Println("Moon Runner - Top 5")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'moonrunner play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-5s  %s\n", "Rank", "Name", "Time")
	fmt.Printf("  %-4s  %-5s  %s\n", "----", "----", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-5s  %.1fs\n", i+1, e.Name, e.Score)
	}
}
