package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs",
	Long: `Display the best runs for one mode, or for both modes when none is given.

Examples:
  snake scores
  snake scores armed
  snake scores classic --limit 20
  snake scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs instead of showing them")
}

func runScores(_ *cobra.Command, args []string) error {
	modes := []engine.Mode{engine.ModeClassic, engine.ModeArmed}
	if len(args) == 1 {
		mode, ok := engine.ParseMode(args[0])
		if !ok {
			return fmt.Errorf("unknown mode %q (want classic or armed)", args[0])
		}
		modes = []engine.Mode{mode}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	for i, mode := range modes {
		if i > 0 {
			fmt.Println()
		}
		if flagClear {
			if err := store.ClearRuns(string(mode)); err != nil {
				return fmt.Errorf("clearing %s runs: %w", mode, err)
			}
			fmt.Printf("Cleared %s runs.\n", mode)
			continue
		}
		if err := printRuns(store, mode); err != nil {
			return err
		}
	}
	return nil
}

func printRuns(store *storage.Store, mode engine.Mode) error {
	runs, err := store.TopRuns(string(mode), flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving %s runs: %w", mode, err)
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %s\n", "Rank", "Score", "Length", "End", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %s\n", "----", "-----", "------", "---", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-10s  %s\n",
			i+1, r.Score, r.Length, r.Reason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetModeStats(string(mode)); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.BestScore, stats.AvgScore)
	}
	return nil
}
