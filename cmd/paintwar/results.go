package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-paintwar/internal/registry"
	"github.com/vovakirdan/tui-paintwar/internal/storage"
)

var (
	flagResultsLimit int
	flagResultsBest  bool
	flagResultsClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results <mode>",
	Short: "Show past rounds for a mode",
	Long: `Display recorded rounds for the specified mode with win counts.

Examples:
  paintwar results paintwar_grid
  paintwar results paintwar_grid --best --limit 5
  paintwar results paintwar_grid --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of rounds to show")
	resultsCmd.Flags().BoolVar(&flagResultsBest, "best", false, "Order by widest margin instead of most recent")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete all recorded rounds for the mode")
}

func runResults(_ *cobra.Command, args []string) error {
	mode := args[0]
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'paintwar list' to see available modes", mode)
	}

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagResultsClear {
		if err := store.ClearResults(mode); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %s.\n", title)
		return nil
	}

	var rounds []storage.Result
	heading := "Recent rounds"
	if flagResultsBest {
		heading = "Widest margins"
		rounds, err = store.BestResults(mode, flagResultsLimit)
	} else {
		rounds, err = store.RecentResults(mode, flagResultsLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'paintwar sim %s' to record one.\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %-6s  %s\n", "#", "White", "Black", "Winner", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %-6s  %s\n", "-", "-----", "-----", "------", "----", "----")
	for i, r := range rounds {
		secs := int(r.Duration)
		fmt.Printf("  %-4d  %-6d  %-6d  %-7s  %-6s  %s\n",
			i+1, r.White, r.Black, r.Winner,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetModeStats(mode)
	if err == nil && stats.Rounds > 0 {
		fmt.Println()
		fmt.Printf("%d rounds: white %d, black %d, draw %d (avg %.0f-%.0f)\n",
			stats.Rounds, stats.WhiteWins, stats.BlackWins, stats.Draws, stats.AvgWhite, stats.AvgBlack)
	}
	return nil
}
