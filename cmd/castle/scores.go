package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/castle-crawler/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, deepest first. Ties go to the run with more kills.

Examples:
  castle scores
  castle scores --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Castle of no Return")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'castle play' to set the first record!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-16s  %-5s  %-3s  %-5s  %-6s  %-8s  %s\n",
		"Rank", "Name", "Depth", "Lv", "Kills", "Turns", "Outcome", "Date")
	fmt.Fprintf(out, "  %-4s  %-16s  %-5s  %-3s  %-5s  %-6s  %-8s  %s\n",
		"----", "----", "-----", "--", "-----", "-----", "-------", "----")

	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-16s  %-5d  %-3d  %-5d  %-6d  %-8s  %s\n",
			i+1, r.PlayerName, r.Depth, r.Level, r.Kills, r.Turns, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	if best, err := store.BestDepth(); err == nil {
		total, _ := store.Count()
		fmt.Fprintf(out, "Deepest: %d  (%d runs)\n", best, total)
	}
	return nil
}
