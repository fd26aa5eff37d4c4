package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blockroll/internal/level"
	"blockroll/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level-id>",
	Short: "Show best results for a level",
	Long: `Display the top 10 results for the specified level, fewest moves first.

Examples:
  blockroll scores 01
  blockroll scores 03`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := args[0]

	lvl, err := level.NewLoader(flagLevelDir).LoadByID(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'blockroll levels' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.BestResults(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Results - %s\n", lvl.Name)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockroll play' to set the first record!\n")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n", i+1, r.Moves, fmt.Sprintf("%ds", r.Duration), dateStr)
	}

	fmt.Println()
	if best, err := store.BestMoves(levelID); err == nil {
		fmt.Printf("Best: %d moves\n", best)
	}
}
