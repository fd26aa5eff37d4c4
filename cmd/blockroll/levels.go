package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blockroll/internal/level"
	"blockroll/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the levels of the built-in campaign, or of the directory given
with --levels, together with the best recorded result for each.`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	levels, err := level.NewLoader(flagLevelDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	// Best results are optional decoration; the list works without the DB.
	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err == nil {
		store = s
		defer store.Close()
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-4s  %-4s  %-20s  %-6s  %s\n", "No.", "ID", "Name", "Tiles", "Best")
	fmt.Printf("  %-4s  %-4s  %-20s  %-6s  %s\n", "---", "--", "----", "-----", "----")

	for i, lvl := range levels {
		best := "-"
		if store != nil {
			if moves, err := store.BestMoves(lvl.ID); err == nil && moves > 0 {
				best = fmt.Sprintf("%d moves", moves)
			}
		}
		fmt.Printf("  %-4d  %-4s  %-20s  %-6d  %s\n", i+1, lvl.ID, lvl.Name, lvl.Board.Size(), best)
	}

	fmt.Println()
	fmt.Println("Run 'blockroll play <no.>' to practice a level.")
}
