// blockroll is a terminal puzzle: roll a 1x2x1 block across a floating tile
// board and stand it upright on the goal cell.
//
// Usage:
//
//	blockroll play [level]    - Play the campaign, or practice one level
//	blockroll menu            - Interactive level picker
//	blockroll levels          - List available levels
//	blockroll scores <level>  - Show best results for a level
//	blockroll serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--db <path>      - Set database path (default: ~/.blockroll/results.db)
//	--levels <dir>   - Load levels from a directory instead of the built-ins
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its play modes
	_ "blockroll/internal/game"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLevelDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockroll",
	Short: "Blockroll - Roll the block onto the goal",
	Long: `Blockroll is a terminal puzzle game. Roll a 1x2x1 block across a board
of floating tiles and make it stand upright on the goal cell. A roll that
would leave any part of the block hanging over the void is rejected.

Available commands:
  play     - Play the campaign, or practice a single level
  menu     - Interactive level picker
  levels   - List available levels
  scores   - View best results for a level
  serve    - Start SSH server for remote play

Examples:
  blockroll play
  blockroll play 3
  blockroll menu
  blockroll serve --ssh :2222
  blockroll scores 01`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockroll/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLevelDir, "levels", "", "Directory with custom level files (default: built-in campaign)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
