package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"blockroll/internal/config"
	"blockroll/internal/core"
	"blockroll/internal/game"
	"blockroll/internal/platform/tui"
	"blockroll/internal/registry"
	"blockroll/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive level picker",
	Long: `Start in interactive menu mode.

Use arrow keys or w/s to navigate, Enter to select. After finishing
a level or quitting a game, you return to the menu.

Controls:
  Up/Down/W/S  - Navigate menu
  Enter        - Select entry
  Tab          - Show best results
  Q            - Quit

Examples:
  blockroll menu
  blockroll menu --fps 30
  blockroll menu --levels ./my-levels`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	menuCmd.Flags().StringVar(&flagSpeed, "speed", "", "Animation speed preset: relaxed, normal, snappy")
}

func runMenu(_ *cobra.Command, _ []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset, ok := config.ParseSpeedPreset(flagSpeed)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown speed preset %q (want relaxed, normal, or snappy)\n", flagSpeed)
		os.Exit(1)
	}
	config.ApplyPreset(&appCfg, preset)
	game.SetAnimation(appCfg.Animation)
	game.SetLevelDir(flagLevelDir)

	// Open result storage; the menu works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, flagLevelDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes the menu picked up
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, flagLevelDir)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.ModeID == "" {
			break
		}
		game.SetStartLevel(menuResult.LevelNum)

		g, err := registry.Create(menuResult.ModeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per game unless one was pinned on the command line
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(g, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
