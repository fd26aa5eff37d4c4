package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"blockroll/internal/config"
	"blockroll/internal/core"
	"blockroll/internal/game"
	"blockroll/internal/level"
	"blockroll/internal/platform/tui"
	"blockroll/internal/registry"
	"blockroll/internal/storage"
)

var (
	flagConfig string
	flagSpeed  string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign, or practice a single level",
	Long: `Start the campaign, or practice one level by its number.

Controls:
  Arrows/WASD - Roll the block
  R           - Restart the current level
  [ / ]       - Previous / next level
  P           - Pause
  Q/Ctrl+C    - Quit

Speed presets:
  relaxed - Slow, deliberate animations
  normal  - Default animation speed
  snappy  - Fast animations

Examples:
  blockroll play
  blockroll play 3
  blockroll play --speed snappy
  blockroll play --config ./my-blockroll.yaml
  blockroll play --levels ./my-levels 2`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Animation speed preset: relaxed, normal, snappy")
}

// setupGame loads the runtime config and points the game at the right levels.
// Returns the mode ID to launch.
func setupGame(levelArg string) (string, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return "", err
	}

	preset, ok := config.ParseSpeedPreset(flagSpeed)
	if !ok {
		return "", fmt.Errorf("unknown speed preset %q (want relaxed, normal, or snappy)", flagSpeed)
	}
	config.ApplyPreset(&cfg, preset)

	game.SetAnimation(cfg.Animation)
	game.SetLevelDir(flagLevelDir)

	if levelArg == "" {
		game.SetStartLevel(0)
		return "campaign", nil
	}

	n, err := strconv.Atoi(levelArg)
	if err != nil || n < 1 {
		return "", fmt.Errorf("invalid level number %q", levelArg)
	}
	levels, err := level.NewLoader(flagLevelDir).LoadAll()
	if err != nil {
		return "", err
	}
	if n > len(levels) {
		return "", fmt.Errorf("level %d does not exist (have %d levels)", n, len(levels))
	}
	game.SetStartLevel(n)
	return "practice", nil
}

func runPlay(cmd *cobra.Command, args []string) {
	levelArg := ""
	if len(args) > 0 {
		levelArg = args[0]
	}

	modeID, err := setupGame(levelArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open result storage; play works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
