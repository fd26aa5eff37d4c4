package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Moves spent so far (lower is better)
	Level    int  // Current level number (1-indexed for display)
	Won      bool // Whether the current level was just solved
	GameOver bool // Whether the whole campaign has ended
	Paused   bool // Whether the game is paused or in an overlay state
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
