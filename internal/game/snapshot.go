package game

import "blockroll/internal/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateRolling      GameStateType = "rolling"
	StateLevelCleared GameStateType = "level_cleared"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
	StateLoadFailed   GameStateType = "load_failed"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        string // "campaign" or "practice"
	Level       int    // Current level (1-indexed for display)
	LevelID     string
	Moves       int // committed rolls on the current level
	TotalMoves  int // committed rolls including completed levels
	BlockCells  []board.Cell
	Orientation string
	Busy        bool
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.loadErr != nil:
		state = StateLoadFailed
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.levelCleared:
		state = StateLevelCleared
	case g.tween != nil:
		state = StateRolling
	}

	snap := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		State:      state,
		Busy:       g.tween != nil,
		Moves:      g.moves,
		TotalMoves: g.totalMoves + g.moves,
	}
	if g.loadErr == nil {
		snap.Level = g.levelIndex + 1
		snap.LevelID = g.levels[g.levelIndex].ID
		snap.BlockCells = g.block.Cells()
		snap.Orientation = g.block.Orientation().String()
	}
	return snap
}
