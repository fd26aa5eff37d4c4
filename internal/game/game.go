// Package game implements the block-rolling puzzle as a registry mode: roll a
// 1x2x1 block across a tile board and stand it upright on the winning cell.
package game

import (
	"blockroll/internal/board"
	"blockroll/internal/config"
	"blockroll/internal/core"
	"blockroll/internal/engine"
	"blockroll/internal/geom"
	"blockroll/internal/level"
	"blockroll/internal/registry"
)

// Mode represents the play mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModePractice Mode = "practice"
)

// levelClearDelay is how long the "level cleared" interlude lasts before the
// next level loads automatically (ticks).
const levelClearDelay = 90

// Game implements the puzzle.
type Game struct {
	mode Mode
	tick uint64

	levels     []level.Level
	levelIndex int
	board      *board.Board
	block      board.Block
	display    geom.Body // transform drawn this frame; trails block during animation
	tween      *engine.Tween

	moves      int // committed rolls on the current level
	totalMoves int // committed rolls on completed levels

	anim config.AnimationConfig

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	won             bool
	levelCleared    bool
	levelClearTicks int
	paused          bool
	tooSmall        bool
	loadErr         error
}

// Package-level variables for config
var (
	selectedLevel int // 1-indexed start/practice level, 0 means first
	levelDir      string
	animCfg       = config.Default().Animation
)

// SetStartLevel selects the 1-indexed level to start on. 0 means the first.
func SetStartLevel(n int) {
	selectedLevel = n
}

// SetLevelDir points the game at an external level directory.
// Empty selects the built-in campaign.
func SetLevelDir(dir string) {
	levelDir = dir
}

// SetAnimation overrides the animation tuning for newly reset games.
func SetAnimation(a config.AnimationConfig) {
	animCfg = a
}

// New creates a campaign game: solve every level in order.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewPractice creates a practice game: replay a single level freely.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

func init() {
	registry.Register("campaign", func() registry.Game {
		return New()
	})
	registry.Register("practice", func() registry.Game {
		return NewPractice()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Blockroll (Practice)"
	}
	return "Blockroll"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.anim = animCfg
	g.tween = nil
	g.moves = 0
	g.totalMoves = 0
	g.won = false
	g.levelCleared = false
	g.levelClearTicks = 0
	g.paused = false
	g.loadErr = nil

	g.levels, g.loadErr = level.NewLoader(levelDir).LoadAll()
	if g.loadErr != nil {
		return
	}

	g.levelIndex = 0
	if selectedLevel > 0 && selectedLevel <= len(g.levels) {
		g.levelIndex = selectedLevel - 1
		if g.mode == ModeCampaign {
			selectedLevel = 0 // Reset after use
		}
	}

	g.loadLevel()
	g.checkScreenSize()
}

// loadLevel places the block on the current level's start cell.
func (g *Game) loadLevel() {
	lvl := g.levels[g.levelIndex]
	g.board = lvl.Board
	g.block = board.NewBlock(lvl.Start)
	g.display = g.block.Body()
	g.tween = nil
	g.moves = 0
}

// Busy reports whether a roll animation is in flight. While busy, roll and
// level inputs are ignored; the pending state commits when the animation ends.
func (g *Game) Busy() bool {
	return g.tween != nil
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	if g.board == nil {
		return
	}
	minX, minZ, maxX, maxZ := g.board.Bounds()
	// Board cells are drawn 2 columns wide, plus a HUD of 3 lines.
	minW := (maxX-minX+1)*2 + 4
	minH := (maxZ - minZ + 1) + 5
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.loadErr != nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Level cleared interlude: wait, then advance.
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay || in.Has(core.ActionConfirm) {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.won {
		// Waiting for the platform to reset on Restart.
		return core.StepResult{State: g.State()}
	}

	// An in-flight roll owns the block until it finishes.
	if g.tween != nil {
		g.display = g.tween.Step()
		if g.tween.Done() {
			g.finishRoll()
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.loadLevel()
	case in.Has(core.ActionNextLevel):
		g.changeLevel(1)
	case in.Has(core.ActionPrevLevel):
		g.changeLevel(-1)
	default:
		if dir, ok := rollDirection(in); ok {
			g.startRoll(dir)
		}
	}

	return core.StepResult{State: g.State()}
}

// rollDirection maps the frame's input to a roll direction. Up is north
// (away from the camera, decreasing Z).
func rollDirection(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirNegZ, true
	case in.Has(core.ActionDown):
		return engine.DirPosZ, true
	case in.Has(core.ActionLeft):
		return engine.DirNegX, true
	case in.Has(core.ActionRight):
		return engine.DirPosX, true
	}
	return 0, false
}

// startRoll validates the requested roll and starts its animation. The block
// state itself does not change until the animation completes.
func (g *Game) startRoll(dir engine.Direction) {
	plan := engine.PlanRoll(g.block, g.board, dir, g.anim.BounceAngle())

	duration := g.anim.RollTicks
	if !plan.Legal {
		duration = g.anim.BounceTicks
	}
	g.tween = engine.NewTween(g.block.Body(), plan, duration)
}

// finishRoll commits the finished animation: a legal roll moves the block and
// counts as a move, a bounce leaves everything untouched.
func (g *Game) finishRoll() {
	legal := g.tween.Legal()
	g.block.SetBody(g.tween.Final())
	g.display = g.block.Body()
	g.tween = nil

	if !legal {
		return
	}
	g.moves++

	if engine.IsWin(g.block, g.board) {
		if g.mode == ModePractice || g.levelIndex >= len(g.levels)-1 {
			g.won = true
			return
		}
		g.levelCleared = true
		g.levelClearTicks = 0
	}
}

// advanceLevel moves campaign play to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0
	g.totalMoves += g.moves
	g.levelIndex++
	g.loadLevel()
	g.checkScreenSize()
}

// changeLevel jumps by offset levels, resetting the board. Out-of-range jumps
// are ignored.
func (g *Game) changeLevel(offset int) {
	next := g.levelIndex + offset
	if next < 0 || next >= len(g.levels) {
		return
	}
	g.levelIndex = next
	g.loadLevel()
	g.checkScreenSize()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.totalMoves + g.moves,
		Level:    g.levelIndex + 1,
		Won:      g.won,
		GameOver: g.won || g.loadErr != nil,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
