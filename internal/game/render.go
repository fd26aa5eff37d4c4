package game

import (
	"fmt"
	"math"

	"blockroll/internal/board"
	"blockroll/internal/core"
	"blockroll/internal/geom"
)

// Board cells are drawn two columns wide so they look roughly square in a
// terminal font.
const cellCols = 2

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderLoadError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	minX, minZ, maxX, maxZ := g.board.Bounds()
	boardW := (maxX - minX + 1) * cellCols
	boardH := maxZ - minZ + 1

	originX := (g.screenW - boardW) / 2
	originY := 4

	g.renderHUD(dst, originX, boardW)
	g.renderBoard(dst, originX, originY, minX, minZ)
	g.renderBlock(dst, originX, originY, minX, minZ)
	g.renderOverlays(dst, originX, originY, boardW, boardH)
}

func (g *Game) renderLoadError(dst *core.Screen) {
	dst.DrawTextCentered(g.screenH/2, "Failed to load levels")
	dst.DrawTextCentered(g.screenH/2+1, g.loadErr.Error())
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(g.screenH/2, "Window too small")
	dst.DrawTextCentered(g.screenH/2+1, "Please resize terminal")
}

// renderHUD draws the title, level info, and move counter.
func (g *Game) renderHUD(dst *core.Screen, originX, boardW int) {
	dst.DrawTextCentered(0, g.Title())

	lvl := g.levels[g.levelIndex]
	info := fmt.Sprintf("Level %d/%d: %s", g.levelIndex+1, len(g.levels), lvl.Name)
	dst.DrawText(originX, 2, info)

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	if g.mode == ModeCampaign && g.totalMoves > 0 {
		movesStr = fmt.Sprintf("Moves: %d  Total: %d", g.moves, g.totalMoves+g.moves)
	}
	x := originX + boardW - len(movesStr)
	if x < originX {
		x = originX
	}
	dst.DrawText(x, 3, movesStr)
}

// renderBoard draws the tile floor seen from above.
func (g *Game) renderBoard(dst *core.Screen, originX, originY, minX, minZ int) {
	for _, c := range g.board.Tiles() {
		ch, color := '░', core.ColorGray
		if c == g.board.Win() {
			ch, color = '▓', core.ColorGreen
		}
		px := originX + (c.X-minX)*cellCols
		py := originY + (c.Z - minZ)
		for i := 0; i < cellCols; i++ {
			dst.SetCell(px+i, py, ch, color)
		}
	}
}

// renderBlock draws the block's footprint. During animation the footprint is
// projected from the in-flight transform, so the block appears to slide
// between cells while it rolls.
func (g *Game) renderBlock(dst *core.Screen, originX, originY, minX, minZ int) {
	color := core.ColorYellow
	if g.block.Standing() && g.tween == nil {
		color = core.ColorOrange
	}

	for _, c := range blockFootprint(g.display) {
		px := originX + (c.X-minX)*cellCols
		py := originY + (c.Z - minZ)
		for i := 0; i < cellCols; i++ {
			dst.SetCell(px+i, py, '█', color)
		}
	}
}

// blockFootprint projects the centers of the block's two unit cubes onto the
// board plane. Unlike cell classification this is well-defined mid-rotation.
func blockFootprint(b geom.Body) []board.Cell {
	half := b.Rot.Rotate(geom.V(0, 0.5, 0))
	top := b.Pos.Add(half)
	bottom := b.Pos.Sub(half)

	c1 := board.Cell{X: roundInt(top.X), Z: roundInt(top.Z)}
	c2 := board.Cell{X: roundInt(bottom.X), Z: roundInt(bottom.Z)}
	if c1 == c2 {
		return []board.Cell{c1}
	}
	return []board.Cell{c1, c2}
}

func roundInt(x float64) int {
	return int(math.Round(x))
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, originX, originY, boardW, boardH int) {
	centerX := originX + boardW/2
	centerY := originY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.levelCleared:
		next := fmt.Sprintf("Next: %s", g.levels[g.levelIndex+1].Name)
		g.drawOverlay(dst, centerX, centerY, "Level cleared!", next)
	case g.won && g.mode == ModePractice:
		moves := fmt.Sprintf("Solved in %d moves", g.moves)
		g.drawOverlay(dst, centerX, centerY, "SOLVED!", moves, "Press R to retry")
	case g.won:
		total := fmt.Sprintf("Total moves: %d", g.totalMoves+g.moves)
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", total, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Roll | R: Restart | [ ]: Level | P: Pause | Q: Quit"
}
