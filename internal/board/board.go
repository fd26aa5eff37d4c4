// Package board models the puzzle surface and the rolling block. A board is
// an immutable set of tile cells with one winning cell, built once per level
// from a textual layout. The block keeps a continuous rigid-body transform and
// exposes it through discrete cell queries.
package board

import (
	"fmt"
	"sort"
)

// Cell is a board coordinate: X grows east, Z grows south.
type Cell struct {
	X, Z int
}

// Layout markers understood by ParseLayout.
const (
	markTile  = '#'
	markWin   = '*'
	markStart = 'S'
	markGap   = '.'
)

// Board is the fixed set of playable cells for one level plus the winning
// cell. It is never mutated after construction.
type Board struct {
	tiles map[Cell]bool
	win   Cell
}

// New builds a board from the given tiles and winning cell. The winning cell
// is added to the tile set if the caller did not include it.
func New(tiles []Cell, win Cell) *Board {
	set := make(map[Cell]bool, len(tiles)+1)
	for _, c := range tiles {
		set[c] = true
	}
	set[win] = true
	return &Board{tiles: set, win: win}
}

// ParseLayout builds the tile set, winning cell, and block start cell from a
// 2D textual layout. Row index maps to Z, column index to X.
//
//	#  plain tile
//	*  winning tile
//	S  start tile (block begins standing here)
//	.  or space: gap
func ParseLayout(rows []string) (b *Board, start Cell, err error) {
	var tiles []Cell
	var win Cell
	haveWin, haveStart := false, false

	for z, row := range rows {
		for x, r := range row {
			c := Cell{X: x, Z: z}
			switch r {
			case markTile:
				tiles = append(tiles, c)
			case markWin:
				if haveWin {
					return nil, Cell{}, fmt.Errorf("board: layout has more than one winning tile")
				}
				win = c
				haveWin = true
				tiles = append(tiles, c)
			case markStart:
				if haveStart {
					return nil, Cell{}, fmt.Errorf("board: layout has more than one start tile")
				}
				start = c
				haveStart = true
				tiles = append(tiles, c)
			case markGap, ' ':
				// gap
			default:
				return nil, Cell{}, fmt.Errorf("board: unknown layout marker %q at row %d col %d", r, z, x)
			}
		}
	}

	if !haveWin {
		return nil, Cell{}, fmt.Errorf("board: layout has no winning tile")
	}
	if !haveStart {
		return nil, Cell{}, fmt.Errorf("board: layout has no start tile")
	}
	return New(tiles, win), start, nil
}

// Has reports whether the cell is a playable tile.
func (b *Board) Has(c Cell) bool {
	return b.tiles[c]
}

// Supports reports whether every given cell is a playable tile. An empty
// slice is vacuously supported; callers never produce one for a valid block.
func (b *Board) Supports(cells []Cell) bool {
	for _, c := range cells {
		if !b.tiles[c] {
			return false
		}
	}
	return true
}

// Win returns the designated winning cell.
func (b *Board) Win() Cell {
	return b.win
}

// Size returns the number of playable tiles.
func (b *Board) Size() int {
	return len(b.tiles)
}

// Tiles returns all playable cells in deterministic order (Z, then X).
func (b *Board) Tiles() []Cell {
	out := make([]Cell, 0, len(b.tiles))
	for c := range b.tiles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].X < out[j].X
	})
	return out
}

// Bounds returns the inclusive cell-coordinate extents of the tile set.
func (b *Board) Bounds() (minX, minZ, maxX, maxZ int) {
	first := true
	for c := range b.tiles {
		if first {
			minX, maxX = c.X, c.X
			minZ, maxZ = c.Z, c.Z
			first = false
			continue
		}
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Z < minZ {
			minZ = c.Z
		}
		if c.Z > maxZ {
			maxZ = c.Z
		}
	}
	return minX, minZ, maxX, maxZ
}
