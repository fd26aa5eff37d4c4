package board

import (
	"math"

	"blockroll/internal/geom"
)

// Block dimensions in world units. The long side is vertical when standing.
const (
	BlockWidth  = 1.0
	BlockHeight = 2.0
	BlockDepth  = 1.0
)

// Center heights for the two resting states of a 1x2x1 block.
const (
	standingCenterY = BlockHeight / 2
	lyingCenterY    = BlockWidth / 2
)

// Orientation is the block's discrete resting state, always re-derived from
// the continuous transform rather than tracked separately.
type Orientation int

const (
	Standing Orientation = iota // upright, footprint is one cell
	LyingX                      // long side along X, footprint spans two cells in X
	LyingZ                      // long side along Z, footprint spans two cells in Z
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Standing:
		return "Standing"
	case LyingX:
		return "LyingX"
	case LyingZ:
		return "LyingZ"
	default:
		return "Unknown"
	}
}

// Block is the rolling rigid body. Only geom.Body.RotateAround ever moves it,
// always in 90° steps from a valid resting state, which keeps its position on
// the half-unit lattice by construction.
type Block struct {
	body geom.Body
}

// NewBlock creates a block standing upright on the given cell.
func NewBlock(c Cell) Block {
	return Block{body: geom.NewBody(geom.V(float64(c.X), standingCenterY, float64(c.Z)))}
}

// Body returns the block's continuous transform.
func (b Block) Body() geom.Body {
	return b.body
}

// SetBody replaces the block's transform. The caller is responsible for only
// supplying classification-consistent states (the result of 90° rolls).
func (b *Block) SetBody(body geom.Body) {
	b.body = body
}

// Cells returns the board cell(s) under the block's footprint: one cell when
// standing, two adjacent cells when lying. See CellsAt.
func (b Block) Cells() []Cell {
	return CellsAt(b.body.Pos)
}

// Orientation classifies the block's resting state from its position.
func (b Block) Orientation() Orientation {
	return OrientationAt(b.body.Pos)
}

// Standing reports whether the block is upright on a single cell.
func (b Block) Standing() bool {
	return b.Orientation() == Standing
}

// Lying reports whether the block rests on its long side.
func (b Block) Lying() bool {
	return !b.Standing()
}

// CellsAt classifies a continuous position into occupied board cells.
// Each planar coordinate is snapped to the half-unit lattice first; raw float
// comparison would misclassify positions after many incremental rotations.
// Both coordinates whole: the block stands on that single cell. Otherwise
// exactly one coordinate is a half-integer (guaranteed for states reached by
// 90° rolls from a valid state) and the block spans the two adjacent cells
// on either side of it.
func CellsAt(pos geom.Vec3) []Cell {
	rx := geom.RoundHalf(pos.X)
	rz := geom.RoundHalf(pos.Z)

	switch {
	case geom.IsWhole(rx) && geom.IsWhole(rz):
		return []Cell{{X: int(rx), Z: int(rz)}}
	case !geom.IsWhole(rx):
		return []Cell{
			{X: int(math.Floor(rx)), Z: int(rz)},
			{X: int(math.Ceil(rx)), Z: int(rz)},
		}
	default:
		return []Cell{
			{X: int(rx), Z: int(math.Floor(rz))},
			{X: int(rx), Z: int(math.Ceil(rz))},
		}
	}
}

// RestingLowAt reports whether the position's height matches a lying block's
// center (half the short side). Together with OrientationAt this drives the
// pivot-offset rule: a lying block whose long side points along the roll
// direction pivots a full unit from its center instead of half.
func RestingLowAt(pos geom.Vec3) bool {
	return geom.RoundHalf(pos.Y) == lyingCenterY
}

// OrientationAt classifies a continuous position into a resting state.
func OrientationAt(pos geom.Vec3) Orientation {
	rx := geom.RoundHalf(pos.X)
	rz := geom.RoundHalf(pos.Z)
	switch {
	case !geom.IsWhole(rx):
		return LyingX
	case !geom.IsWhole(rz):
		return LyingZ
	default:
		return Standing
	}
}
