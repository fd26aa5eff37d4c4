// Package engine decides whether a requested roll of the block is legal and
// produces the exact pivot, axis, and angle the animation layer must use to
// perform it. Legality is previewed on an independent probe of the block so
// live state is never touched, and the animation later replays the identical
// transform, guaranteeing the committed state is the one that was validated.
package engine

import (
	"math"

	"blockroll/internal/board"
	"blockroll/internal/geom"
)

// Direction is one of the four roll directions in the board plane.
type Direction int

const (
	DirPosX Direction = iota // east
	DirNegX                  // west
	DirPosZ                  // south
	DirNegZ                  // north
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirPosX:
		return "+X"
	case DirNegX:
		return "-X"
	case DirPosZ:
		return "+Z"
	case DirNegZ:
		return "-Z"
	default:
		return "Unknown"
	}
}

// QuarterTurn is the magnitude of every legal roll.
const QuarterTurn = math.Pi / 2

// Plan is the engine's verdict on a requested roll. Pivot, Axis, and Angle
// are always populated: for a legal roll the angle is a full quarter turn and
// Target holds the validated post-roll transform; for an illegal roll the
// angle is a reduced bounce (forward then fully reversed by the animation, no
// state change) and Target equals the block's current transform.
type Plan struct {
	Dir    Direction
	Legal  bool
	Pivot  geom.Vec3
	Axis   geom.Vec3
	Angle  float64      // radians, sign per direction
	Target geom.Body    // transform the block ends in once the roll commits
	Cells  []board.Cell // cells the probe occupies after a full roll
}

// PlanRoll computes the pivot and rotation for rolling blk in dir across b,
// and decides legality: every cell the block would occupy after the roll must
// exist in the board's tile set. All-or-nothing — a lying block cannot roll
// onto a position where only one of its two cells is supported.
//
// bounceAngle is the magnitude (radians) used for the cosmetic rejection
// animation; its sign is set to match the attempted direction.
func PlanRoll(blk board.Block, b *board.Board, dir Direction, bounceAngle float64) Plan {
	body := blk.Body()
	pivot, axis, angle := rollTransform(body.Pos, dir)

	probe := body.RotatedAround(pivot, axis, angle)
	cells := board.CellsAt(probe.Pos)

	if b.Supports(cells) {
		return Plan{
			Dir:    dir,
			Legal:  true,
			Pivot:  pivot,
			Axis:   axis,
			Angle:  angle,
			Target: probe,
			Cells:  cells,
		}
	}

	return Plan{
		Dir:    dir,
		Legal:  false,
		Pivot:  pivot,
		Axis:   axis,
		Angle:  math.Copysign(bounceAngle, angle),
		Target: body,
		Cells:  cells,
	}
}

// rollTransform derives the pivot point, rotation axis, and signed quarter
// turn for rolling a block centered at pos in the given direction.
//
// The pivot sits at ground level on the block's leading edge. Its distance
// from the center along the travel axis is 1.0 when the block lies with its
// long side pointing along the travel direction (resting at half height and
// not split along the perpendicular axis), because the half-length presented
// to the roll is then a full unit; in every other state it is 0.5.
func rollTransform(pos geom.Vec3, dir Direction) (pivot, axis geom.Vec3, angle float64) {
	lying := board.RestingLowAt(pos)

	switch dir {
	case DirPosX, DirNegX:
		off := 0.5
		if lying && geom.IsWhole(geom.RoundHalf(pos.Z)) {
			off = 1.0
		}
		axis = geom.AxisZ
		if dir == DirPosX {
			pivot = geom.V(pos.X+off, 0, pos.Z)
			angle = -QuarterTurn
		} else {
			pivot = geom.V(pos.X-off, 0, pos.Z)
			angle = QuarterTurn
		}
	default: // DirPosZ, DirNegZ
		off := 0.5
		if lying && geom.IsWhole(geom.RoundHalf(pos.X)) {
			off = 1.0
		}
		axis = geom.AxisX
		if dir == DirPosZ {
			pivot = geom.V(pos.X, 0, pos.Z+off)
			angle = QuarterTurn
		} else {
			pivot = geom.V(pos.X, 0, pos.Z-off)
			angle = -QuarterTurn
		}
	}
	return pivot, axis, angle
}

// IsWin reports the win condition for a committed block state: the block must
// stand upright on exactly the winning cell. A lying block covering the
// winning cell with one of its two cells does not win.
func IsWin(blk board.Block, b *board.Board) bool {
	cells := blk.Cells()
	return len(cells) == 1 && cells[0] == b.Win()
}
