package engine

import (
	"math"
	"testing"

	"blockroll/internal/board"
	"blockroll/internal/geom"
)

const (
	eps        = 1e-9
	testBounce = math.Pi / 6 // 30°
)

// bigBoard builds a board large enough that every roll from near the origin
// is supported, for tests that only care about geometry.
func bigBoard(t *testing.T) *board.Board {
	t.Helper()
	var tiles []board.Cell
	for z := -5; z <= 5; z++ {
		for x := -5; x <= 5; x++ {
			tiles = append(tiles, board.Cell{X: x, Z: z})
		}
	}
	return board.New(tiles, board.Cell{X: 5, Z: 5})
}

// lyingBlock places a block lying at the given continuous position.
func lyingBlock(pos geom.Vec3) board.Block {
	var blk board.Block
	body := geom.NewBody(pos)
	blk.SetBody(body)
	return blk
}

func TestPlanRollDirectionTable(t *testing.T) {
	b := bigBoard(t)
	blk := board.NewBlock(board.Cell{X: 0, Z: 0})

	tests := []struct {
		dir       Direction
		pivot     geom.Vec3
		axis      geom.Vec3
		angleSign float64
		cells     []board.Cell
	}{
		{DirPosX, geom.V(0.5, 0, 0), geom.AxisZ, -1, []board.Cell{{X: 1, Z: 0}, {X: 2, Z: 0}}},
		{DirNegX, geom.V(-0.5, 0, 0), geom.AxisZ, 1, []board.Cell{{X: -2, Z: 0}, {X: -1, Z: 0}}},
		{DirPosZ, geom.V(0, 0, 0.5), geom.AxisX, 1, []board.Cell{{X: 0, Z: 1}, {X: 0, Z: 2}}},
		{DirNegZ, geom.V(0, 0, -0.5), geom.AxisX, -1, []board.Cell{{X: 0, Z: -2}, {X: 0, Z: -1}}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			p := PlanRoll(blk, b, tc.dir, testBounce)

			if !p.Legal {
				t.Fatal("roll on an open board should be legal")
			}
			if !p.Pivot.ApproxEq(tc.pivot, eps) {
				t.Errorf("pivot = %v, expected %v", p.Pivot, tc.pivot)
			}
			if !p.Axis.ApproxEq(tc.axis, eps) {
				t.Errorf("axis = %v, expected %v", p.Axis, tc.axis)
			}
			if math.Abs(p.Angle-tc.angleSign*QuarterTurn) > eps {
				t.Errorf("angle = %v, expected %v", p.Angle, tc.angleSign*QuarterTurn)
			}
			if len(p.Cells) != 2 || p.Cells[0] != tc.cells[0] || p.Cells[1] != tc.cells[1] {
				t.Errorf("cells = %v, expected %v", p.Cells, tc.cells)
			}
		})
	}
}

func TestPivotOffsetRule(t *testing.T) {
	b := bigBoard(t)

	tests := []struct {
		name   string
		pos    geom.Vec3
		dir    Direction
		pivotX float64
		pivotZ float64
	}{
		// Standing: short edge everywhere, offset 0.5.
		{"standing +X", geom.V(0, 1, 0), DirPosX, 0.5, 0},
		{"standing -Z", geom.V(0, 1, 0), DirNegZ, 0, -0.5},
		// Lying along X: long side faces X rolls (offset 1.0), short side faces Z rolls (0.5).
		{"lying-X +X", geom.V(0.5, 0.5, 0), DirPosX, 1.5, 0},
		{"lying-X -X", geom.V(0.5, 0.5, 0), DirNegX, -0.5, 0},
		{"lying-X +Z", geom.V(0.5, 0.5, 0), DirPosZ, 0.5, 0.5},
		// Lying along Z: mirror image.
		{"lying-Z +Z", geom.V(0, 0.5, 0.5), DirPosZ, 0, 1.5},
		{"lying-Z -X", geom.V(0, 0.5, 0.5), DirNegX, -0.5, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := PlanRoll(lyingBlock(tc.pos), b, tc.dir, testBounce)
			if math.Abs(p.Pivot.X-tc.pivotX) > eps || math.Abs(p.Pivot.Z-tc.pivotZ) > eps {
				t.Errorf("pivot = (%v, %v), expected (%v, %v)", p.Pivot.X, p.Pivot.Z, tc.pivotX, tc.pivotZ)
			}
			if p.Pivot.Y != 0 {
				t.Errorf("pivot must sit at ground level, got y=%v", p.Pivot.Y)
			}
		})
	}
}

func TestRollOutcomes(t *testing.T) {
	b := bigBoard(t)

	tests := []struct {
		name  string
		pos   geom.Vec3
		dir   Direction
		cells []board.Cell
	}{
		{"standing tips to lying", geom.V(0, 1, 0), DirPosX, []board.Cell{{X: 1, Z: 0}, {X: 2, Z: 0}}},
		{"lying-X stands up", geom.V(0.5, 0.5, 0), DirPosX, []board.Cell{{X: 2, Z: 0}}},
		{"lying-X rolls sideways", geom.V(0.5, 0.5, 0), DirPosZ, []board.Cell{{X: 0, Z: 1}, {X: 1, Z: 1}}},
		{"lying-Z stands up", geom.V(0, 0.5, 0.5), DirPosZ, []board.Cell{{X: 0, Z: 2}}},
		{"lying-Z rolls sideways", geom.V(0, 0.5, 0.5), DirPosX, []board.Cell{{X: 1, Z: 0}, {X: 1, Z: 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := PlanRoll(lyingBlock(tc.pos), b, tc.dir, testBounce)
			if !p.Legal {
				t.Fatal("expected legal roll")
			}
			if len(p.Cells) != len(tc.cells) {
				t.Fatalf("cells = %v, expected %v", p.Cells, tc.cells)
			}
			for i := range tc.cells {
				if p.Cells[i] != tc.cells[i] {
					t.Errorf("cells[%d] = %v, expected %v", i, p.Cells[i], tc.cells[i])
				}
			}
		})
	}
}

func TestValidityAllOrNothing(t *testing.T) {
	// Tiles at (0,0), (1,0), and (0,1) only. A block lying across (0,0)-(1,0)
	// rolled south would land on (0,1) and (1,1); (1,1) is missing, so the
	// roll must be rejected even though one future cell is supported.
	b := board.New([]board.Cell{{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 0, Z: 1}}, board.Cell{X: 0, Z: 1})
	blk := lyingBlock(geom.V(0.5, 0.5, 0))

	p := PlanRoll(blk, b, DirPosZ, testBounce)

	if p.Legal {
		t.Fatal("roll with one unsupported cell must be illegal")
	}
	if !p.Target.ApproxEq(blk.Body(), 0) {
		t.Error("illegal plan must target the unchanged transform")
	}
	if math.Abs(math.Abs(p.Angle)-testBounce) > eps {
		t.Errorf("bounce angle = %v, expected magnitude %v", p.Angle, testBounce)
	}
	// +Z rolls are positive, so the bounce keeps that sign.
	if p.Angle < 0 {
		t.Errorf("bounce angle sign should match the attempted direction, got %v", p.Angle)
	}
}

func TestRollOffTheEdge(t *testing.T) {
	b := board.New([]board.Cell{{X: 0, Z: 0}}, board.Cell{X: 0, Z: 0})
	blk := board.NewBlock(board.Cell{X: 0, Z: 0})

	for _, dir := range []Direction{DirPosX, DirNegX, DirPosZ, DirNegZ} {
		p := PlanRoll(blk, b, dir, testBounce)
		if p.Legal {
			t.Errorf("roll %v off a single-tile board should be illegal", dir)
		}
	}
}

func TestWinOnlyWhenStanding(t *testing.T) {
	win := board.Cell{X: 2, Z: 0}
	b := board.New([]board.Cell{{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 2, Z: 0}}, win)

	// Lying with one cell over the winning cell: not a win.
	if IsWin(lyingBlock(geom.V(1.5, 0.5, 0)), b) {
		t.Error("lying block over the winning cell must not win")
	}

	// Standing elsewhere: not a win.
	if IsWin(board.NewBlock(board.Cell{X: 0, Z: 0}), b) {
		t.Error("standing off the winning cell must not win")
	}

	// Standing exactly on the winning cell: win.
	if !IsWin(board.NewBlock(win), b) {
		t.Error("standing on the winning cell must win")
	}
}

func TestStripWalkthrough(t *testing.T) {
	// Four-tile strip, win at the far end. Standing at (0,0), two east rolls
	// tip the block onto (1,0)-(2,0) and then stand it on (3,0) for the win.
	win := board.Cell{X: 3, Z: 0}
	b := board.New([]board.Cell{{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 2, Z: 0}, {X: 3, Z: 0}}, win)
	blk := board.NewBlock(board.Cell{X: 0, Z: 0})

	p1 := PlanRoll(blk, b, DirPosX, testBounce)
	if !p1.Legal {
		t.Fatal("first roll should be legal")
	}
	blk.SetBody(p1.Target)
	if got := blk.Cells(); len(got) != 2 || got[0] != (board.Cell{X: 1, Z: 0}) || got[1] != (board.Cell{X: 2, Z: 0}) {
		t.Fatalf("after first roll cells = %v, expected [(1,0) (2,0)]", got)
	}
	if IsWin(blk, b) {
		t.Fatal("lying block must not win")
	}

	p2 := PlanRoll(blk, b, DirPosX, testBounce)
	if !p2.Legal {
		t.Fatal("second roll should be legal")
	}
	blk.SetBody(p2.Target)
	if got := blk.Cells(); len(got) != 1 || got[0] != win {
		t.Fatalf("after second roll cells = %v, expected [(3,0)]", got)
	}
	if !IsWin(blk, b) {
		t.Error("standing on the winning cell should win")
	}
}

func TestTweenLegalLandsOnTarget(t *testing.T) {
	b := bigBoard(t)
	blk := board.NewBlock(board.Cell{X: 0, Z: 0})
	p := PlanRoll(blk, b, DirPosX, testBounce)

	tw := NewTween(blk.Body(), p, 8)

	var last geom.Body
	steps := 0
	for !tw.Done() {
		last = tw.Step()
		steps++
		if steps > 8 {
			t.Fatal("tween ran past its duration")
		}
	}

	if steps != 8 {
		t.Errorf("tween took %d steps, expected 8", steps)
	}
	if !last.ApproxEq(p.Target, eps) {
		t.Errorf("final frame = %v, expected validated target %v", last.Pos, p.Target.Pos)
	}
	if !tw.Final().ApproxEq(p.Target, 0) {
		t.Error("Final() must be exactly the validated target")
	}
}

func TestTweenBounceReturnsToStart(t *testing.T) {
	b := board.New([]board.Cell{{X: 0, Z: 0}}, board.Cell{X: 0, Z: 0})
	blk := board.NewBlock(board.Cell{X: 0, Z: 0})
	p := PlanRoll(blk, b, DirPosX, testBounce)
	if p.Legal {
		t.Fatal("setup: roll should be illegal")
	}

	tw := NewTween(blk.Body(), p, 6)

	moved := false
	var last geom.Body
	for !tw.Done() {
		last = tw.Step()
		if !last.ApproxEq(blk.Body(), eps) {
			moved = true
		}
	}

	if !moved {
		t.Error("bounce should visibly rotate mid-flight")
	}
	if !tw.Final().ApproxEq(blk.Body(), 0) {
		t.Error("bounce must end exactly where it started")
	}
	if tw.Legal() {
		t.Error("bounce tween must not report a legal commit")
	}
}
