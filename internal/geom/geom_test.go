package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRoundHalf(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0.0, 0.0},
		{0.24, 0.0},
		{0.26, 0.5},
		{0.5, 0.5},
		{0.74, 0.5},
		{0.76, 1.0},
		{1.49999999, 1.5},
		{-0.26, -0.5},
		{-0.5, -0.5},
		{-0.74, -0.5},
		{-1.24, -1.0},
		{-2.0000000001, -2.0},
	}

	for _, tc := range tests {
		if got := RoundHalf(tc.in); math.Abs(got-tc.expected) > eps {
			t.Errorf("RoundHalf(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestIsWhole(t *testing.T) {
	tests := []struct {
		in       float64
		expected bool
	}{
		{0.0, true},
		{1.0, true},
		{-3.0, true},
		{0.5, false},
		{-0.5, false},
		{-1.5, false},
		{2.5, false},
	}

	for _, tc := range tests {
		if got := IsWhole(tc.in); got != tc.expected {
			t.Errorf("IsWhole(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestAxisAngleRotate(t *testing.T) {
	tests := []struct {
		name     string
		axis     Vec3
		angle    float64
		in       Vec3
		expected Vec3
	}{
		{"quarter turn about Z", AxisZ, math.Pi / 2, V(1, 0, 0), V(0, 1, 0)},
		{"negative quarter turn about Z", AxisZ, -math.Pi / 2, V(0, 1, 0), V(1, 0, 0)},
		{"quarter turn about X", AxisX, math.Pi / 2, V(0, 1, 0), V(0, 0, 1)},
		{"half turn about Y", AxisY, math.Pi, V(1, 0, 1), V(-1, 0, -1)},
		{"identity", AxisY, 0, V(3, -2, 7), V(3, -2, 7)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AxisAngle(tc.axis, tc.angle).Rotate(tc.in)
			if !got.ApproxEq(tc.expected, eps) {
				t.Errorf("Rotate(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestRotateAroundPivot(t *testing.T) {
	// A body standing at the origin with its center one unit up, tipped -90°
	// about the Z axis through the ground edge at x=0.5, comes to rest with
	// its center at (1.5, 0.5, 0).
	b := NewBody(V(0, 1, 0))
	b.RotateAround(V(0.5, 0, 0), AxisZ, -math.Pi/2)

	if !b.Pos.ApproxEq(V(1.5, 0.5, 0), eps) {
		t.Errorf("position after tip = %v, expected (1.5, 0.5, 0)", b.Pos)
	}
}

func TestRotateAroundFourTimesIsIdentity(t *testing.T) {
	pivots := []struct {
		name  string
		pivot Vec3
		axis  Vec3
		angle float64
	}{
		{"about Z negative", V(0.5, 0, 0), AxisZ, -math.Pi / 2},
		{"about Z positive", V(-0.5, 0, 0), AxisZ, math.Pi / 2},
		{"about X positive", V(0, 0, 0.5), AxisX, math.Pi / 2},
		{"about X negative", V(0, 0, -1), AxisX, -math.Pi / 2},
	}

	for _, tc := range pivots {
		t.Run(tc.name, func(t *testing.T) {
			orig := NewBody(V(0, 1, 0))
			b := orig
			for i := 0; i < 4; i++ {
				b.RotateAround(tc.pivot, tc.axis, tc.angle)
			}
			if !b.ApproxEq(orig, 1e-6) {
				t.Errorf("four quarter turns should restore the body, got pos=%v rot=%v", b.Pos, b.Rot)
			}
		})
	}
}

func TestRotatedAroundDoesNotMutate(t *testing.T) {
	orig := NewBody(V(2, 1, -3))
	before := orig

	probe := orig.RotatedAround(V(2.5, 0, -3), AxisZ, -math.Pi/2)

	if !orig.ApproxEq(before, 0) {
		t.Error("RotatedAround mutated the receiver")
	}
	if probe.ApproxEq(orig, eps) {
		t.Error("probe should have moved")
	}

	// Mutating the probe must not leak back.
	probe.RotateAround(V(0, 0, 0), AxisX, math.Pi/2)
	if !orig.ApproxEq(before, 0) {
		t.Error("mutating the probe affected the original")
	}
}

func TestQuatNormalizeDrift(t *testing.T) {
	// Many composed quarter turns should stay unit length.
	b := NewBody(V(0, 1, 0))
	for i := 0; i < 1000; i++ {
		b.RotateAround(V(0.5, 0, 0), AxisZ, -math.Pi/2)
		b.RotateAround(V(0.5, 0, 0), AxisZ, math.Pi/2)
	}
	n := math.Sqrt(b.Rot.W*b.Rot.W + b.Rot.X*b.Rot.X + b.Rot.Y*b.Rot.Y + b.Rot.Z*b.Rot.Z)
	if math.Abs(n-1) > 1e-9 {
		t.Errorf("quaternion length drifted to %v", n)
	}
	if !b.Pos.ApproxEq(V(0, 1, 0), 1e-6) {
		t.Errorf("position drifted to %v", b.Pos)
	}
}

func TestVecOps(t *testing.T) {
	v := V(1, 2, 3)
	w := V(-1, 0.5, 2)

	if got := v.Add(w); !got.ApproxEq(V(0, 2.5, 5), eps) {
		t.Errorf("Add = %v", got)
	}
	if got := v.Sub(w); !got.ApproxEq(V(2, 1.5, 1), eps) {
		t.Errorf("Sub = %v", got)
	}
	if got := v.Dot(w); math.Abs(got-6) > eps {
		t.Errorf("Dot = %v, expected 6", got)
	}
	if got := AxisX.Cross(AxisY); !got.ApproxEq(AxisZ, eps) {
		t.Errorf("X cross Y = %v, expected Z", got)
	}
	if got := V(3, 0, 4).Len(); math.Abs(got-5) > eps {
		t.Errorf("Len = %v, expected 5", got)
	}
}
