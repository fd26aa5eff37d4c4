package geom

import "math"

// Positions drift slightly after many incremental rotations, so all cell
// classification rounds to the half-unit lattice first and never compares raw
// floats for equality.

// RoundHalf rounds x to the nearest half unit: ..., -0.5, 0, 0.5, 1, ...
// math.Round rounds half away from zero, so the result is symmetric for
// negative coordinates rather than floor-biased.
func RoundHalf(x float64) float64 {
	return math.Round(x*2) / 2
}

// IsWhole reports whether x, already snapped to the half-unit lattice,
// lies on a whole integer.
func IsWhole(x float64) bool {
	return math.Mod(x, 1) == 0
}
