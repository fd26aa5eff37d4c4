package geom

// Body is a rigid body with a continuous world-space position and orientation.
// It is a value type: copying a Body yields a fully independent probe that
// shares no mutable state with the original.
type Body struct {
	Pos Vec3
	Rot Quat
}

// NewBody creates a body at the given position with identity orientation.
func NewBody(pos Vec3) Body {
	return Body{Pos: pos, Rot: IdentityQuat()}
}

// RotateAround rotates the body by angle radians about the world-space axis
// through pivot. The orientation delta is applied to the body's own frame and,
// consistently, to its position vector relative to the pivot: a pure rotation
// about an external point is both at once, and the two updates must use the
// same delta or repeated rolls drift apart.
func (b *Body) RotateAround(pivot, axis Vec3, angle float64) {
	delta := AxisAngle(axis, angle)
	b.Rot = delta.Mul(b.Rot).Normalize()
	b.Pos = pivot.Add(delta.Rotate(b.Pos.Sub(pivot)))
}

// RotatedAround returns an independent copy of the body rotated by the same
// transform, leaving the receiver untouched. Used to preview the outcome of a
// roll without mutating live state.
func (b Body) RotatedAround(pivot, axis Vec3, angle float64) Body {
	probe := b
	probe.RotateAround(pivot, axis, angle)
	return probe
}

// ApproxEq reports whether two bodies coincide within eps in both position
// and orientation.
func (b Body) ApproxEq(o Body, eps float64) bool {
	return b.Pos.ApproxEq(o.Pos, eps) && b.Rot.ApproxEq(o.Rot, eps)
}
