package geom

import "math"

// Quat is a unit quaternion representing a 3D orientation.
type Quat struct {
	W, X, Y, Z float64
}

// IdentityQuat returns the no-rotation quaternion.
func IdentityQuat() Quat {
	return Quat{W: 1}
}

// AxisAngle builds a quaternion for a rotation of angle radians about the
// given axis. The axis is normalized first.
func AxisAngle(axis Vec3, angle float64) Quat {
	a := axis.Normalize()
	half := angle / 2
	s := math.Sin(half)
	return Quat{
		W: math.Cos(half),
		X: a.X * s,
		Y: a.Y * s,
		Z: a.Z * s,
	}
}

// Mul returns the composition q*r: the rotation r followed by q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Rotate applies the rotation q to the vector v.
func (q Quat) Rotate(v Vec3) Vec3 {
	// v' = v + 2w*(u x v) + 2*u x (u x v), with u the vector part of q.
	u := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// Normalize rescales q to unit length, guarding against drift from repeated
// composition. The zero quaternion normalizes to identity.
func (q Quat) Normalize() Quat {
	n := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if n == 0 {
		return IdentityQuat()
	}
	return Quat{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

// ApproxEq reports whether q and r describe the same orientation within eps.
// q and -q represent the same rotation, so both signs are accepted.
func (q Quat) ApproxEq(r Quat, eps float64) bool {
	same := math.Abs(q.W-r.W) <= eps && math.Abs(q.X-r.X) <= eps &&
		math.Abs(q.Y-r.Y) <= eps && math.Abs(q.Z-r.Z) <= eps
	flipped := math.Abs(q.W+r.W) <= eps && math.Abs(q.X+r.X) <= eps &&
		math.Abs(q.Y+r.Y) <= eps && math.Abs(q.Z+r.Z) <= eps
	return same || flipped
}
