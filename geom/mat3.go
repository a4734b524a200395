package geom

import "math"

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	return Mat3{Rows: [3]Vec3{
		{X: m.Rows[0].X, Y: m.Rows[1].X, Z: m.Rows[2].X},
		{X: m.Rows[0].Y, Y: m.Rows[1].Y, Z: m.Rows[2].Y},
		{X: m.Rows[0].Z, Y: m.Rows[1].Z, Z: m.Rows[2].Z},
	}}
}

// Mul returns m·n (matrix product).
func (m Mat3) Mul(n Mat3) Mat3 {
	nt := n.Transpose() // rows of nt are columns of n
	return Mat3{Rows: [3]Vec3{
		{X: m.Rows[0].Dot(nt.Rows[0]), Y: m.Rows[0].Dot(nt.Rows[1]), Z: m.Rows[0].Dot(nt.Rows[2])},
		{X: m.Rows[1].Dot(nt.Rows[0]), Y: m.Rows[1].Dot(nt.Rows[1]), Z: m.Rows[1].Dot(nt.Rows[2])},
		{X: m.Rows[2].Dot(nt.Rows[0]), Y: m.Rows[2].Dot(nt.Rows[1]), Z: m.Rows[2].Dot(nt.Rows[2])},
	}}
}

// Apply returns m·v (matrix-vector product).
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{X: m.Rows[0].Dot(v), Y: m.Rows[1].Dot(v), Z: m.Rows[2].Dot(v)}
}

// Det returns the determinant of m via cofactor expansion along row 0.
func (m Mat3) Det() float64 {
	a, b, c := m.Rows[0].X, m.Rows[0].Y, m.Rows[0].Z
	d, e, f := m.Rows[1].X, m.Rows[1].Y, m.Rows[1].Z
	g, h, i := m.Rows[2].X, m.Rows[2].Y, m.Rows[2].Z
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// AxisAngle builds the proper rotation matrix for a right-handed rotation
// of angle radians about axis (which need not be pre-normalized).
func AxisAngle(axis Vec3, angle float64) Mat3 {
	u := axis.Normalized()
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c
	return Mat3{Rows: [3]Vec3{
		{X: t*u.X*u.X + c, Y: t*u.X*u.Y - s*u.Z, Z: t*u.X*u.Z + s*u.Y},
		{X: t*u.X*u.Y + s*u.Z, Y: t*u.Y*u.Y + c, Z: t*u.Y*u.Z - s*u.X},
		{X: t*u.X*u.Z - s*u.Y, Y: t*u.Y*u.Z + s*u.X, Z: t*u.Z*u.Z + c},
	}}
}

// EulerXYZ builds R = Rz(gamma)·Ry(beta)·Rx(alpha), the rotation obtained
// by composing elemental rotations about X, then Y, then Z.
func EulerXYZ(alpha, beta, gamma float64) Mat3 {
	rx := AxisAngle(Vec3{X: 1}, alpha)
	ry := AxisAngle(Vec3{Y: 1}, beta)
	rz := AxisAngle(Vec3{Z: 1}, gamma)
	return rz.Mul(ry).Mul(rx)
}

// orthogonalizeColumn returns a unit vector orthogonal to the given already
// orthonormal columns, used to complete a degenerate U in SVD. It runs
// Gram-Schmidt of each standard basis vector in turn against the provided
// columns and returns the first non-degenerate result; if all three
// collapse, it falls back to the cross product of the first two columns
// (or the X axis when fewer than two are given).
func orthogonalizeColumn(existing ...Vec3) Vec3 {
	candidates := []Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	for _, cand := range candidates {
		v := cand
		for _, e := range existing {
			v = v.Sub(e.Scale(v.Dot(e)))
		}
		if v.Norm() > 1e-8 {
			return v.Normalized()
		}
	}
	// Degenerate fallback: cross product of the first two existing columns
	// (only reached when all standard-basis attempts above failed, which
	// cannot happen for real inputs but is kept total).
	if len(existing) >= 2 {
		return existing[0].Cross(existing[1]).Normalized()
	}
	return Vec3{X: 1}
}
