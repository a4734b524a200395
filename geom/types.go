package geom

// Vec3 is a point or displacement in ℝ³.
type Vec3 struct {
	X, Y, Z float64
}

// Mat3 is a 3×3 matrix stored row-major: Rows[i] is row i.
type Mat3 struct {
	Rows [3]Vec3
}

// Identity3 returns the 3×3 identity matrix.
func Identity3() Mat3 {
	return Mat3{Rows: [3]Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}}
}

// At returns element (row, col). No bounds checking: row and col must be
// in [0,2]; callers outside this package should prefer the Vec3-returning
// accessors below.
func (m Mat3) At(row, col int) float64 {
	switch col {
	case 0:
		return m.Rows[row].X
	case 1:
		return m.Rows[row].Y
	default:
		return m.Rows[row].Z
	}
}

// Col returns column i (0,1,2) as a Vec3.
func (m Mat3) Col(i int) Vec3 {
	switch i {
	case 0:
		return Vec3{X: m.Rows[0].X, Y: m.Rows[1].X, Z: m.Rows[2].X}
	case 1:
		return Vec3{X: m.Rows[0].Y, Y: m.Rows[1].Y, Z: m.Rows[2].Y}
	default:
		return Vec3{X: m.Rows[0].Z, Y: m.Rows[1].Z, Z: m.Rows[2].Z}
	}
}

// SetCol returns a copy of m with column i replaced by v.
func (m Mat3) SetCol(i int, v Vec3) Mat3 {
	out := m
	switch i {
	case 0:
		out.Rows[0].X, out.Rows[1].X, out.Rows[2].X = v.X, v.Y, v.Z
	case 1:
		out.Rows[0].Y, out.Rows[1].Y, out.Rows[2].Y = v.X, v.Y, v.Z
	default:
		out.Rows[0].Z, out.Rows[1].Z, out.Rows[2].Z = v.X, v.Y, v.Z
	}
	return out
}

// FromCols builds a Mat3 from three column vectors.
func FromCols(c0, c1, c2 Vec3) Mat3 {
	var m Mat3
	m = m.SetCol(0, c0)
	m = m.SetCol(1, c1)
	m = m.SetCol(2, c2)
	return m
}
