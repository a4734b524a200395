package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cshm/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSVD3_Identity verifies that SVD3 on the identity matrix returns unit
// singular values and orthonormal U, V equal (up to sign) to identity.
func TestSVD3_Identity(t *testing.T) {
	res, err := geom.SVD3(geom.Identity3())
	require.NoError(t, err)
	assert.InDelta(t, 1, res.Values[0], 1e-9)
	assert.InDelta(t, 1, res.Values[1], 1e-9)
	assert.InDelta(t, 1, res.Values[2], 1e-9)
	assertOrthonormal(t, res.U)
	assertOrthonormal(t, res.V)
}

// TestSVD3_Rotation verifies that SVD3 on a pure rotation matrix recovers
// three unit singular values.
func TestSVD3_Rotation(t *testing.T) {
	r := geom.EulerXYZ(0.4, 0.9, -1.2)
	res, err := geom.SVD3(r)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1, res.Values[i], 1e-7, "singular value %d", i)
	}
}

// TestSVD3_Reconstruction verifies A = U·Σ·Vᵀ for a well-conditioned
// asymmetric matrix.
func TestSVD3_Reconstruction(t *testing.T) {
	a := geom.Mat3{Rows: [3]geom.Vec3{
		{X: 2, Y: 1, Z: 0},
		{X: 0, Y: 3, Z: 1},
		{X: 1, Y: 0, Z: 4},
	}}
	res, err := geom.SVD3(a)
	require.NoError(t, err)

	sigma := geom.Mat3{Rows: [3]geom.Vec3{
		{X: res.Values[0]},
		{Y: res.Values[1]},
		{Z: res.Values[2]},
	}}
	reconstructed := res.U.Mul(sigma).Mul(res.V.Transpose())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, a.At(i, j), reconstructed.At(i, j), 1e-6)
		}
	}
}

// TestSVD3_RankDeficient verifies SVD3 stays orthonormal and total even
// when A has a zero singular value (a degenerate column to fill).
func TestSVD3_RankDeficient(t *testing.T) {
	a := geom.Mat3{Rows: [3]geom.Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 0},
	}}
	res, err := geom.SVD3(a)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.Values[2], 1e-9)
	assertOrthonormal(t, res.U)
	assertOrthonormal(t, res.V)
}

// assertOrthonormal checks that m's columns are unit length and mutually
// orthogonal, i.e. mᵀ·m ≈ I.
func assertOrthonormal(t *testing.T, m geom.Mat3) {
	t.Helper()
	mtm := m.Transpose().Mul(m)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.True(t, math.Abs(mtm.At(i, j)-want) < 1e-6,
				"mᵀm[%d][%d] = %v, want %v", i, j, mtm.At(i, j), want)
		}
	}
}
