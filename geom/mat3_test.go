package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cshm/geom"
	"github.com/stretchr/testify/assert"
)

// TestAxisAngle_Properness verifies that AxisAngle always returns a proper
// rotation: orthonormal with determinant +1.
func TestAxisAngle_Properness(t *testing.T) {
	r := geom.AxisAngle(geom.Vec3{X: 1, Y: 2, Z: 3}, 0.77)
	assertOrthonormal(t, r)
	assert.InDelta(t, 1, r.Det(), 1e-9)
}

// TestEulerXYZ_IdentityAtZero verifies that zero angles produce the
// identity rotation.
func TestEulerXYZ_IdentityAtZero(t *testing.T) {
	r := geom.EulerXYZ(0, 0, 0)
	id := geom.Identity3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, id.At(i, j), r.At(i, j), 1e-12)
		}
	}
}

// TestMat3_DetIdentity verifies Det(I) == 1.
func TestMat3_DetIdentity(t *testing.T) {
	assert.Equal(t, 1.0, geom.Identity3().Det())
}

// TestMat3_MulTransposeInverse verifies Rᵀ·R == I for a rotation R,
// i.e. the transpose acts as the inverse of an orthonormal matrix.
func TestMat3_MulTransposeInverse(t *testing.T) {
	r := geom.AxisAngle(geom.Vec3{Z: 1}, math.Pi/3)
	prod := r.Transpose().Mul(r)
	id := geom.Identity3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, id.At(i, j), prod.At(i, j), 1e-9)
		}
	}
}
