package shapeeval_test

import (
	"testing"

	"github.com/katalvlaran/cshm/geom"
	"github.com/katalvlaran/cshm/shapeeval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func octahedron() []geom.Vec3 {
	return []geom.Vec3{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}
}

func TestEvaluate_IdenticalShapeIsZero(t *testing.T) {
	oc := octahedron()
	res, err := shapeeval.Evaluate(oc, oc, geom.Identity3(), shapeeval.VariantOptimalScale)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.Measure, 1e-8)
}

func TestEvaluate_PermutedShapeIsStillZero(t *testing.T) {
	oc := octahedron()
	permuted := []geom.Vec3{oc[3], oc[0], oc[5], oc[1], oc[2], oc[4]}
	res, err := shapeeval.Evaluate(oc, permuted, geom.Identity3(), shapeeval.VariantOptimalScale)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.Measure, 1e-8)
}

func TestEvaluate_RotatedShapeIsStillZero(t *testing.T) {
	oc := octahedron()
	r := geom.AxisAngle(geom.Vec3{X: 0.3, Y: 0.7, Z: 0.2}.Normalized(), 1.1)
	rotated := make([]geom.Vec3, len(oc))
	for i, v := range oc {
		rotated[i] = r.Apply(v)
	}
	res, err := shapeeval.Evaluate(rotated, oc, r, shapeeval.VariantOptimalScale)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.Measure, 1e-6)
}

func TestEvaluate_SizeMismatch(t *testing.T) {
	_, err := shapeeval.Evaluate(octahedron(), octahedron()[:4], geom.Identity3(), shapeeval.VariantRigid)
	assert.ErrorIs(t, err, shapeeval.ErrSizeMismatch)
}

func TestEvaluate_EmptyInput(t *testing.T) {
	_, err := shapeeval.Evaluate(nil, nil, geom.Identity3(), shapeeval.VariantRigid)
	assert.ErrorIs(t, err, shapeeval.ErrEmptyInput)
}

func TestEvaluate_DifferentShapeIsPositive(t *testing.T) {
	oc := octahedron()
	cube := []geom.Vec3{
		{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1},
		{X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: -1},
	}
	res, err := shapeeval.Evaluate(oc, cube, geom.Identity3(), shapeeval.VariantOptimalScale)
	require.NoError(t, err)
	assert.Greater(t, res.Measure, 1.0)
}

func TestEvaluate_RigidVsOptimalScale(t *testing.T) {
	oc := octahedron()
	scaled := make([]geom.Vec3, len(oc))
	for i, v := range oc {
		scaled[i] = v.Scale(2.5)
	}
	rigid, err := shapeeval.Evaluate(scaled, oc, geom.Identity3(), shapeeval.VariantRigid)
	require.NoError(t, err)
	optimal, err := shapeeval.Evaluate(scaled, oc, geom.Identity3(), shapeeval.VariantOptimalScale)
	require.NoError(t, err)

	assert.InDelta(t, 0, optimal.Measure, 1e-8)
	assert.Greater(t, rigid.Measure, optimal.Measure)
}
