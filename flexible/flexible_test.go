package flexible_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/cshm/flexible"
	"github.com/katalvlaran/cshm/geom"
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

func TestSearch_IdenticalShapeFlexMatchesRigid(t *testing.T) {
	oc := octahedron()
	res, err := flexible.Search(context.Background(), oc, oc, geom.Identity3(), 0.0, flexible.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0, res.RigidMeasure, 1e-9)
	assert.LessOrEqual(t, res.FlexMeasure, res.RigidMeasure+1e-6)
	assert.GreaterOrEqual(t, res.Delta, 0.0)
}

func TestSearch_StretchedShapeImprovesWithFlex(t *testing.T) {
	oc := octahedron()
	stretched := make([]geom.Vec3, len(oc))
	for i, v := range oc {
		stretched[i] = geom.Vec3{X: v.X * 1.8, Y: v.Y, Z: v.Z}
	}
	opts := flexible.DefaultOptions()
	opts.Seed = 5
	res, err := flexible.Search(context.Background(), stretched, oc, geom.Identity3(), 5.0, opts)
	require.NoError(t, err)
	assert.Less(t, res.FlexMeasure, res.RigidMeasure)
	assert.Greater(t, res.DistortionIndex, 0.0)
}

func TestSearch_InvalidRigidResultPassesThrough(t *testing.T) {
	oc := octahedron()
	res, err := flexible.Search(context.Background(), oc, oc, geom.Identity3(), math.Inf(1), flexible.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.RigidMeasure, 1))
	assert.True(t, math.IsInf(res.FlexMeasure, 1))
}

func TestSearch_SizeMismatch(t *testing.T) {
	_, err := flexible.Search(context.Background(), octahedron(), octahedron()[:4], geom.Identity3(), 0, flexible.DefaultOptions())
	assert.ErrorIs(t, err, flexible.ErrSizeMismatch)
}

func TestSearch_ScaleWithinBounds(t *testing.T) {
	oc := octahedron()
	opts := flexible.DefaultOptions()
	opts.Seed = 11
	res, err := flexible.Search(context.Background(), oc, oc, geom.Identity3(), 0.0, opts)
	require.NoError(t, err)
	for _, s := range res.ScaleXYZ {
		assert.GreaterOrEqual(t, s, flexible.ScaleMin)
		assert.LessOrEqual(t, s, flexible.ScaleMax)
	}
}
