package optimizer_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/cshm/geom"
	"github.com/katalvlaran/cshm/model"
	"github.com/katalvlaran/cshm/optimizer"
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

func tetrahedron() []geom.Vec3 {
	return []geom.Vec3{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
}

func TestRun_IdenticalShapeConverges(t *testing.T) {
	oc := octahedron()
	res, err := optimizer.Run(context.Background(), oc, oc, optimizer.Options{
		Profile: optimizer.DefaultProfile(),
		Seed:    1,
		Variant: shapeeval.VariantOptimalScale,
	})
	require.NoError(t, err)
	assert.Less(t, res.Measure, 1e-4)
}

func TestRun_RecoversArbitraryRotation(t *testing.T) {
	oc := octahedron()
	r0 := geom.AxisAngle(geom.Vec3{X: 0.4, Y: 0.8, Z: 0.1}.Normalized(), 1.3)
	rotated := make([]geom.Vec3, len(oc))
	for i, v := range oc {
		rotated[i] = r0.Apply(v)
	}
	res, err := optimizer.Run(context.Background(), rotated, oc, optimizer.Options{
		Profile: optimizer.DefaultProfile(),
		Seed:    42,
		Variant: shapeeval.VariantOptimalScale,
	})
	require.NoError(t, err)
	assert.Less(t, res.Measure, 1e-3)
}

func TestRun_MismatchedShapeIsNonZero(t *testing.T) {
	oc := octahedron()
	tet4 := tetrahedron()
	// pad tetrahedron to 6 points is invalid; compare against a non-matching
	// same-length cloud instead: a distorted octahedron.
	distorted := make([]geom.Vec3, len(oc))
	copy(distorted, oc)
	distorted[0] = geom.Vec3{X: 0.2, Y: 0.2, Z: 1.4}
	res, err := optimizer.Run(context.Background(), distorted, oc, optimizer.Options{
		Profile: optimizer.DefaultProfile(),
		Seed:    7,
		Variant: shapeeval.VariantOptimalScale,
	})
	require.NoError(t, err)
	assert.Greater(t, res.Measure, 0.0)
	_ = tet4
}

func TestRun_Deterministic_SameSeedSameResult(t *testing.T) {
	oc := octahedron()
	r0 := geom.AxisAngle(geom.Vec3{X: 0.2, Y: 0.5, Z: 0.9}.Normalized(), 2.1)
	rotated := make([]geom.Vec3, len(oc))
	for i, v := range oc {
		rotated[i] = r0.Apply(v)
	}
	opts := optimizer.Options{Profile: optimizer.DefaultProfile(), Seed: 99, Variant: shapeeval.VariantOptimalScale}

	res1, err := optimizer.Run(context.Background(), rotated, oc, opts)
	require.NoError(t, err)
	res2, err := optimizer.Run(context.Background(), rotated, oc, opts)
	require.NoError(t, err)

	assert.Equal(t, res1.Measure, res2.Measure)
	assert.Equal(t, res1.Assignment, res2.Assignment)
}

func TestRun_SizeMismatch(t *testing.T) {
	_, err := optimizer.Run(context.Background(), octahedron(), tetrahedron(), optimizer.Options{
		Profile: optimizer.DefaultProfile(),
	})
	assert.ErrorIs(t, err, optimizer.ErrSizeMismatch)
}

func TestRun_EmptyInput(t *testing.T) {
	_, err := optimizer.Run(context.Background(), nil, nil, optimizer.Options{Profile: optimizer.DefaultProfile()})
	assert.ErrorIs(t, err, optimizer.ErrEmptyInput)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	oc := octahedron()
	res, err := optimizer.Run(ctx, oc, oc, optimizer.Options{Profile: optimizer.DefaultProfile()})
	assert.Error(t, err)
	assert.NotNil(t, res)
}

func TestRun_ProgressEventsNonDecreasingPercent(t *testing.T) {
	oc := octahedron()
	var percents []uint8
	_, err := optimizer.Run(context.Background(), oc, oc, optimizer.Options{
		Profile: optimizer.DefaultProfile(),
		Seed:    3,
		OnProgress: func(ev model.ProgressEvent) {
			percents = append(percents, ev.Percent)
		},
	})
	require.NoError(t, err)
	for i := 1; i < len(percents); i++ {
		assert.GreaterOrEqual(t, percents[i], percents[i-1])
	}
}
