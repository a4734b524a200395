package quality_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cshm/geom"
	"github.com/katalvlaran/cshm/model"
	"github.com/katalvlaran/cshm/quality"
	"github.com/stretchr/testify/assert"
)

func octahedronAtoms() []model.CoordAtom {
	pts := []geom.Vec3{
		{X: 2}, {X: -2},
		{Y: 2}, {Y: -2},
		{Z: 2}, {Z: -2},
	}
	out := make([]model.CoordAtom, len(pts))
	for i, p := range pts {
		out[i] = model.CoordAtom{AtomIndex: i, Element: "O", Vec: p, Distance: p.Norm()}
	}
	return out
}

func octahedronUnit() []geom.Vec3 {
	return []geom.Vec3{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}
}

func TestBondStats_UniformDistancesZeroStdDev(t *testing.T) {
	atoms := octahedronAtoms()
	stats := quality.BondStats(atoms)
	assert.InDelta(t, 2.0, stats.DistanceMean, 1e-9)
	assert.InDelta(t, 0, stats.DistanceStdDev, 1e-9)
	assert.Equal(t, 15, stats.AngleCount) // C(6,2)
	assert.InDelta(t, 90, stats.AngleMin, 1e-6)
}

func TestCompute_PerfectMatchIsHighScore(t *testing.T) {
	atoms := octahedronAtoms()
	m := quality.Compute(atoms, octahedronUnit(), 0.0)
	assert.InDelta(t, 0, m.AngularDistortionIndex, 1e-6)
	assert.InDelta(t, 100, m.BondLengthUniformity, 1e-6)
	assert.InDelta(t, 0, m.ApproxRMSD, 1e-9)
	assert.InDelta(t, 100, m.OverallScore, 1e-6)
}

func TestCompute_UnequalAngleCountsYieldsNullResult(t *testing.T) {
	atoms := octahedronAtoms()
	shortRef := octahedronUnit()[:4]
	m := quality.Compute(atoms, shortRef, 0.0)
	assert.Equal(t, model.QualityMetrics{}, m)
}

func TestCompute_NonUniformDistancesLowerUniformity(t *testing.T) {
	atoms := octahedronAtoms()
	atoms[0].Distance = 4.0
	m := quality.Compute(atoms, octahedronUnit(), 0.0)
	assert.Less(t, m.BondLengthUniformity, 100.0)
}

func TestCompute_OverallScoreClampedToRange(t *testing.T) {
	atoms := octahedronAtoms()
	m := quality.Compute(atoms, octahedronUnit(), 90.0)
	assert.GreaterOrEqual(t, m.OverallScore, 0.0)
	assert.LessOrEqual(t, m.OverallScore, 100.0)
}

func TestBondStats_EmptyInput(t *testing.T) {
	stats := quality.BondStats(nil)
	assert.Equal(t, model.BondStats{}, stats)
}

func TestCompute_NaNShapeMeasurePropagatesToNullResult(t *testing.T) {
	atoms := octahedronAtoms()
	m := quality.Compute(atoms, octahedronUnit(), math.NaN())
	assert.Equal(t, model.QualityMetrics{}, m)
}
