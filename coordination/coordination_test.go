package coordination_test

import (
	"testing"

	"github.com/katalvlaran/cshm/coordination"
	"github.com/katalvlaran/cshm/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func octahedronStructure() model.Structure {
	return model.Structure{
		ID: "oc",
		Atoms: []model.Atom{
			{Element: "Fe", X: 0, Y: 0, Z: 0},
			{Element: "O", X: 2, Y: 0, Z: 0},
			{Element: "O", X: -2, Y: 0, Z: 0},
			{Element: "O", X: 0, Y: 2, Z: 0},
			{Element: "O", X: 0, Y: -2, Z: 0},
			{Element: "O", X: 0, Y: 0, Z: 2},
			{Element: "O", X: 0, Y: 0, Z: -2},
			{Element: "N", X: 10, Y: 0, Z: 0},
		},
	}
}

func TestSelect_SortedAscendingWithinRadius(t *testing.T) {
	s := octahedronStructure()
	atoms, err := coordination.Select(s, 0, 3.0)
	require.NoError(t, err)
	require.Len(t, atoms, 6)
	for i := 1; i < len(atoms); i++ {
		assert.LessOrEqual(t, atoms[i-1].Distance, atoms[i].Distance)
	}
	for _, a := range atoms {
		assert.InDelta(t, a.Distance, a.Vec.Norm(), 1e-9)
		assert.Greater(t, a.Distance, 0.1)
	}
}

func TestSelect_OverlapGuardExcludesCoincident(t *testing.T) {
	s := octahedronStructure()
	s.Atoms = append(s.Atoms, model.Atom{Element: "X", X: 0.01, Y: 0, Z: 0})
	atoms, err := coordination.Select(s, 0, 3.0)
	require.NoError(t, err)
	for _, a := range atoms {
		assert.NotEqual(t, "X", a.Element)
	}
}

func TestSelect_CenterOutOfRange(t *testing.T) {
	s := octahedronStructure()
	_, err := coordination.Select(s, 99, 3.0)
	assert.ErrorIs(t, err, coordination.ErrCenterOutOfRange)
}

func TestSelect_RadiusNonPositive(t *testing.T) {
	s := octahedronStructure()
	_, err := coordination.Select(s, 0, 0)
	assert.ErrorIs(t, err, coordination.ErrRadiusNonPositive)
}

func TestSuggestRadius_MidpointBetweenKthAndNext(t *testing.T) {
	s := octahedronStructure()
	res, err := coordination.SuggestRadius(s, 0, 6)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, res.Radius, 1e-6) // midpoint between 2 (6th) and 10 (7th)
	assert.InDelta(t, 8.0, res.Gap, 1e-6)
}

func TestSuggestRadius_FallbackPadWhenNoNextNeighbor(t *testing.T) {
	s := octahedronStructure()
	res, err := coordination.SuggestRadius(s, 0, 7)
	require.NoError(t, err)
	assert.InDelta(t, 10.4, res.Radius, 1e-6)
	assert.Equal(t, 0.0, res.Gap)
}

func TestSuggestRadius_InsufficientNeighbors(t *testing.T) {
	s := octahedronStructure()
	_, err := coordination.SuggestRadius(s, 0, 20)
	assert.ErrorIs(t, err, coordination.ErrInsufficientNeighbors)
}

func TestSuggestRadius_TargetCNOutOfRange(t *testing.T) {
	s := octahedronStructure()
	_, err := coordination.SuggestRadius(s, 0, 1)
	assert.ErrorIs(t, err, coordination.ErrTargetCNOutOfRange)
}

func TestSuggestCenters_FindsMetalIndicators(t *testing.T) {
	s := octahedronStructure()
	centers := coordination.SuggestCenters(s)
	assert.Equal(t, []int{0}, centers)
}
