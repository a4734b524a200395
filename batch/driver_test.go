package batch_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/cshm/analyzer"
	"github.com/katalvlaran/cshm/batch"
	"github.com/katalvlaran/cshm/model"
	"github.com/katalvlaran/cshm/reflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func octahedronStructure(id string) model.Structure {
	return model.Structure{
		ID: id,
		Atoms: []model.Atom{
			{Element: "Fe", X: 0, Y: 0, Z: 0},
			{Element: "O", X: 2, Y: 0, Z: 0},
			{Element: "O", X: -2, Y: 0, Z: 0},
			{Element: "O", X: 0, Y: 2, Z: 0},
			{Element: "O", X: 0, Y: -2, Z: 0},
			{Element: "O", X: 0, Y: 0, Z: 2},
			{Element: "O", X: 0, Y: 0, Z: -2},
		},
	}
}

func TestRun_PreservesInputOrderAndCompletes(t *testing.T) {
	an := analyzer.New(reflib.Default())
	d := batch.New(an)
	items := []batch.Item{
		{Structure: octahedronStructure("a"), CenterIndex: 0, Radius: 3.0},
		{Structure: octahedronStructure("b"), CenterIndex: 0, Radius: 3.0},
	}

	res, err := d.Run(context.Background(), items, model.Options{Mode: model.ModeDefault, Seed: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, model.BatchComplete, res.State)
	require.Len(t, res.Results, 2)
	assert.Equal(t, "a", res.Results[0].StructureID)
	assert.Equal(t, "b", res.Results[1].StructureID)
	assert.Empty(t, res.Errors)
}

func TestRun_PerStructureErrorDoesNotAbort(t *testing.T) {
	an := analyzer.New(reflib.Default())
	d := batch.New(an)
	items := []batch.Item{
		{Structure: octahedronStructure("bad"), CenterIndex: 99, Radius: 3.0},
		{Structure: octahedronStructure("good"), CenterIndex: 0, Radius: 3.0},
	}

	res, err := d.Run(context.Background(), items, model.Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, model.BatchComplete, res.State)
	assert.Contains(t, res.Errors, 0)
	assert.NotContains(t, res.Errors, 1)
}

func TestRun_CancelledContextYieldsCancelledState(t *testing.T) {
	an := analyzer.New(reflib.Default())
	d := batch.New(an)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []batch.Item{{Structure: octahedronStructure("a"), CenterIndex: 0, Radius: 3.0}}
	res, err := d.Run(ctx, items, model.Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, model.BatchCancelled, res.State)
}

func TestRun_DriverPanicYieldsErrorState(t *testing.T) {
	// A Driver built around a nil *analyzer.Analyzer is a misconfigured
	// driver, not a per-structure input problem: coordination.Select
	// succeeds normally, and the panic only surfaces once Run reaches
	// d.an.Analyze. This exercises the panic-recovery boundary that
	// distinguishes an unrecoverable driver-level failure from an
	// ordinary per-structure error.
	d := batch.New(nil)
	items := []batch.Item{
		{Structure: octahedronStructure("a"), CenterIndex: 0, Radius: 3.0},
	}

	res, err := d.Run(context.Background(), items, model.Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, model.BatchError, res.State)
	assert.Equal(t, model.BatchError, d.State())
	assert.Contains(t, res.Errors, -1)
}

func TestRun_ProgressCallbackInvoked(t *testing.T) {
	an := analyzer.New(reflib.Default())
	d := batch.New(an)
	items := []batch.Item{{Structure: octahedronStructure("a"), CenterIndex: 0, Radius: 3.0}}

	var calls int
	_, err := d.Run(context.Background(), items, model.Options{}, func(p model.BatchProgress) {
		calls++
		assert.Equal(t, "a", p.StructureID)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls) // start + complete event per structure
}
