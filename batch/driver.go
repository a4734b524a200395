package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/cshm/analyzer"
	"github.com/katalvlaran/cshm/coordination"
	"github.com/katalvlaran/cshm/model"
)

// driverErrorIndex is the sentinel key under which a driver-level failure
// (see the panic-recovery boundary in Run) is recorded in
// BatchResult.Errors — no input item ever has a negative index.
const driverErrorIndex = -1

// Driver runs a batch of analyses against one shared analyzer.Analyzer.
// A Driver is single-use: create a new one per Run call that should be
// independently restartable.
type Driver struct {
	an *analyzer.Analyzer

	mu    sync.Mutex
	state model.BatchState
}

// New returns an Idle Driver backed by an.
func New(an *analyzer.Analyzer) *Driver {
	return &Driver{an: an, state: model.BatchIdle}
}

// State returns the driver's current state machine position.
func (d *Driver) State() model.BatchState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Driver) setState(s model.BatchState) {
	d.mu.Lock()
	d.state = s
	d.mu.Unlock()
}

// Run analyzes every item in order, applying opts to each analysis.
// onProgress, if non-nil, is called when each structure starts and again
// when its analysis completes (no completion call is made for a structure
// whose coordination selection fails).
//
// Structures are processed strictly in input order; per-structure results
// are stored by input index so the returned BatchResult's ordering is
// stable regardless of how long any individual analysis takes. A
// per-structure failure (a bad center index, an empty coordination
// sphere, an analyzer Err) is recorded in BatchResult.Errors and does not
// stop the run; only ctx cancellation or a driver-level failure does.
//
// A driver-level failure is anything package coordination or analyzer
// cannot turn into an ordinary error value — a panic escaping either
// call. Run recovers it, transitions to BatchError, records it under
// driverErrorIndex, and returns early: unlike a per-structure error, it
// means the driver itself can no longer be trusted to keep iterating.
func (d *Driver) Run(ctx context.Context, items []Item, opts model.Options, onProgress func(model.BatchProgress)) (result model.BatchResult, err error) {
	if d.State() == model.BatchRunning {
		return model.BatchResult{}, ErrAlreadyRunning
	}
	d.setState(model.BatchRunning)

	result = model.BatchResult{
		Results: make(map[int]*model.AnalysisResult),
		Errors:  make(map[int]string),
	}

	defer func() {
		if r := recover(); r != nil {
			d.setState(model.BatchError)
			result.State = model.BatchError
			result.Errors[driverErrorIndex] = fmt.Sprintf("driver: unrecoverable failure: %v", r)
		}
	}()

	total := len(items)
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			d.setState(model.BatchCancelled)
			result.State = model.BatchCancelled
			return result, nil
		}

		progress := model.BatchProgress{Current: i + 1, Total: total, StructureID: item.Structure.ID, Stage: model.StageKabsch}
		result.Progress = append(result.Progress, progress)
		if onProgress != nil {
			onProgress(progress)
		}

		atoms, err := coordination.Select(item.Structure, item.CenterIndex, item.Radius)
		if err != nil {
			result.Errors[i] = err.Error()
			continue
		}

		res := d.an.Analyze(ctx, item.Structure.ID, item.CenterIndex, atoms, opts)
		result.Results[i] = &res
		if res.Err != "" {
			result.Errors[i] = res.Err
		}

		completed := model.BatchProgress{Current: i + 1, Total: total, StructureID: item.Structure.ID, Stage: model.StageComplete}
		result.Progress = append(result.Progress, completed)
		if onProgress != nil {
			onProgress(completed)
		}
	}

	d.setState(model.BatchComplete)
	result.State = model.BatchComplete
	return result, nil
}
