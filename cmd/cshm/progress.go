package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/cshm/model"
)

// progressRenderer prints a single overwritten ASCII line per progress
// event: reference code, stage name, percent, and running best measure.
// Not a TUI — no bubbletea dependency, per SPEC_FULL.md §5.
func progressRenderer(w io.Writer, quiet bool) func(string, model.ProgressEvent) {
	if quiet {
		return func(string, model.ProgressEvent) {}
	}
	return func(refCode string, ev model.ProgressEvent) {
		fmt.Fprintf(w, "\r%-10s [%-15s] %3d%%  best=%.4f", refCode, ev.Stage, ev.Percent, ev.BestSoFar)
		if ev.Stage == model.StageComplete {
			fmt.Fprintln(w)
		}
	}
}

// batchProgressRenderer prints one line per structure transition.
func batchProgressRenderer(w io.Writer, quiet bool) func(model.BatchProgress) {
	if quiet {
		return func(model.BatchProgress) {}
	}
	return func(p model.BatchProgress) {
		fmt.Fprintf(w, "[%d/%d] %s: %s\n", p.Current, p.Total, p.StructureID, p.Stage)
	}
}
