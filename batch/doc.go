// Package batch iterates many (structure, selection) pairs through a
// shared analyzer.Analyzer, preserving each structure's position by input
// index, reporting per-structure progress, and recording at most one error
// per structure without aborting the run.
//
// A Driver instance moves through a fixed state machine: Idle, then
// Running once Run is called, ending in Complete, Cancelled (ctx was
// cancelled mid-run), or Error (an unrecoverable driver-level failure, as
// opposed to a per-structure error, which is merely recorded and does not
// change the run's overall state).
package batch
