// Package optimizer drives a multi-stage global search over SO(3) for the
// rotation that minimizes package shapeeval's Continuous Shape Measure
// between an actual point cloud and a reference polyhedron.
//
// The search runs five fixed stages in order — Kabsch seed, key
// orientations, grid search, simulated annealing, local refinement —
// bailing out early once a stage-specific threshold is crossed. Numeric
// constants for every stage live in a Profile (DefaultProfile or
// IntensiveProfile); stage structure itself never changes between
// profiles.
//
// All randomness is drawn from a single seeded source owned by one Run
// call, so identical (seed, input, profile) triples reproduce bit-identical
// results. Run never panics: any internal numeric failure is absorbed and
// reported as an infinite measure with the identity rotation, logged at
// Warn level rather than escalated.
package optimizer
