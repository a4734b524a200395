// Package analyzer drives one (structure, center) analysis: given the
// coordinating atoms found by package coordination and a coordination
// number N, it looks up every reference geometry for N in a reflib
// library, runs package optimizer against each (optionally followed by
// package flexible's anisotropic search), sorts the results ascending by
// shape measure, computes package quality against the best match, and
// commits the outcome to a fingerprint-keyed Cache.
//
// A cache hit short-circuits recomputation entirely. Concurrent callers
// requesting the same fingerprint coalesce onto a single in-flight
// computation via singleflight rather than duplicating work.
package analyzer
