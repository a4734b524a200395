// Package assignment solves the linear sum assignment problem: given an
// N×N non-negative cost matrix C, find the permutation π on {0,…,N-1}
// minimizing Σ_i C[i][π(i)].
//
// Two algorithms back the single Solve entry point, chosen by size exactly
// as spec.md §4.3 prescribes: for N ≤ 3 the handful of permutations (at
// most 3! = 6) is enumerated exhaustively, which is both provably optimal
// and faster than standing up the general algorithm's bookkeeping; for
// N ≥ 4 a full O(N³) Hungarian algorithm (Kuhn–Munkres with vertex
// potentials, in the shortest-augmenting-path formulation) is used.
//
// The teacher package's tsp sub-package chose a similar two-tier shape —
// a cheap deterministic heuristic plus an exact fallback — for Christofides'
// odd-degree matching step (GreedyMatch vs BlossomMatch in tsp/types.go);
// this package follows the same "cheap path for small/simple instances,
// exact algorithm otherwise" idiom, except both tiers here are exact.
package assignment
