package assignment

import "math"

// Solve finds the permutation π minimizing Σ_i cost[i][π(i)] over the N×N
// matrix cost.
//
// Stage 1 (Validate): cost must be square; ragged rows are rejected.
//
// N=0 returns (nil, nil) per spec.md §4.3. Any NaN entry is treated as
// +Inf so the result stays a valid (total) permutation — a NaN cost never
// prevents Solve from returning a complete assignment, it simply makes
// that edge maximally unattractive.
//
// Stage 2 (Dispatch): N ≤ 3 enumerates all N! permutations exactly; N ≥ 4
// runs the O(N³) Hungarian algorithm (assignHungarian).
//
// Guarantees: the returned pairs cover every row and every column exactly
// once, and Σ cost[row][col] over the returned pairs is the true minimum.
func Solve(cost [][]float64) ([]Pair, error) {
	n := len(cost)
	if n == 0 {
		return nil, nil
	}
	for _, row := range cost {
		if len(row) != len(cost[0]) {
			return nil, ErrRaggedMatrix
		}
	}
	if len(cost[0]) != n {
		return nil, ErrNotSquare
	}

	sanitized := sanitizeNaN(cost)

	if n <= smallInstanceLimit {
		return assignBruteForce(sanitized), nil
	}
	return assignHungarian(sanitized), nil
}

// sanitizeNaN returns a copy of cost with every NaN entry replaced by
// +Inf, so downstream comparisons are total orders.
func sanitizeNaN(cost [][]float64) [][]float64 {
	out := make([][]float64, len(cost))
	for i, row := range cost {
		outRow := make([]float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				v = math.Inf(1)
			}
			outRow[j] = v
		}
		out[i] = outRow
	}
	return out
}

// assignBruteForce enumerates every permutation of {0,…,n-1} and returns
// the one with minimum total cost. Used only for n ≤ smallInstanceLimit,
// where n! is at most 6 — cheaper and simpler than standing up potentials
// and augmenting paths for an instance this small, and trivially exact.
func assignBruteForce(cost [][]float64) []Pair {
	n := len(cost)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := make([]int, n)
	copy(best, perm)
	bestCost := permCost(cost, perm)

	permute(perm, 0, func(p []int) {
		c := permCost(cost, p)
		if c < bestCost {
			bestCost = c
			copy(best, p)
		}
	})

	pairs := make([]Pair, n)
	for row, col := range best {
		pairs[row] = Pair{Row: row, Col: col}
	}
	return pairs
}

// permCost sums cost[i][perm[i]] over all rows, treating +Inf additively
// (Inf + finite == Inf, so an infeasible assignment never wins).
func permCost(cost [][]float64, perm []int) float64 {
	total := 0.0
	for i, j := range perm {
		total += cost[i][j]
	}
	return total
}

// permute calls visit once per permutation of perm[k:], generated in place
// by recursively swapping each remaining element into position k.
func permute(perm []int, k int, visit func([]int)) {
	n := len(perm)
	if k == n {
		visit(perm)
		return
	}
	for i := k; i < n; i++ {
		perm[k], perm[i] = perm[i], perm[k]
		permute(perm, k+1, visit)
		perm[k], perm[i] = perm[i], perm[k]
	}
}

// assignHungarian solves the N×N assignment problem in O(N³) using the
// Kuhn–Munkres algorithm in its shortest-augmenting-path-with-potentials
// formulation. Rows and columns are treated 1-indexed internally (index 0
// is a sentinel "unassigned" marker), following the classical presentation
// of the algorithm.
func assignHungarian(cost [][]float64) []Pair {
	n := len(cost)
	const inf = math.MaxFloat64 / 4 // large but additions stay finite

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = row currently assigned to column j (1-indexed), 0 = none
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				raw := cost[i0-1][j-1]
				if raw > inf {
					raw = inf
				}
				cur := raw - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	pairs := make([]Pair, n)
	for j := 1; j <= n; j++ {
		pairs[p[j]-1] = Pair{Row: p[j] - 1, Col: j - 1}
	}
	return pairs
}
