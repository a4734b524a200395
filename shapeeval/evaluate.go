package shapeeval

import (
	"github.com/katalvlaran/cshm/assignment"
	"github.com/katalvlaran/cshm/geom"
	"github.com/katalvlaran/cshm/model"
)

// Evaluate computes the Continuous Shape Measure between actual and
// reference under a fixed candidate rotation. actual and reference must be
// the same length N (spec.md §4.4's N-to-N comparison); reference is
// assumed already centroid-at-origin and normalized (package reflib's
// invariant).
//
// Stage 1 builds the N×N squared-distance cost matrix between actual and
// the rotated reference. Stage 2 solves it for the optimal correspondence
// via package assignment. Stage 3 optionally fits a least-squares scale,
// then reduces the assigned squared distances to the measure.
func Evaluate(actual, reference []geom.Vec3, rotation geom.Mat3, variant Variant) (model.ShapeResult, error) {
	n := len(actual)
	if n == 0 || len(reference) == 0 {
		return model.ShapeResult{}, ErrEmptyInput
	}
	if n != len(reference) {
		return model.ShapeResult{}, ErrSizeMismatch
	}

	rotated := make([]geom.Vec3, n)
	for j, q := range reference {
		rotated[j] = rotation.Apply(q)
	}

	cost := make([][]float64, n)
	for i, p := range actual {
		row := make([]float64, n)
		for j, rq := range rotated {
			row[j] = p.DistanceSq(rq)
		}
		cost[i] = row
	}

	pairs, err := assignment.Solve(cost)
	if err != nil {
		return model.ShapeResult{}, err
	}
	perm := assignment.ToPermutation(pairs)

	aligned := make([]geom.Vec3, n)
	for i, j := range perm {
		aligned[i] = rotated[j]
	}

	scale := 1.0
	if variant == VariantOptimalScale {
		scale = optimalScale(actual, aligned)
	}

	var numerator, denominator float64
	for i, p := range actual {
		diff := p.Sub(aligned[i].Scale(scale))
		numerator += diff.Dot(diff)
		denominator += p.Dot(p)
	}

	measure := 0.0
	if denominator > 0 {
		measure = 100 * numerator / denominator
	}

	return model.ShapeResult{
		Measure:    measure,
		Rotation:   rotation,
		Assignment: perm,
		Scale:      scale,
		Aligned:    aligned,
	}, nil
}

// optimalScale returns the s minimizing sum_i |p_i - s*q_i|^2, i.e. the
// least-squares projection of p onto q.
func optimalScale(p, q []geom.Vec3) float64 {
	var num, den float64
	for i := range p {
		num += p[i].Dot(q[i])
		den += q[i].Dot(q[i])
	}
	if den == 0 {
		return 1
	}
	return num / den
}
