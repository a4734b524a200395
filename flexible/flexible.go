package flexible

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/cshm/assignment"
	"github.com/katalvlaran/cshm/geom"
	"github.com/katalvlaran/cshm/model"
)

// scaleVec is a candidate anisotropic scale triple, clamped to
// [ScaleMin, ScaleMax] on each axis.
type scaleVec struct{ X, Y, Z float64 }

func (s scaleVec) clamped() scaleVec {
	return scaleVec{clamp(s.X), clamp(s.Y), clamp(s.Z)}
}

func clamp(v float64) float64 {
	if v < ScaleMin {
		return ScaleMin
	}
	if v > ScaleMax {
		return ScaleMax
	}
	return v
}

// Search runs the anisotropic scale search described in the package doc
// comment. rigidRotation and rigidMeasure are the converged rigid
// optimizer result for the same actual/reference pair; rigidMeasure seeds
// the "no worse than rigid" guarantee and is returned verbatim as
// FlexibleResult.RigidMeasure.
//
// If rigidMeasure is infinite (the rigid result was invalid), Search
// returns a FlexibleResult equal to the rigid one without searching,
// per spec.md §4.6.
func Search(ctx context.Context, actual, reference []geom.Vec3, rigidRotation geom.Mat3, rigidMeasure float64, opts Options) (model.FlexibleResult, error) {
	n := len(actual)
	if n != len(reference) {
		return model.FlexibleResult{}, ErrSizeMismatch
	}
	if math.IsInf(rigidMeasure, 1) {
		return model.FlexibleResult{
			RigidMeasure: rigidMeasure,
			FlexMeasure:  rigidMeasure,
			ScaleXYZ:     [3]float64{1, 1, 1},
		}, nil
	}

	rotatedRef := make([]geom.Vec3, n)
	for j, q := range reference {
		rotatedRef[j] = rigidRotation.Apply(q)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	best := scaleVec{1, 1, 1}
	bestMeasure, err := evaluateScale(actual, rotatedRef, best)
	if err != nil {
		bestMeasure = math.Inf(1)
	}
	if rigidMeasure < bestMeasure {
		bestMeasure = rigidMeasure
	}

	restarts := opts.NumRestarts
	if restarts < 1 {
		restarts = 1
	}
	const startTemp = 0.5
	const minTemp = 0.01
	coolRate := math.Pow(minTemp/startTemp, 1.0/float64(maxInt(opts.StepsPerRun, 1)))

	for restart := 0; restart < restarts; restart++ {
		current := best
		if restart > 0 {
			current = scaleVec{
				X: ScaleMin + rng.Float64()*(ScaleMax-ScaleMin),
				Y: ScaleMin + rng.Float64()*(ScaleMax-ScaleMin),
				Z: ScaleMin + rng.Float64()*(ScaleMax-ScaleMin),
			}
		}
		curMeasure, err := evaluateScale(actual, rotatedRef, current)
		if err != nil {
			curMeasure = math.Inf(1)
		}

		temp := startTemp
		for step := 0; step < opts.StepsPerRun; step++ {
			proposal := scaleVec{
				X: current.X + (rng.Float64()*2-1)*temp,
				Y: current.Y + (rng.Float64()*2-1)*temp,
				Z: current.Z + (rng.Float64()*2-1)*temp,
			}.clamped()
			measure, err := evaluateScale(actual, rotatedRef, proposal)
			if err == nil {
				delta := measure - curMeasure
				if delta < 0 || rng.Float64() < math.Exp(-delta/temp) {
					current = proposal
					curMeasure = measure
					if measure < bestMeasure {
						bestMeasure = measure
						best = current
					}
				}
			}
			temp *= coolRate

			if step%100 == 0 {
				select {
				case <-ctx.Done():
					return buildResult(rigidMeasure, bestMeasure, best), ctx.Err()
				default:
				}
			}
		}
	}

	return buildResult(rigidMeasure, bestMeasure, best), nil
}

func evaluateScale(actual, rotatedRef []geom.Vec3, s scaleVec) (float64, error) {
	n := len(actual)
	scaled := make([]geom.Vec3, n)
	for j, q := range rotatedRef {
		scaled[j] = geom.Vec3{X: q.X * s.X, Y: q.Y * s.Y, Z: q.Z * s.Z}
	}

	cost := make([][]float64, n)
	for i, p := range actual {
		row := make([]float64, n)
		for j, q := range scaled {
			row[j] = p.DistanceSq(q)
		}
		cost[i] = row
	}
	pairs, err := assignment.Solve(cost)
	if err != nil {
		return 0, err
	}
	perm := assignment.ToPermutation(pairs)

	var numerator, denominator float64
	for i, j := range perm {
		diff := actual[i].Sub(scaled[j])
		numerator += diff.Dot(diff)
		denominator += actual[i].Dot(actual[i])
	}
	if denominator == 0 {
		return 0, nil
	}
	return 100 * numerator / denominator, nil
}

func buildResult(rigidMeasure, flexMeasure float64, s scaleVec) model.FlexibleResult {
	delta := rigidMeasure - flexMeasure
	if delta < 0 {
		delta = 0
	}
	mean := (s.X + s.Y + s.Z) / 3
	var variance float64
	for _, v := range []float64{s.X, s.Y, s.Z} {
		d := v - mean
		variance += d * d
	}
	variance /= 3
	distortion := 0.0
	if mean != 0 {
		distortion = math.Sqrt(variance) / mean
	}

	return model.FlexibleResult{
		RigidMeasure:    rigidMeasure,
		FlexMeasure:     flexMeasure,
		Delta:           delta,
		ScaleXYZ:        [3]float64{s.X, s.Y, s.Z},
		DistortionIndex: distortion,
		Description:     describeAxes(s),
	}
}

// describeAxes renders a short text noting the longest and shortest axis,
// or "isotropic" if all three are within 1% of each other.
func describeAxes(s scaleVec) string {
	vals := map[string]float64{"x": s.X, "y": s.Y, "z": s.Z}
	longest, shortest := "x", "x"
	for axis, v := range vals {
		if v > vals[longest] {
			longest = axis
		}
		if v < vals[shortest] {
			shortest = axis
		}
	}
	if math.Abs(vals[longest]-vals[shortest]) < 0.01*vals[shortest] {
		return "isotropic"
	}
	return fmt.Sprintf("%s axis longest, %s axis shortest", longest, shortest)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
