package optimizer

import (
	"context"
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/cshm/geom"
	"github.com/katalvlaran/cshm/model"
	"github.com/katalvlaran/cshm/shapeeval"
)

// randomUnitVector samples a uniform point on S² via Marsaglia's method.
func randomUnitVector(rng *rand.Rand) geom.Vec3 {
	for {
		x1 := 2*rng.Float64() - 1
		x2 := 2*rng.Float64() - 1
		s := x1*x1 + x2*x2
		if s < 1 {
			factor := 2 * math.Sqrt(1-s)
			return geom.Vec3{X: x1 * factor, Y: x2 * factor, Z: 1 - 2*s}
		}
	}
}

// randomRotation samples a rotation via a random axis and uniform angle in
// [0, 2π). Not perfectly Haar-uniform on SO(3), but adequate as a random
// restart seed for the annealing stage.
func randomRotation(rng *rand.Rand) geom.Mat3 {
	axis := randomUnitVector(rng)
	angle := rng.Float64() * 2 * math.Pi
	return geom.AxisAngle(axis, angle)
}

// proposeRotation perturbs current by a random axis-angle rotation whose
// angle magnitude scales with temp and the profile's step-size constants,
// per spec.md §4.5's Stage 3 proposal rule.
func proposeRotation(rng *rand.Rand, current geom.Mat3, temp, stepFactor, stepRandomness float64) geom.Mat3 {
	axis := randomUnitVector(rng)
	k := stepFactor * (1 + stepRandomness*rng.Float64())
	magnitude := temp * k
	angle := (rng.Float64()*2 - 1) * magnitude
	delta := geom.AxisAngle(axis, angle)
	return delta.Mul(current)
}

func runStage3Annealing(ctx context.Context, actual, reference []geom.Vec3, opts Options, profile Profile, rng *rand.Rand, best model.ShapeResult) model.ShapeResult {
	halfway := (profile.NumRestarts + 1) / 2
	coolRate := math.Pow(profile.MinTemp/profile.StartTemp, 1.0/float64(maxInt(profile.StepsPerRun, 1)))

	for restart := 0; restart < profile.NumRestarts; restart++ {
		var current geom.Mat3
		switch {
		case restart == 0:
			current = best.Rotation
		case restart < halfway:
			current = proposeRotation(rng, best.Rotation, 1.0, profile.StepSizeFactor, profile.StepSizeRandomness)
		default:
			current = randomRotation(rng)
		}

		curRes, err := shapeeval.Evaluate(actual, reference, current, opts.Variant)
		curMeasure := math.Inf(1)
		if err == nil {
			curMeasure = curRes.Measure
			best = bestOf(best, curRes)
		}

		temp := profile.StartTemp
		for step := 0; step < profile.StepsPerRun; step++ {
			proposal := proposeRotation(rng, current, temp, profile.StepSizeFactor, profile.StepSizeRandomness)
			res, evalErr := shapeeval.Evaluate(actual, reference, proposal, opts.Variant)
			if evalErr == nil {
				delta := res.Measure - curMeasure
				if delta < 0 || rng.Float64() < math.Exp(-delta/temp) {
					current = proposal
					curMeasure = res.Measure
					best = bestOf(best, res)
				}
			}
			temp *= coolRate

			if best.Measure < profile.Thresholds.DuringAnnealingRun {
				break
			}
			if step%100 == 0 && cancelled(ctx) {
				return best
			}
		}

		if best.Measure < profile.Thresholds.AfterAnnealing {
			break
		}
	}
	return best
}

func runStage4Refinement(ctx context.Context, actual, reference []geom.Vec3, opts Options, profile Profile, rng *rand.Rand, best model.ShapeResult) model.ShapeResult {
	current := best.Rotation
	curMeasure := best.Measure
	temp := profile.RefinementStartTemp
	noImprovement := 0
	maxSteps := profile.NoImprovementLimit * 50

	for step := 0; step < maxSteps; step++ {
		if noImprovement >= profile.NoImprovementLimit {
			break
		}
		if best.Measure < profile.Thresholds.DuringRefinement {
			break
		}

		proposal := proposeRotation(rng, current, temp, profile.StepSizeFactor*0.3, profile.StepSizeRandomness)
		res, err := shapeeval.Evaluate(actual, reference, proposal, opts.Variant)
		if err == nil && res.Measure < curMeasure {
			current = proposal
			curMeasure = res.Measure
			noImprovement = 0
			best = bestOf(best, res)
		} else {
			noImprovement++
		}
		temp *= profile.TempDecay

		if step%100 == 0 && cancelled(ctx) {
			return best
		}
	}
	return best
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
