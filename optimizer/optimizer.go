package optimizer

import (
	"context"
	"log/slog"
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/cshm/assignment"
	"github.com/katalvlaran/cshm/geom"
	"github.com/katalvlaran/cshm/kabsch"
	"github.com/katalvlaran/cshm/model"
	"github.com/katalvlaran/cshm/shapeeval"
)

// Run searches SO(3) for the rotation minimizing the Continuous Shape
// Measure between actual and reference, running the fixed five-stage
// search (Kabsch seed, key orientations, grid search, annealing, local
// refinement) described in the optimizer package doc comment.
//
// Run never returns a non-nil error for recoverable numeric failures: a
// failing stage is logged and skipped, and the best result found so far is
// kept. It returns a non-nil error only for malformed input (size mismatch,
// empty input) or context cancellation, in both cases alongside the best
// partial result available.
func Run(ctx context.Context, actual, reference []geom.Vec3, opts Options) (model.ShapeResult, error) {
	n := len(actual)
	failed := model.ShapeResult{Measure: math.Inf(1), Rotation: geom.Identity3()}
	if n == 0 || len(reference) == 0 {
		return failed, ErrEmptyInput
	}
	if n != len(reference) {
		return failed, ErrSizeMismatch
	}

	profile := opts.Profile
	if profile.GridSteps == 0 {
		profile = DefaultProfile()
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	logger := opts.logger()

	best := runStage0Seed(actual, reference, opts, logger)
	opts.emit(model.ProgressEvent{Stage: model.StageKabsch, Percent: 10, BestSoFar: best.Measure})
	if err := ctx.Err(); err != nil {
		return best, err
	}

	best = runStage1KeyOrientations(ctx, actual, reference, opts, best)
	opts.emit(model.ProgressEvent{Stage: model.StageKeyOrientations, Percent: 25, BestSoFar: best.Measure})
	if err := ctx.Err(); err != nil {
		return best, err
	}

	if best.Measure >= profile.Thresholds.AfterKeyOrientations {
		best = runStage2GridSearch(ctx, actual, reference, opts, profile, best)
	}
	opts.emit(model.ProgressEvent{Stage: model.StageGridSearch, Percent: 50, BestSoFar: best.Measure})
	if err := ctx.Err(); err != nil {
		return best, err
	}

	if best.Measure >= profile.Thresholds.AfterGridSearch {
		best = runStage3Annealing(ctx, actual, reference, opts, profile, rng, best)
	}
	opts.emit(model.ProgressEvent{Stage: model.StageAnnealing, Percent: 80, BestSoFar: best.Measure})
	if err := ctx.Err(); err != nil {
		return best, err
	}

	if best.Measure >= profile.Thresholds.AfterAnnealing {
		best = runStage4Refinement(ctx, actual, reference, opts, profile, rng, best)
	}
	opts.emit(model.ProgressEvent{Stage: model.StageRefinement, Percent: 95, BestSoFar: best.Measure})
	if err := ctx.Err(); err != nil {
		return best, err
	}

	opts.emit(model.ProgressEvent{Stage: model.StageComplete, Percent: 100, BestSoFar: best.Measure})
	return best, nil
}

// bestOf returns whichever of a, b has the lower Measure.
func bestOf(a, b model.ShapeResult) model.ShapeResult {
	if b.Measure < a.Measure {
		return b
	}
	return a
}

// cancelled reports whether ctx has been cancelled or its deadline exceeded.
func cancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func runStage0Seed(actual, reference []geom.Vec3, opts Options, logger *slog.Logger) model.ShapeResult {
	best := model.ShapeResult{Measure: math.Inf(1), Rotation: geom.Identity3()}
	n := len(actual)

	cost := make([][]float64, n)
	for i, p := range actual {
		row := make([]float64, n)
		for j, q := range reference {
			row[j] = p.DistanceSq(q)
		}
		cost[i] = row
	}

	pairs, err := assignment.Solve(cost)
	if err != nil {
		logger.Warn("optimizer: seed assignment failed", slog.String("stage", "Kabsch"), slog.Int("n", n))
		return best
	}
	perm := assignment.ToPermutation(pairs)
	ordered := make([]geom.Vec3, n)
	for i, j := range perm {
		ordered[i] = reference[j]
	}

	rot, err := kabsch.Align(actual, ordered, true)
	if err != nil {
		logger.Warn("optimizer: seed Kabsch failed, using identity", slog.String("stage", "Kabsch"), slog.Int("n", n))
	}

	res, err := shapeeval.Evaluate(actual, reference, rot, opts.Variant)
	if err != nil {
		logger.Warn("optimizer: seed evaluation failed", slog.String("stage", "Kabsch"))
		return best
	}
	return bestOf(best, res)
}

func runStage1KeyOrientations(ctx context.Context, actual, reference []geom.Vec3, opts Options, best model.ShapeResult) model.ShapeResult {
	for _, rot := range keyOrientations() {
		if res, err := shapeeval.Evaluate(actual, reference, rot, opts.Variant); err == nil {
			best = bestOf(best, res)
		}
		if cancelled(ctx) {
			return best
		}
	}
	return best
}

func runStage2GridSearch(ctx context.Context, actual, reference []geom.Vec3, opts Options, profile Profile, best model.ShapeResult) model.ShapeResult {
	steps := profile.GridSteps
	stride := profile.GridStride
	if stride < 1 {
		stride = 1
	}
	const twoPi = 2 * math.Pi

angleLoop:
	for ia := 0; ia < steps; ia += stride {
		alpha := twoPi * float64(ia) / float64(steps)
		for ib := 0; ib < steps; ib += stride {
			beta := twoPi * float64(ib) / float64(steps)
			for ig := 0; ig < steps; ig += stride {
				gamma := twoPi * float64(ig) / float64(steps)
				rot := geom.EulerXYZ(alpha, beta, gamma)
				if res, err := shapeeval.Evaluate(actual, reference, rot, opts.Variant); err == nil {
					best = bestOf(best, res)
				}
			}
			if cancelled(ctx) {
				break angleLoop
			}
		}
		if best.Measure < profile.Thresholds.AfterGridSearch {
			break
		}
	}
	return best
}
