package analyzer

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/katalvlaran/cshm/model"
	"github.com/katalvlaran/cshm/optimizer"
	"github.com/katalvlaran/cshm/quality"
	"github.com/katalvlaran/cshm/reflib"
	"github.com/katalvlaran/cshm/shapeeval"

	fx "github.com/katalvlaran/cshm/flexible"
)

// Analyzer drives analyses against one reference library, caching
// completed results.
type Analyzer struct {
	lib   *reflib.Library
	Cache *Cache
}

// New returns an Analyzer backed by lib (typically reflib.Default()) with
// a fresh, empty cache.
func New(lib *reflib.Library) *Analyzer {
	return &Analyzer{lib: lib, Cache: NewCache()}
}

// Analyze runs one (structure, center) analysis over atoms (the
// coordinating atoms already selected by package coordination, sorted
// ascending by distance) and returns its AnalysisResult, from cache if the
// fingerprint matches a prior run.
//
// onProgress, if given, is called with the reference code currently being
// evaluated and that reference's optimizer progress events. It is never
// invoked on a cache hit. At most one callback is used; extra arguments
// are ignored.
func (an *Analyzer) Analyze(ctx context.Context, structureID string, centerIndex int, atoms []model.CoordAtom, opts model.Options, onProgress ...func(refCode string, ev model.ProgressEvent)) model.AnalysisResult {
	cn := len(atoms)
	base := model.AnalysisResult{StructureID: structureID, CenterIndex: centerIndex, CN: cn}

	if cn < 2 {
		base.Err = "CoordinationEmpty"
		return base
	}

	refs := an.lib.ForCN(cn)
	if len(refs) == 0 {
		base.Err = "NoReference"
		return base
	}

	if opts.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(opts.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	var progress func(string, model.ProgressEvent)
	if len(onProgress) > 0 {
		progress = onProgress[0]
	}

	fp := Fingerprint(opts.Mode, cn, opts.Flexible, atoms)
	res, _ := an.Cache.GetOrCompute(fp, func() (model.AnalysisResult, error) {
		return an.compute(ctx, structureID, centerIndex, cn, atoms, refs, opts, progress)
	})
	return res
}

func (an *Analyzer) compute(ctx context.Context, structureID string, centerIndex, cn int, atoms []model.CoordAtom, refs []reflib.ReferenceGeometry, opts model.Options, progress func(string, model.ProgressEvent)) (model.AnalysisResult, error) {
	base := model.AnalysisResult{StructureID: structureID, CenterIndex: centerIndex, CN: cn}
	profile := optimizerProfile(opts.Mode)

	rankings := make([]model.GeometryResult, 0, len(refs))
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			base.Err = "cancelled"
			return base, nil
		}

		actualPts, err := buildActualPoints(atoms, ref)
		if err != nil {
			continue
		}

		optOpts := optimizer.Options{
			Profile: profile,
			Seed:    opts.Seed,
			Variant: shapeeval.VariantOptimalScale,
		}
		if progress != nil {
			refCode := ref.Code
			optOpts.OnProgress = func(ev model.ProgressEvent) { progress(refCode, ev) }
		}
		shapeRes, optErr := optimizer.Run(ctx, actualPts, ref.Points, optOpts)
		if optErr != nil && (errors.Is(optErr, context.Canceled) || errors.Is(optErr, context.DeadlineExceeded)) {
			base.Err = "cancelled"
			return base, nil
		}

		gr := model.GeometryResult{Code: ref.Code, Name: ref.Name, PointGroup: ref.PointGroup, Shape: shapeRes}
		if opts.Flexible {
			flexRes, _ := fx.Search(ctx, actualPts, ref.Points, shapeRes.Rotation, shapeRes.Measure, flexibleOptions(opts.Mode, opts.Seed))
			gr.Flexible = &flexRes
		}
		rankings = append(rankings, gr)
	}

	if err := ctx.Err(); err != nil {
		base.Err = "cancelled"
		return base, nil
	}

	finite := rankings[:0]
	for _, gr := range rankings {
		if !isFiniteMeasure(gr.Shape.Measure) {
			continue
		}
		finite = append(finite, gr)
	}
	rankings = finite

	sort.SliceStable(rankings, func(i, j int) bool { return rankings[i].Shape.Measure < rankings[j].Shape.Measure })

	base.Rankings = rankings
	if len(rankings) > 0 {
		base.Best = &rankings[0]

		var bestRef reflib.ReferenceGeometry
		for _, ref := range refs {
			if ref.Code == rankings[0].Code {
				bestRef = ref
				break
			}
		}
		base.Bonds = quality.BondStats(atoms)
		base.Quality = quality.Compute(atoms, ligandOnlyPoints(bestRef), rankings[0].Shape.Measure)
	}

	return base, nil
}

func isFiniteMeasure(m float64) bool {
	return m == m && m < 1e300 // excludes NaN (m==m is false for NaN) and +Inf
}
