package optimizer

import (
	"log/slog"

	"github.com/katalvlaran/cshm/model"
	"github.com/katalvlaran/cshm/shapeeval"
)

// Thresholds are declared, not computed, early-stop measure levels. Once
// the current best drops below an After* level, the stage that follows the
// named one is skipped (AfterGridSearch and AfterAnnealing also end their
// own stage early); a During* level ends the named stage's remaining steps.
type Thresholds struct {
	AfterKeyOrientations float64
	AfterGridSearch      float64
	AfterAnnealing       float64
	DuringAnnealingRun   float64
	DuringRefinement     float64
}

// Profile holds the numeric stage constants for one search intensity.
// Stage structure (which stages run, in what order) never varies across
// profiles — only these constants do.
type Profile struct {
	Name string

	GridSteps  int // samples per axis in Stage 2
	GridStride int // stride between sampled indices in Stage 2

	NumRestarts        int // independent Stage 3 annealing runs
	StepsPerRun        int // proposals per Stage 3 run
	StepSizeFactor     float64
	StepSizeRandomness float64
	MinTemp            float64
	StartTemp          float64

	RefinementStartTemp float64
	TempDecay           float64
	NoImprovementLimit  int

	Thresholds Thresholds
}

// DefaultProfile is the faster of the two built-in profiles.
func DefaultProfile() Profile {
	if defaultOverride != nil {
		return *defaultOverride
	}
	return Profile{
		Name:                "default",
		GridSteps:           18,
		GridStride:          3,
		NumRestarts:         4,
		StepsPerRun:         150,
		StepSizeFactor:      0.6,
		StepSizeRandomness:  0.5,
		StartTemp:           1.0,
		MinTemp:             0.01,
		RefinementStartTemp: 0.05,
		TempDecay:           0.97,
		NoImprovementLimit:  60,
		Thresholds: Thresholds{
			AfterKeyOrientations: 0.05,
			AfterGridSearch:      0.02,
			AfterAnnealing:       0.005,
			DuringAnnealingRun:   0.001,
			DuringRefinement:     0.0005,
		},
	}
}

// IntensiveProfile is the thorough built-in profile: a finer grid, more
// restarts, and longer annealing runs.
func IntensiveProfile() Profile {
	if intensiveOverride != nil {
		return *intensiveOverride
	}
	p := DefaultProfile()
	p.Name = "intensive"
	p.GridSteps = 30
	p.GridStride = 2
	p.NumRestarts = 10
	p.StepsPerRun = 400
	p.NoImprovementLimit = 150
	return p
}

// defaultOverride and intensiveOverride, once set via SetDefaultProfile /
// SetIntensiveProfile, replace the corresponding built-in profile for the
// remainder of the process. Used by the CLI's optional --config file
// (SPEC_FULL.md §3.3); unset in ordinary library use.
var (
	defaultOverride   *Profile
	intensiveOverride *Profile
)

// SetDefaultProfile overrides what DefaultProfile returns for the
// remainder of the process.
func SetDefaultProfile(p Profile) { defaultOverride = &p }

// SetIntensiveProfile overrides what IntensiveProfile returns for the
// remainder of the process.
func SetIntensiveProfile(p Profile) { intensiveOverride = &p }

// Options configures one Run call.
type Options struct {
	Profile    Profile
	Seed       uint64
	Variant    shapeeval.Variant
	Logger     *slog.Logger
	OnProgress func(model.ProgressEvent)
}

// logger returns o.Logger, or slog.Default() if unset.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// emit delivers a progress event if a sink was configured.
func (o Options) emit(ev model.ProgressEvent) {
	if o.OnProgress != nil {
		o.OnProgress(ev)
	}
}
