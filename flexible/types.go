package flexible

// ScaleMin and ScaleMax bound each axis of the anisotropic scale search,
// per spec.md §4.6.
const (
	ScaleMin = 0.4
	ScaleMax = 2.5
)

// Options configures one Search call.
type Options struct {
	Seed        uint64
	NumRestarts int
	StepsPerRun int
}

// DefaultOptions is the faster built-in profile: a handful of restarts.
func DefaultOptions() Options {
	return Options{NumRestarts: 3, StepsPerRun: 120}
}

// IntensiveOptions is the thorough built-in profile.
func IntensiveOptions() Options {
	return Options{NumRestarts: 8, StepsPerRun: 300}
}
