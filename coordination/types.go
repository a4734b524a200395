package coordination

// overlapGuardRadius excludes atoms coincident with the center (duplicate
// or overlapping positions) from any neighbor list.
const overlapGuardRadius = 0.1

// fallbackRadiusPad is added to the k-th nearest-neighbor distance when no
// (k+1)-th neighbor exists, to still return a usable radius.
const fallbackRadiusPad = 0.4

// GapResult is the outcome of a target-CN auto-radius search.
type GapResult struct {
	Radius float64
	Gap    float64 // distance(k+1) - distance(k), or 0 if no (k+1)-th neighbor
}
