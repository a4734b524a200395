package quality

import (
	"math"
	"sort"

	"github.com/katalvlaran/cshm/geom"
)

// pairwiseAngles returns the angle in degrees between every unordered pair
// of vectors originating at the center, i < j.
func pairwiseAngles(vecs []geom.Vec3) []float64 {
	n := len(vecs)
	if n < 2 {
		return nil
	}
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, angleBetween(vecs[i], vecs[j]))
		}
	}
	return out
}

// angleBetween returns the angle between v1 and v2 in degrees, clamping
// the cosine argument to [-1, 1] to guard against floating-point drift.
func angleBetween(v1, v2 geom.Vec3) float64 {
	n1, n2 := v1.Norm(), v2.Norm()
	if n1 == 0 || n2 == 0 {
		return 0
	}
	cos := v1.Dot(v2) / (n1 * n2)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// angularDistortionIndex sorts both angle lists ascending and returns the
// mean absolute position-wise difference. Defined only when both lists
// have equal, nonzero length; returns NaN otherwise (spec.md §4.9).
func angularDistortionIndex(idealDeg, actualDeg []float64) float64 {
	if len(idealDeg) == 0 || len(idealDeg) != len(actualDeg) {
		return math.NaN()
	}
	ideal := append([]float64(nil), idealDeg...)
	actual := append([]float64(nil), actualDeg...)
	sort.Float64s(ideal)
	sort.Float64s(actual)

	var sum float64
	for i := range ideal {
		sum += math.Abs(ideal[i] - actual[i])
	}
	return sum / float64(len(ideal))
}
