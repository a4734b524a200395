package optimizer

import (
	"math"

	"github.com/katalvlaran/cshm/geom"
)

// keyOrientations returns a fixed set of ~18 Euler triples covering the
// obvious symmetry-breaking rotations: identity, 90°/180° about each axis,
// axis pairs, and π/4, π/3 combinations.
func keyOrientations() []geom.Mat3 {
	const (
		quarter = math.Pi / 2
		half    = math.Pi
		eighth  = math.Pi / 4
		third   = math.Pi / 3
	)
	triples := [][3]float64{
		{0, 0, 0},
		{quarter, 0, 0}, {half, 0, 0}, {-quarter, 0, 0},
		{0, quarter, 0}, {0, half, 0}, {0, -quarter, 0},
		{0, 0, quarter}, {0, 0, half}, {0, 0, -quarter},
		{quarter, quarter, 0}, {quarter, 0, quarter}, {0, quarter, quarter},
		{half, half, 0}, {half, 0, half}, {0, half, half},
		{eighth, eighth, eighth},
		{third, third, third},
	}
	out := make([]geom.Mat3, len(triples))
	for i, t := range triples {
		out[i] = geom.EulerXYZ(t[0], t[1], t[2])
	}
	return out
}
