package reflib

import (
	"math"

	"github.com/katalvlaran/cshm/geom"
)

// registerCN2 registers the CN=2 reference geometries: a linear
// arrangement and a bent one.
func registerCN2(register func(cn int, g ReferenceGeometry)) {
	register(2, ReferenceGeometry{
		Code:       "L-2",
		Name:       "Linear",
		PointGroup: "D∞h",
		Points: []geom.Vec3{
			{X: 1},
			{X: -1},
		},
	})

	const bentHalfAngle = 109.47 / 2 * math.Pi / 180
	register(2, ReferenceGeometry{
		Code:       "A-2",
		Name:       "Angular (109.47°)",
		PointGroup: "C2v",
		Points: []geom.Vec3{
			{X: math.Sin(bentHalfAngle), Y: math.Cos(bentHalfAngle)},
			{X: -math.Sin(bentHalfAngle), Y: math.Cos(bentHalfAngle)},
		},
	})
}
