package reflib

import (
	"math"

	"github.com/katalvlaran/cshm/geom"
)

// registerCN9 registers the CN=9 reference geometries.
func registerCN9(register func(cn int, g ReferenceGeometry)) {
	// Tricapped trigonal prism: a trigonal prism plus one capping vertex
	// centered on each of its 3 rectangular faces.
	tpr := prism(3, 0.9)
	caps := make([]geom.Vec3, 3)
	for i := 0; i < 3; i++ {
		theta := math.Pi/3 + 2*math.Pi*float64(i)/3
		caps[i] = geom.Vec3{X: 1.3 * math.Cos(theta), Y: 1.3 * math.Sin(theta), Z: 0}
	}
	register(9, ReferenceGeometry{
		Code:       "TCTPR-9",
		Name:       "Tricapped trigonal prism",
		PointGroup: "D3h",
		Points:     append(append([]geom.Vec3{}, tpr...), caps...),
	})

	// Capped square antiprism: a square antiprism plus one vertex capping
	// the top square face.
	sapr := antiprism(4, 0.9)
	register(9, ReferenceGeometry{
		Code:       "CSAPR-9",
		Name:       "Capped square antiprism",
		PointGroup: "C4v",
		Points:     append(append([]geom.Vec3{}, sapr...), geom.Vec3{Z: 1.6}),
	})

	// Hula-hoop: two axial points plus a 7-vertex ring displaced off the
	// equatorial plane, for 9 vertices total.
	ring := regularPolygon(7, -0.3, 0)
	hh := append([]geom.Vec3{{Z: 1.5}, {Z: -1.2}}, ring...)
	register(9, ReferenceGeometry{
		Code:       "HH-9",
		Name:       "Hula-hoop",
		PointGroup: "C2v",
		Points:     hh,
	})
}
