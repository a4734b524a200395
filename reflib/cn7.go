package reflib

import "github.com/katalvlaran/cshm/geom"

// registerCN7 registers the CN=7 reference geometries.
func registerCN7(register func(cn int, g ReferenceGeometry)) {
	register(7, ReferenceGeometry{
		Code:       "PBPY-7",
		Name:       "Pentagonal bipyramid",
		PointGroup: "D5h",
		Points:     bipyramid(5, 1.3),
	})

	// Capped octahedron: an octahedron with one extra vertex capping a
	// triangular face.
	oc := octahedronVertices()
	cap7 := geom.Vec3{X: 0.9, Y: 0.9, Z: 0.9}
	register(7, ReferenceGeometry{
		Code:       "COC-7",
		Name:       "Capped octahedron",
		PointGroup: "C3v",
		Points:     append(append([]geom.Vec3{}, oc...), cap7),
	})

	// Capped trigonal prism: a trigonal prism with one extra vertex
	// capping a rectangular face.
	tpr := prism(3, 0.9)
	capTPR := geom.Vec3{X: -1.3, Y: 0, Z: 0}
	register(7, ReferenceGeometry{
		Code:       "CTPR-7",
		Name:       "Capped trigonal prism",
		PointGroup: "C2v",
		Points:     append(append([]geom.Vec3{}, tpr...), capTPR),
	})
}
