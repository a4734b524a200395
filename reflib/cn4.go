package reflib

import "github.com/katalvlaran/cshm/geom"

// registerCN4 registers the CN=4 reference geometries.
func registerCN4(register func(cn int, g ReferenceGeometry)) {
	register(4, ReferenceGeometry{
		Code:       "SP-4",
		Name:       "Square planar",
		PointGroup: "D4h",
		Points:     regularPolygon(4, 0, 0),
	})

	register(4, ReferenceGeometry{
		Code:       "T-4",
		Name:       "Tetrahedron",
		PointGroup: "Td",
		Points:     tetrahedronVertices(),
	})

	// Seesaw: two axial points further out, two equatorial closer in,
	// distorted from the T-shape by bending the equatorial pair.
	register(4, ReferenceGeometry{
		Code:       "SS-4",
		Name:       "Seesaw",
		PointGroup: "C2v",
		Points: []geom.Vec3{
			{Z: 1.3},
			{Z: -1.3},
			{X: 1, Y: 0.25},
			{X: -1, Y: 0.25},
		},
	})
}
