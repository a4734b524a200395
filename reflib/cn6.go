package reflib

// registerCN6 registers the CN=6 reference geometries.
func registerCN6(register func(cn int, g ReferenceGeometry)) {
	register(6, ReferenceGeometry{
		Code:       "OC-6",
		Name:       "Octahedron",
		PointGroup: "Oh",
		Points:     octahedronVertices(),
	})

	register(6, ReferenceGeometry{
		Code:       "TPR-6",
		Name:       "Trigonal prism",
		PointGroup: "D3h",
		Points:     prism(3, 0.9),
	})

	register(6, ReferenceGeometry{
		Code:       "PPY-6",
		Name:       "Pentagonal pyramid",
		PointGroup: "C5v",
		Points:     pyramid(5, 1.1),
	})
}
