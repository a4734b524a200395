package reflib

// registerCN8 registers the CN=8 reference geometries.
func registerCN8(register func(cn int, g ReferenceGeometry)) {
	register(8, ReferenceGeometry{
		Code:       "CU-8",
		Name:       "Cube",
		PointGroup: "Oh",
		Points:     cubeVertices(),
	})

	register(8, ReferenceGeometry{
		Code:       "SAPR-8",
		Name:       "Square antiprism",
		PointGroup: "D4d",
		Points:     antiprism(4, 0.9),
	})

	register(8, ReferenceGeometry{
		Code:       "DD-8",
		Name:       "Triangular dodecahedron (snub disphenoid)",
		PointGroup: "D2d",
		Points:     dodecahedralVertices8(),
	})

	register(8, ReferenceGeometry{
		Code:       "HBPY-8",
		Name:       "Hexagonal bipyramid",
		PointGroup: "D6h",
		Points:     bipyramid(6, 1.2),
	})
}
