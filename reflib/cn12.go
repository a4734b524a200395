package reflib

// registerCN12 registers the CN=12 reference geometries.
func registerCN12(register func(cn int, g ReferenceGeometry)) {
	register(12, ReferenceGeometry{
		Code:       "IC-12",
		Name:       "Icosahedron",
		PointGroup: "Ih",
		Points:     icosahedronVertices(),
	})

	register(12, ReferenceGeometry{
		Code:       "COC-12",
		Name:       "Cuboctahedron",
		PointGroup: "Oh",
		Points:     cuboctahedronVertices(),
	})
}
