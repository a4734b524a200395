package reflib

// registerCN5 registers the CN=5 reference geometries.
func registerCN5(register func(cn int, g ReferenceGeometry)) {
	register(5, ReferenceGeometry{
		Code:       "TBPY-5",
		Name:       "Trigonal bipyramid",
		PointGroup: "D3h",
		Points:     bipyramid(3, 1.3),
	})

	register(5, ReferenceGeometry{
		Code:       "SPY-5",
		Name:       "Square pyramid",
		PointGroup: "C4v",
		Points:     pyramid(4, 1.1),
	})

	register(5, ReferenceGeometry{
		Code:       "PP-5",
		Name:       "Pentagonal planar",
		PointGroup: "D5h",
		Points:     regularPolygon(5, 0, 0),
	})
}
