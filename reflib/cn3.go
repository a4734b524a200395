package reflib

import "github.com/katalvlaran/cshm/geom"

// registerCN3 registers the CN=3 reference geometries. vT-3 and fac-vOC-3
// carry CentralAtom: true — their ideal shape is only meaningful alongside
// the central atom's own position, so the augmented 4-point cloud is what
// gets compared (see ReferenceGeometry's doc comment and DESIGN.md Open
// Question (b)).
func registerCN3(register func(cn int, g ReferenceGeometry)) {
	register(3, ReferenceGeometry{
		Code:       "TP-3",
		Name:       "Trigonal planar",
		PointGroup: "D3h",
		Points:     regularPolygon(3, 0, 0),
	})

	// pyramid(3, apex) already yields 4 points: the 3 ligand vertices plus
	// the apical point standing in for the central atom's ideal offset
	// from the ligand plane — no separate origin point is added.
	register(3, ReferenceGeometry{
		Code:        "vT-3",
		Name:        "Pyramidal (vacant tetrahedron)",
		PointGroup:  "C3v",
		Points:      pyramid(3, 0.3535533905932738), // 1/(2√2): tetrahedral 109.47° L–M–L angles
		CentralAtom: true,
	})

	// 3 ligands at the +x, +y, +z unit axes plus the central atom at the
	// octahedron's centre (the origin) — the 3 "vacant" sites are the
	// -x, -y, -z axis ends.
	facVOC3 := []geom.Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: 0},
	}
	register(3, ReferenceGeometry{
		Code:        "fac-vOC-3",
		Name:        "fac-Trivacant octahedron",
		PointGroup:  "C3v",
		Points:      facVOC3,
		CentralAtom: true,
	})
}
