package reflib

import "github.com/katalvlaran/cshm/geom"

// ReferenceGeometry is an immutable ideal N-vertex polyhedron: a short
// code, a display name, an opaque point-group label (consumed, never
// interpreted, by this engine — spec.md §1's "not a symmetry analyzer"),
// and the normalized coordinate cloud itself.
//
// Invariant: centroid of Points is the origin; RMS distance of Points from
// the origin is 1, EXCEPT when CentralAtom is true, in which case Points
// has CN+1 entries (the CN ligand vertices plus one trailing point
// representing the ideal central-atom position) and normalization instead
// pins that trailing point at the literal origin — it is translated to
// zero, not recentered on the augmented cloud's centroid — before the
// whole cloud's RMS distance is scaled to 1. This keeps the reference's
// central-atom point exactly where analyzer.buildActualPoints fixes the
// real structure's central atom (spec.md §4.7's documented CN=3 special
// case; see DESIGN.md Open Question (b)).
type ReferenceGeometry struct {
	Code        string
	Name        string
	PointGroup  string
	Points      []geom.Vec3
	CentralAtom bool
}

// N returns the reference's point count (CN, or CN+1 when CentralAtom).
func (g ReferenceGeometry) N() int {
	return len(g.Points)
}

// Library is a read-only mapping from CN to a mapping from code to
// ReferenceGeometry, built once at init and shared freely thereafter
// (spec.md §5 "RefLibrary is read-only and shared freely").
type Library struct {
	byCN map[int]map[string]ReferenceGeometry
}
