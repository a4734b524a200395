package reflib

import (
	"math"

	"github.com/katalvlaran/cshm/geom"
)

// normalize recenters pts to a zero centroid and rescales so the RMS
// distance from the origin is exactly 1 — the invariant every
// ReferenceGeometry.Points must satisfy (ReferenceGeometry's doc comment).
func normalize(pts []geom.Vec3) []geom.Vec3 {
	n := float64(len(pts))
	var centroid geom.Vec3
	for _, p := range pts {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / n)

	centered := make([]geom.Vec3, len(pts))
	sumSq := 0.0
	for i, p := range pts {
		c := p.Sub(centroid)
		centered[i] = c
		sumSq += c.Dot(c)
	}
	rms := math.Sqrt(sumSq / n)
	if rms < 1e-15 {
		return centered
	}
	out := make([]geom.Vec3, len(centered))
	for i, c := range centered {
		out[i] = c.Scale(1 / rms)
	}
	return out
}

// normalizeCentralAtom rescales the augmented cloud of a CentralAtom
// reference (its last point stands in for the central atom) without
// recentering on the cloud's centroid: the central-atom point is the
// shared origin both sides of the comparison must agree on
// (analyzer.buildActualPoints pins the actual side's central-atom point at
// the literal zero vector and never recenters it), so translating by the
// mean here would pull the reference's central-atom point off zero and
// leave an irreducible residual no rotation/permutation/scale could undo.
// Instead, translate by the central-atom point itself — which is exactly
// zero afterward regardless of the RMS scale applied next — then scale
// the whole cloud's RMS distance to 1.
func normalizeCentralAtom(pts []geom.Vec3) []geom.Vec3 {
	n := float64(len(pts))
	central := pts[len(pts)-1]

	centered := make([]geom.Vec3, len(pts))
	sumSq := 0.0
	for i, p := range pts {
		c := p.Sub(central)
		centered[i] = c
		sumSq += c.Dot(c)
	}
	rms := math.Sqrt(sumSq / n)
	if rms < 1e-15 {
		return centered
	}
	out := make([]geom.Vec3, len(centered))
	for i, c := range centered {
		out[i] = c.Scale(1 / rms)
	}
	return out
}

// regularPolygon returns n points evenly spaced on the unit circle in the
// XY plane at height z, starting at angle phase.
func regularPolygon(n int, z, phase float64) []geom.Vec3 {
	pts := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		theta := phase + 2*math.Pi*float64(i)/float64(n)
		pts[i] = geom.Vec3{X: math.Cos(theta), Y: math.Sin(theta), Z: z}
	}
	return pts
}

// antiprism returns the 2n vertices of an n-gonal antiprism: one n-gon at
// height +h with phase 0, one at height -h with phase π/n (the "twisted"
// offset that makes it an antiprism rather than a prism).
func antiprism(n int, h float64) []geom.Vec3 {
	top := regularPolygon(n, h, 0)
	bottom := regularPolygon(n, -h, math.Pi/float64(n))
	return append(top, bottom...)
}

// prism returns the 2n vertices of an n-gonal right prism (no twist).
func prism(n int, h float64) []geom.Vec3 {
	top := regularPolygon(n, h, 0)
	bottom := regularPolygon(n, -h, 0)
	return append(top, bottom...)
}

// bipyramid returns an n-gonal bipyramid: an n-gon equator plus two apical
// points at ±apex.
func bipyramid(n int, apex float64) []geom.Vec3 {
	equator := regularPolygon(n, 0, 0)
	return append(equator, geom.Vec3{Z: apex}, geom.Vec3{Z: -apex})
}

// pyramid returns an n-gonal pyramid: an n-gon base plus one apical point.
func pyramid(n int, apex float64) []geom.Vec3 {
	base := regularPolygon(n, 0, 0)
	return append(base, geom.Vec3{Z: apex})
}

// tetrahedronVertices returns the 4 alternating vertices of a cube,
// forming a regular tetrahedron.
func tetrahedronVertices() []geom.Vec3 {
	return []geom.Vec3{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
}

// cubeVertices returns the 8 vertices of a cube centered at the origin.
func cubeVertices() []geom.Vec3 {
	pts := make([]geom.Vec3, 0, 8)
	for _, x := range []float64{1, -1} {
		for _, y := range []float64{1, -1} {
			for _, z := range []float64{1, -1} {
				pts = append(pts, geom.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	return pts
}

// octahedronVertices returns the 6 vertices of a regular octahedron.
func octahedronVertices() []geom.Vec3 {
	return []geom.Vec3{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}
}

// icosahedronVertices returns the 12 vertices of a regular icosahedron
// using the golden-ratio rectangle construction.
func icosahedronVertices() []geom.Vec3 {
	phi := (1 + math.Sqrt(5)) / 2
	pts := make([]geom.Vec3, 0, 12)
	for _, s1 := range []float64{1, -1} {
		for _, s2 := range []float64{1, -1} {
			pts = append(pts, geom.Vec3{X: 0, Y: s1 * 1, Z: s2 * phi})
			pts = append(pts, geom.Vec3{X: s1 * 1, Y: s2 * phi, Z: 0})
			pts = append(pts, geom.Vec3{X: s1 * phi, Y: 0, Z: s2 * 1})
		}
	}
	return pts
}

// cuboctahedronVertices returns the 12 vertices of a cuboctahedron: the
// midpoints of a cube's edges, equivalently all permutations of
// (±1, ±1, 0).
func cuboctahedronVertices() []geom.Vec3 {
	pts := make([]geom.Vec3, 0, 12)
	base := [2]float64{1, -1}
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 2, 0}}
	seen := make(map[[3]float64]bool)
	for _, s1 := range base {
		for _, s2 := range base {
			coords := [3]float64{s1, s2, 0}
			for _, perm := range perms {
				var v [3]float64
				v[perm[0]] = coords[0]
				v[perm[1]] = coords[1]
				v[perm[2]] = coords[2]
				if seen[v] {
					continue
				}
				seen[v] = true
				pts = append(pts, geom.Vec3{X: v[0], Y: v[1], Z: v[2]})
			}
		}
	}
	return pts
}

// dodecahedralVertices8 returns an 8-vertex "bisdisphenoid"-style cage
// used by the DD-8 (triangular dodecahedron / snub disphenoid) reference:
// two rectangles in perpendicular planes at different scales, the common
// construction for the 8-vertex snub disphenoid / trigonal dodecahedron
// shape class.
func dodecahedralVertices8() []geom.Vec3 {
	const q = 0.6 // aspect ratio between the two rectangles
	return []geom.Vec3{
		{X: 1, Y: 0, Z: 0.6}, {X: -1, Y: 0, Z: 0.6},
		{X: 0, Y: q, Z: -0.3}, {X: 0, Y: -q, Z: -0.3},
		{X: 0.5, Y: 0.5, Z: -0.9}, {X: -0.5, Y: 0.5, Z: -0.9},
		{X: 0.5, Y: -0.5, Z: -0.9}, {X: -0.5, Y: -0.5, Z: -0.9},
	}
}
