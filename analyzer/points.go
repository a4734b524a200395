package analyzer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cshm/geom"
	"github.com/katalvlaran/cshm/model"
	"github.com/katalvlaran/cshm/reflib"
)

// buildActualPoints converts atoms into the actual point cloud ShapeEval
// expects for ref: the ligand vectors, with the origin appended when ref
// is the CN=3 central-atom special case (spec.md §4.7), scaled to
// unit-RMS without recentering — the coordinating atoms' natural origin is
// the chosen center, not their own centroid.
func buildActualPoints(atoms []model.CoordAtom, ref reflib.ReferenceGeometry) ([]geom.Vec3, error) {
	pts := make([]geom.Vec3, 0, len(atoms)+1)
	for _, a := range atoms {
		pts = append(pts, a.Vec)
	}
	if ref.CentralAtom {
		pts = append(pts, geom.Vec3{})
	}
	if len(pts) != ref.N() {
		return nil, fmt.Errorf("analyzer: built %d actual points, reference %s wants %d", len(pts), ref.Code, ref.N())
	}
	return unitRMSScale(pts), nil
}

// unitRMSScale rescales pts so their RMS distance from the origin is 1,
// without recentering.
func unitRMSScale(pts []geom.Vec3) []geom.Vec3 {
	n := float64(len(pts))
	var sumSq float64
	for _, p := range pts {
		sumSq += p.Dot(p)
	}
	rms := math.Sqrt(sumSq / n)
	if rms < 1e-15 {
		return append([]geom.Vec3(nil), pts...)
	}
	out := make([]geom.Vec3, len(pts))
	for i, p := range pts {
		out[i] = p.Scale(1 / rms)
	}
	return out
}

// ligandOnlyPoints strips the trailing central-atom point (if any) from
// ref's point cloud, for feeding package quality's ideal-angle comparison.
func ligandOnlyPoints(ref reflib.ReferenceGeometry) []geom.Vec3 {
	if !ref.CentralAtom {
		return ref.Points
	}
	return ref.Points[:len(ref.Points)-1]
}
