package coordination

import (
	"sort"

	"github.com/katalvlaran/cshm/model"
)

// Select returns every atom in s whose distance from the center atom lies
// in (overlapGuardRadius, radius], sorted ascending by distance.
func Select(s model.Structure, center int, radius float64) ([]model.CoordAtom, error) {
	if center < 0 || center >= len(s.Atoms) {
		return nil, ErrCenterOutOfRange
	}
	if radius <= 0 {
		return nil, ErrRadiusNonPositive
	}

	centerPos := s.Atoms[center].Pos()
	out := make([]model.CoordAtom, 0, len(s.Atoms)-1)
	for i, a := range s.Atoms {
		if i == center {
			continue
		}
		vec := a.Pos().Sub(centerPos)
		dist := vec.Norm()
		if dist <= overlapGuardRadius || dist > radius {
			continue
		}
		out = append(out, model.CoordAtom{
			AtomIndex: i,
			Element:   a.Element,
			Vec:       vec,
			Distance:  dist,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out, nil
}

// allNeighborsSorted returns every non-overlapping atom around center,
// sorted ascending by distance, with no radius cutoff.
func allNeighborsSorted(s model.Structure, center int) ([]model.CoordAtom, error) {
	if center < 0 || center >= len(s.Atoms) {
		return nil, ErrCenterOutOfRange
	}
	centerPos := s.Atoms[center].Pos()
	out := make([]model.CoordAtom, 0, len(s.Atoms)-1)
	for i, a := range s.Atoms {
		if i == center {
			continue
		}
		vec := a.Pos().Sub(centerPos)
		dist := vec.Norm()
		if dist <= overlapGuardRadius {
			continue
		}
		out = append(out, model.CoordAtom{
			AtomIndex: i,
			Element:   a.Element,
			Vec:       vec,
			Distance:  dist,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out, nil
}
