package coordination

import "github.com/katalvlaran/cshm/model"

// SuggestCenters returns the indices of atoms in s whose element is a
// default metal indicator (model.IsMetalIndicator), in structure order.
// Purely advisory: any index remains a valid center regardless.
func SuggestCenters(s model.Structure) []int {
	var out []int
	for i, a := range s.Atoms {
		if model.IsMetalIndicator(a.Element) {
			out = append(out, i)
		}
	}
	return out
}
