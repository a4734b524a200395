package batch

import "github.com/katalvlaran/cshm/model"

// Item is one (structure, selection) pair to analyze: the structure, the
// chosen center index, and the coordination radius to apply.
type Item struct {
	Structure   model.Structure
	CenterIndex int
	Radius      float64
}
