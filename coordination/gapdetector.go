package coordination

import "github.com/katalvlaran/cshm/model"

// SuggestRadius finds the coordination radius for targetCN by locating the
// gap between the targetCN-th and (targetCN+1)-th nearest neighbors of
// center: the optimal radius is their midpoint, or the targetCN-th
// distance plus fallbackRadiusPad if no (targetCN+1)-th neighbor exists.
func SuggestRadius(s model.Structure, center, targetCN int) (GapResult, error) {
	if targetCN < 2 {
		return GapResult{}, ErrTargetCNOutOfRange
	}

	neighbors, err := allNeighborsSorted(s, center)
	if err != nil {
		return GapResult{}, err
	}
	if len(neighbors) < targetCN {
		return GapResult{}, ErrInsufficientNeighbors
	}

	kth := neighbors[targetCN-1].Distance
	if len(neighbors) == targetCN {
		return GapResult{Radius: kth + fallbackRadiusPad, Gap: 0}, nil
	}

	kPlus1th := neighbors[targetCN].Distance
	return GapResult{
		Radius: (kth + kPlus1th) / 2,
		Gap:    kPlus1th - kth,
	}, nil
}
