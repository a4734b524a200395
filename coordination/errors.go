package coordination

import "errors"

// Sentinel errors for the coordination package.
var (
	// ErrCenterOutOfRange indicates the center index is outside the
	// structure's atom slice.
	ErrCenterOutOfRange = errors.New("coordination: center index out of range")

	// ErrRadiusNonPositive indicates radius <= 0.
	ErrRadiusNonPositive = errors.New("coordination: radius must be positive")

	// ErrInsufficientNeighbors indicates fewer than targetCN neighbors
	// exist for a SuggestRadius call, regardless of radius.
	ErrInsufficientNeighbors = errors.New("coordination: fewer neighbors than target coordination number")

	// ErrTargetCNOutOfRange indicates targetCN < 2.
	ErrTargetCNOutOfRange = errors.New("coordination: target coordination number out of range")
)
