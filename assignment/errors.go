package assignment

import "errors"

// Sentinel errors for the assignment package.
var (
	// ErrNotSquare indicates the cost matrix is not N×N.
	ErrNotSquare = errors.New("assignment: cost matrix is not square")

	// ErrRaggedMatrix indicates the cost matrix's rows have unequal length.
	ErrRaggedMatrix = errors.New("assignment: cost matrix rows have unequal length")
)
