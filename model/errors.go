package model

import "errors"

// Sentinel errors for code that validates model types. No package in this
// module returns or wraps them: coordination and reflib define their own
// sentinels, and analyzer reports failures as AnalysisResult.Err strings
// rather than letting errors cross the core boundary.
var (
	// ErrInvalidAtom indicates a non-finite coordinate or empty element.
	ErrInvalidAtom = errors.New("model: invalid atom")

	// ErrCenterOutOfRange indicates a center index outside the structure's
	// atom slice.
	ErrCenterOutOfRange = errors.New("model: center index out of range")
)
