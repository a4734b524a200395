package kabsch

import "errors"

// Sentinel errors for the kabsch package. Per spec.md §4.2, none of these
// ever propagate as a panic: Align degrades to the identity rotation and
// logs a warning instead, returning the sentinel only so a caller that
// wants to notice the degradation can check with errors.Is.
var (
	// ErrSizeMismatch indicates P and Q have different lengths.
	ErrSizeMismatch = errors.New("kabsch: point set size mismatch")

	// ErrEmptyInput indicates P and Q are both empty (N=0).
	ErrEmptyInput = errors.New("kabsch: empty point sets")

	// ErrSVDFailed wraps a geom.ErrSVDNotConverged encountered while
	// decomposing the cross-covariance matrix.
	ErrSVDFailed = errors.New("kabsch: covariance SVD failed to converge")
)
