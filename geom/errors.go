package geom

import "errors"

// Sentinel errors for geom package operations. Following the teacher's
// convention (matrix/errors.go), every message is prefixed "geom: ..." and
// returned directly — callers wrap with fmt.Errorf("%w", ...) if context is
// needed, and match with errors.Is.
var (
	// ErrSVDNotConverged indicates the Jacobi sweep did not converge to tol
	// within MaxIter iterations.
	ErrSVDNotConverged = errors.New("geom: SVD did not converge")
)
