package reflib

import "errors"

// Sentinel errors for the reflib package.
var (
	// ErrNoReference indicates the library has no entry for a requested CN.
	ErrNoReference = errors.New("reflib: no reference geometries for this coordination number")

	// ErrUnknownCode indicates a requested code is absent for a CN that
	// otherwise has entries.
	ErrUnknownCode = errors.New("reflib: unknown reference code for this coordination number")
)
