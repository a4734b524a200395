package optimizer

import "errors"

// Sentinel errors for the optimizer package.
var (
	// ErrSizeMismatch indicates actual and reference point counts differ.
	ErrSizeMismatch = errors.New("optimizer: actual and reference point counts differ")

	// ErrEmptyInput indicates one or both point sets were empty.
	ErrEmptyInput = errors.New("optimizer: empty point set")
)
