package shapeeval

import "errors"

// Sentinel errors for the shapeeval package.
var (
	// ErrSizeMismatch indicates actual and reference point counts differ.
	ErrSizeMismatch = errors.New("shapeeval: actual and reference point counts differ")

	// ErrEmptyInput indicates one or both point sets were empty.
	ErrEmptyInput = errors.New("shapeeval: empty point set")
)
