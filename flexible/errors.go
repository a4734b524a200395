package flexible

import "errors"

// ErrSizeMismatch indicates actual and reference point counts differ.
var ErrSizeMismatch = errors.New("flexible: actual and reference point counts differ")
