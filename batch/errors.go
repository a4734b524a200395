package batch

import "errors"

// ErrAlreadyRunning indicates Run was called on a Driver already Running.
var ErrAlreadyRunning = errors.New("batch: driver is already running")
