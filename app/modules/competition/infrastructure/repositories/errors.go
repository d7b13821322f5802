package competitiondb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates no result has been computed for the round and kind.
	ErrNotFound = errors.New("competition result not found")
)
