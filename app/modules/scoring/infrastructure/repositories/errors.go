package scoringdb

import "errors"

// Sentinel errors for the repository layer. These signal database state, not
// business outcomes; the service layer decides what counts as a failure.
var (
	// ErrNotFound indicates the requested scorecard does not exist.
	ErrNotFound = errors.New("scorecard not found")

	// ErrNoRowsAffected indicates an UPDATE or DELETE matched zero rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
