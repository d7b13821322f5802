package leaguedb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrSeasonNotFound indicates the requested season does not exist.
	ErrSeasonNotFound = errors.New("season not found")
)
