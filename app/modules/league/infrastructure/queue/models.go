package leaguequeue

import "github.com/google/uuid"

// StandingsRecomputeJob rebuilds one season's standings at its scheduled
// time. Scheduled after score corrections land, or nightly as a safety net.
type StandingsRecomputeJob struct {
	SeasonID uuid.UUID `json:"season_id"`
}

// Kind returns the job type identifier for River.
func (StandingsRecomputeJob) Kind() string { return "standings_recompute" }
