// Package leagueevents defines the versioned topics and payloads of the
// league module.
package leagueevents

import (
	"github.com/google/uuid"

	"github.com/fairway-collective/tripcaddy/app/modules/league/standings"
)

const (
	// StandingsUpdatedV1 announces freshly computed season standings.
	StandingsUpdatedV1 = "league.standings.updated.v1"
	// StandingsFailedV1 announces a handled standings computation failure.
	StandingsFailedV1 = "league.standings.failed.v1"
)

// StandingsUpdatedPayloadV1 carries a season's recomputed table.
type StandingsUpdatedPayloadV1 struct {
	SeasonID  uuid.UUID            `json:"seasonId"`
	Standings []standings.Standing `json:"standings"`
}

// StandingsFailedPayloadV1 is the failure payload for a season whose
// standings could not be recomputed.
type StandingsFailedPayloadV1 struct {
	SeasonID uuid.UUID `json:"seasonId"`
	Reason   string    `json:"reason"`
}
