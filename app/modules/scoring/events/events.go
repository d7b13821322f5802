// Package scoringevents defines the versioned topics and payloads of the
// scoring module.
package scoringevents

import (
	"time"

	"github.com/google/uuid"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

const (
	// RoundFinalizedV1 is published by the round collaborator once a round's
	// raw strokes are locked in.
	RoundFinalizedV1 = "round.finalized.v1"

	// RoundScorecardsProcessedV1 announces computed and persisted scorecards.
	RoundScorecardsProcessedV1 = "scoring.scorecards.processed.v1"
	// RoundScorecardsFailedV1 announces a handled scoring failure.
	RoundScorecardsFailedV1 = "scoring.scorecards.failed.v1"
)

// RoundFinalizedPayloadV1 carries everything the scoring module needs to
// compute a round: setup, roster, and raw strokes.
type RoundFinalizedPayloadV1 struct {
	RoundID   uuid.UUID                  `json:"roundId"`
	Setup     scoringdomain.RoundSetup   `json:"setup"`
	Players   []scoringdomain.PlayerCard `json:"players"`
	PlayedAt  time.Time                  `json:"playedAt"`
	Overwrite bool                       `json:"overwrite"`
}

// RoundScorecardsProcessedPayloadV1 is the success payload for a processed
// round.
type RoundScorecardsProcessedPayloadV1 struct {
	RoundID    uuid.UUID                 `json:"roundId"`
	Format     scoringdomain.Format      `json:"format"`
	PlayedAt   time.Time                 `json:"playedAt"`
	Scorecards []scoringdomain.Scorecard `json:"scorecards"`
}

// RoundScorecardsFailedPayloadV1 is the failure payload for a round that
// could not be processed.
type RoundScorecardsFailedPayloadV1 struct {
	RoundID uuid.UUID `json:"roundId"`
	Reason  string    `json:"reason"`
}
