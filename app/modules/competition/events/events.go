// Package competitionevents defines the versioned topics and payloads of the
// competition module.
package competitionevents

import (
	"github.com/google/uuid"

	"github.com/fairway-collective/tripcaddy/app/modules/competition/skins"
)

const (
	// SkinsComputedV1 announces a round's computed skins results.
	SkinsComputedV1 = "competition.skins.computed.v1"
	// SkinsFailedV1 announces a handled skins computation failure.
	SkinsFailedV1 = "competition.skins.failed.v1"
)

// SkinsComputedPayloadV1 carries a round's full skins outcome.
type SkinsComputedPayloadV1 struct {
	RoundID     uuid.UUID                `json:"roundId"`
	HoleResults []skins.HoleResult       `json:"holeResults"`
	Leaderboard []skins.LeaderboardEntry `json:"leaderboard"`
}

// SkinsFailedPayloadV1 is the failure payload for a round whose skins could
// not be computed.
type SkinsFailedPayloadV1 struct {
	RoundID uuid.UUID `json:"roundId"`
	Reason  string    `json:"reason"`
}
