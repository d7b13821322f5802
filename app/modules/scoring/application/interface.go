package scoringservice

import (
	"context"

	"github.com/google/uuid"

	scoringevents "github.com/fairway-collective/tripcaddy/app/modules/scoring/events"
)

// Service defines the interface for the ScoringService.
type Service interface {
	ProcessRoundScorecards(ctx context.Context, payload scoringevents.RoundFinalizedPayloadV1) (ScorecardOperationResult, error)
	GetRoundLeaderboard(ctx context.Context, roundID uuid.UUID) ([]LeaderboardEntry, error)
	GetRoundMatchups(ctx context.Context, roundID uuid.UUID) ([]Matchup, error)
}
