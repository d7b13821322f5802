package scoringdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

// Repository is the persistence contract of the scoring module.
type Repository interface {
	// ReplaceRoundScorecards deletes any existing cards for the round and
	// inserts the fresh set in one transaction.
	ReplaceRoundScorecards(ctx context.Context, db bun.IDB, roundID uuid.UUID, playedAt time.Time, cards []scoringdomain.Scorecard) error
	// GetRoundScorecards returns all cards for a round, lowest net first.
	GetRoundScorecards(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]scoringdomain.Scorecard, error)
	// HasRoundScorecards reports whether any card exists for the round.
	HasRoundScorecards(ctx context.Context, db bun.IDB, roundID uuid.UUID) (bool, error)
	// GetMemberScorecards returns a member's cards played inside the window,
	// oldest first.
	GetMemberScorecards(ctx context.Context, db bun.IDB, memberID string, from, to time.Time) ([]scoringdomain.Scorecard, error)
}
