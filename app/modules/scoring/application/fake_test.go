package scoringservice

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
	"github.com/fairway-collective/tripcaddy/internal/observability"
)

// FakeScorecardRepository provides a programmable stub for the
// scoringdb.Repository interface.
type FakeScorecardRepository struct {
	ReplaceRoundScorecardsFn func(ctx context.Context, db bun.IDB, roundID uuid.UUID, playedAt time.Time, cards []scoringdomain.Scorecard) error
	GetRoundScorecardsFn     func(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]scoringdomain.Scorecard, error)
	HasRoundScorecardsFn     func(ctx context.Context, db bun.IDB, roundID uuid.UUID) (bool, error)
	GetMemberScorecardsFn    func(ctx context.Context, db bun.IDB, memberID string, from, to time.Time) ([]scoringdomain.Scorecard, error)

	ReplacedCards []scoringdomain.Scorecard
}

func (f *FakeScorecardRepository) ReplaceRoundScorecards(ctx context.Context, db bun.IDB, roundID uuid.UUID, playedAt time.Time, cards []scoringdomain.Scorecard) error {
	f.ReplacedCards = cards
	if f.ReplaceRoundScorecardsFn != nil {
		return f.ReplaceRoundScorecardsFn(ctx, db, roundID, playedAt, cards)
	}
	return nil
}

func (f *FakeScorecardRepository) GetRoundScorecards(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]scoringdomain.Scorecard, error) {
	if f.GetRoundScorecardsFn != nil {
		return f.GetRoundScorecardsFn(ctx, db, roundID)
	}
	return nil, nil
}

func (f *FakeScorecardRepository) HasRoundScorecards(ctx context.Context, db bun.IDB, roundID uuid.UUID) (bool, error) {
	if f.HasRoundScorecardsFn != nil {
		return f.HasRoundScorecardsFn(ctx, db, roundID)
	}
	return false, nil
}

func (f *FakeScorecardRepository) GetMemberScorecards(ctx context.Context, db bun.IDB, memberID string, from, to time.Time) ([]scoringdomain.Scorecard, error) {
	if f.GetMemberScorecardsFn != nil {
		return f.GetMemberScorecardsFn(ctx, db, memberID, from, to)
	}
	return nil, nil
}

// newTestService builds a service over the fake with silent telemetry and no
// database; runInTx passes through when db is nil.
func newTestService(repo *FakeScorecardRepository) *ScoringService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewScoringService(repo, nil, logger, observability.NoOpMetrics{}, tracer, nil)
}
