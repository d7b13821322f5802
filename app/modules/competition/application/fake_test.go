package competitionservice

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	competitiondb "github.com/fairway-collective/tripcaddy/app/modules/competition/infrastructure/repositories"
	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
	"github.com/fairway-collective/tripcaddy/internal/observability"
)

// FakeCompetitionRepository provides a programmable stub for the
// competitiondb.Repository interface.
type FakeCompetitionRepository struct {
	UpsertRoundResultFn    func(ctx context.Context, db bun.IDB, roundID uuid.UUID, kind string, payload json.RawMessage) error
	GetRoundResultFn       func(ctx context.Context, db bun.IDB, roundID uuid.UUID, kind string) (json.RawMessage, error)
	InsertCTPMeasurementFn func(ctx context.Context, db bun.IDB, m *competitiondb.CTPMeasurement) error
	GetCTPMeasurementsFn   func(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]competitiondb.CTPMeasurement, error)

	UpsertedKind    string
	UpsertedPayload json.RawMessage
	Inserted        []*competitiondb.CTPMeasurement
}

func (f *FakeCompetitionRepository) UpsertRoundResult(ctx context.Context, db bun.IDB, roundID uuid.UUID, kind string, payload json.RawMessage) error {
	f.UpsertedKind = kind
	f.UpsertedPayload = payload
	if f.UpsertRoundResultFn != nil {
		return f.UpsertRoundResultFn(ctx, db, roundID, kind, payload)
	}
	return nil
}

func (f *FakeCompetitionRepository) GetRoundResult(ctx context.Context, db bun.IDB, roundID uuid.UUID, kind string) (json.RawMessage, error) {
	if f.GetRoundResultFn != nil {
		return f.GetRoundResultFn(ctx, db, roundID, kind)
	}
	return nil, competitiondb.ErrNotFound
}

func (f *FakeCompetitionRepository) InsertCTPMeasurement(ctx context.Context, db bun.IDB, m *competitiondb.CTPMeasurement) error {
	f.Inserted = append(f.Inserted, m)
	if f.InsertCTPMeasurementFn != nil {
		return f.InsertCTPMeasurementFn(ctx, db, m)
	}
	return nil
}

func (f *FakeCompetitionRepository) GetCTPMeasurements(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]competitiondb.CTPMeasurement, error) {
	if f.GetCTPMeasurementsFn != nil {
		return f.GetCTPMeasurementsFn(ctx, db, roundID)
	}
	return nil, nil
}

// FakeScorecardReader stubs the read-only slice of the scoring repository.
type FakeScorecardReader struct {
	GetRoundScorecardsFn func(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]scoringdomain.Scorecard, error)
	Calls                int
}

func (f *FakeScorecardReader) GetRoundScorecards(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]scoringdomain.Scorecard, error) {
	f.Calls++
	if f.GetRoundScorecardsFn != nil {
		return f.GetRoundScorecardsFn(ctx, db, roundID)
	}
	return nil, nil
}

// newTestService builds a service over the fakes with silent telemetry and no
// database; runInTx passes through when db is nil.
func newTestService(repo *FakeCompetitionRepository, reader *FakeScorecardReader) *CompetitionService {
	if reader == nil {
		reader = &FakeScorecardReader{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewCompetitionService(repo, reader, nil, logger, observability.NoOpMetrics{}, tracer, nil)
}
