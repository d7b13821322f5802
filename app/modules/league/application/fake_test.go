package leagueservice

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	leaguedb "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/repositories"
	"github.com/fairway-collective/tripcaddy/internal/observability"
)

// FakeLeagueRepository provides a programmable stub for the
// leaguedb.Repository interface.
type FakeLeagueRepository struct {
	CreateSeasonFn        func(ctx context.Context, db bun.IDB, season *leaguedb.Season) error
	GetSeasonFn           func(ctx context.Context, db bun.IDB, seasonID uuid.UUID) (*leaguedb.Season, error)
	GetActiveSeasonsFn    func(ctx context.Context, db bun.IDB, at time.Time) ([]leaguedb.Season, error)
	ReplaceRoundResultsFn func(ctx context.Context, db bun.IDB, seasonID, roundID uuid.UUID, rows []leaguedb.SeasonRound) error
	GetSeasonRoundsFn     func(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]leaguedb.SeasonRound, error)
	ReplaceStandingsFn    func(ctx context.Context, db bun.IDB, seasonID uuid.UUID, rows []leaguedb.SeasonStanding) error
	GetStandingsFn        func(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]leaguedb.SeasonStanding, error)

	CreatedSeason     *leaguedb.Season
	ReplacedRounds    []leaguedb.SeasonRound
	ReplacedStandings []leaguedb.SeasonStanding
}

func (f *FakeLeagueRepository) CreateSeason(ctx context.Context, db bun.IDB, season *leaguedb.Season) error {
	f.CreatedSeason = season
	if f.CreateSeasonFn != nil {
		return f.CreateSeasonFn(ctx, db, season)
	}
	return nil
}

func (f *FakeLeagueRepository) GetSeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) (*leaguedb.Season, error) {
	if f.GetSeasonFn != nil {
		return f.GetSeasonFn(ctx, db, seasonID)
	}
	return &leaguedb.Season{ID: seasonID}, nil
}

func (f *FakeLeagueRepository) GetActiveSeasons(ctx context.Context, db bun.IDB, at time.Time) ([]leaguedb.Season, error) {
	if f.GetActiveSeasonsFn != nil {
		return f.GetActiveSeasonsFn(ctx, db, at)
	}
	return nil, nil
}

func (f *FakeLeagueRepository) ReplaceRoundResults(ctx context.Context, db bun.IDB, seasonID, roundID uuid.UUID, rows []leaguedb.SeasonRound) error {
	f.ReplacedRounds = rows
	if f.ReplaceRoundResultsFn != nil {
		return f.ReplaceRoundResultsFn(ctx, db, seasonID, roundID, rows)
	}
	return nil
}

func (f *FakeLeagueRepository) GetSeasonRounds(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]leaguedb.SeasonRound, error) {
	if f.GetSeasonRoundsFn != nil {
		return f.GetSeasonRoundsFn(ctx, db, seasonID)
	}
	return nil, nil
}

func (f *FakeLeagueRepository) ReplaceStandings(ctx context.Context, db bun.IDB, seasonID uuid.UUID, rows []leaguedb.SeasonStanding) error {
	f.ReplacedStandings = rows
	if f.ReplaceStandingsFn != nil {
		return f.ReplaceStandingsFn(ctx, db, seasonID, rows)
	}
	return nil
}

func (f *FakeLeagueRepository) GetStandings(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]leaguedb.SeasonStanding, error) {
	if f.GetStandingsFn != nil {
		return f.GetStandingsFn(ctx, db, seasonID)
	}
	return nil, nil
}

// newTestService builds a service over the fake with silent telemetry and no
// database; runInTx passes through when db is nil.
func newTestService(repo *FakeLeagueRepository) *LeagueService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewLeagueService(repo, nil, logger, observability.NoOpMetrics{}, tracer, nil)
}
