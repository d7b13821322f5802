package leagueservice

import (
	"context"

	"github.com/google/uuid"

	leagueevents "github.com/fairway-collective/tripcaddy/app/modules/league/events"
	leaguedb "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/repositories"
	"github.com/fairway-collective/tripcaddy/app/modules/league/standings"
	scoringevents "github.com/fairway-collective/tripcaddy/app/modules/scoring/events"
)

// Service defines the interface for the LeagueService.
type Service interface {
	CreateSeason(ctx context.Context, req CreateSeasonRequest) (*leaguedb.Season, error)
	GetSeason(ctx context.Context, seasonID uuid.UUID) (*leaguedb.Season, error)

	RecordRoundResults(ctx context.Context, payload scoringevents.RoundScorecardsProcessedPayloadV1) ([]leagueevents.StandingsUpdatedPayloadV1, error)
	RecomputeStandings(ctx context.Context, seasonID uuid.UUID) (StandingsOperationResult, error)
	GetSeasonStandings(ctx context.Context, seasonID uuid.UUID) ([]standings.Standing, error)

	RenderStandingsChart(ctx context.Context, seasonID uuid.UUID) ([]byte, error)
	ExportStandingsXLSX(ctx context.Context, seasonID uuid.UUID) ([]byte, error)
}
