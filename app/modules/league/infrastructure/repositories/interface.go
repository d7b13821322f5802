package leaguedb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository is the persistence contract of the league module.
type Repository interface {
	// CreateSeason stores a new season.
	CreateSeason(ctx context.Context, db bun.IDB, season *Season) error
	// GetSeason returns a season by ID, or ErrSeasonNotFound.
	GetSeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) (*Season, error)
	// GetActiveSeasons returns seasons whose window contains the given time.
	GetActiveSeasons(ctx context.Context, db bun.IDB, at time.Time) ([]Season, error)

	// ReplaceRoundResults swaps a round's rows within a season.
	ReplaceRoundResults(ctx context.Context, db bun.IDB, seasonID, roundID uuid.UUID, rows []SeasonRound) error
	// GetSeasonRounds returns every recorded result of a season.
	GetSeasonRounds(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]SeasonRound, error)

	// ReplaceStandings swaps a season's computed standings.
	ReplaceStandings(ctx context.Context, db bun.IDB, seasonID uuid.UUID, rows []SeasonStanding) error
	// GetStandings returns a season's standings in position order, unranked
	// rows last.
	GetStandings(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]SeasonStanding, error)
}
