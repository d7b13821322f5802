// Package bundb owns the shared bun connection and the per-module
// repositories built on it.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	competitiondb "github.com/fairway-collective/tripcaddy/app/modules/competition/infrastructure/repositories"
	leaguedb "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/repositories"
	scoringdb "github.com/fairway-collective/tripcaddy/app/modules/scoring/infrastructure/repositories"
	"github.com/fairway-collective/tripcaddy/config"
)

// DBService bundles the shared pool with each module's repository.
type DBService struct {
	ScoringDB     *scoringdb.ScorecardDBImpl
	CompetitionDB *competitiondb.CompetitionDBImpl
	LeagueDB      *leaguedb.LeagueDBImpl
	db            *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// NewBunDBService opens the Postgres pool and builds the module
// repositories.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	return &DBService{
		ScoringDB:     &scoringdb.ScorecardDBImpl{DB: db},
		CompetitionDB: &competitiondb.CompetitionDBImpl{DB: db},
		LeagueDB:      &leaguedb.LeagueDBImpl{DB: db},
		db:            db,
	}, nil
}
