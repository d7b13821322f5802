package leaguedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// LeagueDBImpl implements Repository on bun.
type LeagueDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*LeagueDBImpl)(nil)

func (r *LeagueDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *LeagueDBImpl) CreateSeason(ctx context.Context, db bun.IDB, season *Season) error {
	if season.ID == uuid.Nil {
		season.ID = uuid.New()
	}
	if _, err := r.idb(db).NewInsert().Model(season).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create season %s: %w", season.Name, err)
	}
	return nil
}

func (r *LeagueDBImpl) GetSeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) (*Season, error) {
	season := &Season{}
	err := r.idb(db).NewSelect().
		Model(season).
		Where("id = ?", seasonID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("failed to fetch season %s: %w", seasonID, err)
	}
	return season, nil
}

func (r *LeagueDBImpl) GetActiveSeasons(ctx context.Context, db bun.IDB, at time.Time) ([]Season, error) {
	var seasons []Season
	err := r.idb(db).NewSelect().
		Model(&seasons).
		Where("starts_at <= ?", at).
		Where("ends_at >= ?", at).
		Order("starts_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active seasons: %w", err)
	}
	return seasons, nil
}

func (r *LeagueDBImpl) ReplaceRoundResults(ctx context.Context, db bun.IDB, seasonID, roundID uuid.UUID, rows []SeasonRound) error {
	idb := r.idb(db)

	if _, err := idb.NewDelete().
		Model((*SeasonRound)(nil)).
		Where("season_id = ?", seasonID).
		Where("round_id = ?", roundID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear round %s results in season %s: %w", roundID, seasonID, err)
	}

	if len(rows) == 0 {
		return nil
	}

	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
		rows[i].SeasonID = seasonID
		rows[i].RoundID = roundID
	}

	if _, err := idb.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert round %s results in season %s: %w", roundID, seasonID, err)
	}
	return nil
}

func (r *LeagueDBImpl) GetSeasonRounds(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]SeasonRound, error) {
	var rows []SeasonRound
	err := r.idb(db).NewSelect().
		Model(&rows).
		Where("season_id = ?", seasonID).
		Order("played_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rounds for season %s: %w", seasonID, err)
	}
	return rows, nil
}

func (r *LeagueDBImpl) ReplaceStandings(ctx context.Context, db bun.IDB, seasonID uuid.UUID, rows []SeasonStanding) error {
	idb := r.idb(db)

	if _, err := idb.NewDelete().
		Model((*SeasonStanding)(nil)).
		Where("season_id = ?", seasonID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear standings for season %s: %w", seasonID, err)
	}

	if len(rows) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
		rows[i].SeasonID = seasonID
		rows[i].ComputedAt = now
	}

	if _, err := idb.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert standings for season %s: %w", seasonID, err)
	}
	return nil
}

func (r *LeagueDBImpl) GetStandings(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]SeasonStanding, error) {
	var rows []SeasonStanding
	err := r.idb(db).NewSelect().
		Model(&rows).
		Where("season_id = ?", seasonID).
		OrderExpr("eligible DESC, CASE WHEN position = 0 THEN NULL ELSE position END ASC NULLS LAST, total_points DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch standings for season %s: %w", seasonID, err)
	}
	return rows, nil
}
