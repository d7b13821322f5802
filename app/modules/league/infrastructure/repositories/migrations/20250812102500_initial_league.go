package leaguemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	leaguedb "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating league tables...")

		for _, model := range []any{
			(*leaguedb.Season)(nil),
			(*leaguedb.SeasonRound)(nil),
			(*leaguedb.SeasonStanding)(nil),
		} {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return err
			}
		}

		if _, err := db.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS idx_league_season_rounds_season ON league_season_rounds(season_id, round_id);
			CREATE INDEX IF NOT EXISTS idx_league_standings_season ON league_standings(season_id);
		`); err != nil {
			return fmt.Errorf("failed to add league indices: %w", err)
		}

		fmt.Println("League tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping league tables...")

		for _, model := range []any{
			(*leaguedb.SeasonStanding)(nil),
			(*leaguedb.SeasonRound)(nil),
			(*leaguedb.Season)(nil),
		} {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return err
			}
		}

		fmt.Println("League tables dropped successfully!")
		return nil
	})
}
