package scoringmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	scoringdb "github.com/fairway-collective/tripcaddy/app/modules/scoring/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating scorecards table...")

		if _, err := db.NewCreateTable().Model((*scoringdb.Scorecard)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS idx_scorecards_round_id ON scorecards(round_id);
			CREATE INDEX IF NOT EXISTS idx_scorecards_member_played ON scorecards(member_id, played_at);
		`); err != nil {
			return fmt.Errorf("failed to add scorecard indices: %w", err)
		}

		fmt.Println("Scorecards table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping scorecards table...")

		if _, err := db.NewDropTable().Model((*scoringdb.Scorecard)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Scorecards table dropped successfully!")
		return nil
	})
}
