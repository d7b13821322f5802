package competitionmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	competitiondb "github.com/fairway-collective/tripcaddy/app/modules/competition/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating competition tables...")

		if _, err := db.NewCreateTable().Model((*competitiondb.RoundResult)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*competitiondb.CTPMeasurement)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.ExecContext(ctx, `
			CREATE UNIQUE INDEX IF NOT EXISTS idx_competition_results_round_kind ON competition_results(round_id, kind);
			CREATE INDEX IF NOT EXISTS idx_ctp_measurements_round_id ON ctp_measurements(round_id);
		`); err != nil {
			return fmt.Errorf("failed to add competition indices: %w", err)
		}

		fmt.Println("Competition tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping competition tables...")

		if _, err := db.NewDropTable().Model((*competitiondb.CTPMeasurement)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*competitiondb.RoundResult)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Competition tables dropped successfully!")
		return nil
	})
}
