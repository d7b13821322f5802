package scoringmigrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations()

func init() {
	// Enable automatic discovery of the caller file name so each migration
	// registered with MustRegister gets a stable ID derived from its file.
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
