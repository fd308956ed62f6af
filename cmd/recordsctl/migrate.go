package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/precinct-records/internal/adapter/postgres"
	"github.com/heartmarshall/precinct-records/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	applied, err := postgres.Migrate(cmd.Context(), cfg.Database.DSN, migrations.FS)
	if err != nil {
		return err
	}

	logger.Info("migrations applied", slog.Int("applied", applied))
	return nil
}
