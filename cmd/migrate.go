package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"campaign-wizard/db/migrations"
	"campaign-wizard/internal/config"
	"campaign-wizard/internal/db"
)

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.NewLogger(os.Stdout)

	previous, err := db.Migrate(cfg.Psql.Addr.String())
	if err != nil {
		logger.Error("migration error", slog.Any("error", err))
		return err
	}
	logger.Info("migrations applied", slog.Uint64("from", uint64(previous)), slog.Int("to", migrations.Version))
	return nil
}
