// cmd/harvester/root.go
package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"org-commit-harvester/internal/config"
	"org-commit-harvester/internal/database"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "harvester",
		Short: "Harvests commit metadata for every repository of a GitHub organization",
		Long: `harvester lists the repositories of a GitHub organization, fetches the commits
on each default branch together with their line statistics, and stores them in
PostgreSQL. Runs are either a full backfill or an incremental refresh of the
last 24 hours.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(newSyncCmd(), newMigrateCmd())
	return root
}

// loadCommandConfig loads configuration with the command's flags bound on top
// and applies the configured log level.
func loadCommandConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	logger, logLevel := newLogger()

	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	setLogLevel(cfg.LogLevel, logLevel)
	logger.Info("Configuration loaded successfully")

	return cfg, logger, nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadCommandConfig(cmd)
			if err != nil {
				return err
			}
			return runMigrate(cmd.Context(), cfg, logger)
		},
	}
}

func runMigrate(_ context.Context, cfg *config.Config, logger *slog.Logger) error {
	if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	logger.Info("Database migrations applied successfully")
	return nil
}
