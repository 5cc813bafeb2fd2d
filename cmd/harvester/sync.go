// cmd/harvester/sync.go
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"org-commit-harvester/internal/config"
	"org-commit-harvester/internal/github"
	"org-commit-harvester/internal/store"
	"org-commit-harvester/internal/syncer"
)

var (
	_ syncer.RepoLister    = (*github.Client)(nil)
	_ syncer.CommitFetcher = (*github.Client)(nil)
	_ syncer.BatchStore    = (*store.Store)(nil)
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch the organization's commits and store them",
		Long: `sync runs one synchronization pass. A full sync fetches the entire history of
every default branch and replaces each repository's commit counter. An
incremental sync (--incremental or INCREMENTAL_SYNC=true) fetches only commits
authored in the last 24 hours and adds them to the stored counters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadCommandConfig(cmd)
			if err != nil {
				return err
			}
			verbose, _ := cmd.Flags().GetBool("verbose")

			// A run is not cancellable: it completes or the process exits.
			return runSync(context.Background(), cfg, logger, cmd.OutOrStdout(), verbose)
		},
	}

	cmd.Flags().String("org", config.DefaultOrganization, "GitHub organization to harvest")
	cmd.Flags().Bool("incremental", false, "only fetch commits authored in the last 24 hours")
	cmd.Flags().BoolP("verbose", "v", false, "print every stored commit in the report")
	return cmd
}

func runSync(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer, verbose bool) error {
	if err := cfg.RequireGithubToken(); err != nil {
		return err
	}

	// Schema first: no data is written before the migrations are committed.
	if err := runMigrate(ctx, cfg, logger); err != nil {
		return err
	}

	dbpool, err := store.Open(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbpool.Close()
	logger.Info("Database connection established")

	ghClient, err := github.NewClient(cfg.GithubToken, logger, githubOptions(cfg)...)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	appSyncer := syncer.NewSyncer(ghClient, ghClient, store.New(dbpool, logger), logger, cfg.OrgName)
	summary, err := appSyncer.Run(ctx, cfg.SyncMode(time.Now()))
	if err != nil {
		return err
	}

	return syncer.WriteReport(stdout, summary, verbose)
}

func githubOptions(cfg *config.Config) []github.Option {
	var opts []github.Option
	if cfg.GithubAPIURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.GithubAPIURL))
	}
	if cfg.GithubRateLimitWait {
		opts = append(opts, github.WithRateLimitWait())
	}
	return opts
}
