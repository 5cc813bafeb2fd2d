// internal/syncer/syncer.go
package syncer

import (
	"context"
	"fmt"
	"log/slog"

	"org-commit-harvester/internal/model"
)

// RepoLister enumerates the repositories of an organization. It never fails:
// a listing cut short by a remote error returns what it collected.
type RepoLister interface {
	ListOrgRepos(ctx context.Context, org string) []string
}

// CommitFetcher fetches the commits of one repository. Commits returned
// alongside an error are partial results and are kept.
type CommitFetcher interface {
	FetchCommits(ctx context.Context, owner, repo string, mode model.SyncMode) ([]model.Commit, error)
}

// BatchStore persists one run's results atomically.
type BatchStore interface {
	SaveBatch(ctx context.Context, mode model.SyncMode, batch []model.RepoCommits) (model.SaveResult, error)
}

// FetchFailure records a repository whose fetch ended early.
type FetchFailure struct {
	Repo string
	Err  error
}

// Summary describes a completed run.
type Summary struct {
	Org      string
	Mode     model.SyncMode
	Repos    []model.RepoCommits
	Failures []FetchFailure
	Saved    model.SaveResult
}

// Syncer orchestrates the fetching and storing of data.
type Syncer struct {
	lister  RepoLister
	fetcher CommitFetcher
	store   BatchStore
	logger  *slog.Logger
	org     string
}

// NewSyncer creates a new Syncer instance for org.
func NewSyncer(lister RepoLister, fetcher CommitFetcher, store BatchStore, logger *slog.Logger, org string) *Syncer {
	return &Syncer{
		lister:  lister,
		fetcher: fetcher,
		store:   store,
		logger:  logger,
		org:     org,
	}
}

// Run syncs every repository of the organization sequentially in the given
// mode. Nothing is written until all repositories have been fetched; the whole
// batch is then handed to the store at once. Fetch failures are logged and
// recorded in the summary, and only a store failure is returned.
func (s *Syncer) Run(ctx context.Context, mode model.SyncMode) (*Summary, error) {
	logger := s.logger.With("org", s.org, "mode", mode.String())
	logger.Info("Starting sync run")

	names := s.lister.ListOrgRepos(ctx, s.org)
	logger.Info("Total repositories in organization", "count", len(names))

	summary := &Summary{
		Org:   s.org,
		Mode:  mode,
		Repos: make([]model.RepoCommits, 0, len(names)),
	}

	for _, name := range names {
		commits, err := s.fetcher.FetchCommits(ctx, s.org, name, mode)
		if err != nil {
			logger.Warn("Repository fetch ended early, keeping collected commits",
				"repo", name, "collected", len(commits), "error", err)
			summary.Failures = append(summary.Failures, FetchFailure{Repo: name, Err: err})
		}

		summary.Repos = append(summary.Repos, model.RepoCommits{
			Repository: model.Repository{Name: name, TotalCommits: len(commits)},
			Commits:    commits,
		})
		logger.Info("Fetched repository", "repo", name, "commits", len(commits))
	}

	saved, err := s.store.SaveBatch(ctx, mode, summary.Repos)
	if err != nil {
		return nil, fmt.Errorf("persisting sync batch: %w", err)
	}
	summary.Saved = saved

	logger.Info("Sync run finished",
		"repositories", saved.RepositoriesUpserted,
		"commits_inserted", saved.CommitsInserted,
		"commits_skipped", saved.CommitsSkipped,
		"fetch_failures", len(summary.Failures))
	return summary, nil
}
