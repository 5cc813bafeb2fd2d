// internal/store/store.go
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"org-commit-harvester/internal/database"
	"org-commit-harvester/internal/model"
)

// Open connects to PostgreSQL with a pool capped at a single connection, the
// one shared handle a run writes through.
func Open(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}
	cfg.MaxConns = 1

	dbpool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return dbpool, nil
}

// Store persists sync batches.
//
// Counter updates read the prior value before writing it back, which is only
// correct with a single writer. Concurrent runs need an atomic increment here.
type Store struct {
	dbpool *pgxpool.Pool
	logger *slog.Logger
}

// New creates a Store writing through dbpool.
func New(dbpool *pgxpool.Pool, logger *slog.Logger) *Store {
	return &Store{dbpool: dbpool, logger: logger}
}

// SaveBatch writes every repository and its commits in one transaction.
// Repositories are upserted by name; commits are inserted by sha and an
// existing sha is left untouched. In incremental mode a repository's counter
// becomes its stored value plus the fetched count, otherwise the fetched count.
func (s *Store) SaveBatch(ctx context.Context, mode model.SyncMode, batch []model.RepoCommits) (model.SaveResult, error) {
	tx, err := s.dbpool.Begin(ctx)
	if err != nil {
		return model.SaveResult{}, fmt.Errorf("beginning sync batch: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback is a no-op if the transaction is already committed.

	result, err := s.saveBatch(ctx, database.New(tx), mode, batch)
	if err != nil {
		return model.SaveResult{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.SaveResult{}, fmt.Errorf("committing sync batch: %w", err)
	}
	return result, nil
}

func (s *Store) saveBatch(ctx context.Context, q database.Querier, mode model.SyncMode, batch []model.RepoCommits) (model.SaveResult, error) {
	result := model.SaveResult{Totals: make(map[string]int, len(batch))}

	for _, rc := range batch {
		logger := s.logger.With("repo", rc.Repository.Name)

		dbRepo, err := s.upsertRepository(ctx, q, mode, rc.Repository)
		if err != nil {
			return model.SaveResult{}, fmt.Errorf("upserting repository %q: %w", rc.Repository.Name, err)
		}
		result.RepositoriesUpserted++
		result.Totals[dbRepo.Name] = int(dbRepo.TotalCommits)

		var inserted, skipped int64
		for _, c := range rc.Commits {
			n, err := q.InsertCommit(ctx, prepareCommitInsert(dbRepo.ID, c))
			if err != nil {
				return model.SaveResult{}, fmt.Errorf("inserting commit %s for %q: %w", c.SHA, rc.Repository.Name, err)
			}
			if n == 0 {
				skipped++
				continue
			}
			inserted += n
		}
		result.CommitsInserted += inserted
		result.CommitsSkipped += skipped

		logger.Info("Stored repository batch",
			"repo_id", dbRepo.ID, "total_commits", dbRepo.TotalCommits, "inserted", inserted, "skipped", skipped)
	}

	return result, nil
}

func (s *Store) upsertRepository(ctx context.Context, q database.Querier, mode model.SyncMode, repo model.Repository) (database.Repository, error) {
	total := repo.TotalCommits
	if mode.IsIncremental() {
		prior, err := priorCommitCount(ctx, q, repo.Name)
		if err != nil {
			return database.Repository{}, err
		}
		total += prior
	}

	return q.UpsertRepository(ctx, database.UpsertRepositoryParams{
		Name:         repo.Name,
		TotalCommits: int32(total),
	})
}

// priorCommitCount returns the stored counter for name, or 0 for a repository
// that has never been synced.
func priorCommitCount(ctx context.Context, q database.Querier, name string) (int, error) {
	existing, err := q.GetRepositoryByName(ctx, name)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading prior commit count: %w", err)
	}
	return int(existing.TotalCommits), nil
}

func prepareCommitInsert(repoID int64, c model.Commit) database.InsertCommitParams {
	return database.InsertCommitParams{
		Sha:          c.SHA,
		Author:       c.Author,
		CommittedAt:  pgtype.Timestamptz{Time: c.Date, Valid: true},
		Additions:    int32(c.Additions),
		Deletions:    int32(c.Deletions),
		Message:      c.Message,
		RepositoryID: repoID,
	}
}
