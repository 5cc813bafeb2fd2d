//go:build integration

// internal/store/store_integration_test.go
package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"org-commit-harvester/internal/database"
	"org-commit-harvester/internal/model"
	"org-commit-harvester/internal/testutil"
)

func setupStore(ctx context.Context, t *testing.T) (*Store, *database.Queries) {
	t.Helper()

	dbURL := testutil.StartPostgres(ctx, t)
	dbpool, err := Open(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(dbpool.Close)

	// A second run of the migrations must be a no-op.
	require.NoError(t, database.RunMigrations(dbURL))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(dbpool, logger), database.New(dbpool)
}

func commitsFor(shas ...string) []model.Commit {
	commits := make([]model.Commit, len(shas))
	for i, sha := range shas {
		commits[i] = model.Commit{
			SHA:       sha,
			Author:    "alice",
			Date:      time.Date(2024, 1, 1+i, 12, 0, 0, 0, time.UTC),
			Additions: 10 + i,
			Deletions: i,
			Message:   "commit " + sha,
		}
	}
	return commits
}

func batchOf(name string, commits []model.Commit) []model.RepoCommits {
	return []model.RepoCommits{{
		Repository: model.Repository{Name: name, TotalCommits: len(commits)},
		Commits:    commits,
	}}
}

func TestStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	t.Run("full sync twice is idempotent", func(t *testing.T) {
		s, q := setupStore(ctx, t)
		batch := batchOf("alpha", commitsFor("a1", "a2", "a3"))

		first, err := s.SaveBatch(ctx, model.FullSync(), batch)
		require.NoError(t, err)
		assert.Equal(t, int64(3), first.CommitsInserted)

		second, err := s.SaveBatch(ctx, model.FullSync(), batch)
		require.NoError(t, err)
		assert.Zero(t, second.CommitsInserted)
		assert.Equal(t, int64(3), second.CommitsSkipped)

		repo, err := q.GetRepositoryByName(ctx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, int32(3), repo.TotalCommits)
		assert.True(t, repo.LastSyncedAt.Valid)

		count, err := q.CountCommitsByRepoID(ctx, repo.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("incremental sync adds to the stored counter", func(t *testing.T) {
		s, q := setupStore(ctx, t)

		_, err := s.SaveBatch(ctx, model.FullSync(), batchOf("alpha", commitsFor("a1", "a2", "a3", "a4")))
		require.NoError(t, err)

		result, err := s.SaveBatch(ctx, model.IncrementalSync(time.Now()), batchOf("alpha", commitsFor("b1", "b2")))
		require.NoError(t, err)
		assert.Equal(t, 6, result.Totals["alpha"])

		repo, err := q.GetRepositoryByName(ctx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, int32(6), repo.TotalCommits)
	})

	t.Run("first write of a commit wins", func(t *testing.T) {
		s, q := setupStore(ctx, t)
		original := commitsFor("dup")
		changed := commitsFor("dup")
		changed[0].Additions = 999
		changed[0].Author = "mallory"

		_, err := s.SaveBatch(ctx, model.FullSync(), batchOf("alpha", original))
		require.NoError(t, err)
		_, err = s.SaveBatch(ctx, model.FullSync(), batchOf("beta", changed))
		require.NoError(t, err)

		stored, err := q.GetCommitBySha(ctx, "dup")
		require.NoError(t, err)
		assert.Equal(t, int32(10), stored.Additions)
		assert.Equal(t, "alice", stored.Author)

		alpha, err := q.GetRepositoryByName(ctx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, alpha.ID, stored.RepositoryID)
	})

	t.Run("deleting a repository cascades to its commits", func(t *testing.T) {
		s, q := setupStore(ctx, t)

		_, err := s.SaveBatch(ctx, model.FullSync(), batchOf("alpha", commitsFor("a1", "a2")))
		require.NoError(t, err)

		_, err = s.dbpool.Exec(ctx, "DELETE FROM repositories WHERE name = $1", "alpha")
		require.NoError(t, err)

		var remaining int
		require.NoError(t, s.dbpool.QueryRow(ctx, "SELECT COUNT(*) FROM commits").Scan(&remaining))
		assert.Zero(t, remaining)

		repos, err := q.ListRepositories(ctx)
		require.NoError(t, err)
		assert.Empty(t, repos)
	})
}
