// internal/github/commits.go
package github

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v62/github"

	custom_errors "org-commit-harvester/internal/errors"
	"org-commit-harvester/internal/model"
)

const (
	// UnknownAuthor is stored when a commit carries neither an account nor a committer name.
	UnknownAuthor = "Unknown"
	// NoMessage is stored when a commit has an empty message.
	NoMessage = "No commit message"
)

// authorSource yields a display name for a commit, or "" if it has none.
type authorSource func(*github.RepositoryCommit) string

// authorSources are tried in order; UnknownAuthor is the terminal default.
var authorSources = []authorSource{
	func(c *github.RepositoryCommit) string { return c.GetAuthor().GetLogin() },
	func(c *github.RepositoryCommit) string { return c.GetCommit().GetCommitter().GetName() },
}

func resolveAuthor(c *github.RepositoryCommit) string {
	for _, source := range authorSources {
		if name := source(c); name != "" {
			return name
		}
	}
	return UnknownAuthor
}

// FetchCommits returns the commits on the default branch of owner/repo, newest
// first, each with its line statistics. In incremental mode only commits
// authored after the mode's lower bound are listed.
//
// A non-nil error does not discard the returned commits: when a listing page
// or a stats lookup fails, the commits assembled before the failure are
// returned together with the error and the rest of the repository is skipped.
func (c *Client) FetchCommits(ctx context.Context, owner, repo string, mode model.SyncMode) ([]model.Commit, error) {
	logger := c.logger.With("owner", owner, "repo", repo)

	branch, err := c.defaultBranch(ctx, owner, repo)
	if err != nil {
		logger.Warn("Skipping repository without a resolvable default branch", "error", err)
		return nil, err
	}

	pager := NewPager(func(ctx context.Context, page int) ([]*github.RepositoryCommit, error) {
		logger.Debug("Fetching commits page", "branch", branch, "page", page)
		commits, _, err := c.gh.Repositories.ListCommits(ctx, owner, repo, &github.CommitsListOptions{
			SHA:         branch,
			Since:       mode.LowerBound(),
			ListOptions: github.ListOptions{PerPage: c.perPage, Page: page},
		})
		return commits, err
	})

	var commits []model.Commit
	for pager.HasMore() {
		page, err := pager.Next(ctx)
		if err != nil {
			logger.Error("Error fetching commits, keeping partial history",
				"page", pager.Page(), "collected", len(commits), "error", err)
			return commits, fmt.Errorf("listing commits for %s/%s (page %d): %w", owner, repo, pager.Page(), err)
		}

		for _, summary := range page {
			stats, err := c.commitStats(ctx, owner, repo, summary.GetSHA())
			if err != nil {
				logger.Error("Error fetching commit stats, stopping repository",
					"sha", summary.GetSHA(), "collected", len(commits), "error", err)
				return commits, &custom_errors.CommitStatsError{Repo: repo, SHA: summary.GetSHA(), Err: err}
			}
			commits = append(commits, toInternalCommit(summary, stats))
		}
	}

	logger.Info("Fetched commits", "branch", branch, "mode", mode.String(), "count", len(commits))
	return commits, nil
}

func (c *Client) defaultBranch(ctx context.Context, owner, repo string) (string, error) {
	r, _, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("fetching repository details for %s/%s: %w", owner, repo, err)
	}
	if r.GetDefaultBranch() == "" {
		return "", &custom_errors.ErrMissingDefaultBranch{Repo: repo}
	}
	return r.GetDefaultBranch(), nil
}

func (c *Client) commitStats(ctx context.Context, owner, repo, sha string) (*github.CommitStats, error) {
	detail, _, err := c.gh.Repositories.GetCommit(ctx, owner, repo, sha, nil)
	if err != nil {
		return nil, err
	}
	return detail.GetStats(), nil
}

// toInternalCommit translates a commit summary and its stats to our internal model.Commit.
func toInternalCommit(c *github.RepositoryCommit, stats *github.CommitStats) model.Commit {
	message := c.GetCommit().GetMessage()
	if message == "" {
		message = NoMessage
	}

	return model.Commit{
		SHA:       c.GetSHA(),
		Author:    resolveAuthor(c),
		Date:      authoredAt(c),
		Additions: stats.GetAdditions(),
		Deletions: stats.GetDeletions(),
		Message:   message,
	}
}

func authoredAt(c *github.RepositoryCommit) time.Time {
	return c.GetCommit().GetAuthor().GetDate().Time.UTC()
}
