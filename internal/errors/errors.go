// internal/errors/errors.go
package errors

import "fmt"

// ErrMissingDefaultBranch is returned when a repository's detail lookup succeeds
// but carries no default branch to sync from.
type ErrMissingDefaultBranch struct {
	Repo string
}

func (e *ErrMissingDefaultBranch) Error() string {
	return fmt.Sprintf("could not determine default branch for %q", e.Repo)
}

// CommitStatsError is returned when the per-commit statistics lookup fails.
// Pagination for the repository stops at this commit.
type CommitStatsError struct {
	Repo string
	SHA  string
	Err  error
}

func (e *CommitStatsError) Error() string {
	return fmt.Sprintf("fetching stats for commit %s in %q: %v", e.SHA, e.Repo, e.Err)
}

func (e *CommitStatsError) Unwrap() error { return e.Err }
