// internal/errors/errors_test.go
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitStatsError(t *testing.T) {
	cause := errors.New("502 Bad Gateway")
	err := fmt.Errorf("syncing alpha: %w", &CommitStatsError{Repo: "alpha", SHA: "abc123", Err: cause})

	var statsErr *CommitStatsError
	assert.ErrorAs(t, err, &statsErr)
	assert.Equal(t, "abc123", statsErr.SHA)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `fetching stats for commit abc123 in "alpha"`)
}

func TestErrMissingDefaultBranch(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &ErrMissingDefaultBranch{Repo: "beta"})

	var branchErr *ErrMissingDefaultBranch
	assert.ErrorAs(t, err, &branchErr)
	assert.Equal(t, "beta", branchErr.Repo)
}
