// internal/model/models.go
package model

import "time"

// Repository is a repository of the synced organization together with the
// number of commits attributed to it by a sync run.
type Repository struct {
	Name         string
	TotalCommits int
}

// Commit is a fully assembled commit record: the listing summary plus the
// line statistics resolved by a second lookup.
type Commit struct {
	SHA       string
	Author    string
	Date      time.Time
	Additions int
	Deletions int
	Message   string
}

// RepoCommits pairs a repository with the commits fetched for it in one run.
type RepoCommits struct {
	Repository Repository
	Commits    []Commit
}

// SaveResult reports what a batch write changed in the store.
type SaveResult struct {
	RepositoriesUpserted int
	CommitsInserted      int64
	CommitsSkipped       int64
	// Totals holds the total_commits value written for each repository.
	Totals map[string]int
}
