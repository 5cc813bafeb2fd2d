// internal/syncer/report.go
package syncer

import (
	"fmt"
	"io"
	"strings"

	"github.com/montanaflynn/stats"
)

// timestampLayout is the UTC wall-clock layout commit dates are printed in.
const timestampLayout = "2006-01-02T15:04:05Z"

// WriteReport prints a human-readable account of a run. With verbose set,
// every stored commit is listed under its repository.
func WriteReport(w io.Writer, s *Summary, verbose bool) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Organization: %s (%s sync)\n", s.Org, s.Mode)
	fmt.Fprintf(&b, "Total repositories in organization: %d\n", len(s.Repos))

	var additions, deletions int
	perRepo := make(stats.Float64Data, 0, len(s.Repos))
	for _, rc := range s.Repos {
		name := rc.Repository.Name
		total, ok := s.Saved.Totals[name]
		if !ok {
			total = rc.Repository.TotalCommits
		}
		fmt.Fprintf(&b, "\nRepository: %s, Fetched Commits: %d, Total Commits: %d\n", name, len(rc.Commits), total)
		perRepo = append(perRepo, float64(len(rc.Commits)))

		for _, c := range rc.Commits {
			additions += c.Additions
			deletions += c.Deletions
			if !verbose {
				continue
			}
			fmt.Fprintf(&b, "- Commit %s:\n", c.SHA)
			fmt.Fprintf(&b, "  Author: %s\n", c.Author)
			fmt.Fprintf(&b, "  Date: %s\n", c.Date.UTC().Format(timestampLayout))
			fmt.Fprintf(&b, "  Additions: %d, Deletions: %d\n", c.Additions, c.Deletions)
			fmt.Fprintf(&b, "  Message: %s\n", c.Message)
		}
	}

	if len(s.Failures) > 0 {
		fmt.Fprintf(&b, "\nRepositories with incomplete fetches: %d\n", len(s.Failures))
		for _, f := range s.Failures {
			fmt.Fprintf(&b, "- %s: %v\n", f.Repo, f.Err)
		}
	}

	fmt.Fprintf(&b, "\nStored: %d repositories, %d commits inserted, %d already present\n",
		s.Saved.RepositoriesUpserted, s.Saved.CommitsInserted, s.Saved.CommitsSkipped)

	// Median returns an error for an organization without repositories.
	median, err := stats.Median(perRepo)
	if err != nil {
		median = 0
	}
	fmt.Fprintf(&b, "Lines: +%d / -%d, median fetched commits per repository: %.1f\n", additions, deletions, median)

	_, err = io.WriteString(w, b.String())
	return err
}
