// internal/github/client.go
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// defaultPerPage is the page size used for every paginated listing.
const defaultPerPage = 100

// Client is a wrapper around the go-github client.
type Client struct {
	gh      *github.Client
	logger  *slog.Logger
	perPage int
}

type options struct {
	baseURL         string
	transport       http.RoundTripper
	waitOnRateLimit bool
	perPage         int
}

// Option customizes a Client.
type Option func(*options)

// WithBaseURL points the client at a GitHub Enterprise or test API root.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithTransport replaces the base HTTP transport under the auth layer.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// WithRateLimitWait makes the client sleep through GitHub rate limits instead
// of failing the request.
func WithRateLimitWait() Option {
	return func(o *options) { o.waitOnRateLimit = true }
}

// WithPageSize overrides the listing page size.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.perPage = n
		}
	}
}

// NewClient creates and configures a new Client instance.
// The provided token is attached as a bearer credential to every request.
func NewClient(token string, logger *slog.Logger, opts ...Option) (*Client, error) {
	o := options{perPage: defaultPerPage}
	for _, opt := range opts {
		opt(&o)
	}

	base := o.transport
	if base == nil {
		base = http.DefaultTransport
	}
	if o.waitOnRateLimit {
		base = github_ratelimit.NewClient(base).Transport
	}

	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   base,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		},
	}
	gh := github.NewClient(httpClient)

	if o.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(o.baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parsing base URL: %w", err)
		}
		gh.BaseURL = u
	}

	return &Client{
		gh:      gh,
		logger:  logger,
		perPage: o.perPage,
	}, nil
}

// ListOrgRepos returns the names of all repositories of org in remote listing
// order. A failing page ends the listing: the names collected so far are
// logged and returned as the final result.
func (c *Client) ListOrgRepos(ctx context.Context, org string) []string {
	logger := c.logger.With("org", org)

	pager := NewPager(func(ctx context.Context, page int) ([]*github.Repository, error) {
		logger.Debug("Fetching repositories page", "page", page)
		repos, _, err := c.gh.Repositories.ListByOrg(ctx, org, &github.RepositoryListByOrgOptions{
			ListOptions: github.ListOptions{PerPage: c.perPage, Page: page},
		})
		return repos, err
	})

	var names []string
	for pager.HasMore() {
		repos, err := pager.Next(ctx)
		if err != nil {
			logger.Error("Error fetching repositories, keeping partial listing",
				"page", pager.Page(), "collected", len(names), "error", err)
			break
		}
		for _, r := range repos {
			names = append(names, r.GetName())
		}
	}

	logger.Info("Listed organization repositories", "count", len(names))
	return names
}
