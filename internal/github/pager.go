// internal/github/pager.go
package github

import "context"

// PageFunc fetches one 1-based page of a listing.
type PageFunc[T any] func(ctx context.Context, page int) ([]T, error)

// Pager walks a page-numbered listing one page at a time. It stops on the
// first empty page or on the first error; it never retries a page.
type Pager[T any] struct {
	fetch   PageFunc[T]
	page    int
	hasMore bool
}

// NewPager returns a Pager positioned at page 1.
func NewPager[T any](fetch PageFunc[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch, page: 1, hasMore: true}
}

// HasMore reports whether Next may still return items.
func (p *Pager[T]) HasMore() bool { return p.hasMore }

// Page is the page Next will fetch, or the page that ended the listing.
func (p *Pager[T]) Page() int { return p.page }

// Next fetches the current page and advances the cursor. An empty page ends
// the listing without error. An error ends the listing and is returned as is.
func (p *Pager[T]) Next(ctx context.Context) ([]T, error) {
	if !p.hasMore {
		return nil, nil
	}

	items, err := p.fetch(ctx, p.page)
	if err != nil {
		p.hasMore = false
		return nil, err
	}
	if len(items) == 0 {
		p.hasMore = false
		return nil, nil
	}

	p.page++
	return items, nil
}
