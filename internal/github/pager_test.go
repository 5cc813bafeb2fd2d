// internal/github/pager_test.go
package github

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagesOf serves a fixed sequence of pages and records the requested page numbers.
func pagesOf(pages [][]string, failAt int, requested *[]int) PageFunc[string] {
	return func(_ context.Context, page int) ([]string, error) {
		*requested = append(*requested, page)
		if page == failAt {
			return nil, errors.New("boom")
		}
		if page > len(pages) {
			return nil, nil
		}
		return pages[page-1], nil
	}
}

func drain(t *testing.T, p *Pager[string]) ([]string, error) {
	t.Helper()
	var all []string
	for p.HasMore() {
		items, err := p.Next(context.Background())
		if err != nil {
			return all, err
		}
		all = append(all, items...)
	}
	return all, nil
}

func TestPager(t *testing.T) {
	t.Run("stops on the first empty page", func(t *testing.T) {
		var requested []int
		p := NewPager(pagesOf([][]string{{"a", "b"}, {"c"}}, 0, &requested))

		all, err := drain(t, p)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, all)
		assert.Equal(t, []int{1, 2, 3}, requested)
		assert.False(t, p.HasMore())
		assert.Equal(t, 3, p.Page())
	})

	t.Run("empty first page yields nothing", func(t *testing.T) {
		var requested []int
		p := NewPager(pagesOf(nil, 0, &requested))

		all, err := drain(t, p)

		require.NoError(t, err)
		assert.Empty(t, all)
		assert.Equal(t, []int{1}, requested)
	})

	t.Run("error ends the listing without retrying", func(t *testing.T) {
		var requested []int
		p := NewPager(pagesOf([][]string{{"a"}, {"b"}, {"c"}}, 2, &requested))

		all, err := drain(t, p)

		require.Error(t, err)
		assert.Equal(t, []string{"a"}, all)
		assert.Equal(t, []int{1, 2}, requested)
		assert.False(t, p.HasMore())
		assert.Equal(t, 2, p.Page(), "page points at the failing page")
	})

	t.Run("next after exhaustion is a no-op", func(t *testing.T) {
		var requested []int
		p := NewPager(pagesOf(nil, 0, &requested))
		_, _ = drain(t, p)

		items, err := p.Next(context.Background())

		assert.NoError(t, err)
		assert.Nil(t, items)
		assert.Equal(t, []int{1}, requested)
	})
}
