package catalog_test

import (
	"catadmin/internal/catalog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func numbered(n int) []catalog.Product {
	products := make([]catalog.Product, n)
	for i := range products {
		products[i] = catalog.Product{ID: i + 1}
	}
	return products
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, catalog.TotalPages(0, 10))
	assert.Equal(t, 1, catalog.TotalPages(1, 10))
	assert.Equal(t, 1, catalog.TotalPages(10, 10))
	assert.Equal(t, 3, catalog.TotalPages(23, 10))
	assert.Equal(t, 5, catalog.TotalPages(23, 5))
}

func TestPagination_Goto(t *testing.T) {
	view := numbered(23)

	t.Run("last page holds the remainder", func(t *testing.T) {
		p, ok := catalog.NewPagination(10).Goto(3, len(view))

		assert.True(t, ok)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, []int{21, 22, 23}, ids(p.Slice(view)))
	})

	t.Run("beyond the last page is a no-op", func(t *testing.T) {
		p, _ := catalog.NewPagination(10).Goto(3, len(view))

		next, ok := p.Goto(4, len(view))

		assert.False(t, ok)
		assert.Equal(t, p, next)
	})

	t.Run("below one is a no-op", func(t *testing.T) {
		p := catalog.NewPagination(10)

		next, ok := p.Goto(0, len(view))

		assert.False(t, ok)
		assert.Equal(t, 1, next.Page)
	})

	t.Run("empty view has no pages to go to", func(t *testing.T) {
		_, ok := catalog.NewPagination(10).Goto(1, 0)

		assert.False(t, ok)
	})
}

func TestPagination_Slice(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(catalog.NewPagination(5).Slice(numbered(12))))
	})

	t.Run("empty view", func(t *testing.T) {
		assert.Empty(t, catalog.NewPagination(5).Slice(nil))
	})
}

func TestPagination_Info(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		p := catalog.Pagination{Page: 2, PerPage: 10}

		info := p.Info(23)

		assert.Equal(t, catalog.PageInfo{
			Page: 2, PerPage: 10, TotalPages: 3, Total: 23,
			First: 11, Last: 20,
			Links:   []int{1, 2, 3},
			HasPrev: true, HasNext: true,
		}, info)
		assert.True(t, info.ShowControls())
	})

	t.Run("single page hides controls", func(t *testing.T) {
		info := catalog.NewPagination(10).Info(4)

		assert.False(t, info.ShowControls())
		assert.Equal(t, 1, info.First)
		assert.Equal(t, 4, info.Last)
		assert.False(t, info.HasPrev)
		assert.False(t, info.HasNext)
	})

	t.Run("empty view", func(t *testing.T) {
		info := catalog.NewPagination(10).Info(0)

		assert.Equal(t, 0, info.TotalPages)
		assert.Equal(t, 0, info.First)
		assert.Equal(t, 0, info.Last)
		assert.Empty(t, info.Links)
		assert.False(t, info.ShowControls())
	})
}

func TestPageWindow(t *testing.T) {
	cases := []struct {
		name           string
		current, total int
		want           []int
	}{
		{"fewer pages than the window", 2, 3, []int{1, 2, 3}},
		{"start clamps to one", 1, 10, []int{1, 2, 3, 4, 5}},
		{"centred on current", 5, 10, []int{3, 4, 5, 6, 7}},
		{"end clamps to total", 10, 10, []int{6, 7, 8, 9, 10}},
		{"near the end", 9, 10, []int{6, 7, 8, 9, 10}},
		{"no pages", 1, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.PageWindow(tc.current, tc.total))
		})
	}
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, catalog.Pagination{Page: 1, PerPage: catalog.DefaultPerPage}, catalog.NewPagination(0))
	assert.True(t, catalog.ValidPerPage(20))
	assert.False(t, catalog.ValidPerPage(7))
}
