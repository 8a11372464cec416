package render_test

import (
	"bytes"
	"catadmin/internal/catalog"
	"catadmin/internal/console"
	"catadmin/internal/render"
	"strings"
	"testing"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer() *render.LipglossRenderer {
	return render.NewLipglossRenderer(&bytes.Buffer{}, 100)
}

func lamp() catalog.Product {
	return catalog.Product{
		ID:          4,
		Title:       "Desk Lamp",
		Price:       12.5,
		Description: "Warm light, adjustable arm",
		Category:    &catalog.Category{ID: 3, Name: "Home"},
		Images:      []string{"https://img/a.png", "https://img/b.png"},
	}
}

func TestLipglossRenderer_ProductTable(t *testing.T) {
	t.Run("empty rows", func(t *testing.T) {
		assert.Equal(t, "No products found.\n", newRenderer().ProductTable(nil, render.TableOptions{}))
	})

	t.Run("renders one line per product", func(t *testing.T) {
		rows := []catalog.Product{lamp(), {ID: 9, Title: "Mug", Price: 3}}

		out := newRenderer().ProductTable(rows, render.TableOptions{})

		for _, want := range []string{"ID", "Title", "Price", "Category", "Description", "Desk Lamp", "$12.5", "Home", "Mug", "$3", console.NoCategory} {
			assert.Contains(t, out, want)
		}
		assert.True(t, strings.HasSuffix(out, "\n"))
	})

	t.Run("marks the sorted column", func(t *testing.T) {
		rows := []catalog.Product{lamp()}

		asc := newRenderer().ProductTable(rows, render.TableOptions{Sort: catalog.SortState{Field: catalog.SortByPrice}})
		desc := newRenderer().ProductTable(rows, render.TableOptions{Sort: catalog.SortState{Field: catalog.SortByPrice, Descending: true}})

		assert.Contains(t, asc, "Price ▲")
		assert.Contains(t, desc, "Price ▼")
		assert.NotContains(t, asc, "Title ▲")
	})

	t.Run("truncates long descriptions", func(t *testing.T) {
		p := lamp()
		p.Description = strings.Repeat("x", 60)

		out := newRenderer().ProductTable([]catalog.Product{p}, render.TableOptions{})

		assert.NotContains(t, out, strings.Repeat("x", 41))
		assert.Contains(t, out, strings.Repeat("x", 39)+"…")
	})
}

func TestLipglossRenderer_Pager(t *testing.T) {
	r := newRenderer()

	t.Run("nothing for an empty view", func(t *testing.T) {
		assert.Empty(t, r.Pager(catalog.NewPagination(10).Info(0)))
	})

	t.Run("summary only on a single page", func(t *testing.T) {
		assert.Equal(t, "Showing 1-3 of 3 products\n", r.Pager(catalog.NewPagination(10).Info(3)))
	})

	t.Run("controls on later pages", func(t *testing.T) {
		p := catalog.Pagination{Page: 2, PerPage: 10}
		assert.Equal(t, "Showing 11-20 of 23 products\n« Prev 1 [2] 3 Next »\n", r.Pager(p.Info(23)))
	})
}

func TestLipglossRenderer_Notice(t *testing.T) {
	r := newRenderer()

	assert.Equal(t, "Error: "+console.MsgLoadFailed+"\n", r.Notice(console.Notice{Kind: console.NoticeError, Message: console.MsgLoadFailed}))
	assert.Equal(t, console.MsgCreated+"\n", r.Notice(console.Notice{Kind: console.NoticeSuccess, Message: console.MsgCreated}))
	assert.Equal(t, "Exported /tmp/x.csv\n", r.Notice(console.Notice{Message: "Exported /tmp/x.csv"}))
}

func TestDetailGolden(t *testing.T) {
	d := console.Detail{Product: lamp(), Images: lamp().DisplayImages(), Category: "Home"}

	golden.RequireEqual(t, []byte(newRenderer().Detail(d)))
}

func TestDetailGoldenPlaceholder(t *testing.T) {
	d := console.Detail{
		Product:  catalog.Product{ID: 1, Title: "Bare", Price: 0.99, Description: console.NoDescription},
		Images:   []string{catalog.PlaceholderImage},
		Category: console.NoCategory,
	}

	golden.RequireEqual(t, []byte(newRenderer().Detail(d)))
}

func TestDetailGoldenEdit(t *testing.T) {
	form := catalog.FormFromProduct(lamp())
	d := console.Detail{Product: lamp(), Images: lamp().DisplayImages(), Category: "Home", Edit: &form}

	golden.RequireEqual(t, []byte(newRenderer().Detail(d)))
}

func TestPrinter(t *testing.T) {
	var out bytes.Buffer
	p := &render.Printer{Out: &out, R: render.NewLipglossRenderer(&out, 100)}

	p.Render([]catalog.Product{lamp()}, catalog.NewPagination(10).Info(1))
	p.Notify(console.Notice{Kind: console.NoticeError, Message: "nope"})

	got := out.String()
	require.Contains(t, got, "Desk Lamp")
	assert.Contains(t, got, "Showing 1-1 of 1 products\n")
	assert.True(t, strings.HasSuffix(got, "Error: nope\n"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", render.Truncate("short", 10))
	assert.Equal(t, "abcd…", render.Truncate("abcdefgh", 5))
	assert.Equal(t, "a b c", render.Truncate("a\n b\tc", 10))
	assert.Equal(t, "héllo", render.Truncate("héllo", 5))
}
