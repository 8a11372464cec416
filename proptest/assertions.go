package proptest

import (
	"catadmin/internal/catalog"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertProductsEqual(t *rapid.T, expected, actual []catalog.Product) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("products mismatch (-want +got):\n%s", diff)
	}
}

func assertSameIDs(t *rapid.T, expected, actual []catalog.Product) {
	t.Helper()
	if diff := cmp.Diff(ids(expected), ids(actual), cmpopts.SortSlices(func(a, b int) bool { return a < b }), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("id set mismatch (-want +got):\n%s", diff)
	}
}

func assertSubset(t *rapid.T, subset, superset []catalog.Product) {
	t.Helper()
	superIDs := make(map[int]bool)
	for _, p := range superset {
		superIDs[p.ID] = true
	}
	for _, p := range subset {
		if !superIDs[p.ID] {
			t.Fatalf("subset contains ID %d not in superset", p.ID)
		}
	}
}

func assertSortedBy(t *rapid.T, products []catalog.Product, s catalog.SortState) {
	t.Helper()
	for i := 0; i < len(products)-1; i++ {
		c := compareKeys(sortKey(products[i], s.Field), sortKey(products[i+1], s.Field))
		if s.Descending {
			c = -c
		}
		if c > 0 {
			t.Fatalf("sort order by %s (desc=%v) violated at positions %d, %d", s.Field, s.Descending, i, i+1)
		}
	}
}

func ids(products []catalog.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

// key is a sort key computed independently of the catalog package.
type key struct {
	num  float64
	text string
}

func sortKey(p catalog.Product, field catalog.SortField) key {
	switch field {
	case catalog.SortByID:
		return key{num: float64(p.ID)}
	case catalog.SortByPrice:
		return key{num: p.Price}
	case catalog.SortByCategory:
		name := ""
		if p.Category != nil {
			name = p.Category.Name
		}
		return key{text: strings.ToLower(name)}
	case catalog.SortByDescription:
		return key{text: strings.ToLower(p.Description)}
	default:
		return key{text: strings.ToLower(p.Title)}
	}
}

func compareKeys(a, b key) int {
	switch {
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	default:
		return strings.Compare(a.text, b.text)
	}
}
