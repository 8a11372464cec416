package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

type SortField string

const (
	SortNone          SortField = ""
	SortByID          SortField = "id"
	SortByTitle       SortField = "title"
	SortByPrice       SortField = "price"
	SortByCategory    SortField = "category"
	SortByDescription SortField = "description"
)

var SortFields = []SortField{SortByID, SortByTitle, SortByPrice, SortByCategory, SortByDescription}

func ParseSortField(s string) (SortField, error) {
	f := SortField(strings.ToLower(strings.TrimSpace(s)))
	if f == SortNone || slices.Contains(SortFields, f) {
		return f, nil
	}
	return SortNone, fmt.Errorf("unknown sort field %q", s)
}

type SortState struct {
	Field      SortField
	Descending bool
}

// Toggle flips the direction when field is already active and otherwise
// starts ascending on field.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		return SortState{Field: field, Descending: !s.Descending}
	}
	return SortState{Field: field}
}

// Filter keeps the products whose title contains term, ignoring case. A
// blank term keeps everything. The result never aliases products.
func Filter(products []Product, term string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(products)
	}

	results := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), term) {
			results = append(results, p)
		}
	}
	return results
}

// Sort returns a sorted copy. The sort is stable: products with equal keys
// keep their incoming relative order in both directions.
func Sort(products []Product, s SortState) []Product {
	sorted := slices.Clone(products)
	if s.Field == SortNone {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b Product) int {
		c := compareProducts(a, b, s.Field)
		if s.Descending {
			return -c
		}
		return c
	})
	return sorted
}

func compareProducts(a, b Product, by SortField) int {
	switch by {
	case SortByID:
		return cmp.Compare(a.ID, b.ID)
	case SortByPrice:
		return cmp.Compare(a.Price, b.Price)
	case SortByCategory:
		return compareFold(a.CategoryName(), b.CategoryName())
	case SortByDescription:
		return compareFold(a.Description, b.Description)
	default:
		return compareFold(a.Title, b.Title)
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// WorkingView derives what the console displays from the snapshot.
func WorkingView(snapshot []Product, term string, s SortState) []Product {
	return Sort(Filter(snapshot, term), s)
}
