package catalog

import "slices"

const (
	DefaultPerPage  = 10
	MaxVisiblePages = 5
)

var PerPageChoices = []int{5, 10, 20, 50}

func ValidPerPage(n int) bool {
	return slices.Contains(PerPageChoices, n)
}

// Pagination is 1-based. Page stays within [1, TotalPages] and is 1 for an
// empty view.
type Pagination struct {
	Page    int
	PerPage int
}

func NewPagination(perPage int) Pagination {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return Pagination{Page: 1, PerPage: perPage}
}

func TotalPages(count, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 0
	}
	return (count + perPage - 1) / perPage
}

// Goto moves to page n. Out-of-range requests report false and leave p as is.
func (p Pagination) Goto(n, count int) (Pagination, bool) {
	if n < 1 || n > TotalPages(count, p.PerPage) {
		return p, false
	}
	p.Page = n
	return p, true
}

func (p Pagination) bounds(count int) (start, end int) {
	start = min((p.Page-1)*p.PerPage, count)
	end = min(start+p.PerPage, count)
	return start, end
}

func (p Pagination) Slice(view []Product) []Product {
	start, end := p.bounds(len(view))
	return slices.Clone(view[start:end])
}

type PageInfo struct {
	Page       int
	PerPage    int
	TotalPages int
	Total      int
	// First and Last are 1-based item positions shown on this page.
	First   int
	Last    int
	Links   []int
	HasPrev bool
	HasNext bool
}

// ShowControls is false when the view fits on a single page.
func (i PageInfo) ShowControls() bool {
	return i.TotalPages > 1
}

func (p Pagination) Info(count int) PageInfo {
	total := TotalPages(count, p.PerPage)
	start, end := p.bounds(count)
	info := PageInfo{
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: total,
		Total:      count,
		Last:       end,
		Links:      PageWindow(p.Page, total),
		HasPrev:    p.Page > 1,
		HasNext:    p.Page < total,
	}
	if end > start {
		info.First = start + 1
	}
	return info
}

// PageWindow returns up to MaxVisiblePages consecutive page numbers centred
// on current and clamped to [1, total].
func PageWindow(current, total int) []int {
	if total <= 0 {
		return nil
	}
	start := max(1, current-MaxVisiblePages/2)
	end := min(total, start+MaxVisiblePages-1)
	if end-start < MaxVisiblePages-1 {
		start = max(1, end-MaxVisiblePages+1)
	}

	links := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		links = append(links, i)
	}
	return links
}
