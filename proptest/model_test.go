package proptest

import (
	"catadmin/internal/catalog"
	"catadmin/internal/console"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

// ViewModel tracks what the console should show using its own filter, sort
// and paging.
type ViewModel struct {
	snapshot []catalog.Product
	term     string
	sort     catalog.SortState
	page     int
	perPage  int
}

func newViewModel(perPage int) *ViewModel {
	return &ViewModel{page: 1, perPage: perPage}
}

func (m *ViewModel) Load(products []catalog.Product) {
	m.snapshot = products
	m.term = ""
	m.sort = catalog.SortState{}
	m.page = 1
}

func (m *ViewModel) Filter(term string) {
	m.term = term
	m.page = 1
}

func (m *ViewModel) Sort(field catalog.SortField) {
	if m.sort.Field == field {
		m.sort.Descending = !m.sort.Descending
		return
	}
	m.sort = catalog.SortState{Field: field}
}

func (m *ViewModel) TotalPages() int {
	n := len(m.View())
	return (n + m.perPage - 1) / m.perPage
}

func (m *ViewModel) Goto(n int) bool {
	if n < 1 || n > m.TotalPages() {
		return false
	}
	m.page = n
	return true
}

func (m *ViewModel) SetPerPage(n int) {
	m.perPage = n
	m.page = 1
}

func (m *ViewModel) View() []catalog.Product {
	term := strings.ToLower(strings.TrimSpace(m.term))
	var view []catalog.Product
	for _, p := range m.snapshot {
		if strings.Contains(strings.ToLower(p.Title), term) {
			view = append(view, p)
		}
	}
	if m.sort.Field == catalog.SortNone {
		return view
	}

	// Insertion sort: stable, and independent of the package under test.
	for i := 1; i < len(view); i++ {
		for j := i; j > 0 && m.less(view[j], view[j-1]); j-- {
			view[j], view[j-1] = view[j-1], view[j]
		}
	}
	return view
}

func (m *ViewModel) less(a, b catalog.Product) bool {
	c := compareKeys(sortKey(a, m.sort.Field), sortKey(b, m.sort.Field))
	if m.sort.Descending {
		return c > 0
	}
	return c < 0
}

func (m *ViewModel) Page() []catalog.Product {
	view := m.View()
	start := min((m.page-1)*m.perPage, len(view))
	end := min(start+m.perPage, len(view))
	return view[start:end]
}

// CheckedConsole drives a console and its model side by side and fails on
// the first divergence.
type CheckedConsole struct {
	real  *console.Console
	svc   *MemService
	model *ViewModel
	dir   string
	t     *rapid.T
}

func NewCheckedConsole(h *ConsoleHarness) *CheckedConsole {
	return &CheckedConsole{
		real:  h.Console,
		svc:   h.Service,
		model: newViewModel(h.Console.PageInfo().PerPage),
		dir:   h.Dir,
		t:     h.T,
	}
}

func (c *CheckedConsole) Model() *ViewModel {
	return c.model
}

func (c *CheckedConsole) verify() {
	c.t.Helper()
	verifyStructuralInvariants(c.t, c.real)

	st := c.real.State()
	opts := cmpopts.EquateEmpty()
	if diff := cmp.Diff(c.model.View(), st.View, opts); diff != "" {
		c.t.Fatalf("[%s] violated: view (-model +real):\n%s", InvViewMatchesModel, diff)
	}
	if diff := cmp.Diff(c.model.Page(), c.real.CurrentPage(), opts); diff != "" {
		c.t.Fatalf("[%s] violated: page (-model +real):\n%s", InvViewMatchesModel, diff)
	}
	if st.Term != c.model.term || st.Sort != c.model.sort {
		c.t.Fatalf("[%s] violated: term/sort real=%q/%v model=%q/%v", InvViewMatchesModel, st.Term, st.Sort, c.model.term, c.model.sort)
	}
	if st.Pages.Page != c.model.page || st.Pages.PerPage != c.model.perPage {
		c.t.Fatalf("[%s] violated: pages real=%+v model=%d/%d", InvViewMatchesModel, st.Pages, c.model.page, c.model.perPage)
	}
}

func (c *CheckedConsole) Load() error {
	before, listErr := c.svc.List(context.Background())
	err := c.real.LoadAll(context.Background())
	if (err == nil) != (listErr == nil) {
		c.t.Fatalf("Load divergence: real=%v service=%v", err, listErr)
	}
	if err == nil {
		c.model.Load(before)
	}
	c.verify()
	return err
}

func (c *CheckedConsole) Filter(term string) {
	c.real.ApplyFilter(term)
	c.model.Filter(term)
	c.verify()
}

func (c *CheckedConsole) Sort(field catalog.SortField) {
	c.real.SortBy(field)
	c.model.Sort(field)
	c.verify()
}

func (c *CheckedConsole) Page(n int) bool {
	realOK := c.real.Page(n)
	modelOK := c.model.Goto(n)
	if realOK != modelOK {
		c.t.Fatalf("Page(%d) divergence: real=%v model=%v", n, realOK, modelOK)
	}
	c.verify()
	return realOK
}

func (c *CheckedConsole) NextPage() bool {
	realOK := c.real.NextPage()
	modelOK := c.model.Goto(c.model.page + 1)
	if realOK != modelOK {
		c.t.Fatalf("NextPage divergence: real=%v model=%v", realOK, modelOK)
	}
	c.verify()
	return realOK
}

func (c *CheckedConsole) PrevPage() bool {
	realOK := c.real.PrevPage()
	modelOK := c.model.Goto(c.model.page - 1)
	if realOK != modelOK {
		c.t.Fatalf("PrevPage divergence: real=%v model=%v", realOK, modelOK)
	}
	c.verify()
	return realOK
}

func (c *CheckedConsole) SetPerPage(n int) {
	if err := c.real.SetPerPage(n); err != nil {
		c.t.Fatalf("SetPerPage(%d): %v", n, err)
	}
	c.model.SetPerPage(n)
	c.verify()
}

func (c *CheckedConsole) Export() {
	want := c.model.Page()
	path, err := c.real.ExportCurrentPage(c.dir)
	if len(want) == 0 {
		if !errors.Is(err, console.ErrNothingToExport) {
			c.t.Fatalf("Export of empty page: got %v", err)
		}
		c.verify()
		return
	}
	if err != nil {
		c.t.Fatalf("Export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		c.t.Fatalf("reading export: %v", err)
	}
	records := readCSV(c.t, data)
	if len(records) != len(want)+1 {
		c.t.Fatalf("[%s] violated: %d records for %d rows", InvExportRoundTrip, len(records), len(want))
	}
	c.verify()
}

// Submit creates a product, or updates id when id is non-zero.
func (c *CheckedConsole) Submit(id int, form catalog.Form) {
	_, validErr := form.Input()
	offline := c.svc.Offline

	var err error
	if id == 0 {
		_, err = c.real.CreateProduct(context.Background(), form)
	} else {
		_, err = c.real.UpdateProduct(context.Background(), id, form)
	}

	wantOK := validErr == nil && !offline
	if (err == nil) != wantOK {
		c.t.Fatalf("[%s] violated: submit err=%v valid=%v offline=%v", InvMutationReloads, err, validErr == nil, offline)
	}
	if wantOK {
		products, _ := c.svc.List(context.Background())
		c.model.Load(products)
	}
	c.verify()
}
