package proptest

import (
	"catadmin/internal/console"

	"pgregory.net/rapid"
)

const (
	InvViewMatchesModel     = "view matches model"
	InvViewSubsetOfSnapshot = "view is a subset of the snapshot"
	InvPageInRange          = "page within range"
	InvPageRowsContiguous   = "page rows are a contiguous slice of the view"
	InvPageSizeBounded      = "page holds at most per-page rows"
	InvFilterSubset         = "filter returns a subset"
	InvFilterCaseFold       = "filter ignores case"
	InvFilterEmptyKeepsAll  = "blank filter keeps everything"
	InvSortOrdered          = "sort orders by key"
	InvSortStable           = "sort keeps ties in incoming order"
	InvSortPermutation      = "sort keeps the same products"
	InvExportRoundTrip      = "export round trips through a CSV reader"
	InvMutationReloads      = "mutation reloads only on success"
)

func verifyStructuralInvariants(t *rapid.T, con *console.Console) {
	st := con.State()
	rows := con.CurrentPage()
	info := con.PageInfo()

	assertSubset(t, st.View, st.Snapshot)

	if info.Page < 1 || info.Page > max(1, info.TotalPages) {
		t.Fatalf("[%s] violated: page %d of %d", InvPageInRange, info.Page, info.TotalPages)
	}
	if len(rows) > info.PerPage {
		t.Fatalf("[%s] violated: %d rows with per page %d", InvPageSizeBounded, len(rows), info.PerPage)
	}
	if len(rows) == 0 {
		return
	}
	if info.First < 1 || info.Last-info.First+1 != len(rows) {
		t.Fatalf("[%s] violated: rows %d-%d but %d on page", InvPageRowsContiguous, info.First, info.Last, len(rows))
	}
	for i, p := range rows {
		if st.View[info.First-1+i].ID != p.ID {
			t.Fatalf("[%s] violated: row %d is %d, view has %d", InvPageRowsContiguous, i, p.ID, st.View[info.First-1+i].ID)
		}
	}
}
