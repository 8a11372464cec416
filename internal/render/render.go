// Package render turns console output into terminal text.
package render

import (
	"catadmin/internal/catalog"
	"catadmin/internal/console"
	"fmt"
	"io"
)

type Renderer interface {
	ProductTable(rows []catalog.Product, opts TableOptions) string
	Pager(info catalog.PageInfo) string
	Detail(d console.Detail) string
	Notice(n console.Notice) string
}

type TableOptions struct {
	Sort catalog.SortState
	// Highlight marks row Cursor of the page as selected.
	Highlight bool
	Cursor    int
}

// Printer adapts a Renderer to the console's Renderer and Notifier by
// writing each frame to Out.
type Printer struct {
	Out     io.Writer
	R       Renderer
	Options TableOptions
}

func (p *Printer) Render(rows []catalog.Product, info catalog.PageInfo) {
	fmt.Fprint(p.Out, p.R.ProductTable(rows, p.Options))
	fmt.Fprint(p.Out, p.R.Pager(info))
}

func (p *Printer) RenderDetail(d console.Detail) {
	fmt.Fprint(p.Out, p.R.Detail(d))
}

func (p *Printer) Notify(n console.Notice) {
	fmt.Fprint(p.Out, p.R.Notice(n))
}
