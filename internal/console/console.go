// Package console holds the admin console state: the catalog snapshot, the
// derived working view and the pagination, sort and selection around it.
// Every operation that a user can trigger is a method on Console.
package console

import (
	"catadmin/internal/catalog"
	"catadmin/internal/export"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// ErrStale is returned when a response arrives after a newer request
	// of the same kind was issued; the response is dropped.
	ErrStale           = errors.New("stale response discarded")
	ErrNoSelection     = errors.New("no product selected")
	ErrNothingToExport = errors.New("current page is empty")
	ErrInvalidPerPage  = errors.New("unsupported items per page")
)

// Service is the remote catalog.
type Service interface {
	List(ctx context.Context) ([]catalog.Product, error)
	Get(ctx context.Context, id int) (catalog.Product, error)
	Create(ctx context.Context, in catalog.ProductInput) (catalog.Product, error)
	Update(ctx context.Context, id int, in catalog.ProductInput) (catalog.Product, error)
}

// ImageProber checks whether an image URL can be loaded.
type ImageProber interface {
	ProbeImage(ctx context.Context, url string) bool
}

type Renderer interface {
	Render(rows []catalog.Product, info catalog.PageInfo)
	RenderDetail(d Detail)
}

type Notifier interface {
	Notify(n Notice)
}

// Detail is a product prepared for display. Edit is set when the product is
// shown as an editable form.
type Detail struct {
	Product  catalog.Product
	Images   []string
	Category string
	Edit     *catalog.Form
}

// State is the console's in-memory cache. View is always
// catalog.WorkingView(Snapshot, Term, Sort).
type State struct {
	Snapshot   []catalog.Product
	View       []catalog.Product
	Term       string
	Sort       catalog.SortState
	Pages      catalog.Pagination
	SelectedID int
	Loaded     bool
}

type Console struct {
	svc    Service
	render Renderer
	notify Notifier
	prober ImageProber
	log    logrus.FieldLogger
	now    func() time.Time

	mu      sync.Mutex
	state   State
	loads   Fence
	details Fence
}

type Option func(*Console)

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Console) {
		c.log = log
	}
}

func WithPerPage(n int) Option {
	return func(c *Console) {
		if catalog.ValidPerPage(n) {
			c.state.Pages = catalog.NewPagination(n)
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Console) {
		c.now = now
	}
}

func WithImageProber(p ImageProber) Option {
	return func(c *Console) {
		c.prober = p
	}
}

func New(svc Service, r Renderer, n Notifier, opts ...Option) *Console {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Console{
		svc:    svc,
		render: r,
		notify: n,
		log:    discard,
		now:    time.Now,
		state:  State{Pages: catalog.NewPagination(catalog.DefaultPerPage)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Console) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Console) PageInfo() catalog.PageInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Pages.Info(len(c.state.View))
}

func (c *Console) CurrentPage() []catalog.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Pages.Slice(c.state.View)
}

// LoadAll replaces the snapshot with the full remote list and resets the
// view to an unfiltered, unsorted copy on page 1. A failed load leaves the
// previous snapshot in place.
func (c *Console) LoadAll(ctx context.Context) error {
	tok := c.loads.Next()
	products, err := c.svc.List(ctx)

	c.mu.Lock()
	if !c.loads.Current(tok) {
		c.mu.Unlock()
		c.log.WithField("token", tok).Debug("dropping stale catalog load")
		return ErrStale
	}
	if err != nil {
		c.mu.Unlock()
		c.fail(MsgLoadFailed, "loading catalog", err)
		return err
	}

	c.state.Snapshot = products
	c.state.Term = ""
	c.state.Sort = catalog.SortState{}
	c.state.Loaded = true
	c.recomputeLocked()
	rows, info := c.frameLocked()
	c.mu.Unlock()

	c.log.WithField("count", len(products)).Info("catalog loaded")
	c.render.Render(rows, info)
	return nil
}

// RefreshCatalog is the full reload that follows every successful mutation.
func (c *Console) RefreshCatalog(ctx context.Context) error {
	c.log.Debug("refreshing catalog")
	return c.LoadAll(ctx)
}

// ApplyFilter recomputes the working view from the whole snapshot and goes
// back to page 1.
func (c *Console) ApplyFilter(term string) {
	c.mu.Lock()
	c.state.Term = term
	c.recomputeLocked()
	rows, info := c.frameLocked()
	c.mu.Unlock()

	c.render.Render(rows, info)
}

// SortBy toggles the sort on field and re-sorts the filtered view. The
// current page is kept.
func (c *Console) SortBy(field catalog.SortField) {
	c.mu.Lock()
	c.state.Sort = c.state.Sort.Toggle(field)
	page := c.state.Pages.Page
	c.state.View = catalog.WorkingView(c.state.Snapshot, c.state.Term, c.state.Sort)
	c.state.Pages.Page = page
	rows, info := c.frameLocked()
	c.mu.Unlock()

	c.render.Render(rows, info)
}

// Page moves to page n and reports whether it did. Requests outside
// [1, total pages] change nothing and render nothing.
func (c *Console) Page(n int) bool {
	c.mu.Lock()
	next, ok := c.state.Pages.Goto(n, len(c.state.View))
	if !ok {
		c.mu.Unlock()
		return false
	}
	c.state.Pages = next
	rows, info := c.frameLocked()
	c.mu.Unlock()

	c.render.Render(rows, info)
	return true
}

func (c *Console) NextPage() bool {
	return c.Page(c.PageInfo().Page + 1)
}

func (c *Console) PrevPage() bool {
	return c.Page(c.PageInfo().Page - 1)
}

func (c *Console) SetPerPage(n int) error {
	if !catalog.ValidPerPage(n) {
		return ErrInvalidPerPage
	}

	c.mu.Lock()
	c.state.Pages = catalog.NewPagination(n)
	rows, info := c.frameLocked()
	c.mu.Unlock()

	c.render.Render(rows, info)
	return nil
}

func (c *Console) recomputeLocked() {
	c.state.View = catalog.WorkingView(c.state.Snapshot, c.state.Term, c.state.Sort)
	c.state.Pages.Page = 1
}

func (c *Console) frameLocked() ([]catalog.Product, catalog.PageInfo) {
	return c.state.Pages.Slice(c.state.View), c.state.Pages.Info(len(c.state.View))
}

// ExportCurrentPage writes exactly the rows on the current page into dir.
func (c *Console) ExportCurrentPage(dir string) (string, error) {
	c.mu.Lock()
	rows := c.state.Pages.Slice(c.state.View)
	page := c.state.Pages.Page
	c.mu.Unlock()

	if len(rows) == 0 {
		c.notify.Notify(Notice{Kind: NoticeError, Message: MsgNothingToExport})
		return "", ErrNothingToExport
	}

	path, err := export.WriteFile(dir, page, c.now(), rows)
	if err != nil {
		c.fail(MsgExportFailed, "exporting page", err)
		return "", err
	}
	c.log.WithFields(logrus.Fields{"path": path, "rows": len(rows)}).Info("page exported")
	c.notify.Notify(Notice{Kind: NoticeInfo, Message: "Exported " + path})
	return path, nil
}

func (c *Console) fail(message, action string, err error) {
	c.log.WithError(err).Error(action)
	c.notify.Notify(Notice{Kind: NoticeError, Message: message})
}
