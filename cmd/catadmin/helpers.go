package main

import (
	"catadmin/internal/catalog"
	"catadmin/internal/config"
	"catadmin/internal/console"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/huh"
)

// errReported is returned once the console has already shown the user a
// notice for the failure; the cause is in the log.
var errReported = errors.New("operation failed")

type PageOutOfRangeError struct {
	Page       int
	TotalPages int
}

func (e *PageOutOfRangeError) Error() string {
	if e.TotalPages == 0 {
		return fmt.Sprintf("page %d is out of range: no products match", e.Page)
	}
	return fmt.Sprintf("page %d is out of range (1-%d)", e.Page, e.TotalPages)
}

// ViewFlags select the working view and page, the way the browser does with
// its search box, column headers and pager.
type ViewFlags struct {
	Search  string `short:"s" help:"Only products whose title contains this text"`
	Sort    string `help:"Sort column (id, title, price, category, description)"`
	Desc    bool   `help:"Sort descending"`
	Page    int    `short:"p" default:"1" help:"Page to show"`
	PerPage int    `help:"Products per page (5, 10, 20, 50)"`
}

func (f ViewFlags) validate() (catalog.SortField, error) {
	if f.PerPage != 0 && !catalog.ValidPerPage(f.PerPage) {
		return catalog.SortNone, fmt.Errorf("--per-page must be one of %v", catalog.PerPageChoices)
	}
	field, err := catalog.ParseSortField(f.Sort)
	if err != nil {
		return catalog.SortNone, err
	}
	if f.Desc && field == catalog.SortNone {
		return catalog.SortNone, errors.New("--desc needs --sort")
	}
	return field, nil
}

// loadView loads the catalog into a fresh console and applies f.
func loadView(g *Globals, f ViewFlags) (*console.Console, error) {
	field, err := f.validate()
	if err != nil {
		return nil, err
	}

	con := g.newConsole(f.PerPage)
	if err := con.LoadAll(g.context()); err != nil {
		return nil, errReported
	}

	if f.Search != "" {
		con.ApplyFilter(f.Search)
	}
	if field != catalog.SortNone {
		con.SortBy(field)
		if f.Desc {
			con.SortBy(field)
		}
	}
	if f.Page != 1 && !con.Page(f.Page) {
		return nil, &PageOutOfRangeError{Page: f.Page, TotalPages: con.PageInfo().TotalPages}
	}
	return con, nil
}

// ProductFlags prefill or override form fields.
type ProductFlags struct {
	Title       string `help:"Product title"`
	Price       string `help:"Price, e.g. 19.99"`
	Description string `help:"Description"`
	CategoryID  string `name:"category-id" help:"Category id"`
	Images      string `help:"Comma separated image URLs"`
	NoInput     bool   `name:"no-input" help:"Do not prompt; use the flags as given"`
}

func (f ProductFlags) applyTo(form *catalog.Form) {
	set := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	set(&form.Title, f.Title)
	set(&form.Price, f.Price)
	set(&form.Description, f.Description)
	set(&form.CategoryID, f.CategoryID)
	set(&form.Images, f.Images)
}

func handleFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

// submitError maps console failures to the command result. Validation and
// remote failures were already shown as notices.
func submitError(err error) error {
	var vErr *catalog.ValidationError
	if errors.As(err, &vErr) {
		return errReported
	}
	if errors.Is(err, console.ErrStale) || errors.Is(err, console.ErrNoSelection) {
		return err
	}
	return errReported
}

// exportDir resolves where CSV files go: dir, then the configured directory,
// then the platform default.
func exportDir(g *Globals, dir string) (string, error) {
	if dir == "" {
		dir = g.Cfg.ExportDir
	}
	if dir == "" {
		dir = config.DefaultExportDir()
	}
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", fmt.Errorf("invalid export directory: %w", err)
	}
	return expanded, nil
}

func openerCommand(url string) (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
