package render

import (
	"catadmin/internal/catalog"
	"catadmin/internal/console"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/term"
)

const (
	maxDescription = 40
	ascending      = " ▲"
	descending     = " ▼"
)

var columns = []struct {
	title string
	field catalog.SortField
}{
	{"ID", catalog.SortByID},
	{"Title", catalog.SortByTitle},
	{"Price", catalog.SortByPrice},
	{"Category", catalog.SortByCategory},
	{"Description", catalog.SortByDescription},
}

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	headerStyle   lipgloss.Style
	cellStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	borderStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	labelStyle    lipgloss.Style
	mutedStyle    lipgloss.Style
	currentStyle  lipgloss.Style
	disabledStyle lipgloss.Style
	errorStyle    lipgloss.Style
	successStyle  lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:         width,
		r:             r,
		headerStyle:   r.NewStyle().Bold(true).Padding(0, 1),
		cellStyle:     r.NewStyle().Padding(0, 1),
		selectedStyle: r.NewStyle().Padding(0, 1).Reverse(true),
		borderStyle:   r.NewStyle().Faint(true),
		titleStyle:    r.NewStyle().Bold(true),
		labelStyle:    r.NewStyle().Faint(true),
		mutedStyle:    r.NewStyle().Faint(true),
		currentStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		disabledStyle: r.NewStyle().Faint(true),
		errorStyle:    r.NewStyle().Foreground(lipgloss.Color("9")),
		successStyle:  r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) Width() int {
	return r.width
}

// SetWidth changes the table width, for terminals that get resized.
func (r *LipglossRenderer) SetWidth(width int) {
	r.width = width
}

func (r *LipglossRenderer) ProductTable(rows []catalog.Product, opts TableOptions) string {
	if len(rows) == 0 {
		return "No products found.\n"
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.title
		if opts.Sort.Field == col.field {
			if opts.Sort.Descending {
				headers[i] += descending
			} else {
				headers[i] += ascending
			}
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.headerStyle
			case opts.Highlight && row == opts.Cursor:
				return r.selectedStyle
			default:
				return r.cellStyle
			}
		})
	for _, p := range rows {
		t.Row(
			strconv.Itoa(p.ID),
			p.Title,
			formatPrice(p.Price),
			orDefault(p.CategoryName(), console.NoCategory),
			Truncate(p.Description, maxDescription),
		)
	}
	if r.width > 0 {
		t.Width(r.width)
	}
	return t.String() + "\n"
}

func (r *LipglossRenderer) Pager(info catalog.PageInfo) string {
	if info.Total == 0 {
		return ""
	}

	summary := r.mutedStyle.Render(fmt.Sprintf("Showing %d-%d of %d products", info.First, info.Last, info.Total))
	if !info.ShowControls() {
		return summary + "\n"
	}

	parts := make([]string, 0, len(info.Links)+2)
	parts = append(parts, r.control("« Prev", info.HasPrev))
	for _, n := range info.Links {
		if n == info.Page {
			parts = append(parts, r.currentStyle.Render("["+strconv.Itoa(n)+"]"))
		} else {
			parts = append(parts, strconv.Itoa(n))
		}
	}
	parts = append(parts, r.control("Next »", info.HasNext))

	return summary + "\n" + strings.Join(parts, " ") + "\n"
}

func (r *LipglossRenderer) control(label string, enabled bool) string {
	if enabled {
		return label
	}
	return r.disabledStyle.Render(label)
}

func (r *LipglossRenderer) Detail(d console.Detail) string {
	var lines []string
	heading := d.Product.Title
	if d.Edit != nil {
		heading = "Editing #" + strconv.Itoa(d.Product.ID) + ": " + heading
	}
	lines = append(lines, r.titleStyle.Render(heading))

	field := func(label, value string) {
		lines = append(lines, "  "+r.labelStyle.Render(fmt.Sprintf("%-12s", label+":"))+" "+value)
	}
	field("ID", strconv.Itoa(d.Product.ID))
	field("Price", formatPrice(d.Product.Price))
	field("Category", d.Category)
	field("Description", d.Product.Description)
	lines = append(lines, "  "+r.labelStyle.Render("Images:"))
	for i, img := range d.Images {
		lines = append(lines, fmt.Sprintf("    %d. %s", i+1, img))
	}

	if d.Edit != nil {
		lines = append(lines, "", r.titleStyle.Render("Form"))
		field("Title", d.Edit.Title)
		field("Price", d.Edit.Price)
		field("Description", d.Edit.Description)
		field("Category ID", d.Edit.CategoryID)
		field("Images", d.Edit.Images)
	}
	return strings.Join(lines, "\n") + "\n"
}

func (r *LipglossRenderer) Notice(n console.Notice) string {
	switch n.Kind {
	case console.NoticeError:
		return r.errorStyle.Render("Error: "+n.Message) + "\n"
	case console.NoticeSuccess:
		return r.successStyle.Render(n.Message) + "\n"
	default:
		return n.Message + "\n"
	}
}

func formatPrice(price float64) string {
	return "$" + catalog.FormatPrice(price)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
