// Package tui is the interactive product browser started by `catadmin browse`.
package tui

import (
	"catadmin/internal/catalog"
	"catadmin/internal/console"
	"catadmin/internal/render"
	"catadmin/internal/ui"
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeDetail
	modeForm
)

const copiedNotice = "Path copied to clipboard"

var titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

type Options struct {
	ExportDir string
	// Copy puts text on the system clipboard. Nil disables copying.
	Copy     func(string) error
	Renderer *render.LipglossRenderer
}

// Model drives a console.Console whose renderer and notifier is rec. Every
// console call that reaches the network runs inside a tea.Cmd.
type Model struct {
	ctx       context.Context
	con       *console.Console
	rec       *console.Recorder
	rnd       *render.LipglossRenderer
	exportDir string
	copy      func(string) error

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	search  textinput.Model

	mode     mode
	cursor   int
	loading  bool
	detail   *console.Detail
	form     *huh.Form
	formData *catalog.Form
	editID   int
	notices  []console.Notice
	width    int
}

func New(ctx context.Context, con *console.Console, rec *console.Recorder, opts Options) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search titles"

	rnd := opts.Renderer
	if rnd == nil {
		rnd = render.NewLipglossRenderer(&strings.Builder{}, 80)
	}

	return &Model{
		ctx:       ctx,
		con:       con,
		rec:       rec,
		rnd:       rnd,
		exportDir: opts.ExportDir,
		copy:      opts.Copy,
		keys:      keys,
		help:      help.New(),
		spinner:   s,
		search:    ti,
		loading:   true,
	}
}

// Run starts the full-screen program and blocks until the user quits.
func Run(ctx context.Context, m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

type loadedMsg struct{ err error }

type detailMsg struct {
	detail console.Detail
	err    error
}

type editMsg struct {
	id   int
	form catalog.Form
	err  error
}

type savedMsg struct {
	product catalog.Product
	err     error
}

type exportedMsg struct {
	path   string
	copied bool
	err    error
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m *Model) loadCmd() tea.Cmd {
	ctx, con := m.ctx, m.con
	return func() tea.Msg {
		return loadedMsg{err: con.LoadAll(ctx)}
	}
}

func (m *Model) detailCmd(id int) tea.Cmd {
	ctx, con := m.ctx, m.con
	return func() tea.Msg {
		d, err := con.ShowDetail(ctx, id)
		return detailMsg{detail: d, err: err}
	}
}

func (m *Model) editCmd() tea.Cmd {
	ctx, con := m.ctx, m.con
	return func() tea.Msg {
		id := con.State().SelectedID
		form, err := con.EnableEdit(ctx)
		return editMsg{id: id, form: form, err: err}
	}
}

func (m *Model) submitCmd() tea.Cmd {
	ctx, con := m.ctx, m.con
	form, id := *m.formData, m.editID
	return func() tea.Msg {
		var (
			p   catalog.Product
			err error
		)
		if id == 0 {
			p, err = con.CreateProduct(ctx, form)
		} else {
			p, err = con.UpdateProduct(ctx, id, form)
		}
		return savedMsg{product: p, err: err}
	}
}

func (m *Model) exportCmd() tea.Cmd {
	con, dir, copyFn := m.con, m.exportDir, m.copy
	return func() tea.Msg {
		path, err := con.ExportCurrentPage(dir)
		if err != nil {
			return exportedMsg{err: err}
		}
		copied := copyFn != nil && copyFn(path) == nil
		return exportedMsg{path: path, copied: copied}
	}
}

// busy starts the spinner alongside cmd.
func (m *Model) busy(cmd tea.Cmd) tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, cmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.rnd.SetWidth(msg.Width)
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		return m.handleLoaded(msg)
	case detailMsg:
		return m.handleDetail(msg)
	case editMsg:
		return m.handleEdit(msg)
	case savedMsg:
		return m.handleSaved(msg)
	case exportedMsg:
		return m.handleExported(msg)
	}

	if m.mode == modeForm {
		return m.updateForm(msg)
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(k)
	}
	return m, nil
}

func (m *Model) takeNotices() {
	m.notices = m.rec.TakeNotices()
}

func (m *Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, console.ErrStale) {
		return m, nil
	}
	m.loading = false
	m.takeNotices()
	if msg.err == nil {
		m.search.SetValue("")
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) handleDetail(msg detailMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, console.ErrStale) {
		return m, nil
	}
	m.loading = false
	m.takeNotices()
	if msg.err != nil {
		return m, nil
	}
	m.detail = &msg.detail
	m.mode = modeDetail
	return m, nil
}

func (m *Model) handleEdit(msg editMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, console.ErrStale) {
		return m, nil
	}
	m.loading = false
	m.takeNotices()
	if msg.err != nil {
		return m, nil
	}
	return m, m.openForm(msg.form, msg.id)
}

func (m *Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.takeNotices()
	if msg.err != nil {
		return m, m.openForm(*m.formData, m.editID)
	}
	m.closeForm()
	m.detail = nil
	m.mode = modeList
	m.search.SetValue("")
	m.clampCursor()
	return m, nil
}

func (m *Model) handleExported(msg exportedMsg) (tea.Model, tea.Cmd) {
	m.takeNotices()
	if msg.copied {
		m.notices = append(m.notices, console.Notice{Kind: console.NoticeInfo, Message: copiedNotice})
	}
	return m, nil
}

func (m *Model) openForm(data catalog.Form, id int) tea.Cmd {
	m.formData = &data
	m.editID = id
	m.form = ui.NewProductForm(m.formData)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
	m.mode = modeForm
	return m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.formData = nil
	m.editID = 0
	if m.detail != nil {
		m.mode = modeDetail
	} else {
		m.mode = modeList
	}
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
		m.closeForm()
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, m.busy(m.submitCmd())
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(k)
	case modeDetail:
		return m.handleDetailKey(k)
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(k, m.keys.Search):
		m.mode = modeSearch
		return m, m.search.Focus()
	case key.Matches(k, m.keys.Back):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.con.ApplyFilter("")
			m.cursor = 0
		}
		m.notices = nil
	case key.Matches(k, m.keys.PerPage):
		if err := m.con.SetPerPage(nextPerPage(m.con.PageInfo().PerPage)); err == nil {
			m.cursor = 0
		}
	case key.Matches(k, m.keys.Sort):
		idx := int(k.String()[0] - '1')
		m.con.SortBy(catalog.SortFields[idx])
		m.clampCursor()
	case key.Matches(k, m.keys.Prev):
		if m.con.PrevPage() {
			m.cursor = 0
		}
	case key.Matches(k, m.keys.Next):
		if m.con.NextPage() {
			m.cursor = 0
		}
	case key.Matches(k, m.keys.Up):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(k, m.keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(k, m.keys.Open):
		rows := m.con.CurrentPage()
		if len(rows) == 0 || m.loading {
			return m, nil
		}
		return m, m.busy(m.detailCmd(rows[m.cursor].ID))
	case key.Matches(k, m.keys.Create):
		m.detail = nil
		return m, m.openForm(catalog.Form{}, 0)
	case key.Matches(k, m.keys.Export):
		return m, m.exportCmd()
	case key.Matches(k, m.keys.Reload):
		return m, m.busy(m.loadCmd())
	}
	return m, nil
}

func (m *Model) handleSearchKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k.Type == tea.KeyEnter || k.Type == tea.KeyEsc {
		m.mode = modeList
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(k)
	if after := m.search.Value(); after != before {
		m.con.ApplyFilter(after)
		m.cursor = 0
	}
	return m, cmd
}

func (m *Model) handleDetailKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(k, m.keys.Back):
		m.detail = nil
		m.mode = modeList
	case key.Matches(k, m.keys.Edit):
		if m.loading {
			return m, nil
		}
		return m, m.busy(m.editCmd())
	}
	return m, nil
}

func (m *Model) clampCursor() {
	n := len(m.con.CurrentPage())
	m.cursor = min(m.cursor, max(0, n-1))
}

func nextPerPage(current int) int {
	i := slices.Index(catalog.PerPageChoices, current)
	return catalog.PerPageChoices[(i+1)%len(catalog.PerPageChoices)]
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Product Catalog"))
	b.WriteString("\n")

	switch {
	case m.mode == modeForm && m.form != nil:
		heading := "Create product"
		if m.editID != 0 {
			heading = "Edit product #" + strconv.Itoa(m.editID)
		}
		b.WriteString(heading + "\n\n")
		if m.loading {
			b.WriteString(m.spinner.View() + " Saving...\n")
		} else {
			b.WriteString(m.form.View())
			b.WriteString("\n")
		}
	case m.mode == modeDetail && m.detail != nil:
		b.WriteString(m.rnd.Detail(*m.detail))
		if m.loading {
			b.WriteString(m.spinner.View() + " Loading...\n")
		}
	default:
		m.listView(&b)
	}

	for _, n := range m.notices {
		b.WriteString(m.rnd.Notice(n))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) listView(b *strings.Builder) {
	if m.mode == modeSearch || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	st := m.con.State()
	if m.loading && !st.Loaded {
		b.WriteString(m.spinner.View() + " Loading products...\n")
		return
	}

	rows := m.con.CurrentPage()
	b.WriteString(m.rnd.ProductTable(rows, render.TableOptions{Sort: st.Sort, Highlight: true, Cursor: m.cursor}))
	b.WriteString(m.rnd.Pager(m.con.PageInfo()))
	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
	}
}
