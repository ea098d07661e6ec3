// Package ui implements the terminal interface: a query form, a scrollable
// card grid, a busy spinner, and transient toast notices.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"pokegrid/pkg/catalog"
	"pokegrid/pkg/logging"
	"pokegrid/pkg/pager"
)

// toastDuration is how long a toast notice stays visible.
const toastDuration = 3500 * time.Millisecond

// skeletonCount is the number of placeholder cards shown while the first
// page of a query is in flight.
const skeletonCount = 6

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastError
)

// Messages
type pageMsg struct{ page pager.Page }

type pageErrMsg struct {
	gen uint64
	err error
}

type categoriesMsg struct{ names []string }

type startupErrMsg struct{ err error }

type toastClearMsg struct{ id int }

// Options configures the initial query form state.
type Options struct {
	InitialQuery    string
	InitialCategory string
	InitialSort     catalog.SortKey
}

// Model is the main Bubble Tea model.
type Model struct {
	pager *pager.Pager

	// -- Query form --
	search      textinput.Model
	categories  []string // index 0 is "" (no filter)
	categoryIdx int
	sortIdx     int

	// -- Results --
	entities   []catalog.Entity
	hasMore    bool
	emptyState bool

	// -- UI state --
	busy     bool
	skeleton bool
	spinner  spinner.Model
	viewport viewport.Model
	ready    bool

	toast      string
	toastLevel toastLevel
	toastID    int

	startupErr error

	width  int
	height int

	logger zerolog.Logger
}

// New creates the TUI model around an existing pager.
func New(p *pager.Pager, opts Options) *Model {
	search := textinput.New()
	search.Placeholder = "name or id"
	search.CharLimit = 40
	search.Width = 24
	search.SetValue(opts.InitialQuery)

	sortIdx := 0
	for i, k := range catalog.SortKeys {
		if k == opts.InitialSort {
			sortIdx = i
			break
		}
	}

	m := &Model{
		pager:      p,
		search:     search,
		categories: []string{""},
		sortIdx:    sortIdx,
		spinner:    spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		hasMore:    true,
		logger:     logging.NewLogger("ui"),
	}
	if opts.InitialCategory != "" {
		// Selectable once the category list arrives.
		m.categories = append(m.categories, opts.InitialCategory)
		m.categoryIdx = 1
	}
	return m
}

// Run starts the TUI and blocks until it exits.
func Run(p *pager.Pager, opts Options) error {
	m := New(p, opts)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	if m.startupErr != nil {
		return m.startupErr
	}
	return nil
}

// Init loads the category filter options and submits the initial query.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
		m.loadCategoriesCmd(),
		m.submitCmd(),
	)
}

// Update handles all messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		gridHeight := m.height - 5 // header, form, footer
		if gridHeight < 1 {
			gridHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, gridHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = gridHeight
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case categoriesMsg:
		current := m.selectedCategory()
		m.categories = append([]string{""}, msg.names...)
		m.categoryIdx = 0
		for i, c := range m.categories {
			if c == current {
				m.categoryIdx = i
				break
			}
		}
		return m, nil

	case startupErrMsg:
		// Cannot populate the category filter: abort startup.
		m.startupErr = fmt.Errorf("load category filter: %w", msg.err)
		return m, tea.Quit

	case pageMsg:
		return m.handlePage(msg.page)

	case pageErrMsg:
		if !m.pager.IsCurrent(msg.gen) {
			return m, nil
		}
		m.busy = false
		m.skeleton = false
		m.refreshContent()
		return m, m.setToast(toastError, msg.err.Error())

	case toastClearMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handlePage appends one page of results, discarding pages from superseded
// query generations.
func (m *Model) handlePage(page pager.Page) (tea.Model, tea.Cmd) {
	if !m.pager.IsCurrent(page.Gen) {
		m.logger.Debug().Uint64("gen", page.Gen).Msg("Stale page discarded")
		return m, nil
	}

	m.busy = false
	m.skeleton = false
	if page.First {
		m.entities = nil
		m.viewport.GotoTop()
	}
	m.entities = append(m.entities, page.Entities...)
	m.hasMore = page.HasMore
	m.emptyState = page.Empty
	m.refreshContent()

	if page.Notice != "" {
		return m, m.setToast(toastInfo, page.Notice)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.search.Focused() {
		switch key {
		case "enter":
			m.search.Blur()
			return m, m.submitCmd()
		case "esc":
			m.search.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		return m, m.search.Focus()

	case "enter":
		return m, m.submitCmd()

	case "c":
		m.cycleCategory(1)
		return m, m.submitCmd()

	case "C":
		m.cycleCategory(-1)
		return m, m.submitCmd()

	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(catalog.SortKeys)
		return m, m.submitCmd()

	case "x":
		// Clear search text and filters, back to plain listing.
		m.search.SetValue("")
		m.categoryIdx = 0
		return m, m.submitCmd()

	case "m":
		return m, m.loadMoreCmd()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) cycleCategory(delta int) {
	n := len(m.categories)
	if n == 0 {
		return
	}
	m.categoryIdx = ((m.categoryIdx+delta)%n + n) % n
}

func (m *Model) selectedCategory() string {
	if m.categoryIdx >= 0 && m.categoryIdx < len(m.categories) {
		return m.categories[m.categoryIdx]
	}
	return ""
}

func (m *Model) selectedSort() catalog.SortKey {
	return catalog.SortKeys[m.sortIdx]
}

// submitCmd starts a new query from the current form state. The first page
// shows skeleton placeholders until it settles.
func (m *Model) submitCmd() tea.Cmd {
	m.busy = true
	m.skeleton = true
	m.emptyState = false
	m.refreshContent()

	in := pager.Input{
		Text:     m.search.Value(),
		Category: m.selectedCategory(),
		Sort:     m.selectedSort(),
	}
	p := m.pager
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		page, err := p.Submit(context.Background(), in)
		if err != nil {
			return pageErrMsg{gen: page.Gen, err: err}
		}
		return pageMsg{page: page}
	})
}

// loadMoreCmd loads the next page of the current query.
func (m *Model) loadMoreCmd() tea.Cmd {
	if m.busy || !m.hasMore {
		return nil
	}
	m.busy = true

	p := m.pager
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		page, err := p.LoadMore(context.Background())
		if err != nil {
			return pageErrMsg{gen: page.Gen, err: err}
		}
		return pageMsg{page: page}
	})
}

func (m *Model) loadCategoriesCmd() tea.Cmd {
	p := m.pager
	return func() tea.Msg {
		names, err := p.Categories(context.Background())
		if err != nil {
			return startupErrMsg{err: err}
		}
		return categoriesMsg{names: names}
	}
}

// setToast shows a transient notice, replacing any current one. The clear
// message carries the toast id so a newer toast is not dismissed early.
func (m *Model) setToast(level toastLevel, text string) tea.Cmd {
	m.toast = text
	m.toastLevel = level
	m.toastID++
	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastClearMsg{id: id}
	})
}

// refreshContent rebuilds the grid inside the viewport.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}

	switch {
	case m.skeleton:
		cards := make([]string, skeletonCount)
		for i := range cards {
			cards[i] = renderSkeletonCard()
		}
		m.viewport.SetContent(renderGrid(cards, m.width))

	case m.emptyState && len(m.entities) == 0:
		m.viewport.SetContent(emptyStateStyle.Render("no results"))

	default:
		cards := make([]string, 0, len(m.entities))
		for _, e := range m.entities {
			cards = append(cards, renderCard(e))
		}
		m.viewport.SetContent(renderGrid(cards, m.width))
	}
}

// View renders the full frame.
func (m *Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m *Model) headerView() string {
	category := m.selectedCategory()
	if category == "" {
		category = "all"
	}

	form := strings.Join([]string{
		formLabelStyle.Render("search: ") + m.search.View(),
		formLabelStyle.Render("type: ") + formValueStyle.Render(category),
		formLabelStyle.Render("sort: ") + formValueStyle.Render(m.selectedSort().Label()),
	}, "   ")

	return titleStyle.Render("pokegrid") + "\n" + form
}

func (m *Model) footerView() string {
	var status string
	switch {
	case m.busy:
		status = m.spinner.View() + " loading..."
	case m.toast != "":
		style := toastInfoStyle
		if m.toastLevel == toastError {
			style = toastErrorStyle
		}
		status = style.Render(m.toast)
	case m.hasMore:
		status = helpStyle.Render("m: load more")
	}

	help := helpStyle.Render("/: search  c: type  s: sort  x: clear  q: quit")
	gap := m.width - lipgloss.Width(status) - lipgloss.Width(help)
	if gap < 1 {
		gap = 1
	}
	return status + strings.Repeat(" ", gap) + help
}
