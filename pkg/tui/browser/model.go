// Package browser is a terminal view over a sectioned list. It hosts a
// section index the way a table view would: it asks for sections, rows and
// titles, and resolves a selection back to an item with ElementAt.
package browser

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/sectionlist/pkg/app"
	"tableflip.dev/sectionlist/pkg/item"
	"tableflip.dev/sectionlist/pkg/store"
)

// summarySection is the section reserved for the summary block.
const summarySection = 0

type indexBuiltMsg struct {
	idx  *app.Index
	rows []app.Row
}

type errMsg struct{ err error }

type storeEventMsg struct{ event store.Event }

// refreshMsg asks for a rebuild without touching the watch loop.
type refreshMsg struct{}

// Model contains browser state.
type Model struct {
	svc  *app.Service
	ctx  context.Context
	name string
	opts app.IndexOptions

	idx  *app.Index
	rows []app.Row

	list     list.Model
	styles   styles
	status   string
	selected *item.Item
	events   <-chan store.Event

	termWidth  int
	termHeight int
}

// New creates a browser for the named list.
func New(ctx context.Context, svc *app.Service, name string, opts app.IndexOptions) *Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 40, 20)
	l.Title = name
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return &Model{
		svc:    svc,
		ctx:    ctx,
		name:   name,
		opts:   opts,
		list:   l,
		styles: defaultStyles(),
		status: "enter select, p pin/unpin, / filter, q quit",
	}
}

// Selected returns the last item chosen with enter, if any.
func (m *Model) Selected() *item.Item { return m.selected }

// Init builds the index and starts watching the store.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.rebuild(), m.watch())
}

// Update handles Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case indexBuiltMsg:
		m.idx = msg.idx
		m.rows = msg.rows
		cursor := m.list.Index()
		cmds = append(cmds, m.list.SetItems(m.items()))
		if cursor >= 0 && cursor < len(m.rows) {
			m.list.Select(cursor)
		}
	case storeEventMsg:
		// The index is never patched; any change rebuilds it from the list.
		cmds = append(cmds, m.rebuild(), waitForEvent(m.events))
	case refreshMsg:
		cmds = append(cmds, m.rebuild())
	case watchStartedMsg:
		m.events = msg.events
		cmds = append(cmds, waitForEvent(m.events))
	case tea.KeyPressMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			m.choose()
			return m, nil
		case "p":
			if cmd := m.togglePin(); cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the list and the status line.
func (m *Model) View() string {
	status := m.styles.status.Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), status)
}

// Run starts the browser and returns the last selected item.
func Run(ctx context.Context, svc *app.Service, name string, opts app.IndexOptions) (*item.Item, error) {
	m := New(ctx, svc, name, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return m.Selected(), nil
}

func (m *Model) rebuild() tea.Cmd {
	svc, ctx, name, opts := m.svc, m.ctx, m.name, m.opts
	return func() tea.Msg {
		idx, err := svc.Build(ctx, name, opts)
		if err != nil {
			return errMsg{err}
		}
		if err := idx.ReserveSection(summarySection, 1); err != nil {
			return errMsg{err}
		}
		rows, err := app.Rows(idx)
		if err != nil {
			return errMsg{err}
		}
		return indexBuiltMsg{idx: idx, rows: rows}
	}
}

type watchStartedMsg struct{ events <-chan store.Event }

func (m *Model) watch() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		events, err := svc.Watch(ctx)
		if err != nil {
			return errMsg{fmt.Errorf("watch: %w", err)}
		}
		return watchStartedMsg{events: events}
	}
}

func waitForEvent(events <-chan store.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeEventMsg{event: ev}
	}
}

// selectedRow maps the list cursor back to the row it renders.
func (m *Model) selectedRow() (app.Row, bool) {
	ri, ok := m.list.SelectedItem().(rowItem)
	if !ok {
		return app.Row{}, false
	}
	return ri.row, true
}

func (m *Model) choose() {
	row, ok := m.selectedRow()
	if !ok || m.idx == nil {
		return
	}
	if row.Header {
		m.status = fmt.Sprintf("section %s", row.Title)
		return
	}
	it, ok, err := m.idx.ElementAt(row.At)
	switch {
	case err != nil:
		m.status = "ERR: " + err.Error()
	case !ok:
		m.status = fmt.Sprintf("nothing to select at %s", row.At)
	default:
		m.selected = it
		m.status = fmt.Sprintf("selected %s (%s)", it.Name, row.At)
	}
}

func (m *Model) togglePin() tea.Cmd {
	row, ok := m.selectedRow()
	if !ok || row.Item == nil {
		return nil
	}
	svc, ctx, target := m.svc, m.ctx, row.Item
	m.status = fmt.Sprintf("toggling pin on %s", target.Name)
	return func() tea.Msg {
		if _, err := svc.SetPinned(ctx, target.List, target.ID, !target.Pinned); err != nil {
			return errMsg{err}
		}
		return refreshMsg{}
	}
}

func (m *Model) items() []list.Item {
	items := make([]list.Item, 0, len(m.rows))
	for _, row := range m.rows {
		items = append(items, rowItem{row: row, text: m.rowText(row)})
	}
	return items
}

func (m *Model) rowText(row app.Row) string {
	switch {
	case row.Header:
		return m.styles.header.Render(row.Title)
	case row.Reserved() && row.At.Section == summarySection:
		return m.styles.summary.Render(m.summary())
	case row.Reserved():
		return m.styles.reserved.Render("…")
	default:
		return "  " + row.Item.String()
	}
}

func (m *Model) summary() string {
	items, sections := app.Count(m.rows, m.opts)
	return fmt.Sprintf("%d items in %d sections", items, sections)
}

// applySizes recalculates the list size based on the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	// Leave room for the status line.
	height := m.termHeight - 2
	if height < 5 {
		height = 5
	}
	m.list.SetSize(m.termWidth, height)
}

type rowItem struct {
	row  app.Row
	text string
}

func (r rowItem) Title() string       { return r.text }
func (r rowItem) Description() string { return "" }
func (r rowItem) FilterValue() string {
	if r.row.Item != nil {
		return r.row.Item.Name
	}
	return r.row.Title
}
