package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/purrdle/internal/storage"
)

// Statistics layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show mode list sidebar
	sidebarWidth       = 20 // Width of mode list sidebar
	maxRecent          = 50 // Recent rounds shown in the table
	barWidth           = 24 // Widest distribution bar
)

// StatsKeyMap defines the key bindings for the statistics screen.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Clear    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Clear, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x x", "clear mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// modeEntry is one mode in the sidebar.
type modeEntry struct {
	ID    string
	Title string
}

// StatsModel is the Bubble Tea model for the statistics screen.
type StatsModel struct {
	svc          Services
	modes        []modeEntry
	modeCursor   int
	summary      *storage.Summary
	recent       []storage.Result
	err          error
	table        table.Model
	help         help.Model
	keys         StatsKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool
	confirmClear bool
	showSidebar  bool
}

// NewStatsModel creates a statistics screen over the history store.
func NewStatsModel(svc Services, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		svc:         svc,
		modes:       statsModes(svc),
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.modes) > 0 {
		m.load(m.modes[0].ID)
	}
	return m
}

// statsModes lists the registered modes followed by any mode that only
// appears in the history.
func statsModes(svc Services) []modeEntry {
	var modes []modeEntry
	seen := map[string]bool{}
	if svc.Registry != nil {
		for _, info := range svc.Registry.List() {
			modes = append(modes, modeEntry{ID: info.ID, Title: info.Title})
			seen[info.ID] = true
		}
	}
	if svc.History != nil {
		stored, err := svc.History.Modes()
		if err != nil {
			svc.logger().Warn("cannot list history modes", "error", err)
		}
		sort.Strings(stored)
		for _, id := range stored {
			if !seen[id] {
				modes = append(modes, modeEntry{ID: id, Title: id})
			}
		}
	}
	return modes
}

// createTable creates the recent-rounds table.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Word", Width: 14},
		{Title: "Result", Width: 8},
		{Title: "Tries", Width: 6},
	}

	height := m.height - 18 // Header, summary, distribution and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the summary and recent rounds of mode.
func (m *StatsModel) load(mode string) {
	m.summary, m.recent, m.err = nil, nil, nil
	if m.svc.History == nil {
		m.updateTableRows()
		return
	}

	recent, err := m.svc.History.RecentResults(mode, maxRecent)
	if err != nil {
		m.err = err
		m.updateTableRows()
		return
	}
	m.recent = recent

	rows := m.svc.PuzzleRows
	if len(recent) > 0 && recent[0].MaxRows > 0 {
		rows = recent[0].MaxRows
	}
	m.summary, m.err = m.svc.History.Summary(mode, rows)
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rounds.
func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.recent))
	for i, r := range m.recent {
		result := "lost"
		if r.Won {
			result = "won"
		}
		rows[i] = table.Row{
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			r.Secret,
			result,
			fmt.Sprintf("%d/%d", r.Attempts, r.MaxRows),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the statistics model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the statistics screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !key.Matches(msg, m.keys.Clear) {
			m.confirmClear = false
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextMode):
			if len(m.modes) > 0 {
				m.modeCursor = (m.modeCursor + 1) % len(m.modes)
				m.load(m.modes[m.modeCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			if len(m.modes) > 0 {
				m.modeCursor = (m.modeCursor - 1 + len(m.modes)) % len(m.modes)
				m.load(m.modes[m.modeCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			if len(m.modes) == 0 || m.svc.History == nil {
				return m, nil
			}
			if !m.confirmClear {
				m.confirmClear = true
				return m, nil
			}
			m.confirmClear = false
			mode := m.modes[m.modeCursor].ID
			if err := m.svc.History.ClearResults(mode); err != nil {
				m.err = err
				return m, nil
			}
			m.svc.logger().Info("history cleared", "mode", mode)
			m.load(mode)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the statistics screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "STATISTICS"
	if len(m.modes) > 0 {
		title = fmt.Sprintf("STATISTICS - %s", m.modes[m.modeCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.confirmClear {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render("Press x again to clear this mode's history"))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the statistics with a sidebar for mode selection.
func (m StatsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Modes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, mode := range m.modes {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.modeCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + mode.Title))
		sidebar.WriteString("\n")
	}

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		panelStyle.Render(m.renderContent()),
	)
}

// renderNarrowLayout renders the current mode with arrows instead of a sidebar.
func (m StatsModel) renderNarrowLayout() string {
	var b strings.Builder
	if len(m.modes) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.modes[m.modeCursor].Title), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderContent())
	return b.String()
}

// renderContent renders the summary, distribution and recent rounds.
func (m StatsModel) renderContent() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

	switch {
	case m.svc.History == nil:
		return dim.Render("History is not available.")
	case m.err != nil:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("Error: " + m.err.Error())
	case m.summary == nil || m.summary.Played == 0:
		return dim.Padding(2, 4).Render("No rounds played yet.\nFinish a round to see it here!")
	}

	var b strings.Builder
	b.WriteString(renderSummary(m.summary))
	b.WriteString("\n\n")
	b.WriteString(renderDistribution(m.summary.Distribution))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	return b.String()
}

// renderSummary formats the headline numbers of a summary.
func renderSummary(s *storage.Summary) string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	value := lipgloss.NewStyle().Bold(true)

	cells := []struct {
		name string
		val  string
	}{
		{"Played", fmt.Sprint(s.Played)},
		{"Win %", fmt.Sprint(s.WinRate)},
		{"Streak", fmt.Sprint(s.CurrentStreak)},
		{"Best", fmt.Sprint(s.MaxStreak)},
	}
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = lipgloss.JoinVertical(lipgloss.Center, value.Render(c.val), label.Render(c.name))
		parts[i] = lipgloss.NewStyle().Width(10).Align(lipgloss.Center).Render(parts[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderDistribution draws one bar per row count.
func renderDistribution(dist []int) string {
	peak := 0
	for _, n := range dist {
		peak = max(peak, n)
	}

	bar := lipgloss.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0"))
	empty := lipgloss.NewStyle().Background(lipgloss.Color("239"))

	var b strings.Builder
	for i, n := range dist {
		w := 1
		if peak > 0 {
			w = max(1, n*barWidth/peak)
		}
		style := bar
		if n == 0 {
			style = empty
		}
		label := fmt.Sprint(n)
		fill := strings.Repeat(" ", max(0, w-len(label)))
		fmt.Fprintf(&b, "%d %s\n", i+1, style.Render(fill+label))
	}
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}
