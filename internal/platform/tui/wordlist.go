package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/purrdle/internal/dictionary"
	"github.com/vovakirdan/purrdle/internal/vocab"
)

// lookupTimeout bounds one definition lookup from the word list.
const lookupTimeout = 10 * time.Second

// wordListState is what the word list screen is doing.
type wordListState int

const (
	browsing wordListState = iota
	searching
	enteringWord
	enteringDefinition
	lookingUp
	confirmingDelete
)

// WordListKeyMap defines the key bindings for the word list.
type WordListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Search key.Binding
	Filter key.Binding
	Sort   key.Binding
	Add    key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WordListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.Sort, k.Add, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k WordListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Search, k.Filter, k.Sort},
		{k.Add, k.Delete, k.Back, k.Quit},
	}
}

// DefaultWordListKeyMap returns default key bindings.
func DefaultWordListKeyMap() WordListKeyMap {
	return WordListKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter status")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// definitionMsg carries the result of a background definition lookup.
type definitionMsg struct {
	word       string
	definition string
	err        error
}

// WordListModel browses and edits the vocabulary.
type WordListModel struct {
	svc      Services
	query    vocab.Query
	records  []vocab.Record
	table    table.Model
	input    textinput.Model
	help     help.Model
	keys     WordListKeyMap
	state    wordListState
	newWord  string // Word being added while its definition is entered
	status   string
	isError  bool
	width    int
	height   int
	quitting bool
	back     bool
}

// NewWordListModel creates the word list screen.
func NewWordListModel(svc Services, width, height int) WordListModel {
	ti := textinput.New()
	ti.CharLimit = 200

	m := WordListModel{
		svc:    svc,
		query:  vocab.Query{Sort: vocab.SortAlphabetical},
		input:  ti,
		help:   help.New(),
		keys:   DefaultWordListKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

func (m *WordListModel) createTable() table.Model {
	defWidth := m.width - 14 - 14 - 10 - 10
	if defWidth < 16 {
		defWidth = 16
	}
	columns := []table.Column{
		{Title: "Word", Width: 14},
		{Title: "Definition", Width: defWidth},
		{Title: "Status", Width: 14},
		{Title: "Tries", Width: 6},
	}

	height := m.height - 9
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

// reload re-reads the vocabulary with the current query.
func (m *WordListModel) reload() {
	if m.svc.Vocab == nil {
		m.records = nil
	} else {
		m.records = m.svc.Vocab.List(m.query)
	}

	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rows[i] = table.Row{
			r.Word,
			r.Definition,
			r.Status.Label(),
			fmt.Sprintf("%d/%d", r.Correct, r.Attempts),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
}

// selected returns the record under the cursor.
func (m WordListModel) selected() (vocab.Record, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.records) {
		return vocab.Record{}, false
	}
	return m.records[i], true
}

func (m *WordListModel) info(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.isError = false
}

func (m *WordListModel) fail(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.isError = true
}

// prompt switches to a text entry state.
func (m *WordListModel) prompt(state wordListState, placeholder, value string) tea.Cmd {
	m.state = state
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *WordListModel) endPrompt() {
	m.state = browsing
	m.input.Blur()
	m.input.SetValue("")
	m.newWord = ""
}

// Init initializes the word list.
func (m WordListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the word list.
func (m WordListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.reload()
		m.help.Width = msg.Width
		return m, nil

	case definitionMsg:
		return m.handleDefinition(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.state {
		case searching:
			return m.updateSearch(msg)
		case enteringWord, enteringDefinition:
			return m.updateAdd(msg)
		case lookingUp:
			return m, nil
		case confirmingDelete:
			return m.updateDelete(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m WordListModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.query.Search != "" {
			m.query.Search = ""
			m.reload()
			m.info("Search cleared")
			return m, nil
		}
		m.back = true
		return m, nil

	case key.Matches(msg, m.keys.Search):
		cmd = m.prompt(searching, "search words and definitions", m.query.Search)
		return m, cmd

	case key.Matches(msg, m.keys.Filter):
		m.query.Status = nextStatus(m.query.Status)
		m.reload()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.query.Sort = nextSort(m.query.Sort)
		m.reload()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		if m.svc.Vocab == nil {
			m.fail("Vocabulary is not available")
			return m, nil
		}
		m.status = ""
		cmd = m.prompt(enteringWord, "new word", "")
		return m, cmd

	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selected(); ok {
			m.state = confirmingDelete
		}
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m WordListModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.query.Search = ""
		m.endPrompt()
		m.reload()
		return m, nil
	case "enter":
		m.endPrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.query.Search = m.input.Value()
	m.reload()
	return m, cmd
}

func (m WordListModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.endPrompt()
		m.info("Add cancelled")
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if m.state == enteringWord {
			return m.submitWord(value)
		}
		return m.submitDefinition(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitWord validates the new word and asks for its definition.
func (m WordListModel) submitWord(word string) (tea.Model, tea.Cmd) {
	if err := vocab.Validate(word, "-"); err != nil {
		m.fail("%s", userError(err))
		return m, nil
	}
	if _, exists := m.svc.Vocab.Get(word); exists {
		m.fail("%q is already in the list", strings.ToLower(word))
		return m, nil
	}

	m.newWord = word
	placeholder := "definition"
	if m.svc.Definer != nil {
		placeholder = "definition (leave empty to look it up)"
	}
	m.status = ""
	cmd := m.prompt(enteringDefinition, placeholder, "")
	return m, cmd
}

// submitDefinition adds the word, or starts a lookup when no definition
// was typed.
func (m WordListModel) submitDefinition(def string) (tea.Model, tea.Cmd) {
	if def == "" {
		if m.svc.Definer == nil {
			m.fail("A definition is required")
			return m, nil
		}
		m.state = lookingUp
		m.input.Blur()
		m.info("Looking up %q...", m.newWord)
		return m, lookupCmd(m.svc.Definer, m.newWord)
	}
	return m.add(m.newWord, def)
}

func (m WordListModel) add(word, def string) (tea.Model, tea.Cmd) {
	rec, err := m.svc.Vocab.Add(word, def)
	m.endPrompt()
	if err != nil {
		m.fail("%s", userError(err))
		return m, nil
	}
	m.svc.logger().Info("word added", "word", rec.Word)
	m.reload()
	m.info("Added %q", rec.Word)
	return m, nil
}

// lookupCmd fetches a definition in the background.
func lookupCmd(d Definer, word string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()
		def, err := d.Definition(ctx, word)
		return definitionMsg{word: word, definition: def, err: err}
	}
}

func (m WordListModel) handleDefinition(msg definitionMsg) (tea.Model, tea.Cmd) {
	if m.state != lookingUp || msg.word != m.newWord {
		return m, nil
	}
	if msg.err != nil {
		m.svc.logger().Warn("definition lookup failed", "word", msg.word, "error", msg.err)
		cmd := m.prompt(enteringDefinition, "definition", "")
		if errors.Is(msg.err, dictionary.ErrNotFound) {
			m.fail("No definition found for %q; please type one", msg.word)
		} else {
			m.fail("Lookup failed; please type a definition")
		}
		return m, cmd
	}
	return m.add(msg.word, msg.definition)
}

func (m WordListModel) updateDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.state = browsing
	if msg.String() != "y" && msg.String() != "Y" {
		m.info("Delete cancelled")
		return m, nil
	}
	rec, ok := m.selected()
	if !ok {
		return m, nil
	}
	removed, err := m.svc.Vocab.Delete(rec.Word)
	switch {
	case err != nil:
		m.fail("Cannot delete: %v", err)
	case removed:
		m.svc.logger().Info("word deleted", "word", rec.Word)
		m.info("Deleted %q", rec.Word)
	}
	m.reload()
	return m, nil
}

// nextStatus cycles the status filter: all, then each status.
func nextStatus(s vocab.Status) vocab.Status {
	if s == "" {
		return vocab.Statuses[0]
	}
	for i, st := range vocab.Statuses {
		if st == s && i+1 < len(vocab.Statuses) {
			return vocab.Statuses[i+1]
		}
	}
	return ""
}

func nextSort(o vocab.SortOrder) vocab.SortOrder {
	for i, so := range vocab.SortOrders {
		if so == o {
			return vocab.SortOrders[(i+1)%len(vocab.SortOrders)]
		}
	}
	return vocab.SortOrders[0]
}

// userError turns store errors into short messages.
func userError(err error) string {
	switch {
	case errors.Is(err, vocab.ErrEmptyWord):
		return "The word cannot be empty"
	case errors.Is(err, vocab.ErrEmptyDefinition):
		return "The definition cannot be empty"
	case errors.Is(err, vocab.ErrWordTooLong):
		return fmt.Sprintf("Words are limited to %d letters", vocab.MaxWordLength)
	case errors.Is(err, vocab.ErrInvalidChars):
		return "Use only letters, spaces and hyphens"
	case errors.Is(err, vocab.ErrDuplicate):
		return "That word is already in the list"
	default:
		return err.Error()
	}
}

// View renders the word list.
func (m WordListModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString(titleStyle.Render(centerText("WORD LIST", m.width)))
	b.WriteString("\n")

	filter := "all"
	if m.query.Status != "" {
		filter = m.query.Status.Label()
	}
	line := fmt.Sprintf("Filter: %s  |  Sort: %s", filter, m.query.Sort)
	if m.query.Search != "" {
		line += fmt.Sprintf("  |  Search: %q", m.query.Search)
	}
	b.WriteString(dim.Render(line))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		empty := "No words yet. Press a to add one."
		if m.query.Search != "" || m.query.Status != "" {
			empty = "No words match."
		}
		b.WriteString(dim.Italic(true).Padding(1, 2).Render(empty))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	if m.svc.Vocab != nil {
		st := m.svc.Vocab.Statistics()
		b.WriteString(dim.Render(fmt.Sprintf("Total %d  |  Not learned %d  |  Few mistakes %d  |  Learned %d (%d%%)",
			st.Total, st.NotLearned, st.FewMistakes, st.Learned, st.PercentLearned)))
		b.WriteString("\n")
	}

	switch m.state {
	case searching:
		b.WriteString("Search: " + m.input.View())
	case enteringWord:
		b.WriteString("Word: " + m.input.View())
	case enteringDefinition:
		fmt.Fprintf(&b, "Definition of %q: %s", m.newWord, m.input.View())
	case confirmingDelete:
		if rec, ok := m.selected(); ok {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render(fmt.Sprintf("Delete %q? (y/N)", rec.Word)))
		}
	}
	b.WriteString("\n")

	if m.status != "" {
		color := lipgloss.Color("10")
		if m.isError {
			color = lipgloss.Color("1")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m WordListModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m WordListModel) IsQuitting() bool {
	return m.quitting
}
