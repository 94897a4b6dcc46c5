package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/purrdle/internal/core"
)

// page is the part of the app a session is showing.
type page int

const (
	pageMenu page = iota
	pageGame
	pageWords
	pageStats
)

// SessionModel manages the full app flow: menu -> mode or screen -> menu.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	svc       Services
	config    core.RuntimeConfig
	username  string
	sessionID string
	current   page
	menu      MenuModel
	game      *GameModel
	words     *WordListModel
	stats     *StatsModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(svc Services, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		svc:       svc,
		config:    cfg,
		username:  username,
		sessionID: uuid.NewString(),
		menu:      NewMenuModel(svc, cfg),
	}
}

// SessionID identifies this session in the history.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case pageGame:
		return m.updateGame(msg)
	case pageWords:
		return m.updateWords(msg)
	case pageStats:
		return m.updateStats(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu returns to a fresh menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.current = pageMenu
	m.game, m.words, m.stats = nil, nil, nil
	m.menu = NewMenuModel(m.svc, m.config)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	m.config = m.menu.Config()

	switch selected.Kind {
	case MenuWords:
		words := NewWordListModel(m.svc, m.config.ScreenW, m.config.ScreenH)
		m.words = &words
		m.current = pageWords
		return m, words.Init()

	case MenuStats:
		stats := NewStatsModel(m.svc, m.config.ScreenW, m.config.ScreenH)
		m.stats = &stats
		m.current = pageStats
		return m, stats.Init()
	}

	game, err := m.svc.Registry.Create(selected.GameID)
	if err != nil {
		// Shouldn't happen since menu only shows registered modes
		m.svc.logger().Error("cannot create mode", "mode", selected.GameID, "error", err)
		return m.toMenu()
	}
	m.svc.logger().Debug("mode started", "mode", selected.GameID, "user", m.username)

	gameModel := NewGameModel(game, m.svc, m.config, m.sessionID)
	m.game = &gameModel
	m.current = pageGame
	return m, tea.Batch(m.game.Init(), tea.EnableMouseCellMotion)
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		// The pending tick is dropped by the menu.
		next, menuCmd := m.toMenu()
		return next, tea.Batch(menuCmd, tea.DisableMouse)
	}

	return m, cmd
}

func (m SessionModel) updateWords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.words.Update(msg)
	if wl, ok := newModel.(WordListModel); ok {
		m.words = &wl
	}

	if m.words.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.words.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.stats.Update(msg)
	if sm, ok := newModel.(StatsModel); ok {
		m.stats = &sm
	}

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.stats.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.current == pageGame && m.game != nil:
		return m.game.View()
	case m.current == pageWords && m.words != nil:
		return m.words.View()
	case m.current == pageStats && m.stats != nil:
		return m.stats.View()
	}
	return m.menu.View()
}

// RunApp runs the menu-driven app in the local terminal.
func RunApp(svc Services, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(svc, cfg, ""),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// RunWordList runs the word list screen on its own.
func RunWordList(svc Services, cfg core.RuntimeConfig) error {
	m := NewSessionModel(svc, cfg, "")
	words := NewWordListModel(svc, cfg.ScreenW, cfg.ScreenH)
	m.words = &words
	m.current = pageWords
	return runSolo(m)
}

// RunStats runs the statistics screen on its own.
func RunStats(svc Services, cfg core.RuntimeConfig) error {
	m := NewSessionModel(svc, cfg, "")
	stats := NewStatsModel(svc, cfg.ScreenW, cfg.ScreenH)
	m.stats = &stats
	m.current = pageStats
	return runSolo(m)
}

func runSolo(m SessionModel) error {
	p := tea.NewProgram(&soloProgram{SessionModel: m, page: m.current}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// soloProgram quits instead of opening the menu when its screen is left.
type soloProgram struct {
	SessionModel
	page page
}

func (p *soloProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.SessionModel.Update(msg)
	if sm, ok := next.(SessionModel); ok {
		p.SessionModel = sm
	}
	if p.current != p.page {
		return p, tea.Quit
	}
	return p, cmd
}
