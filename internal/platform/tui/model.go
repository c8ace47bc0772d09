package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/castle-crawler/internal/core"
	"github.com/vovakirdan/castle-crawler/internal/crawler"
	"github.com/vovakirdan/castle-crawler/internal/logging"
	"github.com/vovakirdan/castle-crawler/internal/storage"
)

// footerLines is the space kept below the game screen for the key help.
const footerLines = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a crawl.
type Model struct {
	game     *crawler.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	colors   bool
	state    core.GameState
	quitting bool
	runSaved bool // Whether the current run has been recorded
}

// NewModel creates a model for game and starts a new run. A zero seed is
// replaced with the current time. store and logger may be nil.
func NewModel(game *crawler.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	game.Reset(cfg)

	settings := game.Settings()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerLines, 1)),
		store:  store,
		logger: logger,
		keys:   NewKeyMap(settings),
		help:   h,
		config: cfg,
		colors: settings.UseColors,
		state:  game.State(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil
	}

	return m, nil
}

// handleKey maps the key to an action and advances the game by one step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.saveRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}

	frame := core.NewInputFrame()
	if a := m.keys.Action(msg, m.game.PendingQuit()); a != core.ActionNone {
		frame.Set(a)
	}

	wasOver := m.state.GameOver
	res := m.game.Step(frame)
	m.state = res.State

	switch {
	case m.state.Quit:
		m.saveRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	case m.state.GameOver:
		m.saveRun(storage.OutcomeDefeated)
	case wasOver:
		// Restarted after a defeat.
		m.runSaved = false
	}

	return m, nil
}

// handleResize adapts the screen buffer. The run itself is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerLines, 1))
	m.help.Width = msg.Width
	return m
}

// saveRun records the current run once. Storage is best effort; the game
// continues when it fails.
func (m *Model) saveRun(outcome storage.Outcome) {
	if m.runSaved {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	p := m.game.Player()
	run := storage.Run{
		PlayerName: p.Name,
		Depth:      m.state.Depth,
		Level:      p.Level,
		Kills:      m.state.Kills,
		Turns:      m.state.Turns,
		Outcome:    outcome,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("cannot save run", "err", err)
		return
	}
	m.logger.Debug("run saved", "outcome", outcome, "depth", run.Depth, "kills", run.Kills)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.colors) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for one crawl and returns the final state.
func Run(game *crawler.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (core.GameState, error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return model.State(), nil
}
