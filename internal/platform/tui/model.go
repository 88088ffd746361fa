package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/lane-racer/internal/core"
	"github.com/vovakirdan/lane-racer/internal/storage"
)

// highScoreSetter is implemented by games that show the best score of the
// session on their game over screen.
type highScoreSetter interface {
	SetHighScore(score int)
}

// Model is the Bubble Tea model for one racer session.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	pending    core.InputFrame // One-shot commands for the next tick
	gameState  core.GameState
	player     string
	runID      string
	scoreboard *ScoreboardModel // Non-nil while the leaderboard is shown
	quitting   bool
	scoreSaved bool // Whether the current run has been recorded
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for run events. The default discards everything.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithPlayer sets the name recorded with finished runs.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		m.player = name
	}
}

// WithHoldWindow sets how many ticks a direction stays held after a press.
func WithHoldWindow(ticks int) ModelOption {
	return func(m *Model) {
		m.hold = NewHoldTracker(ticks)
	}
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case runs are not recorded.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:    game,
		store:   store,
		logger:  log.New(io.Discard),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hold:    NewHoldTracker(DefaultHoldWindow),
		pending: core.NewInputFrame(),
		player:  "player",
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.screen = core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH))
	m.help.Width = cfg.ScreenW
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.refreshHighScore()

	return m
}

// playfieldHeight leaves one row for the help line.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("run started", "run", m.runID, "player", m.player, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Debug("quit requested", "run", m.runID)
		return m, tea.Quit

	case action.IsDirection():
		m.hold.Press(action)

	case action == core.ActionScoreboard:
		if m.gameState.GameOver {
			board := NewScoreboardModel(m.store, m.config.TickRate, m.config.ScreenW, m.config.ScreenH)
			m.scoreboard = &board
		}

	case action != core.ActionNone:
		m.pending.Set(action)
	}

	return m, nil
}

// updateScoreboard forwards input to the open leaderboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	board, cmd := m.scoreboard.Update(msg)
	switch {
	case board.IsQuitting():
		m.quitting = true
		m.scoreboard = nil
		return m, tea.Quit
	case board.Closed():
		m.scoreboard = nil
	default:
		m.scoreboard = &board
	}
	return m, cmd
}

// handleResize processes window resize events.
// The playfield is resolution independent, so the run carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.pending.Clone()
	m.hold.Apply(&in)
	m.pending.Clear()
	m.hold.Advance()

	wasOver := m.gameState.GameOver
	m.gameState = m.game.Step(in).State

	// Restarted by the game on the reset command
	if wasOver && !m.gameState.GameOver {
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.hold.Release()
		m.logger.Info("run started", "run", m.runID, "player", m.player)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run on the session leaderboard.
func (m *Model) recordRun() {
	s := m.gameState
	m.logger.Info("run finished",
		"run", m.runID,
		"player", m.player,
		"score", s.Score,
		"coins", s.Pickups,
		"ticks", s.Ticks,
	)

	if m.store == nil {
		return
	}

	_, err := m.store.SaveRun(storage.RunRecord{
		RunID:  m.runID,
		Player: m.player,
		Score:  s.Score,
		Coins:  s.Pickups,
		Ticks:  s.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not record run", "run", m.runID, "error", err)
		return
	}
	m.refreshHighScore()
}

// refreshHighScore passes the best recorded score to the game.
func (m *Model) refreshHighScore() {
	setter, ok := m.game.(highScoreSetter)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return
	}
	setter.SetHighScore(best)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
