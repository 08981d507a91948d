package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goalsat7/space-game/internal/config"
	"github.com/goalsat7/space-game/internal/core"
	"github.com/goalsat7/space-game/internal/game"
	"github.com/goalsat7/space-game/internal/storage"
)

// Model is the Bubble Tea model driving a game session: it turns key events
// into per-tick intents, steps the simulation at the configured rate and
// renders the shared screen buffer.
type Model struct {
	session *game.Session
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig

	difficulty string
	keys       *KeyMapper

	lastState  game.State
	scoreSaved bool
	quitting   bool
}

// NewModel creates a model for a fresh session.
func NewModel(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, difficulty string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		difficulty: difficulty,
		keys:       NewKeyMapper(),
	}
}

// Init starts the tick loop. The session is reset here so SSH sessions get
// their own world.
func (m Model) Init() tea.Cmd {
	m.session.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.HandleKey(msg) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		// The camera viewport derives from the screen size, so the session
		// is rebuilt unless a run would be lost.
		if m.session.State() == game.StateTitle {
			m.session.Reset(m.config)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step(m.keys.NextIntent())

	state := m.session.State()
	if state == game.StateGameOver && m.lastState != game.StateGameOver {
		m.saveScore()
	}
	if state != game.StateGameOver {
		m.scoreSaved = false
	}
	m.lastState = state

	return m, tickCmd(m.config.TickRate)
}

// saveScore persists the finished run once per game over.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.session.Score() <= 0 {
		m.scoreSaved = true
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.session.Score(), m.difficulty, m.config.Seed)
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal.
func Run(cfg config.GameConfig, store *storage.Store, rt core.RuntimeConfig, difficulty string) error {
	model := NewModel(game.NewSession(cfg), store, rt, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
