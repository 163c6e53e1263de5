package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
	"github.com/vovakirdan/keiraku-bomber/internal/registry"
	"github.com/vovakirdan/keiraku-bomber/internal/storage"
)

// Model runs one game inside Bubble Tea: ticks step the game, keys fill the
// next input frame, and a finished run is recorded once in the score store.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	keys   *KeyMapper
	config core.RuntimeConfig

	pending core.InputFrame // actions pressed since the last tick
	state   core.GameState

	best     int  // stored high score when the run started
	recorded bool // the current game over is already in the store
	newBest  bool

	quitting bool
	back     bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		keys:    NewKeyMapper(),
		config:  cfg,
		pending: core.NewInputFrame(),
	}
	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			m.best = best
		}
	}
	return m
}

// Init starts the run and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.onKey(msg)
	case tea.WindowSizeMsg:
		// The run keeps going; the renderer scrolls when the grid no longer fits.
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.onTick()
	}
	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.pending.Set(action)
	}
	return m, nil
}

func (m Model) onTick() (tea.Model, tea.Cmd) {
	m.state = m.game.Step(m.pending).State
	m.pending.Clear()

	switch {
	case m.state.GameOver && !m.recorded:
		m.record()
		m.recorded = true
	case !m.state.GameOver:
		// retry or restart after a game over
		m.recorded = false
		m.newBest = false
	}
	return m, tickCmd(m.config.TickRate)
}

// record stores a finished run with a positive score.
func (m *Model) record() {
	if m.store == nil || m.state.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.state.Stage, m.state.Score); err != nil {
		return // best effort; the game continues regardless
	}
	if m.state.Score > m.best {
		m.best = m.state.Score
		m.newBest = true
	}
}

// saveScreenshot writes the current frame as text under ~/.keiraku/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".keiraku", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	if m.newBest {
		m.screen.DrawTextCentered(m.screen.Height()-1, fmt.Sprintf(" NEW BEST: %d ", m.best), core.ColorBrightYellow)
	}
	return RenderScreen(m.screen)
}

// Back reports whether the player asked to return to the menu.
func (m Model) Back() bool {
	return m.back
}

// IsQuitting returns true if the player quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// GameState returns the state seen on the last tick.
func (m Model) GameState() core.GameState {
	return m.state
}

// NewBest reports whether the finished run beat the stored high score.
func (m Model) NewBest() bool {
	return m.newBest
}

// Run starts the Bubble Tea program for the game. It reports whether the
// player left with the back key rather than quitting.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (back bool, err error) {
	p := tea.NewProgram(NewModel(game, store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.Back(), nil
}
