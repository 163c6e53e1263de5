package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/keiraku-bomber/internal/config"
	"github.com/vovakirdan/keiraku-bomber/internal/core"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
	"github.com/vovakirdan/keiraku-bomber/internal/storage"
)

// oneEmptyStage is a story campaign of a single stage without enemies,
// cleared the moment it starts.
func oneEmptyStage() *keiraku.Game {
	cfg := config.DefaultKeirakuConfig()
	cfg.Spawn.BaseEnemies = -100
	return keiraku.NewWith(sim.ModeStory, cfg, sim.DefaultCatalog()[:1], nil)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(oneEmptyStage(), store, cfg)
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	if !m.GameState().GameOver {
		t.Fatalf("state = %+v, want finished campaign", m.GameState())
	}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	scores, err := store.TopScores(keiraku.StoryID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(scores))
	}
	if scores[0].Score != 10000 || scores[0].Stage != "heart" {
		t.Errorf("saved %+v", scores[0])
	}
	if !m.NewBest() || !strings.Contains(m.View(), "NEW BEST: 10000") {
		t.Error("first recorded run should be announced as a new best")
	}

	// A second run with the same score is not a new best.
	m = NewModel(oneEmptyStage(), store, cfg)
	m.Init()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	if m.NewBest() {
		t.Error("tying the stored best should not count as a new best")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1

	m := NewModel(oneEmptyStage(), nil, cfg)
	m.Init()
	m = update(t, m, runeKey("b"))
	if !m.Back() || m.IsQuitting() {
		t.Errorf("back key: Back=%v IsQuitting=%v", m.Back(), m.IsQuitting())
	}

	m = NewModel(oneEmptyStage(), nil, cfg)
	m.Init()
	m = update(t, m, runeKey("q"))
	if m.Back() || !m.IsQuitting() {
		t.Errorf("quit key: Back=%v IsQuitting=%v", m.Back(), m.IsQuitting())
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	g := keiraku.NewWith(sim.ModeStory, config.DefaultKeirakuConfig(), nil, nil)

	m := NewModel(g, nil, cfg)
	m.Init()
	m = update(t, m, TickMsg{})
	before := g.Simulation().Now()

	m = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	if g.Simulation().Now() != before {
		t.Error("resize restarted the run")
	}
	if m.View() == "" {
		t.Error("empty view after resize")
	}
}
