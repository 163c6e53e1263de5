// Package keiraku adapts the bomber simulation to the arcade platform.
// It maps input frames to simulation commands, advances simulation time by
// one platform frame per Step and draws snapshots into a screen buffer.
package keiraku

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/keiraku-bomber/internal/config"
	"github.com/vovakirdan/keiraku-bomber/internal/core"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
	"github.com/vovakirdan/keiraku-bomber/internal/registry"
)

// Game IDs registered with the platform.
const (
	StoryID = "keiraku"
	FreeID  = "keiraku_free"
)

// Package-level settings applied to games created by the registry.
var (
	settingsMu sync.RWMutex
	settings   = struct {
		cfg     config.KeirakuConfig
		catalog sim.Catalog
		sink    sim.EventSink
	}{cfg: config.DefaultKeirakuConfig()}
)

// Configure sets the simulation config used by new games.
func Configure(cfg config.KeirakuConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings.cfg = cfg
}

// SetCatalog replaces the stage catalog used by new games. A nil catalog
// restores the built-in stages.
func SetCatalog(c sim.Catalog) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings.catalog = c
}

// SetEventSink sets the sink new games forward events to.
func SetEventSink(s sim.EventSink) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings.sink = s
}

// Catalog returns the catalog new games will use.
func Catalog() sim.Catalog {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	if len(settings.catalog) == 0 {
		return sim.DefaultCatalog()
	}
	return settings.catalog
}

func init() {
	registry.Register(StoryID, func() registry.Game {
		return New(sim.ModeStory)
	})
	registry.Register(FreeID, func() registry.Game {
		return New(sim.ModeFree)
	})
}

// Game implements registry.Game on top of a sim.Simulation.
type Game struct {
	mode    sim.Mode
	cfg     config.KeirakuConfig
	catalog sim.Catalog
	sink    sim.EventSink

	sim      *sim.Simulation
	frame    time.Duration
	complete bool  // story campaign finished
	err      error // last stage start failure

	screenW int
	screenH int
}

// New creates a game using the package settings.
func New(mode sim.Mode) *Game {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return NewWith(mode, settings.cfg, settings.catalog, settings.sink)
}

// NewWith creates a game with explicit dependencies.
func NewWith(mode sim.Mode, cfg config.KeirakuConfig, catalog sim.Catalog, sink sim.EventSink) *Game {
	if len(catalog) == 0 {
		catalog = sim.DefaultCatalog()
	}
	return &Game{mode: mode, cfg: cfg, catalog: catalog, sink: sink}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == sim.ModeFree {
		return FreeID
	}
	return StoryID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == sim.ModeFree {
		return "Keiraku Bomber (Free Play)"
	}
	return "Keiraku Bomber"
}

// Reset starts a new run at cfg.Stage.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(rate)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.complete = false

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.sim = sim.New(g.cfg, g.catalog, rng, g.sink)

	stage := core.Clamp(cfg.Stage, 0, len(g.catalog)-1)
	g.err = g.sim.StartRun(g.mode, stage)
}

// Step applies one frame of input and advances the simulation a frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionPause) {
		g.sim.TogglePause()
	}
	if in.Has(core.ActionRestart) && !g.complete {
		g.err = g.sim.Restart()
	}
	if in.Has(core.ActionConfirm) {
		g.confirm()
	}

	for _, a := range []core.Action{core.ActionMoveUp, core.ActionMoveDown, core.ActionMoveLeft, core.ActionMoveRight} {
		if d, _ := a.MoveDir(); in.Has(a) && g.sim.Move(d) {
			break
		}
	}
	if in.Has(core.ActionPlace) {
		g.sim.PlaceExplosive()
	}
	for _, a := range []core.Action{core.ActionFireUp, core.ActionFireDown, core.ActionFireLeft, core.ActionFireRight} {
		if d, _ := a.FireDir(); in.Has(a) {
			g.sim.Fire(d)
			break
		}
	}

	g.sim.Advance(g.frame)
	return core.StepResult{State: g.State()}
}

// confirm moves past a finished stage: the next stage after a story win,
// a fresh layout otherwise.
func (g *Game) confirm() {
	switch g.sim.Status() {
	case sim.StatusWon:
		if g.mode == sim.ModeFree {
			g.err = g.sim.Restart()
			return
		}
		err := g.sim.NextStage()
		if errors.Is(err, sim.ErrCampaignComplete) {
			g.complete = true
			return
		}
		g.err = err
	case sim.StatusFailed:
		g.err = g.sim.Restart()
	}
}

// State returns the platform view of the run.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.complete || g.sim.Status() == sim.StatusFailed,
		Won:      g.sim.Status() == sim.StatusWon,
		Paused:   g.sim.Paused(),
		Stage:    g.sim.Stage().ID,
	}
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *sim.Simulation { return g.sim }

// Complete reports whether the story campaign has been finished.
func (g *Game) Complete() bool { return g.complete }

// Err returns the last stage start failure, if any.
func (g *Game) Err() error { return g.err }
