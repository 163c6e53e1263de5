package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/keiraku-bomber/internal/config"
	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

// ErrCampaignComplete is returned by NextStage after the last stage.
var ErrCampaignComplete = errors.New("campaign complete")

// ErrNoStage is returned by stage operations before a run has started.
var ErrNoStage = errors.New("no stage started")

// Simulation is the whole state of one run: the grid, every entity
// collection, progression and the scheduler that drives them.
type Simulation struct {
	cfg     config.KeirakuConfig
	catalog Catalog
	rng     Rand
	sink    EventSink
	sched   *Scheduler

	grid        Grid
	player      core.Point
	enemies     []Enemy
	explosives  []Explosive
	projectiles []Projectile
	containers  []Container
	items       []Item
	explosions  []Explosion

	progress Progress
	started  bool
	ids      int
	lastMove time.Duration
	hasMoved bool
	notice   *Notice
}

// New creates an idle simulation. A nil catalog uses DefaultCatalog and a
// nil sink discards events.
func New(cfg config.KeirakuConfig, catalog Catalog, rng Rand, sink EventSink) *Simulation {
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}
	if sink == nil {
		sink = Discard
	}
	s := &Simulation{
		cfg:     cfg,
		catalog: catalog,
		rng:     rng,
		sink:    sink,
		sched:   NewScheduler(),
	}
	s.progress.Power = powerFrom(cfg.Power.Initial)

	s.sched.Register(TaskProjectiles, cfg.Timing.ProjectilePeriod(), s.tickProjectiles)
	s.sched.Register(TaskExplosives, cfg.Timing.ExplosivePeriod(), s.tickExplosives)
	s.sched.Register(TaskEnemies, cfg.Timing.EnemyPeriod(), s.tickEnemies)
	s.sched.Register(TaskEffects, cfg.Timing.EffectPeriod(), s.tickEffects)
	return s
}

// StartRun begins a new run in mode at stage index idx. Score and power
// reset.
func (s *Simulation) StartRun(mode Mode, idx int) error {
	s.progress = Progress{
		Mode:  mode,
		Power: powerFrom(s.cfg.Power.Initial),
	}
	return s.StartStage(idx)
}

// StartStage discards the current stage and generates stage idx. Free mode
// resets power; story mode keeps it.
func (s *Simulation) StartStage(idx int) error {
	if idx < 0 || idx >= len(s.catalog) {
		return fmt.Errorf("stage index %d: %w", idx, ErrUnknownStage)
	}
	t := s.catalog[idx]

	s.sched.DisarmAll()
	s.sched.SetPaused(false)
	s.clearEntities()
	s.progress.StageIndex = idx
	s.progress.Status = StatusIdle
	s.started = true

	layout, err := Generate(t, s.cfg.Generation, s.rng)
	if err != nil {
		s.grid = layout.Grid
		return err
	}
	s.grid = layout.Grid

	if s.progress.Mode == ModeFree {
		s.progress.Power = powerFrom(s.cfg.Power.Initial)
	}

	player, ok := SpawnPlayer(layout, s.cfg.Spawn.PlayerPool, s.rng)
	if !ok {
		return fmt.Errorf("stage %q: %w", t.ID, ErrTooFewOpenCells)
	}
	s.player = player
	s.enemies = SpawnEnemies(layout, player, s.cfg.Spawn.EnemyCount(t.Difficulty), s.cfg.Spawn.MinDistance, s.rng, s.nextID)
	s.containers = SeedContainers(layout, s.cfg.Herbs, s.rng, s.nextID)

	s.progress.Status = StatusActive
	s.sched.Arm(TaskEnemies)
	s.checkWin()
	return nil
}

// NextStage advances a cleared run to the following stage.
func (s *Simulation) NextStage() error {
	if !s.started {
		return ErrNoStage
	}
	next := s.progress.StageIndex + 1
	if next >= len(s.catalog) {
		return ErrCampaignComplete
	}
	return s.StartStage(next)
}

// Restart regenerates the current stage with a new layout.
func (s *Simulation) Restart() error {
	if !s.started {
		return ErrNoStage
	}
	return s.StartStage(s.progress.StageIndex)
}

func (s *Simulation) clearEntities() {
	s.enemies = nil
	s.explosives = nil
	s.projectiles = nil
	s.containers = nil
	s.items = nil
	s.explosions = nil
	s.notice = nil
	s.hasMoved = false
}

// Advance moves simulation time forward by dt.
func (s *Simulation) Advance(dt time.Duration) {
	if s.progress.Status != StatusActive {
		return
	}
	s.sched.Advance(dt)
	if s.notice != nil && s.sched.Now() >= s.notice.Expires {
		s.notice = nil
	}
}

// accepting reports whether gameplay commands are currently honoured.
func (s *Simulation) accepting() bool {
	return s.progress.Status == StatusActive && !s.sched.Paused()
}

// Move steps the player one cell. It reports whether the move happened.
func (s *Simulation) Move(d core.Dir) bool {
	if !s.accepting() || d.IsZero() {
		return false
	}
	now := s.sched.Now()
	if s.hasMoved && now-s.lastMove < s.cfg.Timing.MoveCooldown(s.progress.Power.Speed) {
		return false
	}
	target := s.player.Add(d)
	if !InBounds(target) || !s.grid.At(target).Walkable() || s.explosiveAt(target) >= 0 {
		return false
	}

	s.player = target
	s.lastMove = now
	s.hasMoved = true

	s.collect(target)
	s.checkPlayer()
	return true
}

// PlaceExplosive drops a moxa on the player's cell.
func (s *Simulation) PlaceExplosive() bool {
	if !s.accepting() {
		return false
	}
	if s.explosiveAt(s.player) >= 0 || len(s.explosives) >= s.progress.Power.MaxExplosives {
		return false
	}
	s.explosives = append(s.explosives, Explosive{
		ID:   s.nextID(),
		Pos:  s.player,
		Fuse: s.cfg.Timing.Fuse(),
	})
	s.sched.Arm(TaskExplosives)
	s.sink.Notify(EventMoxaPlaced)
	return true
}

// Fire launches a needle in an axis direction.
func (s *Simulation) Fire(d core.Dir) bool {
	if !s.accepting() || d.IsZero() || (d.DX != 0 && d.DY != 0) {
		return false
	}
	s.launch(d)
	s.sink.Notify(EventNeedleFired)
	return true
}

// TogglePause freezes or resumes an active stage.
func (s *Simulation) TogglePause() bool {
	if s.progress.Status != StatusActive {
		return false
	}
	s.sched.SetPaused(!s.sched.Paused())
	return true
}

// collect picks up the container and any dropped items on p.
func (s *Simulation) collect(p core.Point) {
	if c, ok := s.removeContainerAt(p); ok {
		s.grant(c.Payload, p, true)
	}
	kept := s.items[:0]
	var picked []Item
	for _, it := range s.items {
		if it.Pos == p {
			picked = append(picked, it)
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	for _, it := range picked {
		s.grant(it.Payload, p, false)
	}
}

func (s *Simulation) grant(h Herb, at core.Point, fromContainer bool) {
	s.progress.Power.apply(h, s.cfg.Power)
	s.progress.award(herbScore(s.cfg.Herbs, h, fromContainer))
	s.progress.Acquired = append(s.progress.Acquired, h)
	s.post(h.String(), h.Effect(), at)
	s.sink.Notify(EventItemCollected)
}

// openNode opens the reward node at p using one reward table. A cell that
// is no longer a node grants nothing.
func (s *Simulation) openNode(p core.Point, table config.NodeRewardTable) bool {
	kind := s.grid.At(p)
	if !kind.IsNode() {
		return false
	}
	s.grid.Set(p, Empty)

	var reward config.NodeReward
	var name string
	switch kind {
	case NodeNormal:
		reward, name = table.Normal, mappedNodeName(p)
	case NodeSpecial:
		reward, name = table.Special, acupointNames[s.rng.Intn(len(acupointNames))]
		s.post(name, "special point", p)
	case NodeHidden:
		reward, name = table.Hidden, hiddenNodeName
		s.post(name, "hidden point", p)
	}
	s.progress.award(reward.Score)
	s.progress.Power.addReach(reward.Reach, s.cfg.Power)
	s.progress.Opened = append(s.progress.Opened, name)

	if kind == NodeHidden && table.FullPowerDrop > 0 && s.rng.Float64() < table.FullPowerDrop {
		s.drop(HerbFullPower, p)
	}
	if table.HerbDrop > 0 && s.rng.Float64() < table.HerbDrop {
		s.drop(drawDropHerb(s.cfg.Herbs, s.rng), p)
	}
	s.sink.Notify(EventNodeOpened)
	return true
}

func (s *Simulation) drop(h Herb, p core.Point) {
	s.items = append(s.items, Item{ID: s.nextID(), Pos: p, Payload: h})
}

func (s *Simulation) post(title, detail string, p core.Point) {
	s.notice = &Notice{
		Title:   title,
		Detail:  detail,
		Pos:     p,
		Expires: s.sched.Now() + s.cfg.Timing.Notice(),
	}
}

// checkPlayer fails the run if the player shares a cell with an enemy or
// a lingering blast.
func (s *Simulation) checkPlayer() {
	if s.progress.Status != StatusActive {
		return
	}
	if s.enemyAt(s.player) || s.markerAt(s.player) {
		s.fail()
	}
}

func (s *Simulation) fail() {
	if s.progress.Status != StatusActive {
		return
	}
	s.progress.Status = StatusFailed
	s.sched.DisarmAll()
	s.notice = nil // time stops, so it would never expire
	s.sink.Notify(EventRunFailed)
}

func (s *Simulation) checkWin() {
	if s.progress.Status != StatusActive || len(s.enemies) > 0 {
		return
	}
	s.progress.award(s.cfg.Scoring.StageClear)
	s.progress.Status = StatusWon
	s.sched.DisarmAll()
	s.notice = nil
	s.sink.Notify(EventStageCleared)
}

func (s *Simulation) scoreEnemies(n int) {
	if n <= 0 {
		return
	}
	s.progress.award(n * s.cfg.Scoring.Enemy)
	s.sink.Notify(EventEnemyDefeated)
}

func (s *Simulation) nextID() int {
	s.ids++
	return s.ids
}

func (s *Simulation) explosiveAt(p core.Point) int {
	for i, e := range s.explosives {
		if e.Pos == p {
			return i
		}
	}
	return -1
}

func (s *Simulation) explosiveByID(id int) (Explosive, bool) {
	for _, e := range s.explosives {
		if e.ID == id {
			return e, true
		}
	}
	return Explosive{}, false
}

func (s *Simulation) enemyAt(p core.Point) bool {
	for _, e := range s.enemies {
		if e.Pos == p {
			return true
		}
	}
	return false
}

// removeEnemiesAt removes every enemy on p without scoring them.
func (s *Simulation) removeEnemiesAt(p core.Point) int {
	n := 0
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Pos == p {
			n++
			continue
		}
		kept = append(kept, e)
	}
	s.enemies = kept
	return n
}

// removeContainerAt destroys the container on p and clears its cell.
func (s *Simulation) removeContainerAt(p core.Point) (Container, bool) {
	for i, c := range s.containers {
		if c.Pos == p {
			s.containers = append(s.containers[:i], s.containers[i+1:]...)
			if s.grid.At(p) == RewardContainer {
				s.grid.Set(p, Empty)
			}
			return c, true
		}
	}
	if s.grid.At(p) == RewardContainer {
		s.grid.Set(p, Empty)
	}
	return Container{}, false
}

// Accessors used by front ends and tests.

// Status returns the stage lifecycle state.
func (s *Simulation) Status() Status { return s.progress.Status }

// Score returns the run score.
func (s *Simulation) Score() int { return s.progress.Score }

// Power returns the current power levels.
func (s *Simulation) Power() Power { return s.progress.Power }

// Mode returns the run mode.
func (s *Simulation) Mode() Mode { return s.progress.Mode }

// Paused reports whether the stage is paused.
func (s *Simulation) Paused() bool { return s.sched.Paused() }

// Now returns the simulation clock.
func (s *Simulation) Now() time.Duration { return s.sched.Now() }

// Player returns the player position.
func (s *Simulation) Player() core.Point { return s.player }

// Catalog returns the stage catalog.
func (s *Simulation) Catalog() Catalog { return s.catalog }

// Stage returns the current template.
func (s *Simulation) Stage() Template { return s.catalog[s.progress.StageIndex] }

// StageIndex returns the current stage index.
func (s *Simulation) StageIndex() int { return s.progress.StageIndex }

// Cell returns the grid kind at p.
func (s *Simulation) Cell(p core.Point) CellKind { return s.grid.At(p) }

// Scheduler exposes the task scheduler for inspection.
func (s *Simulation) Scheduler() *Scheduler { return s.sched }
