package sim

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

// Pattern is the set of directions a moxa blast travels.
type Pattern uint8

const (
	PatternCross Pattern = iota
	PatternHex
	PatternOctagon
)

var (
	crossDirs = []core.Dir{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}
	hexDirs   = []core.Dir{core.DirUp, core.DirDown, core.DirLeft, core.DirRight, core.DirDownRight, core.DirUpLeft}
	octDirs   = []core.Dir{
		core.DirUp, core.DirDown, core.DirLeft, core.DirRight,
		core.DirDownRight, core.DirUpLeft, core.DirUpRight, core.DirDownLeft,
	}
)

// PatternFor maps the pattern unlock count to a blast pattern.
func PatternFor(count int) Pattern {
	switch {
	case count <= 1:
		return PatternCross
	case count == 2:
		return PatternHex
	default:
		return PatternOctagon
	}
}

func (p Pattern) String() string {
	switch p {
	case PatternHex:
		return "hex"
	case PatternOctagon:
		return "octagon"
	default:
		return "cross"
	}
}

// Dirs returns the propagation directions of p.
func (p Pattern) Dirs() []core.Dir {
	switch p {
	case PatternHex:
		return hexDirs
	case PatternOctagon:
		return octDirs
	default:
		return crossDirs
	}
}

// BlastCells returns the cells a blast at origin reaches, origin first.
// A solid wall or the grid edge stops a ray before it. A breakable wall or
// reward node is included and stops the ray.
func BlastCells(g *Grid, origin core.Point, pattern Pattern, blast int) []core.Point {
	cells := []core.Point{origin}
	for _, d := range pattern.Dirs() {
		c := origin
		for i := 1; i <= blast; i++ {
			c = c.Add(d)
			if !InBounds(c) {
				break
			}
			k := g.At(c)
			if k == SolidWall {
				break
			}
			cells = append(cells, c)
			if k == BreakableWall || k.IsNode() {
				break
			}
		}
	}
	return cells
}

// tickExplosives counts every fuse down and detonates the ones that ran out.
func (s *Simulation) tickExplosives(now time.Duration) {
	period := s.cfg.Timing.ExplosivePeriod()
	var due []int
	for i := range s.explosives {
		s.explosives[i].Fuse -= period
		if s.explosives[i].Fuse <= 0 {
			due = append(due, s.explosives[i].ID)
		}
	}
	if len(due) > 0 {
		s.detonate(due, now)
	}
	if len(s.explosives) == 0 {
		s.sched.Disarm(TaskExplosives)
	}
}

// detonate resolves one batch. Explosives caught in the blast of a batch
// member join the batch until no new one is pulled in. Every ray is traced
// against the grid as it was before the batch.
func (s *Simulation) detonate(seeds []int, now time.Duration) {
	before := s.grid
	pattern := PatternFor(s.progress.Power.PatternCount)
	blast := s.progress.Power.Blast

	consumed := mapset.New[int]()
	affected := mapset.New[core.Point]()
	var cells []core.Point

	queue := append([]int(nil), seeds...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if consumed.Has(id) {
			continue
		}
		e, ok := s.explosiveByID(id)
		if !ok {
			continue
		}
		consumed.Put(id)

		for _, c := range BlastCells(&before, e.Pos, pattern, blast) {
			if affected.Has(c) {
				continue
			}
			affected.Put(c)
			cells = append(cells, c)
		}
		for _, other := range s.explosives {
			if !consumed.Has(other.ID) && affected.Has(other.Pos) {
				queue = append(queue, other.ID)
			}
		}
	}

	kept := s.explosives[:0]
	for _, e := range s.explosives {
		if !consumed.Has(e.ID) {
			kept = append(kept, e)
		}
	}
	s.explosives = kept

	s.applyBlast(cells, now)
}

// applyBlast applies every effect of one detonation batch.
func (s *Simulation) applyBlast(cells []core.Point, now time.Duration) {
	s.sink.Notify(EventExplosionTriggered)

	playerHit := false
	defeated := 0
	for _, c := range cells {
		switch k := s.grid.At(c); {
		case k == BreakableWall:
			s.grid.Set(c, Empty)
			s.progress.award(s.cfg.Scoring.Wall)
		case k.IsNode():
			s.openNode(c, s.cfg.Rewards.Explosion)
		case k == RewardContainer:
			s.removeContainerAt(c)
		}
		defeated += s.removeEnemiesAt(c)
		s.markExplosion(c, now)
		if c == s.player {
			playerHit = true
		}
	}
	s.scoreEnemies(defeated)

	if playerHit {
		s.fail()
		return
	}
	s.checkWin()
}

// markExplosion records or refreshes a blast marker.
func (s *Simulation) markExplosion(c core.Point, now time.Duration) {
	for i := range s.explosions {
		if s.explosions[i].Pos == c {
			s.explosions[i].At = now
			return
		}
	}
	s.explosions = append(s.explosions, Explosion{Pos: c, At: now})
	s.sched.Arm(TaskEffects)
}

func (s *Simulation) markerAt(p core.Point) bool {
	for _, x := range s.explosions {
		if x.Pos == p {
			return true
		}
	}
	return false
}

// tickEffects expires blast markers.
func (s *Simulation) tickEffects(now time.Duration) {
	life := s.cfg.Timing.ExplosionLifetime()
	kept := s.explosions[:0]
	for _, x := range s.explosions {
		if now-x.At < life {
			kept = append(kept, x)
		}
	}
	s.explosions = kept
	if len(kept) == 0 {
		s.sched.Disarm(TaskEffects)
	}
}
