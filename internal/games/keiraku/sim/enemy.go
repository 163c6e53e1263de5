package sim

import (
	"time"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

// tickEnemies runs one controller step for every enemy.
func (s *Simulation) tickEnemies(_ time.Duration) {
	// Flocking looks at positions as they were when the tick began.
	start := make([]Enemy, len(s.enemies))
	copy(start, s.enemies)

	cadence := s.cfg.Enemies.Cadence
	for i := range s.enemies {
		e := &s.enemies[i]
		e.Counter++
		if e.Counter < e.Kind.cadence(cadence) {
			continue
		}
		e.Counter = 0

		moves := s.enemyMoves(*e)
		if len(moves) == 0 {
			continue
		}
		e.Pos = s.chooseMove(*e, moves, start)
		if e.Pos == s.player {
			s.fail()
			return
		}
	}

	// Enemies that walked into a lingering blast are defeated.
	defeated := 0
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if s.markerAt(e.Pos) {
			defeated++
			continue
		}
		kept = append(kept, e)
	}
	s.enemies = kept
	s.scoreEnemies(defeated)
	s.checkWin()
}

// enemyMoves lists the axis neighbours an enemy may step to, in up, down,
// left, right order. Cells held by another enemy, as positioned after the
// earlier moves of this tick, are excluded.
func (s *Simulation) enemyMoves(e Enemy) []core.Point {
	moves := make([]core.Point, 0, len(core.Cardinal))
	for _, d := range core.Cardinal {
		c := e.Pos.Add(d)
		if !InBounds(c) {
			continue
		}
		if k := s.grid.At(c); k.IsWall() || k.IsNode() {
			continue
		}
		if s.explosiveAt(c) >= 0 || s.otherEnemyAt(c, e.ID) {
			continue
		}
		moves = append(moves, c)
	}
	return moves
}

func (s *Simulation) otherEnemyAt(p core.Point, self int) bool {
	for _, o := range s.enemies {
		if o.ID != self && o.Pos == p {
			return true
		}
	}
	return false
}

func (s *Simulation) chooseMove(e Enemy, moves []core.Point, start []Enemy) core.Point {
	switch e.Kind {
	case EnemyHeat:
		return closest(moves, s.player)
	case EnemyPlague:
		if kin, ok := firstKin(e, start, s.cfg.Enemies.FlockRadius); ok && s.rng.Float64() < s.cfg.Enemies.FlockChance {
			return closest(moves, kin)
		}
	}
	return moves[s.rng.Intn(len(moves))]
}

// closest returns the move with the smallest Manhattan distance to target.
// The earliest move wins ties.
func closest(moves []core.Point, target core.Point) core.Point {
	best := moves[0]
	for _, m := range moves[1:] {
		if m.Manhattan(target) < best.Manhattan(target) {
			best = m
		}
	}
	return best
}

// firstKin returns the first other plague enemy within radius on both axes.
func firstKin(e Enemy, enemies []Enemy, radius int) (core.Point, bool) {
	for _, o := range enemies {
		if o.Kind != EnemyPlague || o.ID == e.ID {
			continue
		}
		if o.Pos.Chebyshev(e.Pos) <= radius {
			return o.Pos, true
		}
	}
	return core.Point{}, false
}
