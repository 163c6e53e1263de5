package sim

import (
	"time"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

// tickProjectiles advances every needle one cell.
func (s *Simulation) tickProjectiles(_ time.Duration) {
	kept := make([]Projectile, 0, len(s.projectiles))
	for i, p := range s.projectiles {
		if s.progress.Status != StatusActive {
			kept = append(kept, s.projectiles[i:]...)
			break
		}
		if s.stepProjectile(&p) {
			kept = append(kept, p)
		}
	}
	s.projectiles = kept
	if len(s.projectiles) == 0 {
		s.sched.Disarm(TaskProjectiles)
	}
}

// stepProjectile moves p and resolves what it hits. It reports whether the
// needle is still in flight.
func (s *Simulation) stepProjectile(p *Projectile) bool {
	next := p.Pos.Add(p.Dir)
	p.Pos = next
	p.Distance++

	switch k := s.grid.At(next); {
	case k.IsWall():
		// Off-grid reads as solid. Needles never break walls.
		return false
	case k.IsNode():
		s.openNode(next, s.cfg.Rewards.Projectile)
		return false
	case k == RewardContainer:
		s.removeContainerAt(next)
	}

	if n := s.removeEnemiesAt(next); n > 0 {
		s.scoreEnemies(n)
		s.checkWin()
		return false
	}
	return p.Distance < s.progress.Power.Reach
}

// launch creates a needle at the player heading in d.
func (s *Simulation) launch(d core.Dir) {
	s.projectiles = append(s.projectiles, Projectile{
		ID:  s.nextID(),
		Pos: s.player,
		Dir: d,
	})
	s.sched.Arm(TaskProjectiles)
}
