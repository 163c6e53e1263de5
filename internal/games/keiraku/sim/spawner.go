package sim

import (
	"sort"

	"github.com/vovakirdan/keiraku-bomber/internal/config"
	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

// idSource hands out entity ids.
type idSource func() int

// SpawnPlayer picks a start cell biased towards open areas: cells are
// ranked by their walkable 8-neighbours and one of the best pool is
// chosen uniformly.
func SpawnPlayer(l *Layout, pool int, rng Rand) (core.Point, bool) {
	if len(l.Open) == 0 {
		return core.Point{}, false
	}

	type scored struct {
		p     core.Point
		count int
	}
	ranked := make([]scored, len(l.Open))
	for i, p := range l.Open {
		ranked[i] = scored{p: p, count: openNeighbours(&l.Grid, p)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	n := core.Min(pool, len(ranked))
	if n <= 0 {
		n = 1
	}
	return ranked[rng.Intn(n)].p, true
}

func openNeighbours(g *Grid, p core.Point) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.At(core.Pt(p.X+dx, p.Y+dy)).Walkable() {
				n++
			}
		}
	}
	return n
}

// SpawnEnemies places up to count enemies on open cells farther than
// minDist from the player. Slots with no candidate are skipped; kinds
// follow the slot index round-robin.
func SpawnEnemies(l *Layout, player core.Point, count, minDist int, rng Rand, nextID idSource) []Enemy {
	enemies := make([]Enemy, 0, count)
	taken := make(map[core.Point]bool, count)
	limit := minDist * minDist

	for slot := 0; slot < count; slot++ {
		var candidates []core.Point
		for _, p := range l.Open {
			if p.DistSq(player) > limit && !taken[p] {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		p := candidates[rng.Intn(len(candidates))]
		taken[p] = true
		enemies = append(enemies, Enemy{
			ID:   nextID(),
			Pos:  p,
			Kind: enemyKinds[slot%len(enemyKinds)],
		})
	}
	return enemies
}

// SeedContainers assigns a herb to every container cell of the layout.
func SeedContainers(l *Layout, herbs config.HerbsConfig, rng Rand, nextID idSource) []Container {
	out := make([]Container, 0, len(l.Containers))
	for _, p := range l.Containers {
		out = append(out, Container{
			ID:      nextID(),
			Pos:     p,
			Payload: drawContainerHerb(herbs, rng),
		})
	}
	return out
}
