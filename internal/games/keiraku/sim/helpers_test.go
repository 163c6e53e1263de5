package sim

import (
	"testing"

	"github.com/vovakirdan/keiraku-bomber/internal/config"
	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

// scriptedRand replays fixed draws. When a script runs out, Float64
// returns 0.999 (no rare outcome) and Intn returns 0.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.999
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

type recorder struct {
	events []Event
}

func (r *recorder) Notify(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(e Event) int {
	n := 0
	for _, got := range r.events {
		if got == e {
			n++
		}
	}
	return n
}

// newArena builds an active simulation from a small map drawn in the
// top-left corner; everything else is solid wall.
//
//	# solid   B breakable   n/s/h normal/special/hidden node
//	c container (mugwort)   . empty   P player
//	W wind  H heat  G plague  C cold  D damp
//
// The enemy task is left disarmed so tests control enemy ticks.
func newArena(t *testing.T, rows ...string) (*Simulation, *recorder, *scriptedRand) {
	t.Helper()

	rng := &scriptedRand{}
	rec := &recorder{}
	s := New(config.DefaultKeirakuConfig(), nil, rng, rec)
	s.started = true

	for y := range s.grid {
		for x := range s.grid[y] {
			s.grid[y][x] = SolidWall
		}
	}

	enemyKinds := map[rune]EnemyKind{
		'W': EnemyWind, 'H': EnemyHeat, 'G': EnemyPlague, 'C': EnemyCold, 'D': EnemyDamp,
	}
	for y, row := range rows {
		for x, ch := range row {
			p := core.Pt(x, y)
			kind := Empty
			switch ch {
			case '#':
				kind = SolidWall
			case 'B':
				kind = BreakableWall
			case 'n':
				kind = NodeNormal
			case 's':
				kind = NodeSpecial
			case 'h':
				kind = NodeHidden
			case 'c':
				kind = RewardContainer
				s.containers = append(s.containers, Container{ID: s.nextID(), Pos: p, Payload: HerbMugwort})
			case 'P':
				s.player = p
			case '.':
			default:
				k, ok := enemyKinds[ch]
				if !ok {
					t.Fatalf("unknown arena rune %q", ch)
				}
				s.enemies = append(s.enemies, Enemy{ID: s.nextID(), Pos: p, Kind: k})
			}
			s.grid[y][x] = kind
		}
	}
	s.progress.Status = StatusActive
	return s, rec, rng
}

// keepAlive parks an enemy inside solid rock so clearing the arena does
// not end the stage.
func keepAlive(s *Simulation) {
	s.enemies = append(s.enemies, Enemy{ID: s.nextID(), Pos: core.Pt(GridSize-2, GridSize-2), Kind: EnemyDamp})
}

func placeAt(s *Simulation, p core.Point, fuseMs int) {
	s.explosives = append(s.explosives, Explosive{
		ID:   s.nextID(),
		Pos:  p,
		Fuse: config.TimingConfig{FuseMs: fuseMs}.Fuse(),
	})
	s.sched.Arm(TaskExplosives)
}
