package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

func tickEnemiesN(s *Simulation, n int) {
	for i := 0; i < n; i++ {
		s.tickEnemies(s.sched.Now())
	}
}

func TestEnemyCadence(t *testing.T) {
	tests := []struct {
		glyph   string
		kind    EnemyKind
		cadence int
	}{
		{"W", EnemyWind, 2},
		{"H", EnemyHeat, 3},
		{"G", EnemyPlague, 4},
		{"C", EnemyCold, 6},
		{"D", EnemyDamp, 8},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s, _, _ := newArena(t,
				"#####",
				"#."+tt.glyph+".#",
				"#####",
				"P",
			)
			start := s.enemies[0].Pos

			tickEnemiesN(s, tt.cadence-1)
			if s.enemies[0].Pos != start {
				t.Fatalf("moved after %d ticks", tt.cadence-1)
			}
			tickEnemiesN(s, 1)
			if s.enemies[0].Pos == start {
				t.Fatalf("did not move after %d ticks", tt.cadence)
			}
			if s.enemies[0].Counter != 0 {
				t.Errorf("counter = %d after moving, want 0", s.enemies[0].Counter)
			}
		})
	}
}

func TestEnemyTaskRunsOnSchedule(t *testing.T) {
	s, _, _ := newArena(t,
		"#####",
		"#.W.#",
		"#####",
		"P",
	)
	s.sched.Arm(TaskEnemies)

	s.Advance(100 * time.Millisecond)
	if s.enemies[0].Pos != core.Pt(2, 1) {
		t.Fatalf("wind moved after one tick: %v", s.enemies[0].Pos)
	}
	s.Advance(100 * time.Millisecond)
	// Random choice with Intn 0 takes the first open move, left.
	if s.enemies[0].Pos != core.Pt(1, 1) {
		t.Errorf("wind at %v, want (1,1)", s.enemies[0].Pos)
	}
}

func TestHeatPursuesPlayer(t *testing.T) {
	s, _, _ := newArena(t,
		"#####",
		"#...#",
		"#.H.#",
		"#..P#",
		"#####",
	)

	tickEnemiesN(s, 3)
	// Down and right are equally close; down comes first.
	if got := s.enemies[0].Pos; got != core.Pt(2, 3) {
		t.Errorf("heat at %v, want (2,3)", got)
	}
	if s.Status() != StatusActive {
		t.Errorf("status = %v, want active", s.Status())
	}
}

func TestEnemyBlockedStaysPut(t *testing.T) {
	s, _, _ := newArena(t,
		"#n#",
		"BW.",
		"#h#",
		"P",
	)
	placeAt(s, core.Pt(2, 1), 5000)

	tickEnemiesN(s, 2)
	if got := s.enemies[0].Pos; got != core.Pt(1, 1) {
		t.Errorf("wind at %v, want (1,1)", got)
	}
	if s.enemies[0].Counter != 0 {
		t.Errorf("counter = %d, want reset to 0", s.enemies[0].Counter)
	}
}

func TestPlagueFlocking(t *testing.T) {
	arena := []string{
		"#######",
		"#.....#",
		"#.G..G#",
		"#.....#",
		"#######",
		"P",
	}

	t.Run("joins kin", func(t *testing.T) {
		s, _, rng := newArena(t, arena...)
		rng.floats = []float64{0.5, 0.5}

		tickEnemiesN(s, 4)
		if got := s.enemies[0].Pos; got != core.Pt(3, 2) {
			t.Errorf("first plague at %v, want (3,2)", got)
		}
		if got := s.enemies[1].Pos; got != core.Pt(4, 2) {
			t.Errorf("second plague at %v, want (4,2)", got)
		}
	})

	t.Run("wanders", func(t *testing.T) {
		s, _, rng := newArena(t, arena...)
		rng.floats = []float64{0.9, 0.9}

		tickEnemiesN(s, 4)
		if got := s.enemies[0].Pos; got != core.Pt(2, 1) {
			t.Errorf("first plague at %v, want (2,1)", got)
		}
		if got := s.enemies[1].Pos; got != core.Pt(5, 1) {
			t.Errorf("second plague at %v, want (5,1)", got)
		}
	})

	t.Run("alone draws nothing", func(t *testing.T) {
		s, _, rng := newArena(t,
			"#####",
			"#.G.#",
			"#####",
			"P",
		)
		rng.floats = []float64{0.1}

		tickEnemiesN(s, 4)
		if len(rng.floats) != 1 {
			t.Error("flock chance drawn without kin in range")
		}
	})
}

func TestEnemyCatchesPlayer(t *testing.T) {
	s, rec, _ := newArena(t, "#HP#")

	tickEnemiesN(s, 3)
	if s.Status() != StatusFailed {
		t.Fatalf("status = %v, want failed", s.Status())
	}
	if rec.count(EventRunFailed) != 1 {
		t.Errorf("runFailed events = %d, want 1", rec.count(EventRunFailed))
	}
	if s.sched.Armed(TaskEnemies) {
		t.Error("tasks still armed after failure")
	}
}

func TestEnemyWalksIntoBlast(t *testing.T) {
	s, rec, _ := newArena(t, "#H..P#")
	s.explosions = []Explosion{{Pos: core.Pt(2, 0), At: 0}}

	tickEnemiesN(s, 3)
	if len(s.enemies) != 0 {
		t.Fatalf("enemies = %+v, want none", s.enemies)
	}
	if s.Status() != StatusWon {
		t.Errorf("status = %v, want won", s.Status())
	}
	if s.Score() != 10100 {
		t.Errorf("score = %d, want 10100", s.Score())
	}
	if rec.count(EventEnemyDefeated) != 1 {
		t.Errorf("enemyDefeated events = %d, want 1", rec.count(EventEnemyDefeated))
	}
}

func TestEnemiesNeverShareACell(t *testing.T) {
	s, _, _ := newArena(t,
		"#######",
		"#W.W..#",
		"#######",
		"P",
	)

	// Both winds move on the second tick. The first takes the gap, so the
	// second may only go right.
	tickEnemiesN(s, 2)
	if got := s.enemies[0].Pos; got != core.Pt(2, 1) {
		t.Errorf("first wind at %v, want (2,1)", got)
	}
	if got := s.enemies[1].Pos; got != core.Pt(4, 1) {
		t.Errorf("second wind at %v, want (4,1)", got)
	}

	s2, _, _ := newArena(t,
		"#####",
		"#W.W#",
		"#####",
		"P",
	)
	tickEnemiesN(s2, 2)
	if s2.enemies[0].Pos == s2.enemies[1].Pos {
		t.Fatalf("enemies stacked on %v", s2.enemies[0].Pos)
	}
	if got := s2.enemies[1].Pos; got != core.Pt(3, 1) {
		t.Errorf("boxed-in wind moved to %v, want to stay at (3,1)", got)
	}
}
