package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

const needleTick = 30 * time.Millisecond

func TestNeedleStopsAtReach(t *testing.T) {
	s, rec, _ := newArena(t,
		"########",
		"#P.....#",
	)
	keepAlive(s)

	if !s.Fire(core.DirRight) {
		t.Fatal("fire rejected")
	}
	if rec.count(EventNeedleFired) != 1 {
		t.Errorf("needleFired events = %d, want 1", rec.count(EventNeedleFired))
	}

	s.Advance(needleTick)
	if len(s.projectiles) != 1 || s.projectiles[0].Pos != core.Pt(2, 1) {
		t.Fatalf("after one tick projectiles = %+v", s.projectiles)
	}

	// Reach 2: the second step is the last.
	s.Advance(needleTick)
	if len(s.projectiles) != 0 {
		t.Fatalf("needle still in flight: %+v", s.projectiles)
	}
	if s.sched.Armed(TaskProjectiles) {
		t.Error("projectile task still armed with no needles")
	}
}

func TestNeedleStopsAtWalls(t *testing.T) {
	tests := []struct {
		name string
		row  string
		wall core.Point
		kind CellKind
	}{
		{name: "solid", row: "#P.#", wall: core.Pt(3, 1), kind: SolidWall},
		{name: "breakable", row: "#P.B.#", wall: core.Pt(3, 1), kind: BreakableWall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newArena(t, "######", tt.row)
			keepAlive(s)
			s.progress.Power.Reach = 5

			s.Fire(core.DirRight)
			s.Advance(2 * needleTick)

			if len(s.projectiles) != 0 {
				t.Fatalf("needle passed the wall: %+v", s.projectiles)
			}
			if got := s.Cell(tt.wall); got != tt.kind {
				t.Errorf("wall cell = %v, want %v", got, tt.kind)
			}
			if s.Score() != 0 {
				t.Errorf("score = %d, want 0", s.Score())
			}
		})
	}
}

func TestNeedleOpensNode(t *testing.T) {
	s, rec, _ := newArena(t,
		"######",
		"#Pn..#",
	)
	keepAlive(s)

	s.Fire(core.DirRight)
	s.Advance(needleTick)

	if got := s.Cell(core.Pt(2, 1)); got != Empty {
		t.Fatalf("node cell = %v, want empty", got)
	}
	if s.Score() != 100 {
		t.Errorf("score = %d, want 100", s.Score())
	}
	if s.Power().Reach != 3 {
		t.Errorf("reach = %d, want 3", s.Power().Reach)
	}
	if len(s.projectiles) != 0 {
		t.Error("needle survived opening the node")
	}
	if rec.count(EventNodeOpened) != 1 {
		t.Errorf("nodeOpened events = %d, want 1", rec.count(EventNodeOpened))
	}
	if len(s.progress.Opened) != 1 || s.progress.Opened[0] != mappedNodeName(core.Pt(2, 1)) {
		t.Errorf("opened = %v", s.progress.Opened)
	}

	// The opened cell is plain floor now.
	s.Fire(core.DirRight)
	s.Advance(2 * needleTick)
	if len(s.projectiles) != 1 || s.projectiles[0].Pos != core.Pt(3, 1) {
		t.Fatalf("second needle = %+v, want one at (3,1)", s.projectiles)
	}
	if s.Score() != 100 {
		t.Errorf("score after second shot = %d, want 100", s.Score())
	}
}

func TestNeedleRevealsHiddenHerb(t *testing.T) {
	s, _, rng := newArena(t,
		"#####",
		"#Ph.#",
	)
	keepAlive(s)
	rng.floats = []float64{0.2} // full-power drop hit, regular drop miss

	s.Fire(core.DirRight)
	s.Advance(needleTick)

	if s.Score() != 10000 {
		t.Fatalf("score = %d, want 10000", s.Score())
	}
	if len(s.items) != 1 || s.items[0].Payload != HerbFullPower {
		t.Fatalf("items = %+v, want one full-power herb", s.items)
	}

	if !s.Move(core.DirRight) {
		t.Fatal("move onto item rejected")
	}
	if s.Score() != 15000 {
		t.Errorf("score = %d, want 15000", s.Score())
	}
	if got, want := s.Power(), powerFrom(s.cfg.Power.FullPower); got != want {
		t.Errorf("power = %+v, want %+v", got, want)
	}
	if len(s.items) != 0 {
		t.Error("item not removed")
	}
	if len(s.progress.Acquired) != 1 || s.progress.Acquired[0] != HerbFullPower {
		t.Errorf("acquired = %v", s.progress.Acquired)
	}
}

func TestNeedleThroughContainerHitsEnemy(t *testing.T) {
	s, rec, _ := newArena(t,
		"######",
		"#Pc.W#",
	)
	s.progress.Power.Reach = 3

	s.Fire(core.DirRight)
	s.Advance(needleTick)
	if len(s.containers) != 0 || s.Cell(core.Pt(2, 1)) != Empty {
		t.Fatal("container not destroyed")
	}
	if len(s.projectiles) != 1 {
		t.Fatal("needle stopped at the container")
	}
	if s.Score() != 0 {
		t.Errorf("destroyed container scored %d", s.Score())
	}

	s.Advance(2 * needleTick)
	if s.Status() != StatusWon {
		t.Fatalf("status = %v, want won", s.Status())
	}
	if s.Score() != 10100 {
		t.Errorf("score = %d, want 10100", s.Score())
	}
	if rec.count(EventEnemyDefeated) != 1 || rec.count(EventStageCleared) != 1 {
		t.Errorf("events = %v", rec.events)
	}
}

func TestFireRejectsDiagonal(t *testing.T) {
	s, _, _ := newArena(t, "#P.#")
	keepAlive(s)

	if s.Fire(core.DirUpRight) {
		t.Error("diagonal fire accepted")
	}
	if s.Fire(core.Dir{}) {
		t.Error("zero direction fire accepted")
	}
	if len(s.projectiles) != 0 {
		t.Errorf("projectiles = %+v", s.projectiles)
	}
}
