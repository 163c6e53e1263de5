package sim

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/keiraku-bomber/internal/config"
	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

func TestMoveRules(t *testing.T) {
	arena := []string{
		"#####",
		"#.B.#",
		"#nP.#",
		"#.#.#",
		"#####",
	}

	tests := []struct {
		name  string
		dir   core.Dir
		setup func(s *Simulation)
		want  bool
	}{
		{name: "breakable wall", dir: core.DirUp, want: false},
		{name: "node", dir: core.DirLeft, want: false},
		{name: "solid wall", dir: core.DirDown, want: false},
		{name: "open floor", dir: core.DirRight, want: true},
		{name: "zero direction", dir: core.Dir{}, want: false},
		{
			name:  "explosive",
			dir:   core.DirRight,
			setup: func(s *Simulation) { placeAt(s, core.Pt(3, 2), 2000) },
			want:  false,
		},
		{
			name:  "paused",
			dir:   core.DirRight,
			setup: func(s *Simulation) { s.TogglePause() },
			want:  false,
		},
		{
			name:  "failed",
			dir:   core.DirRight,
			setup: func(s *Simulation) { s.fail() },
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newArena(t, arena...)
			keepAlive(s)
			if tt.setup != nil {
				tt.setup(s)
			}
			start := s.Player()

			got := s.Move(tt.dir)
			if got != tt.want {
				t.Fatalf("Move(%v) = %v, want %v", tt.dir, got, tt.want)
			}
			wantPos := start
			if tt.want {
				wantPos = start.Add(tt.dir)
			}
			if s.Player() != wantPos {
				t.Errorf("player at %v, want %v", s.Player(), wantPos)
			}
		})
	}
}

func TestMoveOffGridRejected(t *testing.T) {
	s, _, _ := newArena(t, "P.")
	keepAlive(s)

	if s.Move(core.DirUp) || s.Move(core.DirLeft) {
		t.Error("move off the grid accepted")
	}
}

func TestMoveCooldown(t *testing.T) {
	s, _, _ := newArena(t, "#P.....#")
	keepAlive(s)

	if !s.Move(core.DirRight) {
		t.Fatal("first move rejected")
	}
	if s.Move(core.DirRight) {
		t.Fatal("second move inside cooldown accepted")
	}
	s.Advance(149 * time.Millisecond)
	if s.Move(core.DirRight) {
		t.Fatal("move at 149ms accepted")
	}
	s.Advance(time.Millisecond)
	if !s.Move(core.DirRight) {
		t.Fatal("move at 150ms rejected")
	}

	// Speed tier 3 shortens the cooldown to 50ms.
	s.progress.Power.Speed = 3
	s.Advance(50 * time.Millisecond)
	if !s.Move(core.DirRight) {
		t.Error("fast move at 50ms rejected")
	}
}

func TestPlaceExplosiveLimits(t *testing.T) {
	s, rec, _ := newArena(t, "#P..#")
	keepAlive(s)

	if !s.PlaceExplosive() {
		t.Fatal("first moxa rejected")
	}
	if s.PlaceExplosive() {
		t.Error("second moxa on the same cell accepted")
	}
	if !s.Move(core.DirRight) {
		t.Fatal("could not step off the moxa")
	}
	if s.PlaceExplosive() {
		t.Error("moxa over capacity accepted")
	}

	s.progress.Power.MaxExplosives = 2
	if !s.PlaceExplosive() {
		t.Error("moxa with spare capacity rejected")
	}
	if len(s.explosives) != 2 {
		t.Errorf("explosives = %d, want 2", len(s.explosives))
	}
	if rec.count(EventMoxaPlaced) != 2 {
		t.Errorf("moxaPlaced events = %d, want 2", rec.count(EventMoxaPlaced))
	}
	if s.explosives[0].Fuse != 2*time.Second {
		t.Errorf("fuse = %v, want 2s", s.explosives[0].Fuse)
	}
}

func TestPauseKeepsFuse(t *testing.T) {
	s, _, _ := newArena(t, "#P..#")
	keepAlive(s)
	s.PlaceExplosive()
	s.Advance(500 * time.Millisecond)

	if !s.TogglePause() || !s.Paused() {
		t.Fatal("pause rejected")
	}
	s.Advance(10 * time.Second)
	if s.Now() != 500*time.Millisecond {
		t.Errorf("clock moved while paused: %v", s.Now())
	}
	if got := s.explosives[0].Fuse; got != 1500*time.Millisecond {
		t.Errorf("fuse = %v while paused, want 1.5s", got)
	}
	if s.PlaceExplosive() || s.Fire(core.DirRight) {
		t.Error("commands accepted while paused")
	}

	s.TogglePause()
	s.Advance(1500 * time.Millisecond)
	if len(s.explosives) != 0 {
		t.Error("moxa did not detonate after resume")
	}
	if s.Status() != StatusFailed {
		t.Errorf("status = %v, want failed (player stood on the moxa)", s.Status())
	}
}

func TestTerminalStagesIgnoreCommands(t *testing.T) {
	s, _, _ := newArena(t, "#P..#")
	s.checkWin()
	if s.Status() != StatusWon {
		t.Fatalf("status = %v, want won", s.Status())
	}

	if s.Move(core.DirRight) || s.PlaceExplosive() || s.Fire(core.DirRight) || s.TogglePause() {
		t.Error("command accepted after the stage ended")
	}
	s.Advance(time.Second)
	if s.Now() != 0 {
		t.Errorf("clock advanced after the stage ended: %v", s.Now())
	}
}

func TestContainerPickups(t *testing.T) {
	tests := []struct {
		name      string
		payload   Herb
		wantScore int
		check     func(t *testing.T, p Power)
	}{
		{
			name:      "mugwort",
			payload:   HerbMugwort,
			wantScore: 300,
			check: func(t *testing.T, p Power) {
				if p.Blast != 3 || p.PatternCount != 1 {
					t.Errorf("power = %+v, want blast 3 pattern 1", p)
				}
			},
		},
		{
			name:      "aconite",
			payload:   HerbAconite,
			wantScore: 600,
			check: func(t *testing.T, p Power) {
				if p.Blast != 4 {
					t.Errorf("blast = %d, want 4", p.Blast)
				}
			},
		},
		{
			name:      "ephedra",
			payload:   HerbEphedra,
			wantScore: 400,
			check: func(t *testing.T, p Power) {
				if p.Speed != 2 {
					t.Errorf("speed = %d, want 2", p.Speed)
				}
			},
		},
		{
			name:      "angelica",
			payload:   HerbAngelica,
			wantScore: 700,
			check: func(t *testing.T, p Power) {
				if p.MaxExplosives != 2 {
					t.Errorf("max explosives = %d, want 2", p.MaxExplosives)
				}
			},
		},
		{
			name:      "full power",
			payload:   HerbFullPower,
			wantScore: 10000,
			check: func(t *testing.T, p Power) {
				want := Power{Reach: 15, PatternCount: 10, Blast: 8, Speed: 3, MaxExplosives: 3}
				if p != want {
					t.Errorf("power = %+v, want %+v", p, want)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec, _ := newArena(t, "#Pc.#")
			keepAlive(s)
			s.containers[0].Payload = tt.payload

			if !s.Move(core.DirRight) {
				t.Fatal("move onto container rejected")
			}
			if s.Score() != tt.wantScore {
				t.Errorf("score = %d, want %d", s.Score(), tt.wantScore)
			}
			tt.check(t, s.Power())
			if len(s.containers) != 0 || s.Cell(core.Pt(2, 0)) != Empty {
				t.Error("container not consumed")
			}
			if rec.count(EventItemCollected) != 1 {
				t.Errorf("itemCollected events = %d, want 1", rec.count(EventItemCollected))
			}
			snap := s.Snapshot()
			if snap.Notice == nil || snap.Notice.Title != tt.payload.String() {
				t.Errorf("notice = %+v, want %q", snap.Notice, tt.payload.String())
			}
		})
	}
}

func TestPowerCaps(t *testing.T) {
	s, _, _ := newArena(t, "#P#")
	pc := s.cfg.Power

	for i := 0; i < 20; i++ {
		s.progress.Power.apply(HerbAconite, pc)
		s.progress.Power.apply(HerbEphedra, pc)
		s.progress.Power.apply(HerbAngelica, pc)
		s.progress.Power.addReach(5, pc)
	}
	got := s.Power()
	if got.Blast != pc.Max.Blast || got.Speed != pc.Max.Speed || got.MaxExplosives != pc.Max.MaxExplosives || got.Reach != pc.Max.Reach {
		t.Errorf("power = %+v, want capped at %+v", got, pc.Max)
	}
}

func TestStartRunErrors(t *testing.T) {
	s := New(config.DefaultKeirakuConfig(), nil, rand.New(rand.NewSource(1)), nil)

	if err := s.NextStage(); !errors.Is(err, ErrNoStage) {
		t.Errorf("NextStage() before a run = %v, want ErrNoStage", err)
	}
	if err := s.Restart(); !errors.Is(err, ErrNoStage) {
		t.Errorf("Restart() before a run = %v, want ErrNoStage", err)
	}
	if err := s.StartRun(ModeStory, len(s.Catalog())); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("StartRun(out of range) = %v, want ErrUnknownStage", err)
	}
	if err := s.StartRun(ModeStory, -1); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("StartRun(-1) = %v, want ErrUnknownStage", err)
	}

	last := len(s.Catalog()) - 1
	if err := s.StartRun(ModeStory, last); err != nil {
		t.Fatalf("StartRun(last) error = %v", err)
	}
	if err := s.NextStage(); !errors.Is(err, ErrCampaignComplete) {
		t.Errorf("NextStage() after the last stage = %v, want ErrCampaignComplete", err)
	}
}

func TestStartStageRejectsCrampedTemplate(t *testing.T) {
	catalog := Catalog{{ID: "tiny", Name: "Tiny", Difficulty: 1, Shape: []string{"#...#"}}}
	s := New(config.DefaultKeirakuConfig(), catalog, &scriptedRand{}, nil)

	err := s.StartRun(ModeFree, 0)
	if !errors.Is(err, ErrTooFewOpenCells) {
		t.Fatalf("StartRun() = %v, want ErrTooFewOpenCells", err)
	}
	if s.Status() == StatusActive {
		t.Error("cramped stage became active")
	}
}

func TestStartStage(t *testing.T) {
	s := New(config.DefaultKeirakuConfig(), nil, rand.New(rand.NewSource(7)), nil)
	if err := s.StartRun(ModeStory, 0); err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}

	if s.Status() != StatusActive {
		t.Fatalf("status = %v, want active", s.Status())
	}
	if s.Stage().ID != "heart" {
		t.Errorf("stage = %q, want heart", s.Stage().ID)
	}
	if !s.Cell(s.Player()).Walkable() {
		t.Errorf("player spawned on %v", s.Cell(s.Player()))
	}
	snap := s.Snapshot()
	if len(snap.Enemies) == 0 || len(snap.Enemies) > s.cfg.Spawn.EnemyCount(1) {
		t.Errorf("enemies = %d, want 1..%d", len(snap.Enemies), s.cfg.Spawn.EnemyCount(1))
	}
	min := s.cfg.Spawn.MinDistance
	for _, e := range snap.Enemies {
		if e.Pos.DistSq(s.Player()) <= min*min {
			t.Errorf("enemy %d at %v too close to player %v", e.ID, e.Pos, s.Player())
		}
	}
	if !s.Scheduler().Armed(TaskEnemies) {
		t.Error("enemy task not armed")
	}
	for _, c := range snap.Containers {
		if snap.Grid.At(c.Pos) != RewardContainer {
			t.Errorf("container %d on %v", c.ID, snap.Grid.At(c.Pos))
		}
	}
}

func TestStageWithoutEnemiesWinsAtOnce(t *testing.T) {
	cfg := config.DefaultKeirakuConfig()
	cfg.Spawn.BaseEnemies = -100
	rec := &recorder{}
	s := New(cfg, nil, rand.New(rand.NewSource(3)), rec)

	if err := s.StartRun(ModeStory, 0); err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}
	if s.Status() != StatusWon {
		t.Errorf("status = %v, want won", s.Status())
	}
	if s.Score() != cfg.Scoring.StageClear {
		t.Errorf("score = %d, want %d", s.Score(), cfg.Scoring.StageClear)
	}
	if rec.count(EventStageCleared) != 1 {
		t.Errorf("stageCleared events = %d, want 1", rec.count(EventStageCleared))
	}
}

func TestModesAndPowerCarryOver(t *testing.T) {
	clear := func(s *Simulation) {
		s.enemies = nil
		s.checkWin()
	}

	t.Run("story keeps power and score", func(t *testing.T) {
		s := New(config.DefaultKeirakuConfig(), nil, rand.New(rand.NewSource(11)), nil)
		if err := s.StartRun(ModeStory, 0); err != nil {
			t.Fatal(err)
		}
		s.progress.Power.Blast = 6
		clear(s)

		if err := s.NextStage(); err != nil {
			t.Fatalf("NextStage() error = %v", err)
		}
		if s.StageIndex() != 1 {
			t.Errorf("stage index = %d, want 1", s.StageIndex())
		}
		if s.Power().Blast != 6 {
			t.Errorf("blast = %d, want 6 carried over", s.Power().Blast)
		}
		if s.Score() != 10000 {
			t.Errorf("score = %d, want 10000", s.Score())
		}
	})

	t.Run("free resets power", func(t *testing.T) {
		s := New(config.DefaultKeirakuConfig(), nil, rand.New(rand.NewSource(11)), nil)
		if err := s.StartRun(ModeFree, 4); err != nil {
			t.Fatal(err)
		}
		s.progress.Power.Blast = 6
		s.fail()

		if err := s.Restart(); err != nil {
			t.Fatalf("Restart() error = %v", err)
		}
		if s.Status() != StatusActive {
			t.Errorf("status = %v, want active", s.Status())
		}
		if s.StageIndex() != 4 {
			t.Errorf("stage index = %d, want 4", s.StageIndex())
		}
		if s.Power() != powerFrom(s.cfg.Power.Initial) {
			t.Errorf("power = %+v, want initial", s.Power())
		}
	})

	t.Run("new run resets score", func(t *testing.T) {
		s := New(config.DefaultKeirakuConfig(), nil, rand.New(rand.NewSource(11)), nil)
		if err := s.StartRun(ModeStory, 0); err != nil {
			t.Fatal(err)
		}
		clear(s)
		if err := s.StartRun(ModeStory, 0); err != nil {
			t.Fatal(err)
		}
		if s.Score() != 0 {
			t.Errorf("score = %d, want 0", s.Score())
		}
	})
}

// playScript drives a simulation with commands drawn from its own seed.
func playScript(s *Simulation, seed int64, steps int, each func()) {
	cmd := rand.New(rand.NewSource(seed))
	dt := 33 * time.Millisecond
	for i := 0; i < steps; i++ {
		switch cmd.Intn(8) {
		case 0, 1, 2, 3:
			s.Move(core.Cardinal[cmd.Intn(4)])
		case 4:
			s.PlaceExplosive()
		case 5:
			s.Fire(core.Cardinal[cmd.Intn(4)])
		}
		s.Advance(dt)
		if s.Status().Terminal() {
			if s.Status() == StatusWon && s.NextStage() == nil {
				continue
			}
			_ = s.Restart()
		}
		if each != nil {
			each()
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() Snapshot {
		s := New(config.DefaultKeirakuConfig(), nil, rand.New(rand.NewSource(42)), nil)
		if err := s.StartRun(ModeStory, 0); err != nil {
			t.Fatal(err)
		}
		playScript(s, 99, 600, nil)
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and commands produced different states")
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		s := New(config.DefaultKeirakuConfig(), nil, rand.New(rand.NewSource(seed)), nil)
		if err := s.StartRun(ModeFree, int(seed)%len(s.Catalog())); err != nil {
			t.Fatalf("seed %d: StartRun() error = %v", seed, err)
		}

		last := 0
		max := s.cfg.Power.Max
		playScript(s, seed*31, 400, func() {
			if s.Score() < last {
				t.Fatalf("seed %d: score dropped from %d to %d", seed, last, s.Score())
			}
			last = s.Score()

			p := s.Power()
			if p.Reach > max.Reach || p.Blast > max.Blast || p.Speed > max.Speed || p.MaxExplosives > max.MaxExplosives {
				t.Fatalf("seed %d: power %+v over caps", seed, p)
			}
			if len(s.explosives) > p.MaxExplosives {
				t.Fatalf("seed %d: %d explosives over capacity %d", seed, len(s.explosives), p.MaxExplosives)
			}
			seen := map[core.Point]bool{}
			for _, e := range s.explosives {
				if seen[e.Pos] {
					t.Fatalf("seed %d: two explosives on %v", seed, e.Pos)
				}
				seen[e.Pos] = true
			}
			if !s.Cell(s.Player()).Walkable() {
				t.Fatalf("seed %d: player on %v", seed, s.Cell(s.Player()))
			}
		})
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s, _, _ := newArena(t, "#P.c.W#")
	s.Fire(core.DirRight)
	s.PlaceExplosive()
	s.progress.Opened = []string{"Hyakue"}
	s.progress.Acquired = []Herb{HerbSalt}

	snap := s.Snapshot()
	snap.Grid.Set(core.Pt(1, 0), SolidWall)
	snap.Enemies[0].Pos = core.Pt(0, 0)
	snap.Explosives[0].Fuse = 0
	snap.Projectiles[0].Distance = 9
	snap.Containers[0].Payload = HerbFullPower
	snap.Opened[0] = "changed"

	if s.Cell(core.Pt(1, 0)) != Empty {
		t.Error("snapshot grid aliases the simulation")
	}
	if s.enemies[0].Pos != core.Pt(5, 0) {
		t.Error("snapshot enemies alias the simulation")
	}
	if s.explosives[0].Fuse == 0 || s.projectiles[0].Distance == 9 {
		t.Error("snapshot entities alias the simulation")
	}
	if s.containers[0].Payload != HerbMugwort || s.progress.Opened[0] != "Hyakue" {
		t.Error("snapshot slices alias the simulation")
	}
	if len(snap.Acquired) != 1 || snap.Acquired[0] != "Salt" {
		t.Errorf("acquired = %v, want [Salt]", snap.Acquired)
	}
	if snap.Pattern != "cross" || snap.NeedleTitle != "Filiform Needle" || snap.MoxaTitle != "Mugwort Moxa" {
		t.Errorf("titles = %q %q %q", snap.Pattern, snap.NeedleTitle, snap.MoxaTitle)
	}
}

func TestTerminalStatusClearsNotice(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Status
	}{
		{"won", []string{"#Pc.#", "#####", "#.W.#"}, StatusWon},
		{"failed", []string{"#Pc.#", "#####", "#.W.#"}, StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newArena(t, tt.rows...)
			if !s.Move(core.DirRight) {
				t.Fatal("move onto container rejected")
			}
			if s.Snapshot().Notice == nil {
				t.Fatal("pickup should post a notice")
			}

			if tt.want == StatusWon {
				s.enemies = nil
				s.checkWin()
			} else {
				s.fail()
			}
			if s.Status() != tt.want {
				t.Fatalf("status = %v, want %v", s.Status(), tt.want)
			}
			s.Advance(5 * time.Second)
			if n := s.Snapshot().Notice; n != nil {
				t.Errorf("notice %+v outlived the stage", n)
			}
		})
	}
}
