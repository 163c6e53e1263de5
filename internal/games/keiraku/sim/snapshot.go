package sim

import (
	"time"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

// Snapshot is a read-only deep copy of the simulation for renderers.
// It shares no memory with the simulation and is safe to hand to another
// goroutine.
type Snapshot struct {
	StageID    string        `json:"stage_id"`
	StageName  string        `json:"stage_name"`
	Difficulty int           `json:"difficulty"`
	StageIndex int           `json:"stage_index"`
	StageCount int           `json:"stage_count"`
	Mode       string        `json:"mode"`
	Status     string        `json:"status"`
	Paused     bool          `json:"paused"`
	Now        time.Duration `json:"now"`

	Grid        Grid         `json:"grid"`
	Player      core.Point   `json:"player"`
	Enemies     []Enemy      `json:"enemies"`
	Explosives  []Explosive  `json:"explosives"`
	Projectiles []Projectile `json:"projectiles"`
	Containers  []Container  `json:"containers"`
	Items       []Item       `json:"items"`
	Explosions  []Explosion  `json:"explosions"`

	Score       int      `json:"score"`
	Power       Power    `json:"power"`
	Pattern     string   `json:"pattern"`
	NeedleTitle string   `json:"needle_title"`
	MoxaTitle   string   `json:"moxa_title"`
	Opened      []string `json:"opened"`
	Acquired    []string `json:"acquired"`
	Notice      *Notice  `json:"notice,omitempty"`
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		StageIndex: s.progress.StageIndex,
		StageCount: len(s.catalog),
		Mode:       s.progress.Mode.String(),
		Status:     s.progress.Status.String(),
		Paused:     s.sched.Paused(),
		Now:        s.sched.Now(),

		Grid:        s.grid,
		Player:      s.player,
		Enemies:     append([]Enemy(nil), s.enemies...),
		Explosives:  append([]Explosive(nil), s.explosives...),
		Projectiles: append([]Projectile(nil), s.projectiles...),
		Containers:  append([]Container(nil), s.containers...),
		Items:       append([]Item(nil), s.items...),
		Explosions:  append([]Explosion(nil), s.explosions...),

		Score:       s.progress.Score,
		Power:       s.progress.Power,
		Pattern:     PatternFor(s.progress.Power.PatternCount).String(),
		NeedleTitle: NeedleTitle(s.progress.Power.Reach),
		MoxaTitle:   MoxaTitle(s.progress.Power.PatternCount),
		Opened:      append([]string(nil), s.progress.Opened...),
	}
	if s.progress.StageIndex < len(s.catalog) {
		t := s.catalog[s.progress.StageIndex]
		snap.StageID, snap.StageName, snap.Difficulty = t.ID, t.Name, t.Difficulty
	}
	for _, h := range s.progress.Acquired {
		snap.Acquired = append(snap.Acquired, h.String())
	}
	if s.notice != nil {
		n := *s.notice
		snap.Notice = &n
	}
	return snap
}

// MarshalText encodes the herb by name.
func (h Herb) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// MarshalText encodes the enemy kind by name.
func (k EnemyKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
