package sim

import (
	"strings"
	"time"

	"github.com/vovakirdan/keiraku-bomber/internal/config"
	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

// Status is the lifecycle state of the current stage.
type Status uint8

const (
	StatusIdle Status = iota
	StatusActive
	StatusWon
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends the stage.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusFailed
}

// Mode selects how power carries between stages.
type Mode uint8

const (
	// ModeStory plays the catalog in order and keeps power between stages.
	ModeStory Mode = iota
	// ModeFree plays any stage and resets power each time.
	ModeFree
)

func (m Mode) String() string {
	if m == ModeFree {
		return "free"
	}
	return "story"
}

// ParseMode maps "story" or "free" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "story", "":
		return ModeStory, true
	case "free":
		return ModeFree, true
	}
	return ModeStory, false
}

// Power holds the player's upgradeable abilities.
type Power struct {
	Reach         int `json:"reach"`
	PatternCount  int `json:"pattern_count"`
	Blast         int `json:"blast"`
	Speed         int `json:"speed"`
	MaxExplosives int `json:"max_explosives"`
}

func powerFrom(l config.PowerLevels) Power {
	return Power{
		Reach:         l.Reach,
		PatternCount:  l.PatternCount,
		Blast:         l.Blast,
		Speed:         l.Speed,
		MaxExplosives: l.MaxExplosives,
	}
}

// apply grants the effect of h. Values are capped by max except the
// full-power herb, which sets every stat at once.
func (p *Power) apply(h Herb, pc config.PowerConfig) {
	max := pc.Max
	switch h {
	case HerbMugwort, HerbGinger, HerbSalt:
		p.Blast = core.Min(p.Blast+1, max.Blast)
		p.PatternCount++
	case HerbAconite:
		p.Blast = core.Min(p.Blast+2, max.Blast)
	case HerbEphedra:
		p.Speed = core.Min(p.Speed+1, max.Speed)
	case HerbAngelica:
		p.MaxExplosives = core.Min(p.MaxExplosives+1, max.MaxExplosives)
	case HerbFullPower:
		*p = powerFrom(pc.FullPower)
	}
}

func (p *Power) addReach(n int, pc config.PowerConfig) {
	p.Reach = core.Min(p.Reach+n, pc.Max.Reach)
}

// NeedleTitle names the needle for a reach value.
func NeedleTitle(reach int) string {
	switch {
	case reach <= 3:
		return "Filiform Needle"
	case reach <= 6:
		return "Silver Needle"
	case reach <= 10:
		return "Gold Needle"
	default:
		return "Nine-Headed Needle"
	}
}

// MoxaTitle names the moxa for a pattern count.
func MoxaTitle(count int) string {
	switch {
	case count <= 1:
		return "Mugwort Moxa"
	case count == 2:
		return "Mugwort Moxa ★"
	case count == 3:
		return "Mugwort Moxa ★★"
	default:
		return "Mugwort Moxa MAX"
	}
}

// Progress is the run-wide scoring and power state.
type Progress struct {
	Score      int
	Power      Power
	StageIndex int
	Mode       Mode
	Status     Status
	Opened     []string // names of opened nodes, in order
	Acquired   []Herb   // herbs collected, in order
}

func (p *Progress) award(n int) {
	if n > 0 {
		p.Score += n
	}
}

// acupointNames is the pool special nodes draw from.
var acupointNames = []string{
	"Chufu", "Unmon", "Taien", "Goukoku", "Kyokuchi", "Geikou",
	"Ashisanri", "Tensu", "Shoukyuu", "Taihaku", "Inryousen", "Kekkai",
	"Shinmon", "Shoukai", "Kyokusen", "Hyakue", "Fuuchi", "Tenchuu",
	"Kangen", "Kikai", "Chuukan",
}

// hiddenNodeName is the fixed name of every hidden node.
const hiddenNodeName = "Hidden Point"

// mappedNodeName names a normal node by its position.
func mappedNodeName(p core.Point) string {
	return acupointNames[(p.Y*GridSize+p.X)%len(acupointNames)]
}

// Notice is a short banner shown after a notable pickup or node.
type Notice struct {
	Title   string        `json:"title"`
	Detail  string        `json:"detail,omitempty"`
	Pos     core.Point    `json:"pos"`
	Expires time.Duration `json:"-"`
}
