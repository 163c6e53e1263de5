package sim

import (
	"time"

	"github.com/vovakirdan/keiraku-bomber/internal/config"
	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

// EnemyKind selects an enemy's cadence and movement policy.
type EnemyKind uint8

const (
	EnemyWind EnemyKind = iota
	EnemyHeat
	EnemyPlague
	EnemyCold
	EnemyDamp
)

// enemyKinds is the round-robin spawn order.
var enemyKinds = [...]EnemyKind{EnemyWind, EnemyHeat, EnemyPlague, EnemyCold, EnemyDamp}

func (k EnemyKind) String() string {
	switch k {
	case EnemyWind:
		return "wind"
	case EnemyHeat:
		return "heat"
	case EnemyPlague:
		return "plague"
	case EnemyCold:
		return "cold"
	case EnemyDamp:
		return "damp"
	default:
		return "unknown"
	}
}

// cadence returns the number of controller ticks between moves.
func (k EnemyKind) cadence(c config.EnemyCadence) int {
	switch k {
	case EnemyWind:
		return c.Wind
	case EnemyHeat:
		return c.Heat
	case EnemyPlague:
		return c.Plague
	case EnemyCold:
		return c.Cold
	default:
		return c.Damp
	}
}

// Enemy is a roaming hostile.
type Enemy struct {
	ID      int        `json:"id"`
	Pos     core.Point `json:"pos"`
	Kind    EnemyKind  `json:"kind"`
	Counter int        `json:"-"`
}

// Explosive is a placed moxa counting down to detonation.
type Explosive struct {
	ID   int           `json:"id"`
	Pos  core.Point    `json:"pos"`
	Fuse time.Duration `json:"fuse"`
}

// Projectile is a needle in flight.
type Projectile struct {
	ID       int        `json:"id"`
	Pos      core.Point `json:"pos"`
	Dir      core.Dir   `json:"dir"`
	Distance int        `json:"distance"`
}

// Container is a treasure box holding a herb.
type Container struct {
	ID      int        `json:"id"`
	Pos     core.Point `json:"pos"`
	Payload Herb       `json:"payload"`
}

// Item is a herb dropped by an opened node.
type Item struct {
	ID      int        `json:"id"`
	Pos     core.Point `json:"pos"`
	Payload Herb       `json:"payload"`
}

// Explosion is a lingering blast marker.
type Explosion struct {
	Pos core.Point    `json:"pos"`
	At  time.Duration `json:"at"`
}
