// Package sim implements the Keiraku Bomber simulation engine: stage
// generation, entity spawning, the task scheduler and the resolvers for
// moxa explosions, needles and enemies.
//
// A Simulation is owned by one goroutine. It never blocks, never logs and
// takes all randomness from an injected Rand so runs are reproducible.
package sim

import "github.com/vovakirdan/keiraku-bomber/internal/core"

// GridSize is the fixed width and height of every stage.
const GridSize = 32

// CellKind classifies one grid cell.
type CellKind uint8

const (
	Empty CellKind = iota
	BreakableWall
	SolidWall
	NodeNormal
	NodeSpecial
	NodeHidden
	RewardContainer
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case BreakableWall:
		return "breakable"
	case SolidWall:
		return "solid"
	case NodeNormal:
		return "node_normal"
	case NodeSpecial:
		return "node_special"
	case NodeHidden:
		return "node_hidden"
	case RewardContainer:
		return "container"
	default:
		return "unknown"
	}
}

// IsNode reports whether k is any tier of reward node.
func (k CellKind) IsNode() bool {
	return k == NodeNormal || k == NodeSpecial || k == NodeHidden
}

// IsWall reports whether k is a solid or breakable wall.
func (k CellKind) IsWall() bool {
	return k == SolidWall || k == BreakableWall
}

// Walkable reports whether entities may stand on k.
func (k CellKind) Walkable() bool {
	return k == Empty || k == RewardContainer
}

// Grid is the stage map indexed [y][x].
type Grid [GridSize][GridSize]CellKind

// InBounds reports whether p lies on the grid.
func InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// At returns the kind at p. Off-grid positions read as SolidWall.
func (g *Grid) At(p core.Point) CellKind {
	if !InBounds(p) {
		return SolidWall
	}
	return g[p.Y][p.X]
}

// Set stores k at p. Off-grid writes are ignored.
func (g *Grid) Set(p core.Point, k CellKind) {
	if !InBounds(p) {
		return
	}
	g[p.Y][p.X] = k
}

// Count returns the number of cells of kind k.
func (g *Grid) Count(k CellKind) int {
	n := 0
	for y := range g {
		for x := range g[y] {
			if g[y][x] == k {
				n++
			}
		}
	}
	return n
}
