package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/keiraku-bomber/internal/config"
	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

// ErrTooFewOpenCells is returned when a generated layout leaves too little
// room to spawn. Generation is not retried; the caller decides.
var ErrTooFewOpenCells = errors.New("too few open cells")

// Shape markers.
const (
	markSolid    = '#'
	markField    = 'X'
	markClearing = '.'
)

// Layout is the output of stage generation.
type Layout struct {
	Grid Grid
	// Open lists every empty or container cell in row-major order.
	Open []core.Point
	// Containers lists the cells that received a reward container.
	Containers []core.Point
}

// Generate builds a layout from a template. Each field cell draws exactly
// one sample from rng and is classified by cumulative thresholds.
func Generate(t Template, gen config.GenerationConfig, rng Rand) (*Layout, error) {
	l := &Layout{}

	hidden := gen.Hidden
	special := hidden + gen.Special
	normal := special + gen.Normal
	container := normal + gen.Container
	breakable := container + gen.Breakable

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			p := core.Pt(x, y)
			kind := SolidWall
			switch shapeAt(t.Shape, x, y) {
			case markField:
				r := rng.Float64()
				switch {
				case r < hidden:
					kind = NodeHidden
				case r < special:
					kind = NodeSpecial
				case r < normal:
					kind = NodeNormal
				case r < container:
					kind = RewardContainer
					l.Containers = append(l.Containers, p)
				case r < breakable:
					kind = BreakableWall
				default:
					kind = Empty
				}
			case markClearing:
				kind = Empty
			}
			l.Grid[y][x] = kind
			if kind.Walkable() {
				l.Open = append(l.Open, p)
			}
		}
	}

	if len(l.Open) < gen.MinOpen {
		return l, fmt.Errorf("stage %q: %d open cells, need %d: %w", t.ID, len(l.Open), gen.MinOpen, ErrTooFewOpenCells)
	}
	return l, nil
}

func shapeAt(shape []string, x, y int) byte {
	if y >= len(shape) || x >= len(shape[y]) {
		return markSolid
	}
	return shape[y][x]
}
