// Package core provides the platform types shared by the game and its
// front ends. It has no external dependencies (no Bubble Tea, no sockets)
// so simulation code that imports it stays pure and testable.
package core

// Point is a cell coordinate on a grid. X grows rightwards, Y downwards.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Dir) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Chebyshev returns the L∞ distance between p and q.
func (p Point) Chebyshev(q Point) int {
	return Max(Abs(p.X-q.X), Abs(p.Y-q.Y))
}

// DistSq returns the squared Euclidean distance between p and q.
func (p Point) DistSq(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Dir is a unit step on the grid.
type Dir struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// Axis-aligned and diagonal unit steps.
var (
	DirUp        = Dir{0, -1}
	DirDown      = Dir{0, 1}
	DirLeft      = Dir{-1, 0}
	DirRight     = Dir{1, 0}
	DirUpLeft    = Dir{-1, -1}
	DirUpRight   = Dir{1, -1}
	DirDownLeft  = Dir{-1, 1}
	DirDownRight = Dir{1, 1}
)

// Cardinal lists the four axis-aligned directions in up, down, left, right order.
// Movement candidates and the basic explosion cross are enumerated in this order.
var Cardinal = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// IsZero reports whether d is the zero step.
func (d Dir) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// String returns a short direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUpLeft:
		return "up-left"
	case DirUpRight:
		return "up-right"
	case DirDownLeft:
		return "down-left"
	case DirDownRight:
		return "down-right"
	default:
		return "none"
	}
}

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether p is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
