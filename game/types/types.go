package types

import "fmt"

// Game constants
const (
	CellSize         = 20 // Side of one grid cell in pixels
	LengthLimitRatio = 5  // Snake pixel length limit as a multiple of the grid width
)

// Point is a position on the grid in pixel units
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p moved by d, scaled by step pixels
func (p Point) Add(d Direction, step int) Point {
	return Point{X: p.X + d.X*step, Y: p.Y + d.Y*step}
}

// Direction is a unit movement vector. The zero value means "not moving".
type Direction struct {
	X, Y int
}

var (
	None  = Direction{}
	Left  = Direction{X: -1}
	Right = Direction{X: 1}
	Up    = Direction{Y: -1}
	Down  = Direction{Y: 1}
)

// IsZero reports whether the direction has no movement
func (d Direction) IsZero() bool {
	return d == None
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case None:
		return "none"
	}
	return fmt.Sprintf("dir(%d,%d)", d.X, d.Y)
}

// Rect is an axis-aligned rectangle in pixels
type Rect struct {
	X, Y, W, H int
}

// CellRect returns the cell-sized rectangle whose top-left corner is p
func CellRect(p Point, cell int) Rect {
	return Rect{X: p.X, Y: p.Y, W: cell, H: cell}
}

// Overlaps reports whether r and o share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y &&
		r.X < o.X+o.W &&
		r.X+r.W > o.X
}

// Grid represents the play area dimensions
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid returns a grid using the default cell size
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height, CellSize: CellSize}
}

// Contains reports whether p lies in [0,Width) x [0,Height)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Columns is the number of whole cells that fit horizontally
func (g Grid) Columns() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Width / g.CellSize
}

// Rows is the number of whole cells that fit vertically
func (g Grid) Rows() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Height / g.CellSize
}

// Degenerate reports whether no whole cell fits inside the grid
func (g Grid) Degenerate() bool {
	return g.Columns() < 1 || g.Rows() < 1
}

// Cell returns the top-left pixel position of the cell at column col and row row
func (g Grid) Cell(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Snap moves p onto the top-left corner of the cell containing it
func (g Grid) Snap(p Point) Point {
	return Point{X: snap(p.X, g.CellSize), Y: snap(p.Y, g.CellSize)}
}

func snap(v, cell int) int {
	if cell <= 0 {
		return v
	}
	q := v / cell
	if v < 0 && v%cell != 0 {
		q--
	}
	return q * cell
}

// ContainsCell reports whether the whole cell starting at p lies inside the grid
func (g Grid) ContainsCell(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X+g.CellSize <= g.Width && p.Y+g.CellSize <= g.Height
}
