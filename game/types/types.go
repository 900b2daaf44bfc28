package types

// Grid describes the board in pixels. Width and Height are whole multiples of CellSize.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// Columns returns the number of cells across the board.
func (g Grid) Columns() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cells down the board.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Center returns the cell nearest the middle of the board.
func (g Grid) Center() Point {
	return Point{
		X: g.Columns() / 2 * g.CellSize,
		Y: g.Rows() / 2 * g.CellSize,
	}
}

// Contains reports whether p lies on the board and on a cell boundary.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height &&
		p.X%g.CellSize == 0 && p.Y%g.CellSize == 0
}

// Point is a pixel coordinate on the board.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Wrap folds p back onto a width x height torus.
func (p Point) Wrap(width, height int) Point {
	return Point{X: mod(p.X, width), Y: mod(p.Y, height)}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Direction represents a cardinal direction
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

var opposite = [...]Direction{
	None:  None,
	Up:    Down,
	Right: Left,
	Down:  Up,
	Left:  Right,
}

// Opposite returns the direction pointing the other way. None maps to None.
func (d Direction) Opposite() Direction {
	if d < None || int(d) >= len(opposite) {
		return None
	}
	return opposite[d]
}

// Offset returns the movement vector for one step of cell pixels.
func (d Direction) Offset(cell int) Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -cell}
	case Right:
		return Point{X: cell, Y: 0}
	case Down:
		return Point{X: 0, Y: cell}
	case Left:
		return Point{X: -cell, Y: 0}
	default:
		return Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Key is one of the steering keys a Keyboard can report.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// Keyboard reports the keys held during the current frame.
type Keyboard interface {
	Pressed(k Key) bool
}

// Surface is the frame buffer the game draws into.
type Surface interface {
	Clear(c Color)
	FillCell(p Point, size int, c Color)
}
