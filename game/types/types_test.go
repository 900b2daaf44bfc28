package types

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
		{None, None},
		{Direction(42), None},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Opposite(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDirectionOffsetCancelsWithOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		sum := d.Offset(20).Add(d.Opposite().Offset(20))
		if sum != (Point{}) {
			t.Errorf("%v + opposite should be zero, got %v", d, sum)
		}
	}
	if got := Right.Offset(20); got != (Point{X: 20, Y: 0}) {
		t.Errorf("Expected right offset (20,0), got %v", got)
	}
	if got := Up.Offset(20); got != (Point{X: 0, Y: -20}) {
		t.Errorf("Expected up offset (0,-20), got %v", got)
	}
}

func TestPointWrap(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{100, 100}, Point{100, 100}},
		{"past left", Point{-20, 240}, Point{620, 240}},
		{"past right", Point{640, 240}, Point{0, 240}},
		{"past top", Point{320, -20}, Point{320, 460}},
		{"past bottom", Point{320, 480}, Point{320, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Wrap(640, 480); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGridGeometry(t *testing.T) {
	g := Grid{Width: 640, Height: 480, CellSize: 20}

	if g.Columns() != 32 || g.Rows() != 24 {
		t.Errorf("Expected 32x24 cells, got %dx%d", g.Columns(), g.Rows())
	}
	if c := g.Center(); c != (Point{320, 240}) {
		t.Errorf("Expected center (320,240), got %v", c)
	}
	if !g.Contains(Point{620, 460}) {
		t.Error("Expected bottom-right cell to be on the board")
	}
	if g.Contains(Point{640, 0}) || g.Contains(Point{10, 0}) || g.Contains(Point{0, -20}) {
		t.Error("Expected off-board and misaligned points to be rejected")
	}
}

func TestGridCenterIsCellAligned(t *testing.T) {
	tests := []struct {
		grid Grid
		want Point
	}{
		{Grid{Width: 640, Height: 480, CellSize: 20}, Point{320, 240}},
		{Grid{Width: 660, Height: 500, CellSize: 20}, Point{320, 240}},
		{Grid{Width: 60, Height: 20, CellSize: 20}, Point{20, 0}},
	}

	for _, tt := range tests {
		c := tt.grid.Center()
		if c != tt.want {
			t.Errorf("%dx%d: expected center %v, got %v", tt.grid.Width, tt.grid.Height, tt.want, c)
		}
		if !tt.grid.Contains(c) {
			t.Errorf("%dx%d: center %v is not a board cell", tt.grid.Width, tt.grid.Height, c)
		}
	}
}
