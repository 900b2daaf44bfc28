package entity

import (
	"classic-snake/config"
	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

type Apple struct {
	position types.Point
	color    types.Color
	grid     types.Grid
	rng      *rand.Rand
}

// NewApple places an apple on a random cell.
func NewApple(cfg config.Config, rng *rand.Rand) *Apple {
	a := &Apple{
		color: cfg.AppleColor,
		grid:  cfg.Grid(),
		rng:   rng,
	}
	a.RandomizePosition()
	return a
}

// RandomizePosition moves the apple to a uniformly chosen cell.
// Cells under the snake are not excluded.
func (a *Apple) RandomizePosition() {
	a.position = types.Point{
		X: a.rng.Intn(a.grid.Columns()) * a.grid.CellSize,
		Y: a.rng.Intn(a.grid.Rows()) * a.grid.CellSize,
	}
}

// Place puts the apple on a fixed cell.
func (a *Apple) Place(p types.Point) {
	a.position = p
}

func (a *Apple) Position() types.Point {
	return a.position
}

func (a *Apple) Color() types.Color {
	return a.color
}

func (a *Apple) Draw(s types.Surface) {
	s.FillCell(a.position, a.grid.CellSize, a.color)
}
