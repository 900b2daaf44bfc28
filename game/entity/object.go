package entity

import "classic-snake/game/types"

// Object is anything that occupies cells on the board and can paint itself.
type Object interface {
	Position() types.Point
	Color() types.Color
	Draw(s types.Surface)
}

var (
	_ Object = (*Apple)(nil)
	_ Object = (*Snake)(nil)
)
