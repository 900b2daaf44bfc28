package game

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
)

// steering lists the keys in the order they are checked.
var steering = []struct {
	key types.Key
	dir types.Direction
}{
	{types.KeyUp, types.Up},
	{types.KeyDown, types.Down},
	{types.KeyLeft, types.Left},
	{types.KeyRight, types.Right},
}

// HandleKeys buffers at most one new direction for the snake. The first held
// key that does not reverse the committed direction wins; a held reversing
// key is skipped so a later key can still apply.
func HandleKeys(kb types.Keyboard, snake *entity.Snake) {
	current := snake.Direction()
	for _, s := range steering {
		if kb.Pressed(s.key) && s.dir != current.Opposite() {
			snake.SetPending(s.dir)
			return
		}
	}
}
