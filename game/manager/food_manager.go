package manager

import (
	"classic-snake/game/entity"
)

type FoodManager struct {
	apple        *entity.Apple
	collisionMgr *CollisionManager
}

func NewFoodManager(apple *entity.Apple, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		apple:        apple,
		collisionMgr: collisionMgr,
	}
}

// Update feeds the snake when its head reached the apple: the growth target
// goes up by one and the apple jumps to a new random cell.
func (fm *FoodManager) Update(snake *entity.Snake) bool {
	if !fm.collisionMgr.IsFoodCollision(snake, fm.apple) {
		return false
	}
	snake.Grow()
	fm.apple.RandomizePosition()
	return true
}

func (fm *FoodManager) GetApple() *entity.Apple {
	return fm.apple
}
