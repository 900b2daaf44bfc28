package manager

import (
	"classic-snake/game/entity"
)

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// IsFoodCollision checks if the snake head sits on the apple
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, apple *entity.Apple) bool {
	return snake.Head() == apple.Position()
}

// IsSelfCollision checks the moved head against the rest of the body.
// It must run after Move so the new head is compared with the shifted body.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.HitsSelf()
}
