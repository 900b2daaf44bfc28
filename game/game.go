package game

import (
	"time"

	"classic-snake/config"
	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Game is one play session: a snake, an apple and the managers that
// resolve their interactions each frame.
type Game struct {
	UUID      string
	Config    config.Config
	StartTime time.Time

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodManager  *manager.FoodManager
	stateManager *manager.StateManager
}

func NewGame(cfg config.Config, rng *rand.Rand) *Game {
	collisionMgr := manager.NewCollisionManager()

	return &Game{
		UUID:         uuid.New().String(),
		Config:       cfg,
		StartTime:    time.Now(),
		snake:        entity.NewSnake(cfg),
		collisionMgr: collisionMgr,
		foodManager:  manager.NewFoodManager(entity.NewApple(cfg, rng), collisionMgr),
		stateManager: manager.NewStateManager(),
	}
}

// Update runs the logic half of one frame.
func (g *Game) Update(kb types.Keyboard) {
	HandleKeys(kb, g.snake)
	g.snake.UpdateDirection()
	g.snake.Move()

	if g.foodManager.Update(g.snake) {
		g.stateManager.RecordApple()
		log.Debug("apple eaten", "session", g.UUID,
			"score", g.stateManager.GetScore(),
			"growth_target", g.snake.GrowthTarget(),
			"next_apple", g.GetApple().Position())
	}

	if g.collisionMgr.IsSelfCollision(g.snake) {
		head, length := g.snake.Head(), g.snake.Len()
		score := g.stateManager.RecordReset()
		g.snake.Reset()
		log.Info("self collision, snake reset", "session", g.UUID,
			"head", head, "length", length,
			"score", score, "best", g.stateManager.GetHighScore())
	}

	g.stateManager.RecordFrame()
}

// Draw renders the frame: background, then apple, then snake on top.
func (g *Game) Draw(s types.Surface) {
	s.Clear(g.Config.Background)
	g.GetApple().Draw(s)
	g.snake.Draw(s)
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetApple() *entity.Apple {
	return g.foodManager.GetApple()
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateManager
}

// ElapsedTime is the wall-clock age of the session.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}
