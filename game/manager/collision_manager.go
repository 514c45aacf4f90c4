package manager

import (
	"slices"

	"snakebot/game/entity"
	"snakebot/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

func (c CollisionType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// CheckSnake reports whether the snake's head has left the grid or run into its own tail.
// The wall is checked first.
func (cm *CollisionManager) CheckSnake(snake *entity.Snake) CollisionType {
	if cm.isWallCollision(snake.Head) {
		return WallCollision
	}
	if snake.TailContains(snake.Head) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks if a position is free for a new fruit:
// inside the grid, off the snake and not on another fruit.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, fruits []types.Point) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	if snake != nil && snake.Occupies(pos) {
		return false
	}
	return !slices.Contains(fruits, pos)
}

// CheckFruitCollisions returns the index of the fruit under pos, or -1.
func (cm *CollisionManager) CheckFruitCollisions(pos types.Point, fruits []types.Point) int {
	return slices.Index(fruits, pos)
}
