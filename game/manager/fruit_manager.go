package manager

import (
	"slices"

	"golang.org/x/exp/rand"

	"snakebot/game/entity"
	"snakebot/game/types"
)

// FruitManager owns the fruits on the grid in spawn order.
type FruitManager struct {
	grid         types.Grid
	fruitList    []types.Point
	rng          *rand.Rand
	collisionMgr *CollisionManager
	fallbacks    int
}

func NewFruitManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FruitManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &FruitManager{
		grid:         grid,
		fruitList:    make([]types.Point, 0, 1),
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFruit picks a random tile that is off the snake and off every fruit.
// When every attempt collides the last candidate is returned anyway; ok is false
// in that case.
func (fm *FruitManager) GenerateFruit(snake *entity.Snake) (fruit types.Point, ok bool) {
	for i := 0; i < types.FruitSpawnAttempts; i++ {
		fruit = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(fruit, snake, fm.fruitList) {
			return fruit, true
		}
	}
	fm.fallbacks++
	return fruit, false
}

// Spawn generates a fruit and adds it to the list.
func (fm *FruitManager) Spawn(snake *entity.Snake) (types.Point, bool) {
	fruit, ok := fm.GenerateFruit(snake)
	fm.AddFruit(fruit)
	return fruit, ok
}

// GetFruitList returns the fruits in spawn order. The slice must not be modified.
func (fm *FruitManager) GetFruitList() []types.Point {
	return fm.fruitList
}

func (fm *FruitManager) AddFruit(fruit types.Point) {
	fm.fruitList = append(fm.fruitList, fruit)
}

// RemoveFruit deletes the first fruit at the given tile, keeping spawn order.
func (fm *FruitManager) RemoveFruit(fruit types.Point) bool {
	i := slices.Index(fm.fruitList, fruit)
	if i < 0 {
		return false
	}
	fm.fruitList = slices.Delete(fm.fruitList, i, i+1)
	return true
}

// Fallbacks counts spawns that ran out of attempts and were placed on an occupied tile.
func (fm *FruitManager) Fallbacks() int {
	return fm.fallbacks
}
