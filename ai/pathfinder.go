package ai

import (
	"slices"

	"snakebot/game/types"
)

// neighbours are generated in this order; it decides which of two equal-F nodes is seen first.
var neighbourOffsets = [4]types.Point{
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
}

// node is an arena entry owned by a single Find call.
// parent is the arena index of the node it was expanded from, -1 for the source.
type node struct {
	parent  int
	tile    types.Point
	g, h, f float32
}

// Pathfinder runs A* over a 4-connected tile grid.
//
// Bounds and colliders are configured with Init/SetColliders before each search.
// A Pathfinder may be reused serially but must not be shared between goroutines.
type Pathfinder struct {
	grid      types.Grid
	colliders map[types.Point]struct{}
	cost      CostModel
}

// PathfinderOption configures a Pathfinder.
type PathfinderOption func(*Pathfinder)

// WithCostModel replaces the default LegacyCost scoring.
func WithCostModel(m CostModel) PathfinderOption {
	return func(p *Pathfinder) {
		if m != nil {
			p.cost = m
		}
	}
}

func NewPathfinder(opts ...PathfinderOption) *Pathfinder {
	p := &Pathfinder{
		colliders: make(map[types.Point]struct{}),
		cost:      LegacyCost{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init sets the grid bounds and replaces the collider set.
func (p *Pathfinder) Init(grid types.Grid, colliders ...types.Point) {
	p.grid = grid
	p.SetColliders(colliders)
}

// SetColliders replaces the set of impassable tiles.
func (p *Pathfinder) SetColliders(colliders []types.Point) {
	clear(p.colliders)
	for _, c := range colliders {
		p.colliders[c] = struct{}{}
	}
}

func (p *Pathfinder) Grid() types.Grid { return p.grid }

func (p *Pathfinder) CostModel() CostModel { return p.cost }

// Blocked reports whether tile is outside the grid or a collider.
func (p *Pathfinder) Blocked(tile types.Point) bool {
	if !p.grid.Contains(tile) {
		return true
	}
	_, hit := p.colliders[tile]
	return hit
}

// Find searches for a path from src to dst.
//
// The result runs from dst back to src, so the first step away from src is
// path[len(path)-2]. An empty result means no path exists; it is not an error.
// src itself is never tested against the colliders.
func (p *Pathfinder) Find(src, dst types.Point) []types.Point {
	arena := []node{{parent: -1, tile: src}}
	open := []int{0}
	inOpen := map[types.Point]struct{}{src: {}}
	closed := make(map[types.Point]struct{})

	for len(open) > 0 {
		// Linear scan; the first node with the lowest F wins ties.
		best := 0
		for i := 1; i < len(open); i++ {
			if arena[open[i]].f < arena[open[best]].f {
				best = i
			}
		}
		current := open[best]
		open = slices.Delete(open, best, best+1)
		delete(inOpen, arena[current].tile)
		closed[arena[current].tile] = struct{}{}

		if arena[current].tile == dst {
			return backtrack(arena, current)
		}

		parent := arena[current]
		for _, offset := range neighbourOffsets {
			child := parent.tile.Add(offset)
			if p.Blocked(child) {
				continue
			}
			if _, done := closed[child]; done {
				continue
			}
			// Already queued: keep the first parent, never relax.
			if _, queued := inOpen[child]; queued {
				continue
			}

			g, h := p.cost.Cost(src, dst, parent.tile, child, parent.g)
			arena = append(arena, node{parent: current, tile: child, g: g, h: h, f: g + h})
			open = append(open, len(arena)-1)
			inOpen[child] = struct{}{}
		}
	}

	return nil
}

func backtrack(arena []node, from int) []types.Point {
	var path []types.Point
	for i := from; i != -1; i = arena[i].parent {
		path = append(path, arena[i].tile)
	}
	return path
}
