package ai

import (
	"math"

	"snakebot/game/types"
)

// CostModel scores a child tile generated while expanding parent.
// parentG is the G value already stored on the parent node.
type CostModel interface {
	Name() string
	Cost(src, dst, parent, child types.Point, parentG float32) (g, h float32)
}

// LegacyCost reproduces the scoring of the first autopilot:
// G is the squared distance from the source to the parent and
// H is sqrt(child.x*dst.x + child.y*dst.y). Neither is a true distance.
type LegacyCost struct{}

func (LegacyCost) Name() string { return "legacy" }

func (LegacyCost) Cost(src, dst, parent, child types.Point, _ float32) (float32, float32) {
	dx := float32(parent.X - src.X)
	dy := float32(parent.Y - src.Y)
	g := dx*dx + dy*dy
	// Negative products give NaN, which never wins a strict < comparison.
	h := float32(math.Sqrt(float64(float32(child.X*dst.X + child.Y*dst.Y))))
	return g, h
}

// ManhattanCost is textbook A* scoring on a unit-cost 4-connected grid.
type ManhattanCost struct{}

func (ManhattanCost) Name() string { return "manhattan" }

func (ManhattanCost) Cost(_, dst, _, child types.Point, parentG float32) (float32, float32) {
	return parentG + 1, float32(types.ManhattanDistance(child, dst))
}

// CostModelByName resolves a cost model from its configuration name.
func CostModelByName(name string) (CostModel, bool) {
	switch name {
	case "", LegacyCost{}.Name():
		return LegacyCost{}, true
	case ManhattanCost{}.Name():
		return ManhattanCost{}, true
	}
	return nil, false
}
