package types

// Point is a tile address on the grid. It doubles as a collider identity and a path waypoint.
type Point struct {
	X, Y int
}

// Add returns the point offset by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// ManhattanDistance returns |dx| + |dy| between two points.
func ManhattanDistance(p1, p2 Point) int {
	return abs(p2.X-p1.X) + abs(p2.Y-p1.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// Center returns the middle tile, rounded towards the origin.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Game constants
const (
	MinSnakeLength     = 3  // Tail segments behind the head at start
	MoveTicks          = 55 // Out of 60; the snake advances every (60-MoveTicks)/60 seconds
	FruitSpawnAttempts = 69 // Random placements tried before a fruit is accepted anyway
)

// TickInterval is the time in seconds between two snake moves.
const TickInterval = (60.0 - MoveTicks) / 60.0

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
