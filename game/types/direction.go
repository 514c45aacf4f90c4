package types

import "math"

// Direction is one of the four cardinal headings. Diagonals are never produced.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// ToPoint converts a Direction into its unit offset. Y grows downwards, as on screen.
func (d Direction) ToPoint() Point {
	switch d {
	case North:
		return Point{X: 0, Y: -1}
	case East:
		return Point{X: 1, Y: 0}
	case South:
		return Point{X: 0, Y: 1}
	case West:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// DirectionBetween maps the vector p2-p1 onto a cardinal heading.
//
// The angle of the vector in degrees, plus angleOffset, is brought into [0, 360) and
// bucketed: 0 and 45 are East, 135 and 180 West, 90 and 315 South, 225 and 270 North.
// Only unit cardinal or diagonal offsets land in a bucket; everything else reports North.
//
// The angle is rounded to the nearest degree, not truncated. Unit offsets are
// unaffected, but long vectors within half a degree of a bucket land in it:
// (100,99) and (200,-1) report East where truncation would give North.
func DirectionBetween(p1, p2 Point, angleOffset float64) Direction {
	deg := math.Atan2(float64(p2.Y-p1.Y), float64(p2.X-p1.X))*(180/math.Pi) + angleOffset
	if deg < 0 {
		deg += 360
	}
	// Rounded so that atan2 noise cannot turn 90 into 89.
	angle := int(math.Round(math.Mod(deg, 360))) % 360

	switch angle {
	case 0, 45:
		return East
	case 135, 180:
		return West
	case 90, 315:
		return South
	case 225, 270:
		return North
	}
	return North
}
