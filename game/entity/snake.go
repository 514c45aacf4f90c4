package entity

import (
	"slices"

	"snakebot/game/types"
)

// Snake is the body of the player: a head, a heading and the tail behind it.
// Tail[0] is the segment directly behind the head, the last element is the tail end.
type Snake struct {
	Head      types.Point
	Direction types.Direction
	Tail      []types.Point
}

// NewSnake lays out a snake of the given tail length trailing straight behind
// head, opposite to dir. Segments that would leave the grid are folded onto the
// last in-bounds tile so the tail length is always honoured.
func NewSnake(head types.Point, dir types.Direction, length int, grid types.Grid) *Snake {
	if length < types.MinSnakeLength {
		length = types.MinSnakeLength
	}

	back := dir.Opposite().ToPoint()
	tail := make([]types.Point, 0, length)
	prev := head
	for i := 0; i < length; i++ {
		next := prev.Add(back)
		if grid.Contains(next) {
			prev = next
		}
		tail = append(tail, prev)
	}

	return &Snake{
		Head:      head,
		Direction: dir,
		Tail:      tail,
	}
}

// Neck returns the segment right behind the head.
func (s *Snake) Neck() types.Point {
	return s.Tail[0]
}

// End returns the last tail segment.
func (s *Snake) End() types.Point {
	return s.Tail[len(s.Tail)-1]
}

// Advance drops the tail end, pushes the current head onto the front of the tail
// and moves the head one tile along Direction.
func (s *Snake) Advance() {
	if len(s.Tail) > 0 {
		s.Tail = s.Tail[:len(s.Tail)-1]
		s.Tail = slices.Insert(s.Tail, 0, s.Head)
	}
	s.Head = s.Head.Add(s.Direction.ToPoint())
}

// Grow duplicates the tail end. The new segment starts on top of the old one and
// separates from it on the next Advance.
func (s *Snake) Grow() {
	s.Tail = append(s.Tail, s.End())
}

// Segments returns the head followed by the tail.
func (s *Snake) Segments() []types.Point {
	segments := make([]types.Point, 0, len(s.Tail)+1)
	segments = append(segments, s.Head)
	return append(segments, s.Tail...)
}

// Occupies reports whether p is the head or any tail segment.
func (s *Snake) Occupies(p types.Point) bool {
	return p == s.Head || slices.Contains(s.Tail, p)
}

// TailContains reports whether p is a tail segment.
func (s *Snake) TailContains(p types.Point) bool {
	return slices.Contains(s.Tail, p)
}
