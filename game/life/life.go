// Package life implements Conway's Game of Life on a bounded grid.
package life

import (
	"golang.org/x/exp/rand"
)

// Life is a B3/S23 automaton. Cells outside the grid are permanently dead;
// the board does not wrap.
type Life struct {
	w, h int
	cur  []uint8
	nxt  []uint8
	gen  int
}

// New returns an empty board. Non-positive dimensions give an empty board.
func New(w, h int) *Life {
	w, h = max(w, 0), max(h, 0)
	return &Life{
		w:   w,
		h:   h,
		cur: make([]uint8, w*h),
		nxt: make([]uint8, w*h),
	}
}

func (l *Life) Width() int { return l.w }

func (l *Life) Height() int { return l.h }

// Generation counts the steps since the last Clear.
func (l *Life) Generation() int { return l.gen }

func (l *Life) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.w && y < l.h
}

// Alive reports whether (x, y) is alive. Out-of-range cells are dead.
func (l *Life) Alive(x, y int) bool {
	return l.in(x, y) && l.cur[y*l.w+x] == 1
}

// Set changes one cell; out-of-range coordinates are ignored.
func (l *Life) Set(x, y int, alive bool) {
	if !l.in(x, y) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	l.cur[y*l.w+x] = v
}

func (l *Life) Toggle(x, y int) {
	l.Set(x, y, !l.Alive(x, y))
}

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	clear(l.cur)
	l.gen = 0
}

// Randomize fills the board so that each cell is alive with the given probability.
func (l *Life) Randomize(rng *rand.Rand, density float64) {
	for i := range l.cur {
		l.cur[i] = 0
		if rng.Float64() < density {
			l.cur[i] = 1
		}
	}
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur {
		n += int(c)
	}
	return n
}

func (l *Life) neighbours(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if l.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Step advances one generation.
func (l *Life) Step() {
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			idx := y*l.w + x
			switch l.neighbours(x, y) {
			case 3:
				l.nxt[idx] = 1
			case 2:
				l.nxt[idx] = l.cur[idx]
			default:
				l.nxt[idx] = 0
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}
