package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"snakebot/game"
)

func aliveCells(l *Life) [][2]int {
	var cells [][2]int
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			if l.Alive(x, y) {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

func TestBlinkerOscillates(t *testing.T) {
	l := New(5, 5)
	l.Set(1, 2, true)
	l.Set(2, 2, true)
	l.Set(3, 2, true)

	l.Step()
	assert.Equal(t, [][2]int{{2, 1}, {2, 2}, {2, 3}}, aliveCells(l))

	l.Step()
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}, {3, 2}}, aliveCells(l))
	assert.Equal(t, 2, l.Generation())
}

func TestBlockIsStill(t *testing.T) {
	l := New(4, 4)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		l.Set(c[0], c[1], true)
	}
	want := aliveCells(l)

	for i := 0; i < 5; i++ {
		l.Step()
	}
	assert.Equal(t, want, aliveCells(l))
}

func TestBorderIsDead(t *testing.T) {
	// A blinker against the edge loses the cells that would fall off the board.
	l := New(3, 3)
	l.Set(0, 0, true)
	l.Set(1, 0, true)
	l.Set(2, 0, true)

	l.Step()
	assert.Equal(t, [][2]int{{1, 0}, {1, 1}}, aliveCells(l))
}

func TestSetToggleClear(t *testing.T) {
	l := New(3, 3)
	l.Set(-1, 0, true)
	l.Set(3, 3, true)
	assert.Zero(t, l.Population())

	l.Toggle(1, 1)
	assert.True(t, l.Alive(1, 1))
	l.Toggle(1, 1)
	assert.False(t, l.Alive(1, 1))

	l.Set(0, 0, true)
	l.Step()
	l.Clear()
	assert.Zero(t, l.Population())
	assert.Zero(t, l.Generation())
}

func TestRandomizeDensity(t *testing.T) {
	l := New(50, 50)
	l.Randomize(rand.New(rand.NewSource(5)), 0.5)
	pop := l.Population()
	assert.InDelta(t, 1250, pop, 200)

	l.Randomize(rand.New(rand.NewSource(5)), 0)
	assert.Zero(t, l.Population())
}

func identity(p game.Pointer) (int, int, bool) {
	return int(p.X), int(p.Y), p.X >= 0 && p.Y >= 0
}

func TestSimKeysAndPainting(t *testing.T) {
	sim := NewSim(New(6, 6), rand.New(rand.NewSource(2)), identity, 0, nil)
	var in game.KeyState

	in.SetPointer(game.Pointer{X: 2, Y: 3, Down: true})
	assert.Zero(t, sim.Update(&in, 0, 0.016))
	in.EndFrame()
	assert.True(t, sim.Board().Alive(2, 3))

	in.Press(game.KeyRun)
	in.SetPointer(game.Pointer{X: 4, Y: 4, Down: true})
	assert.Equal(t, 1, sim.Update(&in, 0, 0.016))
	in.EndFrame()
	assert.True(t, sim.Running())
	assert.False(t, sim.Board().Alive(4, 4), "no painting while running")
	assert.Zero(t, sim.Board().Population(), "a lone cell dies")

	in.Press(game.KeyRandomize)
	sim.Update(&in, 0, 0.016)
	in.EndFrame()
	assert.True(t, sim.Running())

	in.Press(game.KeyClear)
	sim.Update(&in, 0, 0.016)
	in.EndFrame()
	assert.False(t, sim.Running())
	assert.Zero(t, sim.Board().Population())
	assert.Zero(t, sim.Board().Generation())
}

func TestSimRate(t *testing.T) {
	sim := NewSim(New(4, 4), nil, nil, 10, nil)
	var in game.KeyState

	in.Press(game.KeyRun)
	require.Zero(t, sim.Update(&in, 0, 0.05))
	in.EndFrame()

	assert.Equal(t, 1, sim.Update(&in, 0, 0.06))
	assert.Equal(t, 3, sim.Update(&in, 0, 0.3))
	assert.Equal(t, 4, sim.Board().Generation())
}
