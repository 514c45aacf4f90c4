package terminal

import (
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snakebot/game"
	"snakebot/game/types"
	"snakebot/ui/layout"
	"snakebot/ui/scene"
)

func TestKeysFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want []game.Key
	}{
		{tcell.KeyUp, 0, []game.Key{game.KeyUp}},
		{tcell.KeyRune, 'd', []game.Key{game.KeyRight}},
		{tcell.KeyRune, ' ', []game.Key{game.KeyPause}},
		{tcell.KeyRune, 'r', []game.Key{game.KeyRestart, game.KeyRun}},
		{tcell.KeyEnter, 0, []game.Key{game.KeyRestart}},
		{tcell.KeyEscape, 0, []game.Key{game.KeyQuit}},
		{tcell.KeyRune, 'z', nil},
		{tcell.KeyF1, 0, nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keysFor(tt.key, tt.r), "key %v rune %q", tt.key, tt.r)
	}
}

func TestRasterizeRect(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}
	var s scene.Scene
	s.Rect(2, 1, 4, 2, red)

	c := Rasterize(s, 8, 4)
	require.Len(t, c, 4)
	require.Len(t, c[0], 8)

	assert.Equal(t, red, c[1][2].Bg)
	assert.Equal(t, red, c[2][5].Bg)
	assert.Equal(t, color.RGBA{}, c[1][6].Bg)
	assert.Equal(t, color.RGBA{}, c[0][2].Bg)
	assert.Equal(t, ' ', c[1][2].Rune)
}

func TestRasterizeIgnoresSubCellOutline(t *testing.T) {
	blue := color.RGBA{B: 0xFF, A: 0xFF}
	var s scene.Scene
	s.Rect(2-0.0625, 1-0.0625, 2.125, 1.125, blue)

	c := Rasterize(s, 8, 4)
	assert.Equal(t, blue, c[1][2].Bg)
	assert.Equal(t, blue, c[1][3].Bg)
	assert.Equal(t, color.RGBA{}, c[1][1].Bg)
	assert.Equal(t, color.RGBA{}, c[1][4].Bg)
	assert.Equal(t, color.RGBA{}, c[0][2].Bg)
}

func TestRasterizeOverlayAndText(t *testing.T) {
	var s scene.Scene
	s.Rect(0, 0, 6, 2, scene.Background)
	s.Rect(2.5, 0.25, 1, 0.5, scene.PathColour)
	s.Text(4, 1, 1, "hi!", scene.TextColour)

	c := Rasterize(s, 6, 2)
	assert.Equal(t, '·', c[0][2].Rune)
	assert.Equal(t, scene.Background, c[0][2].Bg, "overlay keeps the background")
	assert.Equal(t, uint8(0xFF), c[0][2].Fg.A)
	assert.Equal(t, ' ', c[0][3].Rune)

	assert.Equal(t, 'h', c[1][4].Rune)
	assert.Equal(t, 'i', c[1][5].Rune)
	assert.Equal(t, scene.TextColour, c[1][4].Fg)
}

func TestRasterizeSnakeBoard(t *testing.T) {
	g, err := game.NewGame(game.Config{Grid: types.Grid{Width: 10, Height: 6}}, nil)
	require.NoError(t, err)
	screen := scene.NewSnakeScreen(g)

	l := layout.Fit(screen.Grid(), 24, 8, TileW, TileH)
	c := Rasterize(screen.Draw(l, 24, 8), 24, 8)

	// Head at tile (8,0) lands on columns 18-19 of row 1.
	assert.Equal(t, scene.SnakeColour1, c[1][18].Bg)
	assert.Equal(t, scene.SnakeColour1, c[1][19].Bg)
	assert.NotEqual(t, scene.SnakeColour1, c[1][20].Bg)
	// Fruit at the centre tile (5,3).
	assert.Equal(t, scene.FruitColour, c[4][12].Bg)
}

func TestPumpStopsWhenDoneWithFullBuffer(t *testing.T) {
	poll := func() tcell.Event { return tcell.NewEventInterrupt(nil) }
	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		pump(poll, events, done)
		close(exited)
	}()
	<-events
	close(done)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("pump still blocked after done was closed")
	}
}

func TestPumpClosesEventsWhenPollEnds(t *testing.T) {
	queue := []tcell.Event{tcell.NewEventInterrupt(1), nil}
	poll := func() tcell.Event {
		ev := queue[0]
		queue = queue[1:]
		return ev
	}
	events := make(chan tcell.Event, 2)

	pump(poll, events, make(chan struct{}))

	ev, ok := <-events
	require.True(t, ok)
	assert.IsType(t, &tcell.EventInterrupt{}, ev)
	_, ok = <-events
	assert.False(t, ok)
}
