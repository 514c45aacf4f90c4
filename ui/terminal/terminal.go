// Package terminal is a tcell frontend. A tile is two columns wide and one
// row high so the board keeps a roughly square aspect.
package terminal

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"snakebot/game"
	"snakebot/logging"
	"snakebot/ui/layout"
	"snakebot/ui/scene"
)

const (
	TileW = 2
	TileH = 1
)

type Terminal struct {
	screen tcell.Screen
	keys   game.KeyState
	logger log.Logger
	quit   bool
}

// Open initialises the terminal screen with mouse reporting enabled.
func Open(logger log.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	if logger == nil {
		logger = logging.GlobalLogger()
	}
	return &Terminal{screen: screen, logger: logger}, nil
}

// Size returns the screen size in cells.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Run drives screen at fps frames per second until a quit key arrives.
func (t *Terminal) Run(screen scene.Screen, fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pump(t.screen.PollEvent, events, done)

	start := time.Now()
	last := start
	for !t.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			t.handleEvent(ev)

		case now := <-ticker.C:
			screen.Update(&t.keys, now.Sub(start).Seconds(), now.Sub(last).Seconds())
			last = now
			t.draw(screen)
			t.keys.EndFrame()
		}
	}
	_ = level.Debug(t.logger).Log("msg", "terminal loop ended", "seconds", time.Since(start).Seconds())
}

// pump forwards polled events until poll returns nil or done is closed.
// events is closed only when poll runs dry.
func pump(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		for _, k := range keysFor(ev.Key(), ev.Rune()) {
			if k == game.KeyQuit {
				t.quit = true
			}
			t.keys.Press(k)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.keys.SetPointer(game.Pointer{
			X:    float32(x),
			Y:    float32(y),
			Down: ev.Buttons()&tcell.Button1 != 0,
		})
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) draw(screen scene.Screen) {
	w, h := t.screen.Size()
	l := layout.Fit(screen.Grid(), w, h, TileW, TileH)
	canvas := Rasterize(screen.Draw(l, float32(w), float32(h)), w, h)

	for y, row := range canvas {
		for x, cell := range row {
			style := tcell.StyleDefault.Background(rgb(cell.Bg)).Foreground(rgb(cell.Fg))
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	t.screen.Show()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Terminal) Close() {
	t.screen.Fini()
}
