package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"snakebot/game"
	"snakebot/logging"
	"snakebot/ui/scene"
)

// Window is an open raylib window.
type Window struct {
	renderer *Renderer
	input    Input
	logger   log.Logger
}

// Open creates a resizable window of width by height pixels.
func Open(width, height, fps int, title string, logger log.Logger) *Window {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(int32(fps))
	if logger == nil {
		logger = logging.GlobalLogger()
	}
	return &Window{renderer: NewRenderer(), logger: logger}
}

// Size returns the window size in pixels.
func (w *Window) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// Run drives screen until the window is closed or the quit key is pressed.
func (w *Window) Run(screen scene.Screen) {
	frames := 0
	for !rl.WindowShouldClose() {
		if w.input.IsKeyPressed(game.KeyQuit) {
			break
		}
		if rl.IsWindowResized() {
			w.renderer.UpdateDimensions()
		}

		screen.Update(w.input, rl.GetTime(), float64(rl.GetFrameTime()))

		l := w.renderer.Layout(screen)
		w.renderer.Draw(screen.Draw(l, float32(w.renderer.screenWidth), float32(w.renderer.screenHeight)))
		frames++
	}
	_ = level.Debug(w.logger).Log("msg", "window loop ended", "frames", frames, "seconds", rl.GetTime())
}

func (w *Window) Close() {
	rl.CloseWindow()
}
