// Package ui is the raylib frontend.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snakebot/ui/layout"
	"snakebot/ui/scene"
)

const roundSegments = 8

// Renderer executes scenes in the raylib window and keeps the board layout in
// step with the window size.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       layout.Layout
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Layout centres the screen's grid in the current window.
func (r *Renderer) Layout(s scene.Screen) layout.Layout {
	r.layout = layout.Fit(s.Grid(), int(r.screenWidth), int(r.screenHeight), layout.TileSize, layout.TileSize)
	return r.layout
}

func (r *Renderer) Draw(s scene.Scene) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	for _, c := range s.Commands {
		switch c.Kind {
		case scene.KindRect:
			drawRect(c)
		case scene.KindText:
			rl.DrawText(c.Text, int32(c.X), int32(c.Y), int32(c.Size), c.Colour)
		}
	}
	rl.EndDrawing()
}

// drawRect draws a rectangle with any subset of its corners rounded. raylib
// only rounds all four, so the square corners are painted back over it.
func drawRect(c scene.Command) {
	rec := rl.Rectangle{X: c.X, Y: c.Y, Width: c.W, Height: c.H}
	if c.Radius <= 0 || c.Corners == 0 {
		rl.DrawRectangleRec(rec, c.Colour)
		return
	}

	short := min(c.W, c.H)
	roundness := min(2*c.Radius/short, 1)
	rl.DrawRectangleRounded(rec, roundness, roundSegments, c.Colour)

	halfW, halfH := c.W/2, c.H/2
	quarters := []struct {
		corner scene.Corners
		x, y   float32
	}{
		{scene.CornerTopLeft, c.X, c.Y},
		{scene.CornerTopRight, c.X + halfW, c.Y},
		{scene.CornerBottomLeft, c.X, c.Y + halfH},
		{scene.CornerBottomRight, c.X + halfW, c.Y + halfH},
	}
	for _, q := range quarters {
		if c.Corners&q.corner == 0 {
			rl.DrawRectangleRec(rl.Rectangle{X: q.x, Y: q.y, Width: halfW, Height: halfH}, c.Colour)
		}
	}
}
