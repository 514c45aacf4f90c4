package scene

import (
	"fmt"
	"image/color"

	"snakebot/game"
	"snakebot/game/life"
	"snakebot/game/types"
	"snakebot/ui/layout"
)

// SnakeView is the read side of a running snake.
type SnakeView interface {
	Grid() types.Grid
	Head() types.Point
	Direction() types.Direction
	Tail() []types.Point
	Fruits() []types.Point
}

// Snake draws the board, the fruits and the snake. overlay, when not empty,
// is drawn on top as the autopilot's planned path.
func Snake(v SnakeView, l layout.Layout, screenW, screenH float32, overlay []types.Point) Scene {
	s := Scene{Width: screenW, Height: screenH}
	s.Rect(0, 0, screenW, screenH, Background)

	grid := l.Grid
	for i := 0; i < grid.Width; i++ {
		for j := 0; j < grid.Height; j++ {
			c := TileColour1
			if i%2 == j%2 {
				c = TileColour2
			}
			x, y := l.TileToScreen(types.Point{X: i, Y: j})
			s.Rect(x, y, l.TileW, l.TileH, c)
		}
	}

	radius := l.TileW / 2
	for _, f := range v.Fruits() {
		x, y := l.TileToScreen(f)
		s.RoundedRect(x, y, l.TileW, l.TileH, radius, CornersAll, FruitColour)
	}

	drawSnake(&s, v, l)

	for _, p := range overlay {
		x, y := l.TileToScreen(p)
		s.Rect(x+l.TileW/4, y+l.TileH/4, l.TileW/2, l.TileH/2, PathColour)
	}
	return s
}

// drawSnake paints an outline pass one unit larger in the dark colour, then
// the body. The head rounds towards its heading, the tail end away from the body.
func drawSnake(s *Scene, v SnakeView, l layout.Layout) {
	tail := v.Tail()
	if len(tail) == 0 {
		return
	}
	end := tail[len(tail)-1]
	headCorners := CornersFor(v.Direction())
	endCorners := CornersAll
	if len(tail) >= 2 {
		endCorners = CornersFor(types.DirectionBetween(end, tail[len(tail)-2], 180))
	}
	radius := l.TileW / 2

	pass := func(grow float32, c color.RGBA) {
		tile := func(p types.Point, corners Corners, rounded bool) {
			x, y := l.TileToScreen(p)
			x, y = x-grow, y-grow
			w, h := l.TileW+2*grow, l.TileH+2*grow
			if rounded {
				s.RoundedRect(x, y, w, h, radius, corners, c)
			} else {
				s.Rect(x, y, w, h, c)
			}
		}
		tile(v.Head(), headCorners, true)
		tile(end, endCorners, true)
		for _, seg := range tail[:len(tail)-1] {
			tile(seg, 0, false)
		}
	}
	// One pixel at the window tile size, scaled for other tile sizes.
	pass(l.TileW/layout.TileSize, SnakeColour2)
	pass(0, SnakeColour1)
}

// HUD is the text shown over the snake board.
type HUD struct {
	Score, HighScore int
	Games            int
	State            game.State
	Autopilot        bool
	Debug            bool
	FPS              int
}

func (h HUD) Lines() []string {
	lines := []string{fmt.Sprintf("Score: %d  High: %d", h.Score, h.HighScore)}
	mode := "player"
	if h.Autopilot {
		mode = "autopilot"
	}
	lines = append(lines, fmt.Sprintf("Mode: %s", mode))
	switch h.State {
	case game.Paused:
		lines = append(lines, "PAUSED")
	case game.GameOver:
		lines = append(lines, "GAME OVER - press R to restart")
	}
	if h.Debug {
		lines = append(lines, fmt.Sprintf("Games: %d  FPS: %d", h.Games, h.FPS))
	}
	return lines
}

// AddHUD stacks lines of text from the top-left corner.
func (s *Scene) AddHUD(lines []string, x, y, size float32) {
	for i, line := range lines {
		s.Text(x, y+float32(i)*size*1.2, size, line, TextColour)
	}
}

// Life draws every cell of a board.
func Life(b *life.Life, l layout.Layout, screenW, screenH float32) Scene {
	s := Scene{Width: screenW, Height: screenH}
	s.Rect(0, 0, screenW, screenH, LifeDead)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if !b.Alive(x, y) {
				continue
			}
			px, py := l.TileToScreen(types.Point{X: x, Y: y})
			s.Rect(px, py, l.TileW, l.TileH, LifeAlive)
		}
	}
	return s
}
