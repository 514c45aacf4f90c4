package scene

import (
	"fmt"

	"snakebot/game"
	"snakebot/game/life"
	"snakebot/game/types"
	"snakebot/ui/layout"
)

// Screen is what a frontend drives every frame: input first, then drawing.
type Screen interface {
	Grid() types.Grid
	Update(in game.Input, t, dt float64)
	Draw(l layout.Layout, screenW, screenH float32) Scene
}

// SnakeScreen presents a snake session.
type SnakeScreen struct {
	Game *game.Game
	fps  int
}

func NewSnakeScreen(g *game.Game) *SnakeScreen {
	return &SnakeScreen{Game: g}
}

func (s *SnakeScreen) Grid() types.Grid { return s.Game.Grid() }

func (s *SnakeScreen) Update(in game.Input, t, dt float64) {
	if dt > 0 {
		s.fps = int(1/dt + 0.5)
	}
	s.Game.Update(in, t, dt)
}

func (s *SnakeScreen) Draw(l layout.Layout, screenW, screenH float32) Scene {
	snake := s.Game.Snake()
	var overlay []types.Point
	if s.Game.Debug() && s.Game.Autopilot() {
		overlay = s.Game.Bot().LastPath()
	}
	sc := Snake(snake, l, screenW, screenH, overlay)

	hud := HUD{
		Score:     snake.Score(),
		HighScore: snake.HighScore(),
		Games:     s.Game.Stats().GamesPlayed(),
		State:     snake.State(),
		Autopilot: s.Game.Autopilot(),
		Debug:     s.Game.Debug(),
		FPS:       s.fps,
	}
	sc.AddHUD(hud.Lines(), l.OffsetX, l.TileH/4, hudSize(l))
	return sc
}

// LifeScreen presents the Game of Life sandbox. Pointer positions are mapped
// through the layout of the last drawn frame.
type LifeScreen struct {
	Sim    *life.Sim
	layout layout.Layout
}

// NewLifeScreen builds the sandbox on a board of the given grid size.
func NewLifeScreen(grid types.Grid, sim func(board *life.Life, mapCell life.CellMapper) *life.Sim) *LifeScreen {
	ls := &LifeScreen{}
	ls.Sim = sim(life.New(grid.Width, grid.Height), ls.mapCell)
	return ls
}

func (ls *LifeScreen) mapCell(p game.Pointer) (int, int, bool) {
	cell, ok := ls.layout.ScreenToCell(p.X, p.Y)
	return cell.X, cell.Y, ok
}

func (ls *LifeScreen) Grid() types.Grid {
	b := ls.Sim.Board()
	return types.Grid{Width: b.Width(), Height: b.Height()}
}

func (ls *LifeScreen) Update(in game.Input, t, dt float64) {
	ls.Sim.Update(in, t, dt)
}

func (ls *LifeScreen) Draw(l layout.Layout, screenW, screenH float32) Scene {
	ls.layout = l
	sc := Life(ls.Sim.Board(), l, screenW, screenH)
	if ls.Sim.Debug() {
		lines := []string{
			fmt.Sprintf("Generation: %d", ls.Sim.Board().Generation()),
			fmt.Sprintf("Population: %d", ls.Sim.Board().Population()),
		}
		if !ls.Sim.Running() {
			lines = append(lines, "STOPPED - R run, N random, C clear")
		}
		sc.AddHUD(lines, l.OffsetX, l.TileH/4, hudSize(l))
	}
	return sc
}

func hudSize(l layout.Layout) float32 {
	return max(l.TileH*0.6, 1)
}
