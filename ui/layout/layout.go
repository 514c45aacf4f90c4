// Package layout maps between grid tiles and screen coordinates.
package layout

import (
	"math"

	"snakebot/game/types"
)

const (
	// TileSize is the edge of a tile in window pixels.
	TileSize = 32
	// AreaScale is the share of the window the board may take up.
	AreaScale = 0.85
)

// Layout places a board of Grid tiles centred on a screen.
type Layout struct {
	Grid             types.Grid
	TileW, TileH     float32
	OffsetX, OffsetY float32
}

// GridFor returns how many tiles of size tile fit along px screen units.
// The integer division happens before scaling.
func GridFor(px, tile int) int {
	if tile <= 0 || px <= 0 {
		return 0
	}
	return int(math.Floor(float64(px/tile) * AreaScale))
}

// New sizes the board to the screen with square TileSize tiles.
func New(screenW, screenH int) Layout {
	return NewWithTile(screenW, screenH, TileSize, TileSize)
}

// NewWithTile sizes the board with tiles of tileW by tileH screen units, for
// frontends where a tile is not a square of pixels.
func NewWithTile(screenW, screenH, tileW, tileH int) Layout {
	grid := types.Grid{Width: GridFor(screenW, tileW), Height: GridFor(screenH, tileH)}
	return Fit(grid, screenW, screenH, tileW, tileH)
}

// Fit centres an existing grid on the screen.
func Fit(grid types.Grid, screenW, screenH, tileW, tileH int) Layout {
	return Layout{
		Grid:    grid,
		TileW:   float32(tileW),
		TileH:   float32(tileH),
		OffsetX: float32(math.Floor(float64(screenW-grid.Width*tileW) / 2)),
		OffsetY: float32(math.Floor(float64(screenH-grid.Height*tileH) / 2)),
	}
}

// TileToScreen returns the top-left corner of a tile. Tiles outside the grid
// are clamped onto its edge.
func (l Layout) TileToScreen(p types.Point) (x, y float32) {
	tx := min(max(p.X, 0), l.Grid.Width-1)
	ty := min(max(p.Y, 0), l.Grid.Height-1)
	return l.OffsetX + float32(tx)*l.TileW, l.OffsetY + float32(ty)*l.TileH
}

// ScreenToCell returns the tile under a screen position.
func (l Layout) ScreenToCell(x, y float32) (types.Point, bool) {
	if l.TileW <= 0 || l.TileH <= 0 {
		return types.Point{}, false
	}
	p := types.Point{
		X: int(math.Floor(float64((x - l.OffsetX) / l.TileW))),
		Y: int(math.Floor(float64((y - l.OffsetY) / l.TileH))),
	}
	return p, l.Grid.Contains(p)
}

// Size returns the board's extent in screen units.
func (l Layout) Size() (w, h float32) {
	return float32(l.Grid.Width) * l.TileW, float32(l.Grid.Height) * l.TileH
}
