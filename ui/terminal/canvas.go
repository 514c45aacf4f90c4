package terminal

import (
	"image/color"
	"math"

	"snakebot/ui/scene"
)

// Cell is one terminal character cell.
type Cell struct {
	Rune rune
	Fg   color.RGBA
	Bg   color.RGBA
}

// Canvas is a rasterized scene, indexed [y][x].
type Canvas [][]Cell

// overlayRune marks translucent rectangles, which a terminal cannot blend.
const overlayRune = '·'

// Rasterize paints a scene onto a w by h grid of cells. A cell belongs to a
// rectangle when its centre lies inside it; corner rounding is ignored.
func Rasterize(s scene.Scene, w, h int) Canvas {
	c := make(Canvas, h)
	for y := range c {
		c[y] = make([]Cell, w)
		for x := range c[y] {
			c[y][x] = Cell{Rune: ' '}
		}
	}

	for _, cmd := range s.Commands {
		switch cmd.Kind {
		case scene.KindRect:
			c.fill(cmd)
		case scene.KindText:
			c.text(cmd)
		}
	}
	return c
}

func (c Canvas) fill(cmd scene.Command) {
	x0 := int(math.Ceil(float64(cmd.X) - 0.5))
	y0 := int(math.Ceil(float64(cmd.Y) - 0.5))
	x1 := int(math.Ceil(float64(cmd.X+cmd.W) - 0.5))
	y1 := int(math.Ceil(float64(cmd.Y+cmd.H) - 0.5))

	for y := max(y0, 0); y < min(y1, len(c)); y++ {
		row := c[y]
		for x := max(x0, 0); x < min(x1, len(row)); x++ {
			if cmd.Colour.A < 0xFF {
				row[x].Rune = overlayRune
				row[x].Fg = opaque(cmd.Colour)
				continue
			}
			row[x] = Cell{Rune: ' ', Bg: cmd.Colour}
		}
	}
}

func (c Canvas) text(cmd scene.Command) {
	y := int(cmd.Y)
	if y < 0 || y >= len(c) {
		return
	}
	row := c[y]
	x := int(cmd.X)
	for _, r := range cmd.Text {
		if x >= len(row) {
			return
		}
		if x >= 0 {
			row[x].Rune = r
			row[x].Fg = cmd.Colour
		}
		x++
	}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xFF
	return c
}
