// Package scene turns game state into backend-neutral draw commands.
package scene

import (
	"image/color"

	"snakebot/game/types"
)

var (
	TileColour1  = hex(0xA2D149)
	TileColour2  = hex(0xAAD751)
	SnakeColour1 = hex(0x4775EA)
	SnakeColour2 = hex(0x205163)
	Background   = hex(0x578A34)
	FruitColour  = hex(0xE7471D)
	PathColour   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x60}
	TextColour   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	LifeAlive    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	LifeDead     = color.RGBA{A: 0xFF}
)

func hex(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xFF}
}

// Corners selects which corners of a rounded rectangle are rounded.
type Corners uint8

const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	CornersTop    = CornerTopLeft | CornerTopRight
	CornersBottom = CornerBottomLeft | CornerBottomRight
	CornersLeft   = CornerTopLeft | CornerBottomLeft
	CornersRight  = CornerTopRight | CornerBottomRight
	CornersAll    = CornersTop | CornersBottom
)

// CornersFor rounds the side of a tile facing d.
func CornersFor(d types.Direction) Corners {
	switch d {
	case types.East:
		return CornersRight
	case types.South:
		return CornersBottom
	case types.West:
		return CornersLeft
	default:
		return CornersTop
	}
}

type Kind uint8

const (
	KindRect Kind = iota
	KindText
)

// Command is one draw call. Rect commands use X, Y, W, H and optionally
// Radius/Corners; text commands use X, Y, Size and Text.
type Command struct {
	Kind    Kind
	X, Y    float32
	W, H    float32
	Radius  float32
	Corners Corners
	Size    float32
	Text    string
	Colour  color.RGBA
}

// Scene is an ordered list of commands; later commands paint over earlier ones.
type Scene struct {
	Width, Height float32
	Commands      []Command
}

func (s *Scene) Rect(x, y, w, h float32, c color.RGBA) {
	s.Commands = append(s.Commands, Command{Kind: KindRect, X: x, Y: y, W: w, H: h, Colour: c})
}

func (s *Scene) RoundedRect(x, y, w, h, radius float32, corners Corners, c color.RGBA) {
	s.Commands = append(s.Commands, Command{
		Kind: KindRect, X: x, Y: y, W: w, H: h,
		Radius: radius, Corners: corners, Colour: c,
	})
}

func (s *Scene) Text(x, y, size float32, text string, c color.RGBA) {
	s.Commands = append(s.Commands, Command{Kind: KindText, X: x, Y: y, Size: size, Text: text, Colour: c})
}

// Count returns how many commands of kind k the scene holds.
func (s *Scene) Count(k Kind) int {
	n := 0
	for _, c := range s.Commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}
