package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snakebot/game"
)

// keyMap binds game keys to raylib key codes; any bound key counts.
var keyMap = map[game.Key][]int32{
	game.KeyUp:        {rl.KeyW, rl.KeyUp},
	game.KeyDown:      {rl.KeyS, rl.KeyDown},
	game.KeyLeft:      {rl.KeyA, rl.KeyLeft},
	game.KeyRight:     {rl.KeyD, rl.KeyRight},
	game.KeyPause:     {rl.KeyP, rl.KeySpace},
	game.KeyAutopilot: {rl.KeyB},
	game.KeyDebug:     {rl.KeyG},
	game.KeyRestart:   {rl.KeyR, rl.KeyEnter},
	game.KeyRun:       {rl.KeyR},
	game.KeyRandomize: {rl.KeyN},
	game.KeyClear:     {rl.KeyC},
	game.KeyQuit:      {rl.KeyQ},
}

// Input polls the raylib keyboard and mouse.
type Input struct{}

func (Input) IsKeyDown(k game.Key) bool {
	for _, code := range keyMap[k] {
		if rl.IsKeyDown(code) {
			return true
		}
	}
	return false
}

func (Input) IsKeyPressed(k game.Key) bool {
	for _, code := range keyMap[k] {
		if rl.IsKeyPressed(code) {
			return true
		}
	}
	return false
}

func (Input) Pointer() game.Pointer {
	pos := rl.GetMousePosition()
	return game.Pointer{X: pos.X, Y: pos.Y, Down: rl.IsMouseButtonDown(rl.MouseButtonLeft)}
}
