package terminal

import (
	"github.com/gdamore/tcell/v2"

	"snakebot/game"
)

// keysFor maps a tcell key event onto game keys. One key can mean different
// things in different modes, so 'r' both restarts a snake run and toggles the
// life simulation.
func keysFor(key tcell.Key, r rune) []game.Key {
	switch key {
	case tcell.KeyUp:
		return []game.Key{game.KeyUp}
	case tcell.KeyDown:
		return []game.Key{game.KeyDown}
	case tcell.KeyLeft:
		return []game.Key{game.KeyLeft}
	case tcell.KeyRight:
		return []game.Key{game.KeyRight}
	case tcell.KeyEnter:
		return []game.Key{game.KeyRestart}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []game.Key{game.KeyQuit}
	case tcell.KeyRune:
	default:
		return nil
	}

	switch r {
	case 'w', 'W':
		return []game.Key{game.KeyUp}
	case 's', 'S':
		return []game.Key{game.KeyDown}
	case 'a', 'A':
		return []game.Key{game.KeyLeft}
	case 'd', 'D':
		return []game.Key{game.KeyRight}
	case 'p', 'P', ' ':
		return []game.Key{game.KeyPause}
	case 'b', 'B':
		return []game.Key{game.KeyAutopilot}
	case 'g', 'G':
		return []game.Key{game.KeyDebug}
	case 'r', 'R':
		return []game.Key{game.KeyRestart, game.KeyRun}
	case 'n', 'N':
		return []game.Key{game.KeyRandomize}
	case 'c', 'C':
		return []game.Key{game.KeyClear}
	case 'q', 'Q':
		return []game.Key{game.KeyQuit}
	}
	return nil
}
