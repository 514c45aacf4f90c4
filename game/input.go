package game

// Key is a frontend-neutral game key. Each UI maps its own key codes onto these.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
	KeyAutopilot
	KeyDebug
	KeyRestart
	KeyRun
	KeyRandomize
	KeyClear
	KeyQuit

	keyCount
)

// Pointer is the mouse position in screen pixels (or terminal cells) and
// whether the primary button is held.
type Pointer struct {
	X, Y float32
	Down bool
}

// Input is polled once per frame.
type Input interface {
	// IsKeyDown reports whether k is currently held.
	IsKeyDown(k Key) bool
	// IsKeyPressed reports whether k went down during this frame.
	IsKeyPressed(k Key) bool
	Pointer() Pointer
}

// KeyState is an Input fed by discrete events, for frontends that receive key
// events instead of polling a keyboard. Held keys are released by EndFrame,
// since terminals do not report key-up.
type KeyState struct {
	down    [keyCount]bool
	pressed [keyCount]bool
	pointer Pointer
}

// Press marks k as pressed and held for the current frame.
func (ks *KeyState) Press(k Key) {
	if k >= keyCount {
		return
	}
	ks.pressed[k] = true
	ks.down[k] = true
}

// Hold marks k as held without a press edge.
func (ks *KeyState) Hold(k Key) {
	if k < keyCount {
		ks.down[k] = true
	}
}

func (ks *KeyState) SetPointer(p Pointer) {
	ks.pointer = p
}

// EndFrame clears the frame's key state. The pointer position is kept but the
// button is released.
func (ks *KeyState) EndFrame() {
	ks.down = [keyCount]bool{}
	ks.pressed = [keyCount]bool{}
	ks.pointer.Down = false
}

func (ks *KeyState) IsKeyDown(k Key) bool {
	return k < keyCount && ks.down[k]
}

func (ks *KeyState) IsKeyPressed(k Key) bool {
	return k < keyCount && ks.pressed[k]
}

func (ks *KeyState) Pointer() Pointer {
	return ks.pointer
}

// steerIntent folds the held movement keys into one tile offset. Right
// overrides left and down overrides up.
func steerIntent(in Input) (dx, dy int) {
	if in.IsKeyDown(KeyLeft) {
		dx = -1
	}
	if in.IsKeyDown(KeyRight) {
		dx = 1
	}
	if in.IsKeyDown(KeyUp) {
		dy = -1
	}
	if in.IsKeyDown(KeyDown) {
		dy = 1
	}
	return dx, dy
}
