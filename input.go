package guibridge

// MouseButton represents a mouse button tracked by the input state.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
	MouseButtonCount
)

// Key represents a key the GUI layer cares about: navigation and editing keys
// plus the shortcut letters. Physical keys outside this set never reach the
// input state.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyCount
)

// Modifiers is a bit-set of modifier keys held down.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether all modifiers in m are held.
func (mods Modifiers) Has(m Modifiers) bool { return mods&m == m }

// InputState accumulates input between two frames.
//
// Mouse position, button flags, key flags and modifiers are level-triggered:
// they always reflect the last known state. Wheel deltas and typed characters
// are per-frame accumulators: they sum everything delivered since the previous
// frame and are cleared the moment a frame consumes them.
type InputState struct {
	// Mouse position in logical pixels.
	MouseX, MouseY float32

	mouseDown     [MouseButtonCount]bool
	mouseClicked  [MouseButtonCount]bool // True on the frame the button went down
	mouseReleased [MouseButtonCount]bool // True on the frame the button went up

	// Wheel deltas accumulated since the last frame.
	WheelX, WheelY float32

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyReleased [KeyCount]bool

	// Characters typed since the last frame, in arrival order.
	Chars []rune

	// Held modifier keys.
	Mods Modifiers
}

// NewInputState creates an empty InputState.
func NewInputState() *InputState {
	return &InputState{
		Chars: make([]rune, 0, 16),
	}
}

// ResetFrame clears the per-frame accumulators and edge flags.
// Level-triggered state (position, down flags, modifiers) is retained.
// The frame driver calls this immediately after a frame consumed the state.
func (s *InputState) ResetFrame() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseReleased {
		s.mouseReleased[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyReleased {
		s.keyReleased[i] = false
	}
	s.Chars = s.Chars[:0]
	s.WheelX = 0
	s.WheelY = 0
}

// SetMousePos sets the mouse position in logical pixels.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets a mouse button's held state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseReleased[button] = true
	}
}

// SetKey sets a key's held state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if !down && wasDown {
		s.keyReleased[key] = true
	}
}

// AddWheel accumulates a scroll delta. Multiple scroll events between two
// frames sum rather than overwrite.
func (s *InputState) AddWheel(dx, dy float32) {
	s.WheelX += dx
	s.WheelY += dy
}

// AddChar appends a typed character to the per-frame queue.
func (s *InputState) AddChar(ch rune) {
	s.Chars = append(s.Chars, ch)
}

// ReleaseAll clears every button, key and modifier flag. Called on focus loss
// so a button or modifier held across the focus change cannot stick.
func (s *InputState) ReleaseAll() {
	for i := range s.mouseDown {
		s.mouseDown[i] = false
	}
	for i := range s.keyDown {
		s.keyDown[i] = false
	}
	s.Mods = 0
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button went down since the last frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button went up since the last frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseReleased[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key went down since the last frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key went up since the last frame.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyReleased[key]
}
