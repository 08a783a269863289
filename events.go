package guibridge

// Event is a host window event delivered to a Driver. The set of variants is
// fixed; unrecognized sub-values inside a variant (unmapped key codes, extra
// pointer buttons) are ignored without error.
type Event interface{ isEvent() }

// PointerMovedEvent reports the pointer position in physical pixels.
type PointerMovedEvent struct {
	X, Y float32
}

func (PointerMovedEvent) isEvent() {}

// PointerButtonEvent reports a pointer button state change.
type PointerButtonEvent struct {
	Button  PointerButton
	Pressed bool
}

func (PointerButtonEvent) isEvent() {}

// ScrollEvent reports a wheel movement in line units. Deltas are additive:
// several scroll events before the next frame sum up.
type ScrollEvent struct {
	DX, DY float32
}

func (ScrollEvent) isEvent() {}

// KeyEvent reports a key state change using the host-neutral key code.
type KeyEvent struct {
	Code    KeyCode
	Pressed bool
}

func (KeyEvent) isEvent() {}

// CharEvent reports a typed character (post keymap, post IME).
type CharEvent struct {
	Char rune
}

func (CharEvent) isEvent() {}

// FocusEvent reports keyboard focus entering or leaving the window.
type FocusEvent struct {
	Gained bool
}

func (FocusEvent) isEvent() {}

// ResizedEvent reports the window's new physical size and scale factor.
// A pure DPI change arrives as a ResizedEvent with an unchanged aspect.
type ResizedEvent struct {
	Width, Height int
	Scale         float32
}

func (ResizedEvent) isEvent() {}

// WillCloseEvent announces that the host window is about to close.
type WillCloseEvent struct{}

func (WillCloseEvent) isEvent() {}

// PointerButton identifies a pointer button in host terms.
type PointerButton int

const (
	PointerLeft PointerButton = iota
	PointerRight
	PointerMiddle
	PointerBack
	PointerForward
)

// KeyCode is the host-neutral physical key code, a subset of the W3C UI
// Events code set. Hosts translate their native codes into these; the input
// translator maps them onto the GUI Key enum and drops anything unmapped.
type KeyCode int

const (
	CodeUnknown KeyCode = iota
	CodeTab
	CodeArrowLeft
	CodeArrowRight
	CodeArrowUp
	CodeArrowDown
	CodePageUp
	CodePageDown
	CodeHome
	CodeEnd
	CodeInsert
	CodeDelete
	CodeBackspace
	CodeSpace
	CodeEnter
	CodeNumpadEnter
	CodeEscape
	CodeKeyA
	CodeKeyC
	CodeKeyV
	CodeKeyX
	CodeKeyY
	CodeKeyZ
	CodeShiftLeft
	CodeShiftRight
	CodeControlLeft
	CodeControlRight
	CodeAltLeft
	CodeAltRight
	CodeMetaLeft
	CodeMetaRight
)
