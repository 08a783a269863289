package guibridge

// Clipboard abstracts the host's text clipboard.
//
// Implementations live beside the window host; the window package provides one
// over GLFW. Clipboard access is the only core operation that can touch OS
// services mid-frame, so the Context wraps every implementation in a layer
// that swallows failures: a broken clipboard must never abort a frame.
type Clipboard interface {
	// GetText retrieves text from the clipboard. ok is false when the
	// clipboard is empty, holds non-text data, or the query failed.
	GetText() (text string, ok bool)

	// SetText copies text to the clipboard, best effort.
	SetText(text string)
}

// nopClipboard is used when no clipboard is wired up.
type nopClipboard struct{}

func (nopClipboard) GetText() (string, bool) { return "", false }
func (nopClipboard) SetText(string)          {}

// safeClipboard shields the frame cycle from a misbehaving platform clipboard.
// Panics are recovered and logged; the frame continues as if the clipboard
// were empty.
type safeClipboard struct {
	c Clipboard
}

func (s safeClipboard) GetText() (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			bridgeLogger.Warn("clipboard get failed", "panic", r)
			text, ok = "", false
		}
	}()
	return s.c.GetText()
}

func (s safeClipboard) SetText(text string) {
	defer func() {
		if r := recover(); r != nil {
			bridgeLogger.Warn("clipboard set failed", "panic", r)
		}
	}()
	s.c.SetText(text)
}
