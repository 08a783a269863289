package window

import "github.com/go-gl/glfw/v3.3/glfw"

// glfwClipboard implements guibridge.Clipboard over the GLFW system
// clipboard. GLFW returns an empty string when the clipboard is empty or
// holds non-text data, which maps to ok being false.
type glfwClipboard struct {
	win *glfw.Window
}

func (c glfwClipboard) GetText() (string, bool) {
	s := c.win.GetClipboardString()
	return s, s != ""
}

func (c glfwClipboard) SetText(text string) {
	c.win.SetClipboardString(text)
}
