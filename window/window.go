// Package window is the GLFW host for guibridge. It opens an OS window with
// an OpenGL context, wires host events into a guibridge.Driver and runs the
// frame loop until the window closes or the backend fails.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/sagacity/guibridge"
	"github.com/sagacity/guibridge/backend/opengl"
)

func init() {
	// GLFW and the GL context are bound to the main OS thread.
	runtime.LockOSThread()
}

// Window is one open GUI window. Create it with Open or OpenParented and
// drive it with Run; all methods must be called from the main goroutine.
type Window struct {
	win    *glfw.Window
	driver *guibridge.Driver
	scale  float32

	// fixedScale marks Settings.ScaleFactor as forced: resize events keep
	// the scale instead of re-reading the system ratio.
	fixedScale bool
	parent     uintptr
}

// ParentHandle returns the native parent handle passed to OpenParented, or
// zero for a top-level window. GLFW cannot reparent onto it; it is retained
// for the embedder's own use.
func (w *Window) ParentHandle() uintptr { return w.parent }

// Open creates a top-level window per the settings and attaches the GUI
// session. A non-nil error is a *guibridge.ContextCreationError and nothing
// is left to clean up.
func Open(settings guibridge.Settings, update guibridge.UpdateFunc) (*Window, error) {
	return open(settings, update, 0, true)
}

// OpenParented opens the window undecorated and non-resizable, for embedding
// hosts that position it over a region of a parent surface. GLFW cannot adopt
// a foreign native handle, so the window is top-level; the parent handle is
// retained for the embedder through ParentHandle.
func OpenParented(parent uintptr, settings guibridge.Settings, update guibridge.UpdateFunc) (*Window, error) {
	settings.Resizable = false
	return open(settings, update, parent, false)
}

func open(settings guibridge.Settings, update guibridge.UpdateFunc, parent uintptr, decorated bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &guibridge.ContextCreationError{Cause: fmt.Errorf("glfw init: %w", err)}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, settings.Samples)
	if settings.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	if decorated {
		glfw.WindowHint(glfw.Decorated, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.False)
	}

	win, err := glfw.CreateWindow(settings.Width, settings.Height, settings.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &guibridge.ContextCreationError{Cause: fmt.Errorf("create window: %w", err)}
	}

	win.MakeContextCurrent()
	if settings.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, &guibridge.ContextCreationError{Cause: fmt.Errorf("gl init: %w", err)}
	}

	fbW, fbH := win.GetFramebufferSize()
	scale := settings.ScaleFactor
	if scale <= 0 {
		winW, _ := win.GetSize()
		if winW > 0 {
			scale = float32(fbW) / float32(winW)
		}
		if scale <= 0 {
			scale = 1
		}
	}

	fontSize := settings.FontSize
	if fontSize <= 0 {
		fontSize = guibridge.DefaultFontSize
	}
	atlas, err := guibridge.NewFontAtlas(fontSize)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, &guibridge.ContextCreationError{Cause: fmt.Errorf("font atlas: %w", err)}
	}

	renderer, err := opengl.NewRenderer(atlas, fbW, fbH, scale, settings.ClearColor, win.SwapBuffers)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	w := &Window{
		win:        win,
		scale:      scale,
		fixedScale: settings.ScaleFactor > 0,
		parent:     parent,
	}
	w.driver = guibridge.NewDriver(settings, glfwClipboard{win: win}, update)
	w.driver.Open(renderer, atlas, fbW, fbH, scale)

	w.installCallbacks()
	return w, nil
}

func (w *Window) installCallbacks() {
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		// GLFW reports screen coordinates; the driver expects physical pixels.
		w.driver.HandleEvent(guibridge.PointerMovedEvent{
			X: float32(x) * w.scale,
			Y: float32(y) * w.scale,
		})
	})

	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		pb, ok := pointerButton(button)
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			w.driver.HandleEvent(guibridge.PointerButtonEvent{Button: pb, Pressed: true})
		case glfw.Release:
			w.driver.HandleEvent(guibridge.PointerButtonEvent{Button: pb, Pressed: false})
		}
	})

	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.driver.HandleEvent(guibridge.ScrollEvent{DX: float32(xoff), DY: float32(yoff)})
	})

	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		code := keyCode(key)
		switch action {
		case glfw.Press, glfw.Repeat:
			w.driver.HandleEvent(guibridge.KeyEvent{Code: code, Pressed: true})
		case glfw.Release:
			w.driver.HandleEvent(guibridge.KeyEvent{Code: code, Pressed: false})
		}
	})

	w.win.SetCharCallback(func(_ *glfw.Window, char rune) {
		w.driver.HandleEvent(guibridge.CharEvent{Char: char})
	})

	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.driver.HandleEvent(guibridge.FocusEvent{Gained: focused})
	})

	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		winW, _ := w.win.GetSize()
		w.scale = framebufferScale(w.fixedScale, w.scale, width, winW)
		w.driver.HandleEvent(guibridge.ResizedEvent{Width: width, Height: height, Scale: w.scale})
	})
}

// Run drives the window until it closes or the render backend fails. It
// always tears the window and GLFW down before returning; the returned error
// is the fatal *guibridge.RenderError, or nil on a normal close.
func (w *Window) Run() error {
	defer func() {
		w.driver.Close()
		w.win.Destroy()
		glfw.Terminate()
	}()

	for !w.win.ShouldClose() && !w.driver.Closed() {
		glfw.PollEvents()
		if err := w.driver.RenderFrame(); err != nil {
			return err
		}
	}

	w.driver.HandleEvent(guibridge.WillCloseEvent{})
	return nil
}

// RequestClose asks the window to close. The frame loop notices on its next
// iteration; the in-flight frame still completes.
func (w *Window) RequestClose() {
	w.win.SetShouldClose(true)
}

// framebufferScale returns the scale to report after a framebuffer resize.
// A forced Settings.ScaleFactor stays fixed for the life of the window;
// otherwise the system ratio is re-read from the framebuffer and window
// sizes, falling back to the current scale when the window size is unusable.
func framebufferScale(fixed bool, current float32, fbWidth, winWidth int) float32 {
	if fixed {
		return current
	}
	if winWidth > 0 && fbWidth > 0 {
		return float32(fbWidth) / float32(winWidth)
	}
	return current
}

// pointerButton maps a GLFW mouse button onto the host event button enum.
func pointerButton(button glfw.MouseButton) (guibridge.PointerButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return guibridge.PointerLeft, true
	case glfw.MouseButtonRight:
		return guibridge.PointerRight, true
	case glfw.MouseButtonMiddle:
		return guibridge.PointerMiddle, true
	case glfw.MouseButton4:
		return guibridge.PointerBack, true
	case glfw.MouseButton5:
		return guibridge.PointerForward, true
	default:
		return 0, false
	}
}

// keyCode maps a GLFW key onto the host event key code. Keys outside the
// mapped set come through as CodeUnknown and are dropped downstream.
func keyCode(key glfw.Key) guibridge.KeyCode {
	switch key {
	case glfw.KeyTab:
		return guibridge.CodeTab
	case glfw.KeyLeft:
		return guibridge.CodeArrowLeft
	case glfw.KeyRight:
		return guibridge.CodeArrowRight
	case glfw.KeyUp:
		return guibridge.CodeArrowUp
	case glfw.KeyDown:
		return guibridge.CodeArrowDown
	case glfw.KeyPageUp:
		return guibridge.CodePageUp
	case glfw.KeyPageDown:
		return guibridge.CodePageDown
	case glfw.KeyHome:
		return guibridge.CodeHome
	case glfw.KeyEnd:
		return guibridge.CodeEnd
	case glfw.KeyInsert:
		return guibridge.CodeInsert
	case glfw.KeyDelete:
		return guibridge.CodeDelete
	case glfw.KeyBackspace:
		return guibridge.CodeBackspace
	case glfw.KeySpace:
		return guibridge.CodeSpace
	case glfw.KeyEnter:
		return guibridge.CodeEnter
	case glfw.KeyKPEnter:
		return guibridge.CodeNumpadEnter
	case glfw.KeyEscape:
		return guibridge.CodeEscape
	case glfw.KeyA:
		return guibridge.CodeKeyA
	case glfw.KeyC:
		return guibridge.CodeKeyC
	case glfw.KeyV:
		return guibridge.CodeKeyV
	case glfw.KeyX:
		return guibridge.CodeKeyX
	case glfw.KeyY:
		return guibridge.CodeKeyY
	case glfw.KeyZ:
		return guibridge.CodeKeyZ
	case glfw.KeyLeftShift:
		return guibridge.CodeShiftLeft
	case glfw.KeyRightShift:
		return guibridge.CodeShiftRight
	case glfw.KeyLeftControl:
		return guibridge.CodeControlLeft
	case glfw.KeyRightControl:
		return guibridge.CodeControlRight
	case glfw.KeyLeftAlt:
		return guibridge.CodeAltLeft
	case glfw.KeyRightAlt:
		return guibridge.CodeAltRight
	case glfw.KeyLeftSuper:
		return guibridge.CodeMetaLeft
	case glfw.KeyRightSuper:
		return guibridge.CodeMetaRight
	default:
		return guibridge.CodeUnknown
	}
}
