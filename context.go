package guibridge

import (
	"log/slog"
	"os"
)

// bridgeLogger reports recoverable runtime conditions such as clipboard
// failures. Fatal conditions surface as errors, never through the logger.
var bridgeLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// IO is the per-frame projection of the input accumulator handed to the user
// callback, together with display metrics and frame timing. It is a snapshot:
// mutating it has no effect on the live input state.
type IO struct {
	// MousePos is the pointer position in logical pixels.
	MousePos Vec2

	MouseDown     [MouseButtonCount]bool
	MouseClicked  [MouseButtonCount]bool
	MouseReleased [MouseButtonCount]bool

	// Wheel is the scroll delta accumulated since the previous frame.
	Wheel Vec2

	KeysDown     [KeyCount]bool
	KeysPressed  [KeyCount]bool
	KeysReleased [KeyCount]bool

	// Chars are the characters typed since the previous frame.
	Chars []rune

	Mods Modifiers

	// DisplaySize is the window size in logical pixels.
	DisplaySize Vec2

	// ScaleFactor converts logical to physical pixels.
	ScaleFactor float32

	// DeltaTime is the seconds elapsed since the previous frame.
	DeltaTime float32
}

// KeyPressed returns true if the key went down since the previous frame.
func (io *IO) KeyPressed(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	return io.KeysPressed[k]
}

// KeyDown returns true if the key is currently held.
func (io *IO) KeyDown(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	return io.KeysDown[k]
}

// Context owns the persistent GUI state for one window: the font atlas, the
// clipboard capability, the frame-input snapshot and the in-flight DrawList.
// It lives for the lifetime of the window and admits at most one open frame
// at a time.
type Context struct {
	atlas       *FontAtlas
	clipboard   Clipboard
	fontTexture uint32

	io       IO
	drawList *DrawList
	frame    Frame
	open     bool
}

// NewContext creates a Context around a built font atlas. A nil clipboard
// wires in a no-op implementation; a real one is wrapped so its failures
// cannot abort a frame.
func NewContext(atlas *FontAtlas, clipboard Clipboard) *Context {
	if clipboard == nil {
		clipboard = nopClipboard{}
	}
	return &Context{
		atlas:     atlas,
		clipboard: safeClipboard{c: clipboard},
	}
}

// Atlas returns the context's font atlas.
func (c *Context) Atlas() *FontAtlas { return c.atlas }

// SetFontTexture records the backend texture ID of the uploaded atlas.
// The driver calls this once the render backend exists.
func (c *Context) SetFontTexture(id uint32) { c.fontTexture = id }

// BeginFrame snapshots the input state and opens a new frame. Opening a frame
// while one is already open is a programming error and panics.
//
// The caller resets the input state's per-frame accumulators immediately
// afterwards; the snapshot keeps its own copy of the typed characters.
func (c *Context) BeginFrame(input *InputState, displaySize Vec2, scale, deltaTime float32) *Frame {
	if c.open {
		panic("guibridge: BeginFrame while a frame is already open")
	}

	c.io.MousePos = Vec2{X: input.MouseX, Y: input.MouseY}
	c.io.MouseDown = input.mouseDown
	c.io.MouseClicked = input.mouseClicked
	c.io.MouseReleased = input.mouseReleased
	c.io.Wheel = Vec2{X: input.WheelX, Y: input.WheelY}
	c.io.KeysDown = input.keyDown
	c.io.KeysPressed = input.keyPressed
	c.io.KeysReleased = input.keyReleased
	c.io.Chars = append(c.io.Chars[:0], input.Chars...)
	c.io.Mods = input.Mods
	c.io.DisplaySize = displaySize
	c.io.ScaleFactor = scale
	c.io.DeltaTime = deltaTime

	c.drawList = AcquireDrawList()
	c.drawList.PushClipRect(0, 0, displaySize.X, displaySize.Y)
	c.open = true

	c.frame.ctx = c
	c.frame.clipDepth = 0
	return &c.frame
}

// EndFrame closes the open frame and returns its DrawList, finalized for the
// render backend. The Frame handle issued by BeginFrame is invalidated. The
// caller owns the list for the duration of one render call and returns it to
// the pool afterwards.
func (c *Context) EndFrame() *DrawList {
	if !c.open {
		panic("guibridge: EndFrame without an open frame")
	}

	dl := c.drawList
	c.drawList = nil
	c.open = false
	c.frame.ctx = nil

	dl.Finalize()
	return dl
}
