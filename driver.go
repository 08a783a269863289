package guibridge

import (
	"time"
)

// driverState tracks where a Driver is in its lifecycle. Transitions only
// move forward: once closed, a driver is spent.
type driverState int

const (
	stateUninitialized driverState = iota
	stateOpen
	stateClosing
	stateClosed
)

// UpdateFunc is the per-frame user callback. It receives a Frame valid only
// for the duration of the call.
type UpdateFunc func(*Frame)

// Driver sequences the life of one GUI session: it owns the Context, feeds
// host events through the input translator, runs the frame cycle against a
// render backend and tears the backend down exactly once.
//
// A Driver is single-threaded. The window host calls it from the thread that
// owns the GL context.
type Driver struct {
	state    driverState
	settings Settings
	update   UpdateFunc

	ctx      *Context
	renderer Renderer
	input    *InputState
	tr       translator

	clipboard Clipboard
	lastFrame time.Time

	// physical framebuffer size and the scale that maps it to logical pixels
	width, height int
	scale         float32
}

// NewDriver creates a Driver in the uninitialized state. The clipboard may be
// nil. Nothing renders until Open attaches a backend.
func NewDriver(settings Settings, clipboard Clipboard, update UpdateFunc) *Driver {
	input := NewInputState()
	return &Driver{
		state:     stateUninitialized,
		settings:  settings,
		update:    update,
		input:     input,
		tr:        newTranslator(input, 1),
		clipboard: clipboard,
	}
}

// Open attaches a render backend and moves the driver into the open state.
// width and height are the framebuffer size in physical pixels; scale maps
// them to logical pixels. Open panics if the driver has already been opened.
func (d *Driver) Open(renderer Renderer, atlas *FontAtlas, width, height int, scale float32) {
	if d.state != stateUninitialized {
		panic("guibridge: Driver.Open on a driver that is not uninitialized")
	}
	if scale <= 0 {
		scale = 1
	}

	d.renderer = renderer
	d.width, d.height = width, height
	d.scale = scale
	d.tr.setScale(scale)

	d.ctx = NewContext(atlas, d.clipboard)
	d.ctx.SetFontTexture(renderer.FontTexture())

	d.lastFrame = time.Now()
	d.state = stateOpen
}

// HandleEvent folds one host event into the session. Events arriving while
// the driver is not open are dropped. Resize and will-close events are
// handled here; everything else goes through the input translator.
func (d *Driver) HandleEvent(ev Event) {
	if d.state != stateOpen {
		return
	}

	switch e := ev.(type) {
	case ResizedEvent:
		d.width, d.height = e.Width, e.Height
		scale := e.Scale
		if scale <= 0 {
			scale = 1
		}
		d.scale = scale
		d.tr.setScale(scale)
		d.renderer.Resize(e.Width, e.Height, scale)

	case WillCloseEvent:
		d.Close()

	default:
		d.tr.apply(ev)
	}
}

// RenderFrame runs one frame cycle: snapshot input, run the user callback,
// hand the draw data to the backend and present. A non-nil error means the
// backend failed; the driver tears itself down before returning, so the
// session is over and the caller must stop.
//
// RenderFrame is a no-op once the driver is closed.
func (d *Driver) RenderFrame() error {
	if d.state != stateOpen {
		return nil
	}

	now := time.Now()
	dt := float32(now.Sub(d.lastFrame).Seconds())
	d.lastFrame = now

	display := Vec2{
		X: float32(d.width) / d.scale,
		Y: float32(d.height) / d.scale,
	}

	frame := d.ctx.BeginFrame(d.input, display, d.scale, dt)
	d.input.ResetFrame()
	d.update(frame)
	dl := d.ctx.EndFrame()

	err := d.renderer.Render(dl)
	ReleaseDrawList(dl)
	if err != nil {
		bridgeLogger.Error("render failed, closing session", "err", err)
		d.Close()
		return err
	}
	return nil
}

// Close tears the session down. The render backend is destroyed exactly
// once; calling Close again, or closing a driver that was never opened, is
// safe.
func (d *Driver) Close() {
	switch d.state {
	case stateOpen:
		d.state = stateClosing
		d.renderer.Destroy()
		d.state = stateClosed
	case stateUninitialized:
		d.state = stateClosed
	}
}

// Closed reports whether the session has ended.
func (d *Driver) Closed() bool {
	return d.state == stateClosed
}

// Settings returns the settings the driver was created with.
func (d *Driver) Settings() Settings {
	return d.settings
}
