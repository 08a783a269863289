package guibridge

// Renderer is the rendering-backend lifecycle contract. The backend owns the
// graphics context bound to the window's native surface; the driver owns the
// calls: Resize is always applied before the render that follows a
// size-changing event, Render is never called again after it fails, and
// Destroy runs exactly once, on the closing transition.
//
// Additional graphics APIs are new implementations of this interface, not
// changes to the driver.
type Renderer interface {
	// Resize updates the surface to a new physical size and scale factor.
	// Must be a no-op for repeated identical values.
	Resize(width, height int, scale float32)

	// Render draws one frame's DrawList and presents it (buffer swap).
	// The DrawList is only valid for the duration of the call.
	// A non-nil error is a *RenderError and ends the window session.
	Render(dl *DrawList) error

	// FontTexture returns the texture ID the backend assigned to the font
	// atlas it uploaded at init.
	FontTexture() uint32

	// Destroy releases the graphics context. Called exactly once.
	Destroy()
}
