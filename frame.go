package guibridge

// Frame is the handle the user callback draws through. It is valid only for
// the duration of one update call; retaining it and calling any method after
// the frame closes panics.
//
// All coordinates are logical pixels with the origin at the top left of the
// window.
type Frame struct {
	ctx *Context

	clipDepth   int
	quadScratch []GlyphQuad
}

func (f *Frame) context() *Context {
	if f.ctx == nil {
		panic("guibridge: Frame used after the frame was closed")
	}
	return f.ctx
}

// IO returns the input and display snapshot for this frame.
func (f *Frame) IO() *IO {
	return &f.context().io
}

// DeltaTime returns the seconds elapsed since the previous frame.
func (f *Frame) DeltaTime() float32 {
	return f.context().io.DeltaTime
}

// DisplaySize returns the window size in logical pixels.
func (f *Frame) DisplaySize() Vec2 {
	return f.context().io.DisplaySize
}

// ClipboardText reads the host clipboard. ok is false when the clipboard is
// empty, holds non-text data, or the host query failed.
func (f *Frame) ClipboardText() (string, bool) {
	return f.context().clipboard.GetText()
}

// SetClipboardText copies text to the host clipboard, best effort.
func (f *Frame) SetClipboardText(text string) {
	f.context().clipboard.SetText(text)
}

// PushClip restricts subsequent drawing to the given rectangle.
func (f *Frame) PushClip(r Rect) {
	f.context().drawList.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	f.clipDepth++
}

// PopClip restores the clip region active before the matching PushClip.
// A pop without a matching push is ignored: the frame's base clip, the full
// display, always stays in place.
func (f *Frame) PopClip() {
	c := f.context()
	if f.clipDepth == 0 {
		return
	}
	f.clipDepth--
	c.drawList.PopClipRect()
}

// Rect fills a rectangle.
func (f *Frame) Rect(x, y, w, h float32, color uint32) {
	f.context().drawList.AddRect(x, y, w, h, color)
}

// RectOutline strokes the border of a rectangle.
func (f *Frame) RectOutline(x, y, w, h float32, color uint32, thickness float32) {
	f.context().drawList.AddRectOutline(x, y, w, h, color, thickness)
}

// Line draws a line segment.
func (f *Frame) Line(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	f.context().drawList.AddLine(x1, y1, x2, y2, color, thickness)
}

// Triangle fills a triangle.
func (f *Frame) Triangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	f.context().drawList.AddTriangle(x1, y1, x2, y2, x3, y3, color)
}

// Text draws a string with its top-left corner at (x, y) using the context's
// font atlas.
func (f *Frame) Text(x, y float32, color uint32, s string) {
	if s == "" {
		return
	}
	c := f.context()
	f.quadScratch = c.atlas.AppendQuads(f.quadScratch[:0], s, x, y)
	if len(f.quadScratch) == 0 {
		return
	}
	dl := c.drawList
	dl.SetTexture(c.fontTexture)
	dl.AddGlyphQuads(f.quadScratch, color)
	dl.SetTexture(0)
}

// MeasureText returns the size the string would occupy when drawn.
func (f *Frame) MeasureText(s string) Vec2 {
	return f.context().atlas.MeasureText(s)
}

// Image draws a backend texture into the given rectangle. The UV range
// (u0,v0)-(u1,v1) selects the sampled region; tint multiplies the texels,
// ColorWhite draws the texture unmodified.
func (f *Frame) Image(texture uint32, x, y, w, h float32, u0, v0, u1, v1 float32, tint uint32) {
	dl := f.context().drawList
	dl.SetTexture(texture)
	dl.AddTexturedRect(x, y, w, h, u0, v0, u1, v1, tint)
	dl.SetTexture(0)
}
