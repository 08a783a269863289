package guibridge_test

import (
	"errors"
	"testing"

	"github.com/sagacity/guibridge"
)

// fakeClipboard is an in-memory clipboard for tests.
type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) GetText() (string, bool) { return c.text, c.text != "" }
func (c *fakeClipboard) SetText(text string)     { c.text = text }

// panicClipboard simulates a broken platform clipboard.
type panicClipboard struct{}

func (panicClipboard) GetText() (string, bool) { panic("clipboard backend gone") }
func (panicClipboard) SetText(string)          { panic("clipboard backend gone") }

func beginTestFrame(t *testing.T, clipboard guibridge.Clipboard) (*guibridge.Context, *guibridge.Frame) {
	t.Helper()
	ctx := guibridge.NewContext(testAtlas(t), clipboard)
	frame := ctx.BeginFrame(guibridge.NewInputState(), guibridge.Vec2{X: 800, Y: 600}, 1, 0.016)
	return ctx, frame
}

func TestFrameProtocol(t *testing.T) {
	ctx, frame := beginTestFrame(t, nil)

	frame.Rect(10, 10, 100, 50, guibridge.ColorWhite)
	frame.Text(10, 70, guibridge.ColorWhite, "hello")

	dl := ctx.EndFrame()
	if dl == nil {
		t.Fatal("expected a draw list")
	}
	if len(dl.VtxBuffer) == 0 || len(dl.IdxBuffer) == 0 {
		t.Error("draw list should contain geometry")
	}
	guibridge.ReleaseDrawList(dl)

	// A new frame can open after the previous one closed
	frame = ctx.BeginFrame(guibridge.NewInputState(), guibridge.Vec2{X: 800, Y: 600}, 1, 0.016)
	guibridge.ReleaseDrawList(ctx.EndFrame())
	_ = frame
}

func TestBeginFrameWhileOpenPanics(t *testing.T) {
	ctx, _ := beginTestFrame(t, nil)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on nested BeginFrame")
		}
	}()
	ctx.BeginFrame(guibridge.NewInputState(), guibridge.Vec2{X: 800, Y: 600}, 1, 0.016)
}

func TestEndFrameWithoutOpenPanics(t *testing.T) {
	ctx := guibridge.NewContext(testAtlas(t), nil)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on EndFrame without an open frame")
		}
	}()
	ctx.EndFrame()
}

func TestFrameUseAfterClosePanics(t *testing.T) {
	ctx, frame := beginTestFrame(t, nil)
	guibridge.ReleaseDrawList(ctx.EndFrame())

	defer func() {
		if recover() == nil {
			t.Error("expected panic on a retained frame handle")
		}
	}()
	frame.Rect(0, 0, 10, 10, guibridge.ColorWhite)
}

func TestFrameClipboardRoundTrip(t *testing.T) {
	clip := &fakeClipboard{}
	ctx, frame := beginTestFrame(t, clip)
	defer func() { guibridge.ReleaseDrawList(ctx.EndFrame()) }()

	frame.SetClipboardText("copied")
	if got, ok := frame.ClipboardText(); !ok || got != "copied" {
		t.Errorf("clipboard = %q, %v", got, ok)
	}
}

func TestNilClipboardReadsEmpty(t *testing.T) {
	ctx, frame := beginTestFrame(t, nil)
	defer func() { guibridge.ReleaseDrawList(ctx.EndFrame()) }()

	frame.SetClipboardText("dropped")
	if got, ok := frame.ClipboardText(); ok || got != "" {
		t.Errorf("nil clipboard should read empty, got %q, %v", got, ok)
	}
}

func TestBrokenClipboardDoesNotAbortFrame(t *testing.T) {
	ctx, frame := beginTestFrame(t, panicClipboard{})

	frame.SetClipboardText("x")
	if got, ok := frame.ClipboardText(); ok || got != "" {
		t.Errorf("broken clipboard should read empty, got %q, %v", got, ok)
	}

	// The frame is still usable
	frame.Rect(0, 0, 10, 10, guibridge.ColorWhite)
	guibridge.ReleaseDrawList(ctx.EndFrame())
}

func TestUnbalancedPopClipKeepsBaseClip(t *testing.T) {
	ctx, frame := beginTestFrame(t, nil)

	frame.PopClip() // no matching push
	frame.Rect(10, 10, 20, 20, guibridge.ColorWhite)

	dl := ctx.EndFrame()
	defer guibridge.ReleaseDrawList(dl)

	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("command count = %d, want 1", len(dl.CmdBuffer))
	}
	if clip := dl.CmdBuffer[0].ClipRect; clip != [4]float32{0, 0, 800, 600} {
		t.Errorf("clip rect = %v, want the display bounds", clip)
	}
}

func TestBalancedClipRestoresBase(t *testing.T) {
	ctx, frame := beginTestFrame(t, nil)

	frame.PushClip(guibridge.Rect{X: 10, Y: 10, W: 50, H: 50})
	frame.Rect(10, 10, 20, 20, guibridge.ColorWhite)
	frame.PopClip()
	frame.Rect(100, 100, 20, 20, guibridge.ColorWhite)

	dl := ctx.EndFrame()
	defer guibridge.ReleaseDrawList(dl)

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("command count = %d, want 2", len(dl.CmdBuffer))
	}
	if clip := dl.CmdBuffer[0].ClipRect; clip != [4]float32{10, 10, 60, 60} {
		t.Errorf("pushed clip = %v", clip)
	}
	if clip := dl.CmdBuffer[1].ClipRect; clip != [4]float32{0, 0, 800, 600} {
		t.Errorf("clip after pop = %v, want the display bounds", clip)
	}
}

func TestFrameMeasureText(t *testing.T) {
	ctx, frame := beginTestFrame(t, nil)
	defer func() { guibridge.ReleaseDrawList(ctx.EndFrame()) }()

	short := frame.MeasureText("hi")
	long := frame.MeasureText("hello world")
	if short.X <= 0 || long.X <= short.X {
		t.Errorf("measure: short=%v long=%v", short, long)
	}
}

func TestErrorUnwrapping(t *testing.T) {
	cause := errors.New("gl context lost")
	var err error = &guibridge.RenderError{Stage: "present", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("RenderError should unwrap to its cause")
	}

	err = &guibridge.ContextCreationError{Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("ContextCreationError should unwrap to its cause")
	}
}
