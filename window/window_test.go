package window

import "testing"

func TestFramebufferScaleForcedStaysFixed(t *testing.T) {
	// A forced scale survives resizes even when the system ratio disagrees
	if got := framebufferScale(true, 2, 800, 800); got != 2 {
		t.Errorf("forced scale = %v, want 2", got)
	}
	if got := framebufferScale(true, 2, 1600, 800); got != 2 {
		t.Errorf("forced scale = %v, want 2", got)
	}
}

func TestFramebufferScaleSystemRatio(t *testing.T) {
	if got := framebufferScale(false, 1, 1600, 800); got != 2 {
		t.Errorf("scale = %v, want 2", got)
	}
	if got := framebufferScale(false, 2, 800, 800); got != 1 {
		t.Errorf("scale = %v, want 1", got)
	}
}

func TestFramebufferScaleUnusableSizesKeepCurrent(t *testing.T) {
	if got := framebufferScale(false, 1.5, 0, 800); got != 1.5 {
		t.Errorf("scale = %v, want 1.5", got)
	}
	if got := framebufferScale(false, 1.5, 800, 0); got != 1.5 {
		t.Errorf("scale = %v, want 1.5", got)
	}
}

func TestParentHandleRetained(t *testing.T) {
	w := &Window{parent: 0xdead}
	if got := w.ParentHandle(); got != 0xdead {
		t.Errorf("parent handle = %#x, want 0xdead", got)
	}

	top := &Window{}
	if top.ParentHandle() != 0 {
		t.Error("top-level window should report a zero parent handle")
	}
}
