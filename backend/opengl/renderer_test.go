package opengl

import "testing"

func TestScissorBoxBasic(t *testing.T) {
	x, y, w, h, ok := scissorBox([4]float32{10, 20, 110, 70}, 1, 800, 600)
	if !ok {
		t.Fatal("expected a visible box")
	}
	// Y flips: box top at clip bottom edge
	if x != 10 || y != 530 || w != 100 || h != 50 {
		t.Errorf("box = (%d, %d, %d, %d)", x, y, w, h)
	}
}

func TestScissorBoxScales(t *testing.T) {
	x, y, w, h, ok := scissorBox([4]float32{10, 20, 110, 70}, 2, 1600, 1200)
	if !ok {
		t.Fatal("expected a visible box")
	}
	if x != 20 || y != 1060 || w != 200 || h != 100 {
		t.Errorf("box = (%d, %d, %d, %d)", x, y, w, h)
	}
}

func TestScissorBoxClampsOversizedClip(t *testing.T) {
	// The draw list's open clip spans ±1e9; scaled up it would overflow an
	// int32 without the clamp
	x, y, w, h, ok := scissorBox([4]float32{-1e9, -1e9, 1e9, 1e9}, 2, 800, 600)
	if !ok {
		t.Fatal("expected a visible box")
	}
	if x != 0 || y != 0 || w != 800 || h != 600 {
		t.Errorf("box = (%d, %d, %d, %d), want the full framebuffer", x, y, w, h)
	}
}

func TestScissorBoxPartialOverlap(t *testing.T) {
	x, y, w, h, ok := scissorBox([4]float32{-50, -50, 50, 50}, 1, 800, 600)
	if !ok {
		t.Fatal("expected a visible box")
	}
	if x != 0 || y != 550 || w != 50 || h != 50 {
		t.Errorf("box = (%d, %d, %d, %d)", x, y, w, h)
	}
}

func TestScissorBoxFullyClipped(t *testing.T) {
	if _, _, _, _, ok := scissorBox([4]float32{900, 0, 1000, 100}, 1, 800, 600); ok {
		t.Error("box outside the framebuffer should be dropped")
	}
	if _, _, _, _, ok := scissorBox([4]float32{10, 10, 10, 50}, 1, 800, 600); ok {
		t.Error("zero-width box should be dropped")
	}
}
