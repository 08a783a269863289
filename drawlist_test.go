package guibridge_test

import (
	"testing"

	"github.com/sagacity/guibridge"
)

func TestDrawListRectGeometry(t *testing.T) {
	dl := guibridge.AcquireDrawList()
	defer guibridge.ReleaseDrawList(dl)

	dl.AddRect(10, 20, 100, 50, guibridge.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Errorf("vertex count = %d, want 4", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 6 {
		t.Errorf("index count = %d, want 6", len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("command count = %d, want 1", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("elem count = %d, want 6", dl.CmdBuffer[0].ElemCount)
	}
}

func TestDrawListTransparentPrimitivesSkipped(t *testing.T) {
	dl := guibridge.AcquireDrawList()
	defer guibridge.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, guibridge.ColorTransparent)
	dl.AddLine(0, 0, 10, 10, guibridge.ColorTransparent, 1)
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("transparent primitives should emit no geometry, got %d vertices", len(dl.VtxBuffer))
	}
	if len(dl.CmdBuffer) != 0 {
		t.Errorf("expected no commands, got %d", len(dl.CmdBuffer))
	}
}

func TestDrawListClipRectSplitsCommands(t *testing.T) {
	dl := guibridge.AcquireDrawList()
	defer guibridge.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, guibridge.ColorWhite)
	dl.PushClipRect(0, 0, 5, 5)
	dl.AddRect(1, 1, 2, 2, guibridge.ColorWhite)
	dl.PopClipRect()
	dl.AddRect(20, 20, 10, 10, guibridge.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("command count = %d, want 3", len(dl.CmdBuffer))
	}
	clip := dl.CmdBuffer[1].ClipRect
	if clip != [4]float32{0, 0, 5, 5} {
		t.Errorf("clipped command rect = %v", clip)
	}
	for i, cmd := range dl.CmdBuffer {
		if cmd.ElemCount != 6 {
			t.Errorf("command %d elem count = %d, want 6", i, cmd.ElemCount)
		}
	}
}

func TestDrawListTextureChangeSplitsCommands(t *testing.T) {
	dl := guibridge.AcquireDrawList()
	defer guibridge.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, guibridge.ColorWhite)
	dl.SetTexture(7)
	dl.AddTexturedRect(0, 0, 10, 10, 0, 0, 1, 1, guibridge.ColorWhite)
	dl.SetTexture(0)
	dl.AddRect(20, 0, 10, 10, guibridge.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("command count = %d, want 3", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 0 || dl.CmdBuffer[1].TextureID != 7 || dl.CmdBuffer[2].TextureID != 0 {
		t.Errorf("texture ids = %d, %d, %d",
			dl.CmdBuffer[0].TextureID, dl.CmdBuffer[1].TextureID, dl.CmdBuffer[2].TextureID)
	}
}

func TestDrawListFinalizeDropsEmptyCommands(t *testing.T) {
	dl := guibridge.AcquireDrawList()
	defer guibridge.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, guibridge.ColorWhite)
	dl.PushClipRect(0, 0, 5, 5)
	dl.PopClipRect() // nothing drawn inside the clip
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 {
		t.Errorf("command count = %d, want 1 after dropping empty splits", len(dl.CmdBuffer))
	}
}

func TestDrawListVertexOffsetsPerCommand(t *testing.T) {
	dl := guibridge.AcquireDrawList()
	defer guibridge.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, guibridge.ColorWhite)
	dl.PushClipRect(0, 0, 100, 100)
	dl.AddRect(1, 1, 2, 2, guibridge.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("command count = %d, want 2", len(dl.CmdBuffer))
	}
	second := dl.CmdBuffer[1]
	if second.VertexOffset != 4 || second.IndexOffset != 6 {
		t.Errorf("second command offsets = (%d, %d), want (4, 6)", second.VertexOffset, second.IndexOffset)
	}
	// Indices are relative to the command's vertex offset
	if dl.IdxBuffer[second.IndexOffset] != 0 {
		t.Errorf("first index of second command = %d, want 0", dl.IdxBuffer[second.IndexOffset])
	}
}

func TestDrawListReuseAfterRelease(t *testing.T) {
	dl := guibridge.AcquireDrawList()
	dl.AddRect(0, 0, 10, 10, guibridge.ColorWhite)
	dl.Finalize()
	guibridge.ReleaseDrawList(dl)

	dl = guibridge.AcquireDrawList()
	defer guibridge.ReleaseDrawList(dl)
	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Error("acquired draw list should be clear")
	}
}
