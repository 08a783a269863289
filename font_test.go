package guibridge_test

import (
	"testing"
)

func TestFontAtlasCoversPrintableASCII(t *testing.T) {
	atlas := testAtlas(t)

	for r := rune(32); r <= 126; r++ {
		g, ok := atlas.Glyph(r)
		if !ok {
			t.Fatalf("glyph %q missing from atlas", r)
		}
		if r != ' ' && g.Advance <= 0 {
			t.Errorf("glyph %q has advance %v", r, g.Advance)
		}
	}

	if atlas.AtlasW <= 0 || atlas.AtlasH <= 0 || len(atlas.Pixels) != atlas.AtlasW*atlas.AtlasH {
		t.Errorf("atlas bitmap %dx%d with %d pixel bytes", atlas.AtlasW, atlas.AtlasH, len(atlas.Pixels))
	}
}

func TestFontAtlasFallbackGlyph(t *testing.T) {
	atlas := testAtlas(t)

	g, ok := atlas.Glyph('世') // outside the ASCII atlas
	if !ok {
		t.Fatal("expected the fallback glyph")
	}
	q, _ := atlas.Glyph('?')
	if g != q {
		t.Error("uncovered runes should fall back to '?'")
	}
}

func TestFontAtlasMetrics(t *testing.T) {
	atlas := testAtlas(t)

	if atlas.Ascent <= 0 {
		t.Errorf("ascent = %v", atlas.Ascent)
	}
	if atlas.Descent >= 0 {
		t.Errorf("descent = %v, want negative", atlas.Descent)
	}
	if lh := atlas.LineHeight(); lh < atlas.Ascent {
		t.Errorf("line height %v below ascent %v", lh, atlas.Ascent)
	}
}

func TestFontAtlasMeasureText(t *testing.T) {
	atlas := testAtlas(t)

	empty := atlas.MeasureText("")
	if empty.X != 0 {
		t.Errorf("empty string width = %v", empty.X)
	}

	a := atlas.MeasureText("a")
	aa := atlas.MeasureText("aa")
	if a.X <= 0 {
		t.Fatalf("width of %q = %v", "a", a.X)
	}
	if aa.X != 2*a.X {
		t.Errorf("widths should add: %v vs 2*%v", aa.X, a.X)
	}
	if a.Y != atlas.LineHeight() {
		t.Errorf("height = %v, want line height %v", a.Y, atlas.LineHeight())
	}
}

func TestFontAtlasAppendQuads(t *testing.T) {
	atlas := testAtlas(t)

	quads := atlas.AppendQuads(nil, "abc", 10, 20)
	if len(quads) != 3 {
		t.Fatalf("quad count = %d, want 3", len(quads))
	}
	for i, q := range quads {
		if q.X1 <= q.X0 || q.Y1 <= q.Y0 {
			t.Errorf("quad %d degenerate: %+v", i, q)
		}
		if q.U0 < 0 || q.U1 > 1 || q.V0 < 0 || q.V1 > 1 {
			t.Errorf("quad %d UVs out of range: %+v", i, q)
		}
		if i > 0 && q.X0 <= quads[i-1].X0 {
			t.Errorf("quad %d does not advance: %+v", i, q)
		}
	}

	// Spaces advance the pen without emitting quads
	spaced := atlas.AppendQuads(nil, "a c", 0, 0)
	if len(spaced) != 2 {
		t.Errorf("quad count with space = %d, want 2", len(spaced))
	}
	if spaced[1].X0 <= spaced[0].X1 {
		t.Error("space should leave a gap between quads")
	}
}
