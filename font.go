package guibridge

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the glyph size the atlas is rasterized at when the
// builder does not override it.
const DefaultFontSize = 13

// atlas covers printable ASCII; everything else falls back to '?'.
const (
	atlasFirstRune = 32
	atlasLastRune  = 126
)

// Glyph holds one rasterized character's metrics and atlas location.
type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // baseline-to-top distance in pixels
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// FontAtlas is the GUI's font texture source: an alpha-coverage bitmap of
// printable ASCII plus per-glyph metrics. It is built on the CPU when the
// Context is created; the render backend uploads Pixels as a single-channel
// texture at init and reports its ID back through FontTexture.
type FontAtlas struct {
	SizePx  float32
	Ascent  float32
	Descent float32
	LineGap float32
	Glyphs  map[rune]Glyph

	// Alpha coverage, one byte per pixel, row-major, AtlasW*AtlasH long.
	Pixels         []byte
	AtlasW, AtlasH int
}

// NewFontAtlas rasterizes the bundled Go Regular face at the given pixel size
// into a shelf-packed alpha atlas.
func NewFontAtlas(sizePx float32) (*FontAtlas, error) {
	if sizePx <= 0 {
		sizePx = DefaultFontSize
	}

	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	// Measure all glyphs first so the shelf packer can lay out rows.
	type measured struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]measured, 0, atlasLastRune-atlasFirstRune+1)
	for r := rune(atlasFirstRune); r <= atlasLastRune; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measure = append(measure, measured{
			r:   r,
			w:   (br.Max.X - br.Min.X).Round(),
			h:   (br.Max.Y - br.Min.Y).Round(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Round()),
			by:  float32(-br.Min.Y.Round()),
		})
	}

	// Shelf packer (rows). Start at 128 square and grow until everything fits.
	const padding = 1
	atlasSize := 128
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+padding*2 > atlasSize || g.h+padding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			if g.h > rowH {
				rowH = g.h
			}
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > 4096 {
			return nil, fmt.Errorf("font atlas too large (>%d)", 4096)
		}
	}

	// Rasterize into an alpha image; white through the glyph mask leaves pure
	// coverage in the alpha channel.
	dst := image.NewAlpha(image.Rect(0, 0, atlasSize, atlasSize))
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
	}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		if g.w == 0 || g.h == 0 {
			glyphs[g.r] = Glyph{
				Rune: g.r, Advance: g.adv,
				BearingX: g.bx, BearingY: g.by,
			}
			continue
		}

		p := pos[g.r]

		// The drawer's dot sits on the baseline; offset it so the glyph's ink
		// lands exactly inside its packed rectangle.
		drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
		drawer.DrawString(string(g.r))

		glyphs[g.r] = Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
			U0: float32(p.X) / float32(atlasSize),
			V0: float32(p.Y) / float32(atlasSize),
			U1: float32(p.X+g.w) / float32(atlasSize),
			V1: float32(p.Y+g.h) / float32(atlasSize),
		}
	}

	return &FontAtlas{
		SizePx:  sizePx,
		Ascent:  ascent,
		Descent: descent,
		LineGap: lineGap,
		Glyphs:  glyphs,
		Pixels:  dst.Pix,
		AtlasW:  atlasSize,
		AtlasH:  atlasSize,
	}, nil
}

// Glyph returns the glyph for r, falling back to '?' for anything the atlas
// does not cover.
func (a *FontAtlas) Glyph(r rune) (Glyph, bool) {
	if g, ok := a.Glyphs[r]; ok {
		return g, true
	}
	g, ok := a.Glyphs['?']
	return g, ok
}

// LineHeight returns the vertical advance between two text baselines.
func (a *FontAtlas) LineHeight() float32 {
	return a.Ascent - a.Descent + a.LineGap
}

// MeasureText returns the pixel dimensions of a single-line string.
func (a *FontAtlas) MeasureText(s string) Vec2 {
	var w float32
	for _, r := range s {
		g, ok := a.Glyph(r)
		if !ok {
			continue
		}
		w += g.Advance
	}
	return Vec2{X: w, Y: a.LineHeight()}
}

// AppendQuads appends one GlyphQuad per visible character of s, positioned
// with the text's top-left corner at (x, y), and returns the extended slice.
// The returned quads reference the atlas texture's UV space.
func (a *FontAtlas) AppendQuads(quads []GlyphQuad, s string, x, y float32) []GlyphQuad {
	pen := x
	baseline := y + a.Ascent
	for _, r := range s {
		g, ok := a.Glyph(r)
		if !ok {
			continue
		}
		if g.W > 0 && g.H > 0 {
			x0 := pen + g.BearingX
			y0 := baseline - g.BearingY
			quads = append(quads, GlyphQuad{
				X0: x0, Y0: y0,
				X1: x0 + float32(g.W), Y1: y0 + float32(g.H),
				U0: g.U0, V0: g.V0,
				U1: g.U1, V1: g.V1,
			})
		}
		pen += g.Advance
	}
	return quads
}
