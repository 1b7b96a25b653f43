package render

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph is a glyph's slot in the atlas. X, Y, Width and Height are texture
// coordinates; the pixel size is the cell size.
type Glyph struct {
	X, Y          float32
	Width, Height float32
	PixelWidth    int
	PixelHeight   int
}

// glyphRanges are rasterized in order until the atlas is full
var glyphRanges = []struct{ first, last rune }{
	{0x0020, 0x007E}, // ASCII
	{0x00A0, 0x00FF}, // Latin-1
	{0x0100, 0x017F}, // Latin Extended-A
	{0x0391, 0x03C9}, // Greek
	{0x2010, 0x2027}, // punctuation
	{0x20AC, 0x20AC}, // euro
	{0x2190, 0x2193}, // arrows
	{0x2500, 0x257F}, // box drawing
}

// glyphAtlas is a rasterized font: one alpha byte per texel, row major
type glyphAtlas struct {
	size       int
	alpha      []byte
	glyphs     map[rune]Glyph
	cellWidth  int
	cellHeight int
}

// buildAtlas rasterizes the font at the given point size into a square
// atlas of side size. Every glyph gets a fixed cell so text can be laid out
// on the monospace grid.
func buildAtlas(fontData []byte, points float32, size int) (*glyphAtlas, error) {
	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(points),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	advance, _ := face.GlyphAdvance('M')
	a := &glyphAtlas{
		size:       size,
		glyphs:     make(map[rune]Glyph),
		cellWidth:  advance.Ceil(),
		cellHeight: (metrics.Ascent + metrics.Descent).Ceil(),
	}
	if a.cellWidth <= 0 || a.cellHeight <= 0 {
		return nil, fmt.Errorf("font has no usable metrics at %.0fpt", points)
	}

	img := image.NewAlpha(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	scale := float32(size)

	col, row := 0, 0
	perRow := size / a.cellWidth
	rows := size / a.cellHeight
fill:
	for _, gr := range glyphRanges {
		for c := gr.first; c <= gr.last; c++ {
			if _, ok := face.GlyphAdvance(c); !ok {
				continue
			}
			if col == perRow {
				col, row = 0, row+1
			}
			if row == rows {
				break fill
			}
			x, y := col*a.cellWidth, row*a.cellHeight
			drawer.Dot = fixed.P(x, y+ascent)
			drawer.DrawString(string(c))
			a.glyphs[c] = Glyph{
				X:           float32(x) / scale,
				Y:           float32(y) / scale,
				Width:       float32(a.cellWidth) / scale,
				Height:      float32(a.cellHeight) / scale,
				PixelWidth:  a.cellWidth,
				PixelHeight: a.cellHeight,
			}
			col++
		}
	}
	a.alpha = img.Pix
	return a, nil
}

// glyph returns the slot for c, falling back to '?'
func (a *glyphAtlas) glyph(c rune) (Glyph, bool) {
	if g, ok := a.glyphs[c]; ok {
		return g, true
	}
	g, ok := a.glyphs['?']
	return g, ok
}
