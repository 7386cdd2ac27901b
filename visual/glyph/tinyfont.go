package glyph

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// DefaultSize is the edge length of the calibration bitmap in pixels.
const DefaultSize = 20

// DefaultFont is the bitmap font used by the window surface and its calibration.
var DefaultFont tinyfont.Fonter = &freemono.Regular9pt7b

// TinyfontSampler rasterizes glyphs with a tinyfont bitmap font.
//
// Bitmap fonts are 1-bit, so every sample is either 0 or 255.
type TinyfontSampler struct {
	Font tinyfont.Fonter
	Size int
}

func NewTinyfontSampler(font tinyfont.Fonter) *TinyfontSampler {
	if font == nil {
		font = DefaultFont
	}
	return &TinyfontSampler{Font: font, Size: DefaultSize}
}

func (s *TinyfontSampler) Sample(r rune) (Bitmap, error) {
	size := s.Size
	if size <= 0 {
		size = DefaultSize
	}
	font := s.Font
	if font == nil {
		font = DefaultFont
	}

	info := font.GetGlyph(r).Info()
	if info.Rune != r {
		return Bitmap{}, ErrMissingGlyph
	}

	d := newCoverageDisplayer(size, size)
	x := (size-int(info.Width))/2 - int(info.XOffset)
	y := (size-int(info.Height))/2 - int(info.YOffset)
	tinyfont.DrawChar(d, font, int16(x), int16(y), r, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	return d.bm, nil
}

// coverageDisplayer records the alpha of every pixel a font draws.
type coverageDisplayer struct {
	bm Bitmap
}

var _ drivers.Displayer = (*coverageDisplayer)(nil)

func newCoverageDisplayer(w, h int) *coverageDisplayer {
	return &coverageDisplayer{bm: Bitmap{W: w, H: h, Alpha: make([]uint8, w*h)}}
}

func (d *coverageDisplayer) Size() (x, y int16) {
	return int16(d.bm.W), int16(d.bm.H)
}

func (d *coverageDisplayer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.bm.W || iy < 0 || iy >= d.bm.H {
		return
	}
	d.bm.Alpha[iy*d.bm.W+ix] = c.A
}

func (d *coverageDisplayer) Display() error { return nil }
