package glyph

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// TrueTypeSampler rasterizes glyphs with an anti-aliased TrueType face.
//
// It approximates what a terminal emulator draws, so it suits frames written
// as text rather than onto the framebuffer. Select it with -sampler truetype.
type TrueTypeSampler struct {
	ttf  *truetype.Font
	size int
}

// NewTrueTypeSampler parses ttf (Go Mono when nil) for size×size bitmaps.
func NewTrueTypeSampler(ttf []byte, size int) (*TrueTypeSampler, error) {
	if ttf == nil {
		ttf = gomono.TTF
	}
	if size <= 0 {
		size = DefaultSize
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &TrueTypeSampler{ttf: f, size: size}, nil
}

func (s *TrueTypeSampler) Sample(r rune) (Bitmap, error) {
	face := truetype.NewFace(s.ttf, &truetype.Options{
		Size:    float64(s.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, s.size, s.size))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}

	// Index 0 is the font's .notdef box.
	_, advance, ok := face.GlyphBounds(r)
	if !ok || s.ttf.Index(r) == 0 {
		return Bitmap{}, ErrMissingGlyph
	}

	// Center horizontally on the advance and vertically on the line box.
	m := face.Metrics()
	cell := fixed.I(s.size)
	d.Dot = fixed.Point26_6{
		X: (cell - advance) / 2,
		Y: (cell-(m.Ascent+m.Descent))/2 + m.Ascent,
	}
	d.DrawString(string(r))

	return Bitmap{W: s.size, H: s.size, Alpha: img.Pix}, nil
}
