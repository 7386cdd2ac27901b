package glyph

import "errors"

// ErrMissingGlyph is returned by a sampler for a rune its font cannot draw.
var ErrMissingGlyph = errors.New("glyph: rune not in font")

// Bitmap is the coverage channel of one rasterized glyph.
//
// Alpha is row-major, W*H samples, 0 = empty and 255 = fully covered.
type Bitmap struct {
	W, H  int
	Alpha []uint8
}

// Coverage returns the mean alpha over all pixels in [0,1].
func (b Bitmap) Coverage() float64 {
	n := b.W * b.H
	if n <= 0 || len(b.Alpha) < n {
		return 0
	}
	var sum uint64
	for _, a := range b.Alpha[:n] {
		sum += uint64(a)
	}
	return float64(sum) / (255 * float64(n))
}

// Sampler rasterizes a single glyph into a fresh, fixed-size bitmap.
//
// The bitmap belongs to the caller and is not reused by the sampler.
type Sampler interface {
	Sample(r rune) (Bitmap, error)
}

// StaticSampler is a deterministic sampler backed by a coverage table.
//
// Each rune is rendered as a Size×Size bitmap with round(coverage*Size*Size)
// fully covered pixels. Runes missing from the table are blank.
type StaticSampler struct {
	Coverage map[rune]float64
	Size     int
}

func (s StaticSampler) Sample(r rune) (Bitmap, error) {
	size := s.Size
	if size <= 0 {
		size = 16
	}
	b := Bitmap{W: size, H: size, Alpha: make([]uint8, size*size)}

	c := s.Coverage[r]
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	n := int(c*float64(size*size) + 0.5)
	for i := 0; i < n; i++ {
		b.Alpha[i] = 0xFF
	}
	return b, nil
}
