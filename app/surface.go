package app

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"visualterm/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Surface is where frames end up. Size is in pixels; CellSize is the pixel
// size of one glyph cell.
type Surface interface {
	Size() (w, h int)
	CellSize() (w, h int)
	SetText(text string) error
}

// FramebufferSurface draws frames into a HAL framebuffer with a bitmap font.
type FramebufferSurface struct {
	disp   hal.Display
	font   tinyfont.Fonter
	cellW  int
	cellH  int
	ascent int
	fg     color.RGBA
}

// NewFramebufferSurface returns a surface drawing with font. Zero cell sizes
// are taken from the font metrics.
func NewFramebufferSurface(disp hal.Display, font tinyfont.Fonter, cellW, cellH int) (*FramebufferSurface, error) {
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("framebuffer surface: %w", hal.ErrNotImplemented)
	}
	if fb := disp.Framebuffer(); fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("framebuffer surface: unsupported pixel format %d", fb.Format())
	}

	w, h, ascent := fontMetrics(font)
	if cellW > 0 {
		w = cellW
	}
	if cellH > 0 {
		h = cellH
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("framebuffer surface: invalid cell size %dx%d", w, h)
	}
	return &FramebufferSurface{
		disp:   disp,
		font:   font,
		cellW:  w,
		cellH:  h,
		ascent: min(ascent, h),
		fg:     color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}, nil
}

func (s *FramebufferSurface) Size() (w, h int) {
	fb := s.disp.Framebuffer()
	return fb.Width(), fb.Height()
}

func (s *FramebufferSurface) CellSize() (w, h int) { return s.cellW, s.cellH }

func (s *FramebufferSurface) SetText(text string) error {
	fb := s.disp.Framebuffer()
	fb.ClearRGB(0, 0, 0)

	d := fbDisplayer{fb: fb}
	y := s.ascent
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if y-s.ascent >= fb.Height() {
			break
		}
		x := 0
		for _, r := range line {
			if r != ' ' {
				tinyfont.DrawChar(d, s.font, int16(x), int16(y), r, s.fg)
			}
			x += s.cellW
		}
		y += s.cellH
	}
	return fb.Present()
}

// fontMetrics returns the cell width, line height and baseline offset of a
// bitmap font. The baseline is placed so the tallest and deepest glyphs clip
// evenly within the line height.
func fontMetrics(font tinyfont.Fonter) (cellW, cellH, ascent int) {
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	cellW = int(outboxWidth)
	cellH = int(font.GetYAdvance())

	top, bottom := 0, 0
	for _, r := range "0Mgjy|" {
		info := font.GetGlyph(r).Info()
		top = max(top, -int(info.YOffset))
		bottom = max(bottom, int(info.YOffset)+int(info.Height))
	}
	if cellH <= 0 {
		cellH = top + bottom
	}
	ascent = top + max((cellH-top-bottom)/2, 0)
	return cellW, cellH, ascent
}

// fbDisplayer adapts an RGB565 framebuffer to drivers.Displayer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = fbDisplayer{}

func (d fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d fbDisplayer) Display() error { return nil }

// TextSurface writes each frame to a terminal, homing the cursor and clearing
// the screen first. Its pixel size is fixed.
type TextSurface struct {
	w      io.Writer
	width  int
	height int
	cellW  int
	cellH  int
}

func NewTextSurface(w io.Writer, width, height, cellW, cellH int) (*TextSurface, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("text surface: invalid cell size %dx%d", cellW, cellH)
	}
	return &TextSurface{w: w, width: width, height: height, cellW: cellW, cellH: cellH}, nil
}

func (s *TextSurface) Size() (w, h int)     { return s.width, s.height }
func (s *TextSurface) CellSize() (w, h int) { return s.cellW, s.cellH }

func (s *TextSurface) SetText(text string) error {
	_, err := io.WriteString(s.w, "\x1b[H\x1b[2J"+text)
	return err
}
