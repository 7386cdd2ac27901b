package app

import (
	"bytes"
	"image/color"
	"testing"

	"visualterm/hal"
	"visualterm/visual/glyph"
)

func litPixels(fb hal.Framebuffer) int {
	buf := fb.Buffer()
	n := 0
	for i := 0; i+1 < len(buf); i += 2 {
		if buf[i] != 0 || buf[i+1] != 0 {
			n++
		}
	}
	return n
}

func TestFontMetrics(t *testing.T) {
	w, h, ascent := fontMetrics(glyph.DefaultFont)
	if w <= 0 || h <= 0 {
		t.Fatalf("expected positive cell size, got %dx%d", w, h)
	}
	if ascent <= 0 || ascent > h {
		t.Fatalf("expected ascent within (0, %d], got %d", h, ascent)
	}
}

func TestFramebufferSurface(t *testing.T) {
	disp := hal.New(120, 60).Display()
	s, err := NewFramebufferSurface(disp, glyph.DefaultFont, 0, 0)
	if err != nil {
		t.Fatalf("NewFramebufferSurface: %v", err)
	}
	if w, h := s.Size(); w != 120 || h != 60 {
		t.Fatalf("expected 120x60, got %dx%d", w, h)
	}

	if err := s.SetText("@@\n@@\n"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if litPixels(disp.Framebuffer()) == 0 {
		t.Fatal("expected glyph pixels")
	}

	if err := s.SetText("  \n  \n"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if n := litPixels(disp.Framebuffer()); n != 0 {
		t.Fatalf("expected a cleared frame, got %d lit pixels", n)
	}
}

func TestFramebufferSurfaceCellOverride(t *testing.T) {
	s, err := NewFramebufferSurface(hal.New(64, 64).Display(), glyph.DefaultFont, 8, 16)
	if err != nil {
		t.Fatalf("NewFramebufferSurface: %v", err)
	}
	if w, h := s.CellSize(); w != 8 || h != 16 {
		t.Fatalf("expected 8x16 cells, got %dx%d", w, h)
	}
}

func TestFbDisplayerClips(t *testing.T) {
	fb := hal.New(4, 4).Display().Framebuffer()
	d := fbDisplayer{fb: fb}
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	d.SetPixel(-1, 0, white)
	d.SetPixel(4, 0, white)
	d.SetPixel(0, 4, white)
	if n := litPixels(fb); n != 0 {
		t.Fatalf("expected clipped writes, got %d lit pixels", n)
	}
	d.SetPixel(3, 3, color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF})
	if n := litPixels(fb); n != 1 {
		t.Fatalf("expected one lit pixel, got %d", n)
	}
	off := 3*fb.StrideBytes() + 3*2
	buf := fb.Buffer()
	if got, want := uint16(buf[off])|uint16(buf[off+1])<<8, hal.RGB565(0xFF, 0, 0xFF); got != want {
		t.Fatalf("expected pixel %#04x, got %#04x", want, got)
	}
}

func TestTextSurface(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewTextSurface(&buf, 800, 480, 10, 20)
	if err != nil {
		t.Fatalf("NewTextSurface: %v", err)
	}
	if err := s.SetText("ab\n"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if got := buf.String(); got != "\x1b[H\x1b[2Jab\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if _, err := NewTextSurface(&buf, 800, 480, 0, 20); err == nil {
		t.Fatal("expected an error for a zero cell width")
	}
}
