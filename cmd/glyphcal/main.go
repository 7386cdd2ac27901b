// Command glyphcal prints the brightness table a font calibration yields.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"visualterm/visual/glyph"
)

func main() {
	var (
		sampler = flag.String("sampler", "tinyfont", "tinyfont|truetype.")
		charset = flag.String("charset", glyph.DefaultCharset, "Preset ("+strings.Join(glyph.PresetNames(), "|")+") or literal glyphs.")
		size    = flag.Int("size", glyph.DefaultSize, "Calibration bitmap size in pixels.")
		ttfPath = flag.String("ttf", "", "TrueType font file (truetype sampler only; default Go Mono).")
	)
	flag.Parse()

	if *size <= 0 {
		fatalf("usage: glyphcal [-sampler tinyfont|truetype] [-charset ascii|<glyphs>] [-size 20] [-ttf font.ttf]")
	}

	s, err := newSampler(*sampler, *size, *ttfPath)
	if err != nil {
		fatalf("sampler: %v", err)
	}
	runes, err := glyph.Parse(*charset)
	if err != nil {
		fatalf("charset: %v", err)
	}
	t, err := glyph.Calibrate(s, runes)
	if err != nil {
		fatalf("calibrate: %v", err)
	}

	w := bufio.NewWriter(os.Stdout)
	if err := writeTable(w, t); err != nil {
		fatalf("write: %v", err)
	}
	if err := w.Flush(); err != nil {
		fatalf("write: %v", err)
	}
}

func newSampler(name string, size int, ttfPath string) (glyph.Sampler, error) {
	switch strings.ToLower(name) {
	case "tinyfont":
		s := glyph.NewTinyfontSampler(glyph.DefaultFont)
		s.Size = size
		return s, nil
	case "truetype":
		var ttf []byte
		if ttfPath != "" {
			b, err := os.ReadFile(ttfPath)
			if err != nil {
				return nil, err
			}
			ttf = b
		}
		return glyph.NewTrueTypeSampler(ttf, size)
	default:
		return nil, fmt.Errorf("unknown sampler: %s", name)
	}
}

// writeTable prints one "index rune brightness" line per glyph, then the ramp.
func writeTable(w io.Writer, t *glyph.Table) error {
	for i, r := range t.Glyphs {
		if _, err := fmt.Fprintf(w, "%3d %q %.4f\n", i, r, t.Brightness[i]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "ramp: %s\n", t.Ramp())
	return err
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
