package glyph

import (
	"errors"
	"testing"
)

func staticTable(t *testing.T, cov map[rune]float64, charset string) *Table {
	t.Helper()
	tbl, err := Calibrate(StaticSampler{Coverage: cov, Size: 20}, []rune(charset))
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	return tbl
}

func TestCalibrateSortsAndNormalizes(t *testing.T) {
	cov := map[rune]float64{'@': 0.6, '.': 0.1, '+': 0.35, ':': 0.2}
	tbl := staticTable(t, cov, "@.+:")

	if got := tbl.Ramp(); got != ".:+@" {
		t.Fatalf("expected ramp %q, got %q", ".:+@", got)
	}
	if len(tbl.Glyphs) != len(tbl.Brightness) {
		t.Fatalf("table not co-indexed: %d glyphs, %d values", len(tbl.Glyphs), len(tbl.Brightness))
	}
	if tbl.Brightness[0] != 0 {
		t.Fatalf("expected darkest brightness 0, got %v", tbl.Brightness[0])
	}
	if last := tbl.Brightness[tbl.Len()-1]; last != 1 {
		t.Fatalf("expected brightest brightness 1, got %v", last)
	}
	for i := 0; i+1 < tbl.Len(); i++ {
		if tbl.Brightness[i] > tbl.Brightness[i+1] {
			t.Fatalf("brightness not sorted at %d: %v > %v", i, tbl.Brightness[i], tbl.Brightness[i+1])
		}
	}
}

func TestCalibrateStableForTies(t *testing.T) {
	cov := map[rune]float64{'a': 0.5, 'b': 0.5, 'c': 0.1, 'd': 0.9}
	tbl := staticTable(t, cov, "abcd")
	if got := tbl.Ramp(); got != "cabd" {
		t.Fatalf("expected ties in candidate order %q, got %q", "cabd", got)
	}
}

func TestCalibrateErrors(t *testing.T) {
	tests := []struct {
		name    string
		charset string
		cov     map[rune]float64
		want    error
	}{
		{name: "empty", charset: "", want: ErrEmptyCharset},
		{name: "single glyph", charset: "#", cov: map[rune]float64{'#': 0.4}, want: ErrFlatBrightness},
		{name: "uniform", charset: "abc", cov: map[rune]float64{'a': 0.3, 'b': 0.3, 'c': 0.3}, want: ErrFlatBrightness},
		{name: "all blank", charset: "xyz", want: ErrFlatBrightness},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calibrate(StaticSampler{Coverage: tt.cov}, []rune(tt.charset))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

type failingSampler struct{}

var errSample = errors.New("no raster")

func (failingSampler) Sample(rune) (Bitmap, error) { return Bitmap{}, errSample }

func TestCalibratePropagatesSamplerError(t *testing.T) {
	_, err := Calibrate(failingSampler{}, []rune("ab"))
	if !errors.Is(err, errSample) {
		t.Fatalf("expected wrapped sampler error, got %v", err)
	}
}

func TestIndex(t *testing.T) {
	tbl := &Table{
		Glyphs:     []rune(".:-=#@"),
		Brightness: []float64{0, 0.2, 0.2, 0.5, 0.8, 1},
	}
	tests := []struct {
		v    float64
		want int
	}{
		{v: -3, want: 0},
		{v: 0, want: 0},
		{v: 0.1, want: 1},
		{v: 0.2, want: 1},
		{v: 0.3, want: 3},
		{v: 0.5, want: 3},
		{v: 0.79, want: 4},
		{v: 1, want: 5},
		{v: 1.5, want: 5},
	}
	for _, tt := range tests {
		if got := tbl.Index(tt.v); got != tt.want {
			t.Fatalf("Index(%v): expected %d, got %d", tt.v, tt.want, got)
		}
	}
	if got := tbl.Lookup(0.5); got != '=' {
		t.Fatalf("Lookup(0.5): expected '=', got %q", got)
	}
	if got := tbl.Darkest(); got != '.' {
		t.Fatalf("Darkest: expected '.', got %q", got)
	}
}

func TestIndexExactEntries(t *testing.T) {
	cov := map[rune]float64{'a': 0.05, 'b': 0.15, 'c': 0.4, 'd': 0.55, 'e': 0.95}
	tbl := staticTable(t, cov, "abcde")
	for i, b := range tbl.Brightness {
		if i == 0 {
			continue
		}
		if got := tbl.Index(b); got != i {
			t.Fatalf("Index(%v): expected %d, got %d", b, i, got)
		}
	}
}

func TestStaticSamplerCoverage(t *testing.T) {
	s := StaticSampler{Coverage: map[rune]float64{'x': 0.25}, Size: 8}
	bm, err := s.Sample('x')
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if bm.W != 8 || bm.H != 8 || len(bm.Alpha) != 64 {
		t.Fatalf("unexpected bitmap shape %dx%d (%d samples)", bm.W, bm.H, len(bm.Alpha))
	}
	if got := bm.Coverage(); got != 0.25 {
		t.Fatalf("expected coverage 0.25, got %v", got)
	}
}
