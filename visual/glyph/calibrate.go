package glyph

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyCharset   = errors.New("glyph: empty charset")
	ErrFlatBrightness = errors.New("glyph: all glyphs have the same brightness")
)

// Table maps normalized brightness to glyphs.
//
// Glyphs and Brightness are co-indexed and sorted by ascending brightness.
// Brightness values are in [0,1]; the first entry is 0 and the last is 1.
type Table struct {
	Glyphs     []rune
	Brightness []float64
}

// Calibrate samples every glyph of charset once and builds a brightness table.
//
// Raw brightness is the mean coverage of the glyph bitmap. Values are rescaled
// to [0,1] using the darkest and brightest glyph of the set, so a set whose
// glyphs all have the same coverage cannot be calibrated.
func Calibrate(s Sampler, charset []rune) (*Table, error) {
	if len(charset) == 0 {
		return nil, ErrEmptyCharset
	}

	raw := make([]float64, len(charset))
	lo, hi := 0.0, 0.0
	for i, r := range charset {
		bm, err := s.Sample(r)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", r, err)
		}
		v := bm.Coverage()
		raw[i] = v
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}

	span := hi - lo
	if span <= 0 {
		return nil, ErrFlatBrightness
	}

	order := make([]int, len(charset))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return raw[order[a]] < raw[order[b]] })

	t := &Table{
		Glyphs:     make([]rune, len(charset)),
		Brightness: make([]float64, len(charset)),
	}
	for i, idx := range order {
		t.Glyphs[i] = charset[idx]
		t.Brightness[i] = (raw[idx] - lo) / span
	}
	return t, nil
}

func (t *Table) Len() int { return len(t.Glyphs) }

// Index returns the table index for shading value v.
//
// v <= 0 (no light contribution) maps to the darkest glyph. Otherwise the
// result is the first index whose brightness is >= v, clamped to the last
// entry when v is brighter than every glyph.
func (t *Table) Index(v float64) int {
	n := len(t.Brightness)
	if n == 0 || v <= 0 {
		return 0
	}
	i := sort.SearchFloat64s(t.Brightness, v)
	if i >= n {
		i = n - 1
	}
	return i
}

// Lookup returns the glyph for shading value v.
func (t *Table) Lookup(v float64) rune {
	if len(t.Glyphs) == 0 {
		return ' '
	}
	return t.Glyphs[t.Index(v)]
}

// Darkest returns the glyph used for unlit and shadowed surfaces.
func (t *Table) Darkest() rune { return t.Lookup(0) }

// Ramp returns all glyphs from darkest to brightest as a string.
func (t *Table) Ramp() string { return string(t.Glyphs) }
