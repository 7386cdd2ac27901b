package glyph

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPreset = errors.New("glyph: unknown charset preset")

// DefaultCharset is the preset used when nothing else is configured.
const DefaultCharset = "ascii"

var presets = map[string]string{
	"ramp":  ".,:;-=+*#%@",
	"shade": ".,:ilwW",
}

// ASCII returns the printable ASCII glyphs '!'..'~' (space excluded).
func ASCII() []rune {
	out := make([]rune, 0, '~'-'!'+1)
	for r := '!'; r <= '~'; r++ {
		out = append(out, r)
	}
	return out
}

// Preset returns the named candidate set.
func Preset(name string) ([]rune, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "ascii" {
		return ASCII(), nil
	}
	s, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return []rune(s), nil
}

// PresetNames lists the accepted preset names.
func PresetNames() []string {
	return []string{"ascii", "ramp", "shade"}
}

// Parse resolves a charset argument: a preset name, or else the literal glyphs
// to calibrate. Duplicates and whitespace are dropped from literal sets.
func Parse(spec string) ([]rune, error) {
	if spec == "" {
		spec = DefaultCharset
	}
	if rs, err := Preset(spec); err == nil {
		return rs, nil
	}

	seen := make(map[rune]bool)
	var out []rune
	for _, r := range spec {
		if r == ' ' || r == '\t' || r == '\n' || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, ErrEmptyCharset
	}
	return out, nil
}
