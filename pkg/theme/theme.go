// Package theme loads interaction colors from YAML and reloads them
// when the file changes on disk.
package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-helio/helio/pkg/paint"
)

// Theme holds the colors the interactive elements paint with. The
// on-disk YAML shape is fileTheme; a Theme is never unmarshalled
// directly.
type Theme struct {
	Hover paint.Color
	Press paint.Color
	Focus paint.Color

	// DragGhostAlpha is the opacity of the drag preview.
	DragGhostAlpha float32
}

// Default returns the stock theme.
func Default() Theme {
	return Theme{
		Hover:          paint.RGBA(1, 1, 1, 0.08),
		Press:          paint.RGBA(0, 0, 0, 0.15),
		Focus:          paint.RGBA(0.25, 0.55, 1, 0.35),
		DragGhostAlpha: 0.6,
	}
}

// fileTheme is the on-disk shape. Colors are hex strings and every
// field is optional; absent fields keep their defaults.
type fileTheme struct {
	Hover          *string  `yaml:"hover"`
	Press          *string  `yaml:"press"`
	Focus          *string  `yaml:"focus"`
	DragGhostAlpha *float32 `yaml:"drag_ghost_alpha"`
}

// Load parses YAML into a theme. Missing fields fall back to the
// defaults, so a theme file only needs the overrides.
func Load(data []byte) (Theme, error) {
	var file fileTheme
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Default(), fmt.Errorf("theme: parse: %w", err)
	}

	t := Default()
	if err := applyColor(&t.Hover, file.Hover, "hover"); err != nil {
		return Default(), err
	}
	if err := applyColor(&t.Press, file.Press, "press"); err != nil {
		return Default(), err
	}
	if err := applyColor(&t.Focus, file.Focus, "focus"); err != nil {
		return Default(), err
	}
	if file.DragGhostAlpha != nil {
		a := *file.DragGhostAlpha
		if a < 0 || a > 1 {
			return Default(), fmt.Errorf("theme: drag_ghost_alpha %v out of range", a)
		}
		t.DragGhostAlpha = a
	}
	return t, nil
}

// LoadFile reads and parses a theme file.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("theme: read %s: %w", path, err)
	}
	return Load(data)
}

func applyColor(dst *paint.Color, src *string, field string) error {
	if src == nil {
		return nil
	}
	c, err := ParseColor(*src)
	if err != nil {
		return fmt.Errorf("theme: %s: %w", field, err)
	}
	*dst = c
	return nil
}

// ParseColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" hex notation.
func ParseColor(s string) (paint.Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return paint.Color{}, fmt.Errorf("color %q missing # prefix", s)
	}

	var r, g, b uint64
	a := uint64(255)
	var err error
	switch len(hex) {
	case 3:
		r, g, b, err = parseHex3(hex)
	case 6:
		r, g, b, err = parseHex6(hex[:6])
	case 8:
		r, g, b, err = parseHex6(hex[:6])
		if err == nil {
			a, err = strconv.ParseUint(hex[6:8], 16, 8)
		}
	default:
		return paint.Color{}, fmt.Errorf("color %q has unsupported length", s)
	}
	if err != nil {
		return paint.Color{}, fmt.Errorf("color %q: %w", s, err)
	}

	return paint.RGBA(
		float32(r)/255,
		float32(g)/255,
		float32(b)/255,
		float32(a)/255,
	), nil
}

func parseHex3(hex string) (r, g, b uint64, err error) {
	expand := func(c string) (uint64, error) {
		v, err := strconv.ParseUint(c, 16, 8)
		return v*16 + v, err
	}
	if r, err = expand(hex[0:1]); err != nil {
		return
	}
	if g, err = expand(hex[1:2]); err != nil {
		return
	}
	b, err = expand(hex[2:3])
	return
}

func parseHex6(hex string) (r, g, b uint64, err error) {
	if r, err = strconv.ParseUint(hex[0:2], 16, 8); err != nil {
		return
	}
	if g, err = strconv.ParseUint(hex[2:4], 16, 8); err != nil {
		return
	}
	b, err = strconv.ParseUint(hex[4:6], 16, 8)
	return
}
