package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// ParseARGB parses #RRGGBB or #AARRGGBB. The leading # is optional since an
// unquoted # starts a YAML comment.
func ParseARGB(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #RRGGBB or #AARRGGBB", s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(b) == 3 {
		return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xFF}, nil
	}
	return color.NRGBA{A: b[0], R: b[1], G: b[2], B: b[3]}, nil
}

// colorOr returns the parsed color, or nil for an empty string so the widget
// falls back to its default. Values are validated on load.
func colorOr(s string) color.Color {
	if s == "" {
		return nil
	}
	c, err := ParseARGB(s)
	if err != nil {
		return nil
	}
	return c
}
