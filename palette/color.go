package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for values that are not #RRGGBB or #RGB.
var ErrInvalidColor = errors.New("invalid color")

// ParseHex parses a color in the form #RRGGBB (or the short #RGB form).
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s != "" && s[0] != '#' {
		s = "#" + s
	}
	if !isHexLiteral(s) {
		return color.RGBA{}, fmt.Errorf("palette: parse %q: %w", s, ErrInvalidColor)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("palette: parse %q: %w", s, ErrInvalidColor)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// isHexLiteral guards colorful.Hex, whose Sscanf accepts short digits and
// trailing garbage.
func isHexLiteral(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as upper-case #RRGGBB. Alpha is dropped.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// LabelColor picks black or white, whichever reads better on top of c.
func LabelColor(c color.RGBA) color.Color {
	cf, _ := colorful.MakeColor(c)
	l, _, _ := cf.Lab()
	if l > 0.6 {
		return color.Black
	}
	return color.White
}
