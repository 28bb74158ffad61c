package pixel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownColor is returned by ParseColor for input it cannot interpret
var ErrUnknownColor = errors.New("unknown color")

// ParseColor accepts "r,g,b" triples, "#rrggbb" hex, and X11/W3C color names
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("%w: empty", ErrUnknownColor)
	}

	if strings.Contains(s, ",") {
		return parseTriple(s)
	}

	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault || !c.Valid() {
		return RGB{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return RGB{}, fmt.Errorf("%w: %q has no RGB value", ErrUnknownColor, s)
	}
	return RGB{uint8(r), uint8(g), uint8(b)}, nil
}

func parseTriple(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: %q needs 3 components", ErrInvalidColorComponents, s)
	}

	var v [3]float64
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorComponents, s, err)
		}
		v[i] = float64(n)
	}

	c, err := New(ModeRGB, v[:]...)
	if err != nil {
		return RGB{}, err
	}
	return c.(RGB), nil
}
