package terminal

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/halfblock/parameter"
	"github.com/lixenwraith/halfblock/pixel"
)

// ErrWideGlyph is returned when the half-block glyph does not occupy exactly one column
var ErrWideGlyph = errors.New("half-block glyph is not single-width")

// Encoder turns pairs of pixel rows into one console line of half-block glyphs.
// The top pixel of a cell is the glyph foreground, the bottom pixel its background.
// Encoder is stateless between calls and safe for concurrent use.
type Encoder struct {
	mode  ColorMode
	glyph []byte
}

// glyphWidth measures with narrow ambiguous width; U+2580 is East Asian Ambiguous and
// a CJK locale would otherwise report 2
var glyphWidth = &runewidth.Condition{EastAsianWidth: false}

// NewEncoder validates the glyph width and prepares the glyph bytes
func NewEncoder(mode ColorMode) (*Encoder, error) {
	if w := glyphWidth.RuneWidth(parameter.HalfBlockGlyph); w != 1 {
		return nil, fmt.Errorf("%w: %q has width %d", ErrWideGlyph, parameter.HalfBlockGlyph, w)
	}
	glyph := utf8.AppendRune(nil, parameter.HalfBlockGlyph)
	return &Encoder{mode: mode, glyph: glyph}, nil
}

// Mode returns the color mode escapes are emitted in
func (e *Encoder) Mode() ColorMode {
	return e.mode
}

// EncodeLine appends one console line to dst and returns the extended slice.
// With position set, the line starts with a cursor move to 0-indexed (col, row).
// The first cell always carries both color escapes; later cells carry a foreground
// escape only when the emitted top color changes and a background escape only when
// the emitted bottom color changes. In 256-color mode that is the palette index.
// The line ends with an attribute reset.
// top and bottom must have equal length; extra entries in the longer one are ignored.
func (e *Encoder) EncodeLine(dst []byte, row, col int, top, bottom []pixel.RGB, position bool) []byte {
	if position {
		dst = AppendCursorPos(dst, col, row)
	}

	var prevTop, prevBottom uint32
	n := min(len(top), len(bottom))
	for i := 0; i < n; i++ {
		t, b := e.key(top[i]), e.key(bottom[i])
		if i == 0 || t != prevTop {
			dst = e.appendColor(dst, csiFg256, csiFgRGB, t)
		}
		if i == 0 || b != prevBottom {
			dst = e.appendColor(dst, csiBg256, csiBgRGB, b)
		}
		dst = append(dst, e.glyph...)
		prevTop, prevBottom = t, b
	}

	return append(dst, csiSGR0...)
}

// key is the value actually emitted for c: packed RGB, or the palette index in 256 mode
func (e *Encoder) key(c pixel.RGB) uint32 {
	if e.mode == ColorMode256 {
		return uint32(RGBTo256(c))
	}
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (e *Encoder) appendColor(dst, prefix256, prefixRGB []byte, k uint32) []byte {
	if e.mode == ColorMode256 {
		dst = append(dst, prefix256...)
		dst = appendInt(dst, int(k))
		return append(dst, 'm')
	}
	dst = append(dst, prefixRGB...)
	return appendRGB(dst, uint8(k>>16), uint8(k>>8), uint8(k))
}
