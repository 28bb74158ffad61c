package canvas

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/halfblock/pixel"
)

// RepeatMode is the texture addressing policy
type RepeatMode uint8

const (
	// RepeatDisable bounds-checks against the tile size
	RepeatDisable RepeatMode = iota
	// RepeatFinite tiles within an explicit repeat count
	RepeatFinite
	// RepeatInfinite always wraps
	RepeatInfinite
)

// String implements fmt.Stringer
func (r RepeatMode) String() string {
	switch r {
	case RepeatDisable:
		return "disable"
	case RepeatFinite:
		return "finite"
	case RepeatInfinite:
		return "infinite"
	default:
		return fmt.Sprintf("RepeatMode(%d)", uint8(r))
	}
}

// ParseRepeatMode accepts the String forms, case-insensitive
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disable", "disabled":
		return RepeatDisable, nil
	case "finite":
		return RepeatFinite, nil
	case "infinite":
		return RepeatInfinite, nil
	}
	return RepeatDisable, fmt.Errorf("unknown repeat mode %q", s)
}

// Texture samples an image tile under a repeat mode
type Texture struct {
	tile    *Image
	mode    RepeatMode
	repeatX int
	repeatY int
}

// NewTexture wraps img, which is referenced, not copied
func NewTexture(img *Image, mode RepeatMode) *Texture {
	return &Texture{tile: img, mode: mode, repeatX: 1, repeatY: 1}
}

// NewImageTexture wraps img with the default bounds-checked addressing
func NewImageTexture(img *Image) *Texture {
	return NewTexture(img, RepeatDisable)
}

// NewSolidTexture is a 1x1 tile repeating forever
func NewSolidTexture(c pixel.RGB) *Texture {
	return NewTexture(NewImageFilled(1, 1, c), RepeatInfinite)
}

// WithRepeat sets the tile count for RepeatFinite, values below 1 become 1
func (t *Texture) WithRepeat(nx, ny int) *Texture {
	t.repeatX = max(nx, 1)
	t.repeatY = max(ny, 1)
	return t
}

// Mode returns the addressing policy
func (t *Texture) Mode() RepeatMode {
	return t.mode
}

// Size implements Source, reporting one tile
func (t *Texture) Size() (int, int) {
	if t.tile == nil {
		return 0, 0
	}
	return t.tile.Size()
}

// Extent is the addressable area: one tile, the finite repeat area, or 0,0 for infinite
func (t *Texture) Extent() (int, int) {
	w, h := t.Size()
	switch t.mode {
	case RepeatFinite:
		return w * t.repeatX, h * t.repeatY
	case RepeatInfinite:
		return 0, 0
	default:
		return w, h
	}
}

// Sample implements Source
func (t *Texture) Sample(x, y int) (pixel.RGB, error) {
	w, h := t.Size()
	if w == 0 || h == 0 {
		return pixel.RGB{}, ErrEmptyTexture
	}

	switch t.mode {
	case RepeatInfinite:
		x, y = wrap(x, w), wrap(y, h)

	case RepeatFinite:
		if x < 0 || y < 0 || x >= w*t.repeatX || y >= h*t.repeatY {
			return pixel.RGB{}, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, w*t.repeatX, h*t.repeatY)
		}
		x, y = x%w, y%h

	default:
		if x < 0 || y < 0 || x >= w || y >= h {
			return pixel.RGB{}, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, w, h)
		}
	}
	return t.tile.pix[y*w+x], nil
}

// wrap is a modulo that stays non-negative
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Solid is a Source of a single color everywhere, with a nominal 1x1 size
type Solid pixel.RGB

// Size implements Source
func (Solid) Size() (int, int) {
	return 1, 1
}

// Sample implements Source
func (s Solid) Sample(int, int) (pixel.RGB, error) {
	return pixel.RGB(s), nil
}
