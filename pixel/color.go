// Package pixel defines the color values the renderer and its sources exchange.
//
// Color is a closed sum type over four variants. Each variant carries only its own
// fields; converting between them is always an explicit call (ToRGB, HSVToRGB, ...).
// The renderer itself works exclusively in RGB.
package pixel

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidColorComponents is returned when a constructor gets the wrong number
	// of components for its mode, or a component outside the mode's range
	ErrInvalidColorComponents = errors.New("invalid color components")

	// ErrUnsupportedMode is returned for a Mode value outside the defined set
	ErrUnsupportedMode = errors.New("unsupported color mode")
)

// Color is implemented by RGB, RGBA, HSV and Gray only
type Color interface {
	isColor()
}

// RGB is a 24-bit color, the renderer's native representation
type RGB struct {
	R, G, B uint8
}

// RGBA is an RGB color with an alpha weight in [0,1], used only when compositing
type RGBA struct {
	R, G, B uint8
	A       float64
}

// HSV holds hue in degrees [0,360) and saturation/value in percent [0,100]
type HSV struct {
	H, S, V float64
}

// Gray is a single-channel intensity
type Gray struct {
	V uint8
}

func (RGB) isColor()  {}
func (RGBA) isColor() {}
func (HSV) isColor()  {}
func (Gray) isColor() {}

// Mode selects the variant built by New
type Mode uint8

const (
	ModeRGB Mode = iota
	ModeRGBA
	ModeHSV
	ModeGray
)

// String implements fmt.Stringer
func (m Mode) String() string {
	switch m {
	case ModeRGB:
		return "RGB"
	case ModeRGBA:
		return "RGBA"
	case ModeHSV:
		return "HSV"
	case ModeGray:
		return "GRAY"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// componentCount is the exact number of components each mode accepts
var componentCount = [...]int{
	ModeRGB:  3,
	ModeRGBA: 4,
	ModeHSV:  3,
	ModeGray: 1,
}

// New builds a color from raw components, validating count and ranges at construction
func New(mode Mode, components ...float64) (Color, error) {
	if int(mode) >= len(componentCount) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMode, mode)
	}
	if want := componentCount[mode]; len(components) != want {
		return nil, fmt.Errorf("%w: %v requires %d values, got %d", ErrInvalidColorComponents, mode, want, len(components))
	}

	switch mode {
	case ModeRGB:
		r, g, b, err := channels(mode, components)
		if err != nil {
			return nil, err
		}
		return RGB{r, g, b}, nil

	case ModeRGBA:
		r, g, b, err := channels(mode, components[:3])
		if err != nil {
			return nil, err
		}
		a := components[3]
		if math.IsNaN(a) || a < 0 || a > 1 {
			return nil, fmt.Errorf("%w: %v alpha %v outside [0,1]", ErrInvalidColorComponents, mode, a)
		}
		return RGBA{R: r, G: g, B: b, A: a}, nil

	case ModeHSV:
		h, s, v := components[0], components[1], components[2]
		if !finite(h, s, v) || h < 0 || h >= 360 || s < 0 || s > 100 || v < 0 || v > 100 {
			return nil, fmt.Errorf("%w: %v (%v,%v,%v) outside h[0,360) s,v[0,100]", ErrInvalidColorComponents, mode, h, s, v)
		}
		return HSV{h, s, v}, nil

	default: // ModeGray
		c, err := channel(mode, components[0])
		if err != nil {
			return nil, err
		}
		return Gray{c}, nil
	}
}

// channels validates three 8-bit channel values
func channels(mode Mode, c []float64) (r, g, b uint8, err error) {
	if r, err = channel(mode, c[0]); err != nil {
		return
	}
	if g, err = channel(mode, c[1]); err != nil {
		return
	}
	b, err = channel(mode, c[2])
	return
}

func channel(mode Mode, v float64) (uint8, error) {
	if math.IsNaN(v) || v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: %v channel %v outside [0,255]", ErrInvalidColorComponents, mode, v)
	}
	return uint8(v), nil
}

// ToRGB flattens any variant to RGB
// RGBA drops its alpha; use Blend to composite it onto a base color instead
func ToRGB(c Color) RGB {
	switch v := c.(type) {
	case RGB:
		return v
	case RGBA:
		return RGB{v.R, v.G, v.B}
	case HSV:
		return HSVToRGB(v)
	case Gray:
		return GrayToRGB(v)
	default:
		return RGB{}
	}
}

// GrayToRGB replicates the intensity into all three channels
func GrayToRGB(g Gray) RGB {
	return RGB{g.V, g.V, g.V}
}

// String renders the color as "r,g,b", the same format ParseColor accepts
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
