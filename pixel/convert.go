package pixel

import (
	"github.com/lucasb-eyer/go-colorful"
)

// HSVToRGB converts hue (degrees) and percent saturation/value to RGB
func HSVToRGB(c HSV) RGB {
	r, g, b := colorful.Hsv(c.H, c.S/100, c.V/100).Clamped().RGB255()
	return RGB{r, g, b}
}

// RGBToHSV converts to hue in degrees and saturation/value in percent
func RGBToHSV(c RGB) HSV {
	h, s, v := toColorful(c).Hsv()
	return HSV{H: h, S: s * 100, V: v * 100}
}

// Blend composites over onto base using over.A as the weight
// A == 0 keeps base, A == 1 replaces it
func Blend(base RGB, over RGBA) RGB {
	switch {
	case over.A <= 0:
		return base
	case over.A >= 1:
		return RGB{over.R, over.G, over.B}
	}
	r, g, b := toColorful(base).BlendRgb(toColorful(RGB{over.R, over.G, over.B}), over.A).Clamped().RGB255()
	return RGB{r, g, b}
}

// Scale multiplies every channel by f, clamped to [0,255]
func Scale(c RGB, f float64) RGB {
	if f <= 0 {
		return RGB{}
	}
	return RGB{scaleChannel(c.R, f), scaleChannel(c.G, f), scaleChannel(c.B, f)}
}

func scaleChannel(v uint8, f float64) uint8 {
	s := float64(v) * f
	if s >= 255 {
		return 255
	}
	return uint8(s)
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
