package pixel

// Basic palette, ordered dark-to-light within each hue
var (
	Black  = RGB{0, 0, 0}
	Gray50 = RGB{127, 127, 127}
	White  = RGB{255, 255, 255}

	DarkRed = RGB{127, 0, 0}
	Red     = RGB{255, 0, 0}

	DarkGreen = RGB{0, 127, 0}
	Green     = RGB{0, 255, 0}

	DarkBlue  = RGB{0, 0, 127}
	Blue      = RGB{0, 0, 255}
	LightBlue = RGB{0, 255, 255}

	DarkPurple = RGB{127, 0, 127}
	Purple     = RGB{255, 0, 255}

	Yellow = RGB{255, 255, 0}
)

// Opaque returns c as an RGBA with full weight
func Opaque(c RGB) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// WithAlpha returns c as an RGBA with weight a
func WithAlpha(c RGB, a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}
