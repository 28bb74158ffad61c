package canvas

import (
	"github.com/lixenwraith/halfblock/pixel"
	"github.com/lixenwraith/halfblock/vmath"
)

// Overlay composites layer onto dst with its top-left at `at`, weighting every layer
// pixel by alpha. Samples that fail (outside a bounded layer) are skipped, and writes
// outside dst are clipped.
func Overlay(dst *Image, layer Source, at vmath.Vec2, alpha float64) *Image {
	if dst == nil || layer == nil || alpha <= 0 {
		return dst
	}
	ox, oy := at.Floor().Ints()
	w, h := layer.Size()

	// Skip layer rows/cols that land outside dst entirely
	x0, y0 := max(0, -ox), max(0, -oy)
	x1, y1 := min(w, dst.width-ox), min(h, dst.height-oy)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c, err := layer.Sample(x, y)
			if err != nil {
				continue
			}
			dst.SetColor(ox+x, oy+y, pixel.WithAlpha(c, alpha))
		}
	}
	return dst
}
