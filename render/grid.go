package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/halfblock/canvas"
	"github.com/lixenwraith/halfblock/pixel"
)

// SampleMode selects how a source maps onto the display grid
type SampleMode uint8

const (
	SampleDirect   SampleMode = iota // source (x,y) lands on grid (x,y)
	SampleCentered                   // source centered, background around it
)

// String implements fmt.Stringer
func (m SampleMode) String() string {
	if m == SampleCentered {
		return "centered"
	}
	return "direct"
}

// ParseSampleMode accepts "direct" and "centered"
func ParseSampleMode(s string) (SampleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct":
		return SampleDirect, nil
	case "centered", "center":
		return SampleCentered, nil
	}
	return SampleDirect, fmt.Errorf("%w: unknown sample mode %q", ErrInvalidOptions, s)
}

// BuildGrid samples src into a frame of cols x lines*2 pixels.
// Sampling errors and a nil source yield bg; addressing errors never propagate.
func BuildGrid(src canvas.Source, cols, lines int, mode SampleMode, bg pixel.RGB) *Frame {
	f := newFrame(cols, lines)
	if src == nil {
		fillFrame(f, bg)
		return f
	}

	offX, offY := 0, 0
	sw, sh := src.Size()
	if mode == SampleCentered {
		offX = max((f.width-sw)/2, 0)
		offY = max((f.height-sh)/2, 0)
	}

	for y := 0; y < f.height; y++ {
		row := f.pix[y*f.width : (y+1)*f.width]
		sy := y - offY
		for x := range row {
			sx := x - offX
			if mode == SampleCentered && (sx < 0 || sy < 0 || sx >= sw || sy >= sh) {
				row[x] = bg
				continue
			}
			c, err := src.Sample(sx, sy)
			if err != nil {
				c = bg
			}
			row[x] = c
		}
	}
	return f
}

func fillFrame(f *Frame, c pixel.RGB) {
	for i := range f.pix {
		f.pix[i] = c
	}
}
