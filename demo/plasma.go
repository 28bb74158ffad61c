package demo

import (
	"math"

	"github.com/lixenwraith/halfblock/canvas"
	"github.com/lixenwraith/halfblock/pixel"
	"github.com/lixenwraith/halfblock/vmath"
)

const (
	plasmaStep       = 0.06 // phase advance per tick
	plasmaSaturation = 85   // percent
	plasmaValue      = 95   // percent
)

// Plasma fills the screen with interfering sine waves mapped onto the hue wheel
type Plasma struct {
	phase float64
}

// NewPlasma starts at phase zero
func NewPlasma() *Plasma {
	return &Plasma{}
}

// Tick renders the current phase and advances it
func (p *Plasma) Tick(res vmath.Vec2) canvas.Source {
	w, h := res.Ints()
	img := canvas.NewImage(w, h)
	center := res.Scale(0.5)
	t := p.phase

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pt := vmath.Vec2{X: float64(x), Y: float64(y)}
			v := math.Sin(pt.X/9+t) +
				math.Sin(pt.Y/7+t*0.7) +
				math.Sin((pt.X+pt.Y)/11+t*1.3) +
				math.Sin(pt.Dist(center)/6-t*1.7)
			hue := math.Mod((v+4)/8*360+t*25, 360)
			img.SetColor(x, y, pixel.HSV{H: hue, S: plasmaSaturation, V: plasmaValue})
		}
	}

	p.phase += plasmaStep
	return img
}

// Resize needs no state change; the next tick covers the new area
func (p *Plasma) Resize(vmath.Vec2) canvas.Source {
	return nil
}
