package demo

import (
	"math/rand/v2"

	"github.com/lixenwraith/halfblock/canvas"
	"github.com/lixenwraith/halfblock/pixel"
	"github.com/lixenwraith/halfblock/vmath"
)

const (
	bounceSize     = 3   // square edge in pixels
	bounceTrailLen = 100 // positions kept for the fading trail
	bounceMinColor = 20  // lowest channel value of a random color
)

type trailPoint struct {
	pos   vmath.Vec2
	color pixel.RGB
}

// Bounce moves a square diagonally, reflecting off the edges and leaving a fading trail.
// Hitting a corner picks a new random color.
type Bounce struct {
	pos   vmath.Vec2
	vel   vmath.Vec2
	color pixel.RGB
	trail []trailPoint // oldest first
	rng   *rand.Rand
}

// NewBounce starts at the top-left moving down-right
func NewBounce(seed uint64) *Bounce {
	b := &Bounce{
		vel:   vmath.Vec2{X: 1, Y: 1},
		trail: make([]trailPoint, 0, bounceTrailLen),
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	b.color = b.randomColor()
	return b
}

// Color returns the current square color
func (b *Bounce) Color() pixel.RGB {
	return b.color
}

// Position returns the square's top-left pixel
func (b *Bounce) Position() vmath.Vec2 {
	return b.pos
}

// Tick draws the trail and the square, then advances one step
func (b *Bounce) Tick(res vmath.Vec2) canvas.Source {
	w, h := res.Ints()
	img := canvas.NewImage(w, h)

	for i, p := range b.trail {
		age := len(b.trail) - i
		fade := 1 - float64(age)/float64(bounceTrailLen+1)
		x, y := p.pos.Ints()
		img.FillRect(x, y, bounceSize, bounceSize, pixel.Scale(p.color, fade))
	}

	x, y := b.pos.Ints()
	img.FillRect(x, y, bounceSize, bounceSize, b.color)

	if len(b.trail) == bounceTrailLen {
		b.trail = append(b.trail[:0], b.trail[1:]...)
	}
	b.trail = append(b.trail, trailPoint{pos: b.pos, color: b.color})

	b.step(res)
	return img
}

// Resize clamps the square and trail into the new resolution
func (b *Bounce) Resize(res vmath.Vec2) canvas.Source {
	limit := b.limit(res)
	b.pos = b.pos.Clamp(vmath.Vec2{}, limit)
	for i := range b.trail {
		b.trail[i].pos = b.trail[i].pos.Clamp(vmath.Vec2{}, limit)
	}
	return nil
}

func (b *Bounce) limit(res vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{X: max(res.X-bounceSize, 0), Y: max(res.Y-bounceSize, 0)}
}

func (b *Bounce) step(res vmath.Vec2) {
	limit := b.limit(res)
	b.pos = b.pos.Add(b.vel)

	hits := 0
	if b.pos.X >= limit.X {
		b.pos.X = limit.X
		b.vel = b.vel.ReflectAxisX()
		hits++
	} else if b.pos.X <= 0 {
		b.pos.X = 0
		b.vel = b.vel.ReflectAxisX()
		hits++
	}
	if b.pos.Y >= limit.Y {
		b.pos.Y = limit.Y
		b.vel = b.vel.ReflectAxisY()
		hits++
	} else if b.pos.Y <= 0 {
		b.pos.Y = 0
		b.vel = b.vel.ReflectAxisY()
		hits++
	}

	if hits > 1 {
		b.color = b.randomColor()
	}
}

func (b *Bounce) randomColor() pixel.RGB {
	ch := func() uint8 { return uint8(bounceMinColor + b.rng.IntN(256-bounceMinColor)) }
	return pixel.RGB{R: ch(), G: ch(), B: ch()}
}
