package demo

import (
	"github.com/lixenwraith/halfblock/canvas"
	"github.com/lixenwraith/halfblock/pixel"
	"github.com/lixenwraith/halfblock/vmath"
)

const (
	checkerCell   = 4    // pixels per checker square
	checkerAlpha  = 0.35 // weight of the center window
	checkerWindow = 3    // window covers 1/checkerWindow of each axis
)

// Checker scrolls an infinitely repeating checkerboard under a translucent window
type Checker struct {
	tex    *canvas.Texture
	offset vmath.Vec2
	vel    vmath.Vec2
}

// NewChecker builds the two-tone tile
func NewChecker() *Checker {
	tile := canvas.NewImageFilled(checkerCell*2, checkerCell*2, pixel.DarkBlue)
	tile.FillRect(0, 0, checkerCell, checkerCell, pixel.LightBlue)
	tile.FillRect(checkerCell, checkerCell, checkerCell, checkerCell, pixel.LightBlue)
	return &Checker{
		tex: canvas.NewTexture(tile, canvas.RepeatInfinite),
		vel: vmath.Vec2{X: 0.5, Y: 0.25},
	}
}

// Tick composites the scrolled texture and the window, then advances the scroll
func (c *Checker) Tick(res vmath.Vec2) canvas.Source {
	w, h := res.Ints()
	img := canvas.NewImage(w, h)
	canvas.Overlay(img, &scrolled{src: c.tex, w: w, h: h, offset: c.offset}, vmath.Vec2{}, 1)

	win := canvas.NewImageFilled(w/checkerWindow, h/checkerWindow, pixel.White)
	at := res.Sub(vmath.Vec2{X: float64(win.Width()), Y: float64(win.Height())}).Scale(0.5)
	canvas.Overlay(img, win, at, checkerAlpha)

	c.offset = c.offset.Add(c.vel)
	return img
}

// Resize shows the bare texture until the next tick
func (c *Checker) Resize(res vmath.Vec2) canvas.Source {
	w, h := res.Ints()
	return &scrolled{src: c.tex, w: w, h: h, offset: c.offset}
}

// scrolled views src through a w*h window shifted by offset
type scrolled struct {
	src    canvas.Source
	w, h   int
	offset vmath.Vec2
}

func (s *scrolled) Size() (int, int) {
	return s.w, s.h
}

func (s *scrolled) Sample(x, y int) (pixel.RGB, error) {
	ox, oy := s.offset.Floor().Ints()
	return s.src.Sample(x+ox, y+oy)
}
