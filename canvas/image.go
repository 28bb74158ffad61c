// Package canvas holds pixel storage and the Source abstraction the renderer samples.
//
// Addressing policy:
//   - Image.Get never fails; out-of-range coordinates return the image background
//   - Image.Set and SetColor silently clip out-of-range writes
//   - Source.Sample is strict and returns ErrOutOfBounds, so samplers can tell
//     "outside" apart from "black" and substitute their own background
package canvas

import (
	"errors"

	"github.com/lixenwraith/halfblock/pixel"
)

var (
	// ErrOutOfBounds is returned when a strict sample falls outside the addressable area
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrEmptyTexture is returned when sampling a texture with no pixel data
	ErrEmptyTexture = errors.New("texture has no data")
)

// Source is anything the renderer can sample once per frame
type Source interface {
	// Size returns the natural size of the source in pixels
	// Repeating sources return the size of one tile
	Size() (width, height int)

	// Sample returns the color at (x, y) or an addressing error
	Sample(x, y int) (pixel.RGB, error)
}

// Image is a row-major width*height grid of RGB pixels, (0,0) at top-left
type Image struct {
	width  int
	height int
	pix    []pixel.RGB
	bg     pixel.RGB
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return NewImageFilled(width, height, pixel.Black)
}

// NewImageFilled creates an image filled with c, which also becomes its background
func NewImageFilled(width, height int, c pixel.RGB) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := &Image{
		width:  width,
		height: height,
		pix:    make([]pixel.RGB, width*height),
		bg:     c,
	}
	img.Fill(c)
	return img
}

// FromPixels wraps rows of colors; ragged rows are padded with black
func FromPixels(rows [][]pixel.RGB) *Image {
	h := len(rows)
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	img := NewImage(w, h)
	for y, r := range rows {
		copy(img.pix[y*w:], r)
	}
	return img
}

// Size implements Source
func (m *Image) Size() (int, int) {
	return m.width, m.height
}

// Width returns the image width
func (m *Image) Width() int {
	return m.width
}

// Height returns the image height
func (m *Image) Height() int {
	return m.height
}

// Background returns the color Get reports outside the image
func (m *Image) Background() pixel.RGB {
	return m.bg
}

// SetBackground changes the color Get reports outside the image
func (m *Image) SetBackground(c pixel.RGB) {
	m.bg = c
}

func (m *Image) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Get returns the pixel at (x, y), or the background when out of range
func (m *Image) Get(x, y int) pixel.RGB {
	if !m.inBounds(x, y) {
		return m.bg
	}
	return m.pix[y*m.width+x]
}

// Sample implements Source with strict bounds
func (m *Image) Sample(x, y int) (pixel.RGB, error) {
	if !m.inBounds(x, y) {
		return pixel.RGB{}, ErrOutOfBounds
	}
	return m.pix[y*m.width+x], nil
}

// Set writes the pixel at (x, y), no-op when out of range
func (m *Image) Set(x, y int, c pixel.RGB) {
	if !m.inBounds(x, y) {
		return
	}
	m.pix[y*m.width+x] = c
}

// SetColor writes any color variant; RGBA is composited onto the existing pixel
func (m *Image) SetColor(x, y int, c pixel.Color) {
	if !m.inBounds(x, y) {
		return
	}
	idx := y*m.width + x
	if a, ok := c.(pixel.RGBA); ok {
		m.pix[idx] = pixel.Blend(m.pix[idx], a)
		return
	}
	m.pix[idx] = pixel.ToRGB(c)
}

// Fill sets every pixel to c using exponential copy
func (m *Image) Fill(c pixel.RGB) {
	if len(m.pix) == 0 {
		return
	}
	m.pix[0] = c
	for filled := 1; filled < len(m.pix); filled *= 2 {
		copy(m.pix[filled:], m.pix[:filled])
	}
}

// FillRect fills the clipped rectangle [x, x+w) x [y, y+h)
func (m *Image) FillRect(x, y, w, h int, c pixel.RGB) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, m.width), min(y+h, m.height)
	for py := y0; py < y1; py++ {
		row := m.pix[py*m.width : (py+1)*m.width]
		for px := x0; px < x1; px++ {
			row[px] = c
		}
	}
}

// Row returns the backing slice for row y, nil when out of range
// The slice aliases the image; callers that keep it must not outlive later writes
func (m *Image) Row(y int) []pixel.RGB {
	if y < 0 || y >= m.height {
		return nil
	}
	return m.pix[y*m.width : (y+1)*m.width]
}

// Clone returns a deep copy
func (m *Image) Clone() *Image {
	c := &Image{width: m.width, height: m.height, bg: m.bg, pix: make([]pixel.RGB, len(m.pix))}
	copy(c.pix, m.pix)
	return c
}

// Equal compares dimensions and pixels, ignoring the background color
func (m *Image) Equal(o *Image) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil || m.width != o.width || m.height != o.height {
		return false
	}
	for i := range m.pix {
		if m.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}
