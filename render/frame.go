package render

import (
	"slices"
	"sync/atomic"

	"github.com/lixenwraith/halfblock/pixel"
)

// Frame is one fully computed display grid: columns wide, lines*2 pixels tall.
// Immutable once published.
type Frame struct {
	width  int
	height int
	pix    []pixel.RGB
	gen    uint64
}

func newFrame(cols, lines int) *Frame {
	cols, lines = max(cols, 0), max(lines, 0)
	return &Frame{
		width:  cols,
		height: lines * 2,
		pix:    make([]pixel.RGB, cols*lines*2),
	}
}

// Size returns the pixel dimensions
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Columns returns the console columns the frame covers
func (f *Frame) Columns() int {
	return f.width
}

// Lines returns the console lines the frame covers
func (f *Frame) Lines() int {
	return f.height / 2
}

// Generation is the publish sequence number, 0 if never published
func (f *Frame) Generation() uint64 {
	return f.gen
}

// At returns the pixel at (x, y), zero value outside the frame
func (f *Frame) At(x, y int) pixel.RGB {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return pixel.RGB{}
	}
	return f.pix[y*f.width+x]
}

// Row returns pixel row y; callers must not modify it
func (f *Frame) Row(y int) []pixel.RGB {
	if y < 0 || y >= f.height {
		return nil
	}
	return f.pix[y*f.width : (y+1)*f.width]
}

// Segment returns the top and bottom pixel rows of console line within band
func (f *Frame) Segment(line int, b Band) (top, bottom []pixel.RGB) {
	start, end := max(b.Start, 0), min(b.End, f.width)
	if line < 0 || line >= f.Lines() || start >= end {
		return nil, nil
	}
	return f.Row(line * 2)[start:end], f.Row(line*2 + 1)[start:end]
}

// Equal compares dimensions and pixels, ignoring generation
func (f *Frame) Equal(o *Frame) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.width == o.width && f.height == o.height && slices.Equal(f.pix, o.pix)
}

// FrameSlot holds the current frame. Publish replaces it atomically; last write wins.
type FrameSlot struct {
	current atomic.Pointer[Frame]
	gen     atomic.Uint64
}

// Publish stamps f with the next generation and makes it current.
// f must not be modified afterwards.
func (s *FrameSlot) Publish(f *Frame) uint64 {
	f.gen = s.gen.Add(1)
	s.current.Store(f)
	return f.gen
}

// Load returns the current frame or nil
func (s *FrameSlot) Load() *Frame {
	return s.current.Load()
}

// Reset clears the current frame; generations keep increasing
func (s *FrameSlot) Reset() {
	s.current.Store(nil)
}
