package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/halfblock/canvas"
	"github.com/lixenwraith/halfblock/parameter"
	"github.com/lixenwraith/halfblock/terminal"
	"github.com/lixenwraith/halfblock/vmath"
)

// TickFunc produces the source for one frame at the given pixel resolution
type TickFunc func(res vmath.Vec2) canvas.Source

// ResizeFunc is called once per detected size change; a non-nil source is drawn
// immediately as a transitional frame
type ResizeFunc func(res vmath.Vec2) canvas.Source

// SizeFunc reports the console size in columns and lines
type SizeFunc func() (cols, lines int, err error)

// Renderer paces frames, publishes changed ones and drives the band workers
type Renderer struct {
	tick TickFunc
	size SizeFunc
	opts Options

	out   *terminal.Output
	enc   *terminal.Encoder
	slot  FrameSlot
	sched *Scheduler

	mu       sync.Mutex
	onResize ResizeFunc

	running   atomic.Bool
	stopReq   atomic.Bool
	wake      chan struct{}
	res       atomic.Uint64 // cols<<32 | lines
	published atomic.Uint64

	// Owned by the render loop
	frameBuf []byte
}

// New creates a renderer writing to w (stdout when nil)
func New(tick TickFunc, size SizeFunc, w io.Writer, opts Options) (*Renderer, error) {
	if tick == nil {
		return nil, ErrNilTick
	}
	if size == nil {
		return nil, fmt.Errorf("%w: size function is nil", ErrInvalidOptions)
	}
	if w == nil {
		w = os.Stdout
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	enc, err := terminal.NewEncoder(opts.ColorMode)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		tick: tick,
		size: size,
		opts: opts,
		out:  terminal.NewOutput(w),
		enc:  enc,
		wake: make(chan struct{}, 1),
	}
	r.sched = NewScheduler(&r.slot, r.out, enc, opts)
	return r, nil
}

// OnResize sets the resize callback; nil removes it
func (r *Renderer) OnResize(fn ResizeFunc) {
	r.mu.Lock()
	r.onResize = fn
	r.mu.Unlock()
}

// Options returns the validated options
func (r *Renderer) Options() Options {
	return r.opts
}

// Run drives the render loop until Stop is called or ctx is done.
// Both are a normal exit and return nil. The final write restores attributes and cursor.
func (r *Renderer) Run(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer r.running.Store(false)
	defer r.stopReq.Store(false)

	if r.opts.DisableCursor {
		r.write(terminal.SeqCursorHide)
	}

	cols, lines := r.initialSize()
	r.setResolution(cols, lines)
	r.slot.Reset()
	if r.opts.Strategy == StrategyBands {
		r.sched.Start(cols)
	}
	defer r.finish()

	interval := time.Second / time.Duration(r.opts.FPS)
	pace := time.NewTimer(interval)
	pace.Stop()
	defer pace.Stop()

	for !r.stopReq.Load() && ctx.Err() == nil {
		start := time.Now()

		c, l, err := r.size()
		switch {
		case err != nil:
			Logger().Debug("size query failed, keeping last size", "cols", cols, "lines", lines, "error", err)
		case c <= 0 || l <= 0:
			Logger().Debug("size query returned empty console, keeping last size", "cols", c, "lines", l)
		case c != cols || l != lines:
			cols, lines = c, l
			r.resize(cols, lines)
		}

		src := r.tick(r.Resolution())
		f := BuildGrid(src, cols, lines, r.opts.Mode, r.opts.Background)
		if r.publish(f) && r.opts.Strategy == StrategyFull {
			r.drawFull(f)
		}

		remaining := interval - time.Since(start)
		if remaining <= 0 {
			continue
		}
		pace.Reset(remaining)
		select {
		case <-pace.C:
		case <-r.wake:
			pace.Stop()
		case <-ctx.Done():
			pace.Stop()
		}
	}
	return nil
}

// Stop requests loop exit; takes effect within one iteration.
// A Stop issued before Run makes the next Run return immediately.
func (r *Renderer) Stop() {
	r.stopReq.Store(true)
	r.Wake()
}

// Wake cuts the current pacing sleep short
func (r *Renderer) Wake() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Running reports whether Run is active
func (r *Renderer) Running() bool {
	return r.running.Load()
}

// Resolution returns the pixel resolution: columns by lines*2
func (r *Renderer) Resolution() vmath.Vec2 {
	v := r.res.Load()
	cols, lines := int(v>>32), int(v&0xffffffff)
	return vmath.Vec2{X: float64(cols), Y: float64(lines * 2)}
}

// Published returns the number of frames published so far
func (r *Renderer) Published() uint64 {
	return r.published.Load()
}

// Bands returns the column bands of the current worker set
func (r *Renderer) Bands() []Band {
	return r.sched.Bands()
}

// ShowFrame draws a single tick synchronously as plain lines at the cursor
// and restores attributes and cursor visibility
func (r *Renderer) ShowFrame() error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer r.running.Store(false)

	cols, lines := r.initialSize()
	r.setResolution(cols, lines)

	f := BuildGrid(r.tick(r.Resolution()), cols, lines, r.opts.Mode, r.opts.Background)
	r.slot.Publish(f)
	r.published.Add(1)

	buf := r.frameBuf[:0]
	for line := 0; line < f.Lines(); line++ {
		buf = r.enc.EncodeLine(buf, line, 0, f.Row(line*2), f.Row(line*2+1), false)
		buf = append(buf, terminal.SeqCRLF...)
	}
	buf = append(buf, terminal.SeqReset...)
	buf = append(buf, terminal.SeqCursorShow...)
	r.frameBuf = buf
	return r.out.WriteTimeout(buf, r.opts.JoinTimeout)
}

func (r *Renderer) initialSize() (int, int) {
	cols, lines, err := r.size()
	if err != nil || cols <= 0 || lines <= 0 {
		Logger().Debug("initial size query failed, using fallback",
			"cols", parameter.FallbackColumns, "lines", parameter.FallbackLines, "error", err)
		return parameter.FallbackColumns, parameter.FallbackLines
	}
	return cols, lines
}

func (r *Renderer) setResolution(cols, lines int) {
	r.res.Store(uint64(cols)<<32 | uint64(uint32(lines)))
}

// resize restarts drawing for a new console size: stop, clear, transitional frame, spawn
func (r *Renderer) resize(cols, lines int) {
	Logger().Debug("console resized", "cols", cols, "lines", lines)

	if r.opts.Strategy == StrategyBands {
		r.sched.Stop()
	}
	r.slot.Reset()
	r.setResolution(cols, lines)
	r.write(terminal.SeqClear)

	r.mu.Lock()
	fn := r.onResize
	r.mu.Unlock()
	if fn != nil {
		if src := fn(r.Resolution()); src != nil {
			f := BuildGrid(src, cols, lines, r.opts.Mode, r.opts.Background)
			r.slot.Publish(f)
			r.published.Add(1)
			r.drawFull(f)
		}
	}

	if r.opts.Strategy == StrategyBands {
		r.sched.Start(cols)
	}
}

// publish makes f current unless it equals the current frame by value
func (r *Renderer) publish(f *Frame) bool {
	if cur := r.slot.Load(); cur != nil && cur.Equal(f) {
		return false
	}
	r.slot.Publish(f)
	r.published.Add(1)
	return true
}

// drawFull rewrites the whole screen from the top-left corner
func (r *Renderer) drawFull(f *Frame) {
	buf := append(r.frameBuf[:0], terminal.SeqHome...)
	for line := 0; line < f.Lines(); line++ {
		if line > 0 {
			buf = append(buf, terminal.SeqCRLF...)
		}
		buf = r.enc.EncodeLine(buf, line, 0, f.Row(line*2), f.Row(line*2+1), false)
	}
	r.frameBuf = buf
	r.write(buf)
}

// write waits at most JoinTimeout for the sink so a wedged worker write cannot stall the loop
func (r *Renderer) write(p []byte) {
	if err := r.out.WriteTimeout(p, r.opts.JoinTimeout); err != nil {
		Logger().Warn("output write failed", "error", err)
	}
}

// finish stops workers, then resets attributes and shows the cursor as the last write
func (r *Renderer) finish() {
	if r.opts.Strategy == StrategyBands {
		r.sched.Stop()
	}
	final := make([]byte, 0, len(terminal.SeqReset)+len(terminal.SeqCursorShow))
	final = append(final, terminal.SeqReset...)
	final = append(final, terminal.SeqCursorShow...)
	r.write(final)
}
