package render

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/halfblock/core"
	"github.com/lixenwraith/halfblock/parameter"
	"github.com/lixenwraith/halfblock/pixel"
	"github.com/lixenwraith/halfblock/terminal"
)

// WorkerState is the lifecycle position of one band worker
type WorkerState int32

const (
	WorkerIdle WorkerState = iota
	WorkerRunning
	WorkerStopped
)

// String implements fmt.Stringer
func (s WorkerState) String() string {
	switch s {
	case WorkerIdle:
		return "idle"
	case WorkerRunning:
		return "running"
	case WorkerStopped:
		return "stopped"
	}
	return "unknown"
}

// Scheduler owns the band workers of one renderer.
// Start and Stop are serialized; a restart is always stop-all, partition, spawn-all.
type Scheduler struct {
	slot *FrameSlot
	out  *terminal.Output
	enc  *terminal.Encoder

	workers      int
	pollInterval time.Duration
	drawInterval time.Duration
	joinTimeout  time.Duration

	mu    sync.Mutex
	epoch *epoch // nil when stopped
	last  *epoch // most recent epoch, kept for state inspection
}

// epoch is one generation of workers sharing a cancellable context
type epoch struct {
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	cols    int
	bands   []Band
	workers []*worker
}

// worker redraws one band of every new frame
type worker struct {
	band  Band
	cols  int
	ctx   context.Context
	stop  <-chan struct{}
	sched *Scheduler
	state atomic.Int32

	drawn *Frame // last frame fully written by this worker
	buf   []byte
	timer *time.Timer
}

// NewScheduler creates a stopped scheduler reading frames from slot
func NewScheduler(slot *FrameSlot, out *terminal.Output, enc *terminal.Encoder, opts Options) *Scheduler {
	return &Scheduler{
		slot:         slot,
		out:          out,
		enc:          enc,
		workers:      opts.Workers,
		pollInterval: opts.PollInterval,
		drawInterval: opts.DrawInterval,
		joinTimeout:  opts.JoinTimeout,
	}
}

// Start stops any running workers, partitions cols and spawns one worker per band.
// Returns false if the previous workers did not join within the timeout.
func (s *Scheduler) Start(cols int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	joined := s.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	ep := &epoch{
		ctx:    ctx,
		cancel: cancel,
		cols:   cols,
		bands:  Partition(cols, s.workers),
	}
	for _, b := range ep.bands {
		w := &worker{
			band:  b,
			cols:  cols,
			ctx:   ep.ctx,
			stop:  ep.ctx.Done(),
			sched: s,
			buf:   make([]byte, 0, parameter.LineBufferCap),
		}
		ep.workers = append(ep.workers, w)
	}

	ep.wg.Add(len(ep.workers))
	for _, w := range ep.workers {
		core.Go(func() {
			defer ep.wg.Done()
			w.run()
		})
	}

	s.epoch = ep
	s.last = ep
	Logger().Debug("band workers started", "cols", cols, "workers", len(ep.workers))
	return joined
}

// Stop signals all workers and waits at most the join timeout.
// Returns false on timeout; lingering workers exit on their own without writing.
func (s *Scheduler) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopLocked()
}

func (s *Scheduler) stopLocked() bool {
	ep := s.epoch
	if ep == nil {
		return true
	}
	s.epoch = nil
	ep.cancel()

	done := make(chan struct{})
	go func() {
		ep.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(s.joinTimeout)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		Logger().Warn("band workers did not join in time",
			"timeout", s.joinTimeout, "cols", ep.cols, "workers", len(ep.workers))
		return false
	}
}

// Running reports whether workers are active
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch != nil
}

// Bands returns the band layout of the most recent start
func (s *Scheduler) Bands() []Band {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil
	}
	return slices.Clone(s.last.bands)
}

// States returns per-worker states of the most recent start
func (s *Scheduler) States() []WorkerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil
	}
	states := make([]WorkerState, len(s.last.workers))
	for i, w := range s.last.workers {
		states[i] = WorkerState(w.state.Load())
	}
	return states
}

func (w *worker) run() {
	w.state.Store(int32(WorkerRunning))
	defer w.state.Store(int32(WorkerStopped))

	w.timer = time.NewTimer(time.Hour)
	w.timer.Stop()
	defer w.timer.Stop()

	for {
		select {
		case <-w.stop:
			return
		default:
		}

		f := w.sched.slot.Load()
		if f == nil || f == w.drawn || f.Columns() != w.cols {
			if !w.sleep(w.sched.pollInterval) {
				return
			}
			continue
		}

		if !w.draw(f) {
			return
		}
		if !w.sleep(w.sched.drawInterval) {
			return
		}
	}
}

// draw writes every line whose band segment changed since the last drawn frame,
// one sink write per line. Returns false if stopped mid-pass.
func (w *worker) draw(f *Frame) bool {
	prev := w.drawn
	if prev != nil && prev.Lines() != f.Lines() {
		prev = nil
	}

	for line := 0; line < f.Lines(); line++ {
		top, bottom := f.Segment(line, w.band)
		if prev != nil {
			pt, pb := prev.Segment(line, w.band)
			if segmentEqual(top, pt) && segmentEqual(bottom, pb) {
				continue
			}
		}

		w.buf = w.sched.enc.EncodeLine(w.buf[:0], line, w.band.Start, top, bottom, true)
		ok, err := w.sched.out.WriteGuarded(w.ctx, w.buf)
		if !ok {
			return false
		}
		if err != nil {
			Logger().Warn("band write failed", "band", w.band, "line", line, "error", err)
		}
	}
	w.drawn = f
	return true
}

// sleep waits d or until stop; returns false when stopped
func (w *worker) sleep(d time.Duration) bool {
	w.timer.Reset(d)
	select {
	case <-w.stop:
		w.timer.Stop()
		return false
	case <-w.timer.C:
		return true
	}
}

func segmentEqual(a, b []pixel.RGB) bool {
	return slices.Equal(a, b)
}
