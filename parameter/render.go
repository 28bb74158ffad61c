package parameter

import "time"

// Frame pacing
const (
	// DefaultFPS is the render loop target when none is configured
	DefaultFPS = 60

	// MaxFPS caps the loop; above this the pacing sleep rounds to zero on most kernels
	MaxFPS = 240
)

// Band workers
const (
	// MaxDefaultWorkers caps the default worker count derived from runtime.NumCPU
	MaxDefaultWorkers = 6

	// WorkerPollInterval is the sleep between checks when no new frame is available
	WorkerPollInterval = 10 * time.Millisecond

	// WorkerDrawInterval is the pause after a band redraw, bounds CPU per worker
	WorkerDrawInterval = 1 * time.Millisecond

	// WorkerJoinTimeout bounds the wait for workers on stop and resize
	// A worker that misses it keeps running until it observes its own stop channel
	WorkerJoinTimeout = 50 * time.Millisecond
)

// Terminal geometry fallback when the first size query fails
const (
	FallbackColumns = 80
	FallbackLines   = 24
)

// Output
const (
	// LineBufferCap is the initial per-worker line scratch capacity
	// ~40 bytes covers two truecolor escapes plus a 3-byte glyph
	LineBufferCap = 4096
)

// Upper half block: foreground paints the top pixel, background the bottom
const HalfBlockGlyph = '▀'
