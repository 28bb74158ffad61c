package render

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/lixenwraith/halfblock/parameter"
	"github.com/lixenwraith/halfblock/pixel"
	"github.com/lixenwraith/halfblock/terminal"
)

var (
	ErrNilTick        = errors.New("tick function is nil")
	ErrAlreadyRunning = errors.New("renderer already running")
	ErrInvalidOptions = errors.New("invalid render options")
)

// Strategy selects who writes frames to the output
type Strategy uint8

const (
	StrategyBands Strategy = iota // concurrent band workers, per-line diff
	StrategyFull                  // render loop rewrites the whole screen per new frame
)

// String implements fmt.Stringer
func (s Strategy) String() string {
	if s == StrategyFull {
		return "full"
	}
	return "bands"
}

// ParseStrategy accepts "bands" and "full" ("simple" is an alias of full)
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bands":
		return StrategyBands, nil
	case "full", "simple":
		return StrategyFull, nil
	}
	return StrategyBands, fmt.Errorf("%w: unknown strategy %q", ErrInvalidOptions, s)
}

// Options configures a Renderer
type Options struct {
	FPS           int
	Background    pixel.RGB
	DisableCursor bool
	Workers       int
	Mode          SampleMode
	Strategy      Strategy
	ColorMode     terminal.ColorMode

	PollInterval time.Duration // worker wait when no new frame
	DrawInterval time.Duration // worker pause after a redraw pass
	JoinTimeout  time.Duration // bounded wait when stopping workers
}

// DefaultWorkers returns min(NumCPU, 6)
func DefaultWorkers() int {
	return max(min(runtime.NumCPU(), parameter.MaxDefaultWorkers), 1)
}

// DefaultOptions returns 60 FPS, black background, hidden cursor, direct sampling
func DefaultOptions() Options {
	return Options{
		FPS:           parameter.DefaultFPS,
		Background:    pixel.Black,
		DisableCursor: true,
		Workers:       DefaultWorkers(),
		Mode:          SampleDirect,
		Strategy:      StrategyBands,
		ColorMode:     terminal.ColorModeTrueColor,
		PollInterval:  parameter.WorkerPollInterval,
		DrawInterval:  parameter.WorkerDrawInterval,
		JoinTimeout:   parameter.WorkerJoinTimeout,
	}
}

// Validate checks ranges; zero intervals are filled with defaults
func (o *Options) Validate() error {
	if o.FPS < 1 || o.FPS > parameter.MaxFPS {
		return fmt.Errorf("%w: fps %d outside [1, %d]", ErrInvalidOptions, o.FPS, parameter.MaxFPS)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be positive", ErrInvalidOptions, o.Workers)
	}
	if o.Mode > SampleCentered {
		return fmt.Errorf("%w: sample mode %d", ErrInvalidOptions, o.Mode)
	}
	if o.Strategy > StrategyFull {
		return fmt.Errorf("%w: strategy %d", ErrInvalidOptions, o.Strategy)
	}
	if o.PollInterval <= 0 {
		o.PollInterval = parameter.WorkerPollInterval
	}
	if o.DrawInterval <= 0 {
		o.DrawInterval = parameter.WorkerDrawInterval
	}
	if o.JoinTimeout <= 0 {
		o.JoinTimeout = parameter.WorkerJoinTimeout
	}
	return nil
}
