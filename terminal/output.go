package terminal

import (
	"context"
	"errors"
	"io"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrOutputBusy is returned by WriteTimeout when another write holds the sink too long
var ErrOutputBusy = errors.New("terminal output busy")

// Output serializes writers onto one sink. Every call is exactly one sink.Write, so
// bytes of two writes never interleave. Nothing is buffered between calls.
// Waiting for the sink is cancellable, so waiters never queue behind a wedged write
// past their own deadline.
type Output struct {
	sink io.Writer
	sem  *semaphore.Weighted
}

// NewOutput wraps w
func NewOutput(w io.Writer) *Output {
	return &Output{sink: w, sem: semaphore.NewWeighted(1)}
}

// Write waits for the sink and writes p as one unit
func (o *Output) Write(p []byte) (int, error) {
	if err := o.sem.Acquire(context.Background(), 1); err != nil {
		return 0, err
	}
	defer o.sem.Release(1)
	return o.sink.Write(p)
}

// WriteGuarded writes p unless ctx is done, checked again once the sink is held.
// Returns false without writing when ctx ends first.
func (o *Output) WriteGuarded(ctx context.Context, p []byte) (bool, error) {
	if err := o.sem.Acquire(ctx, 1); err != nil {
		return false, nil
	}
	defer o.sem.Release(1)

	if ctx.Err() != nil {
		return false, nil
	}
	_, err := o.sink.Write(p)
	return true, err
}

// WriteTimeout writes p if the sink frees up within d, otherwise returns ErrOutputBusy
func (o *Output) WriteTimeout(p []byte, d time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	if err := o.sem.Acquire(ctx, 1); err != nil {
		return ErrOutputBusy
	}
	defer o.sem.Release(1)
	_, err := o.sink.Write(p)
	return err
}
