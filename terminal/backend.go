package terminal

import "errors"

// ErrNotTerminal is returned when stdin is not attached to a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Size reports the console in columns and lines
	Size() (width, height int, err error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs.
	// A nil slice with nil error means stop or EOF.
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
