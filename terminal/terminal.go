package terminal

import (
	"context"
	"io"
	"os"
	"sync"
)

// Console owns the controlling terminal: raw mode, screen modes, quit keys and resize events
type Console struct {
	backend Backend
	out     io.Writer

	mu        sync.Mutex
	active    bool
	altScreen bool
}

// NewConsole creates a console writing control sequences to out
func NewConsole(out io.Writer) *Console {
	return &Console{
		backend: newBackend(),
		out:     out,
	}
}

// Init enters raw mode and optionally switches to the alternate screen.
// Returns ErrNotTerminal when stdin is not a terminal; the console is left untouched.
func (c *Console) Init(altScreen bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active {
		return nil
	}
	if err := c.backend.Init(); err != nil {
		return err
	}

	if altScreen {
		c.out.Write(csiAltScreenEnter)
		c.altScreen = true
	}
	c.out.Write(csiAutoWrapOff)
	c.active = true
	return nil
}

// Fini restores attributes, cursor, screen and line discipline. Safe to call twice.
func (c *Console) Fini() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return
	}
	c.out.Write(csiSGR0)
	c.out.Write(csiAutoWrapOn)
	c.out.Write(csiCursorShow)
	if c.altScreen {
		c.out.Write(csiAltScreenExit)
		c.altScreen = false
	}
	c.backend.Fini()
	c.active = false
}

// Size reports the console in columns and lines
func (c *Console) Size() (int, int, error) {
	return c.backend.Size()
}

// OnResize registers fn for SIGWINCH-driven size changes
func (c *Console) OnResize(fn func(cols, lines int)) {
	c.backend.SetResizeHandler(fn)
}

// WaitQuit blocks until a quit key is read, input ends, or ctx is done.
// Returns nil on a quit key or EOF, ctx.Err() on cancellation.
func (c *Console) WaitQuit(ctx context.Context) error {
	for {
		data, err := c.backend.Read(ctx.Done())
		if err != nil {
			return err
		}
		if data == nil {
			return ctx.Err()
		}
		if IsQuitKey(data) {
			return nil
		}
	}
}

// IsQuitKey reports whether one read of raw input is q, Q, a lone Esc, or Ctrl-C
func IsQuitKey(data []byte) bool {
	if len(data) == 1 {
		switch data[0] {
		case 'q', 'Q', 0x1b, 0x03:
			return true
		}
		return false
	}
	// Ctrl-C anywhere in a burst still quits; escape sequences (arrows) do not
	for _, b := range data {
		if b == 0x03 {
			return true
		}
	}
	return false
}

// EmergencyReset attempts to restore terminal to sane state
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort in crash context
	resetTerminalMode()
}
