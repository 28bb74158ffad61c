//go:build !unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// portableBackend relies on x/term only; resize is picked up by size polling
type portableBackend struct {
	inFd    int
	outFd   int
	oldTerm *term.State
	inputCh chan []byte
}

func newBackend() Backend {
	return &portableBackend{
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (b *portableBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}
	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	b.oldTerm = old
	return nil
}

func (b *portableBackend) Fini() {
	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
	}
}

func (b *portableBackend) Size() (int, int, error) {
	w, h, err := term.GetSize(b.outFd)
	if err != nil {
		return 0, 0, fmt.Errorf("query console size: %w", err)
	}
	return w, h, nil
}

// Read uses a background reader since stdin cannot be polled portably
func (b *portableBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	if b.inputCh == nil {
		b.inputCh = make(chan []byte, 16)
		go func() {
			defer close(b.inputCh)
			buf := make([]byte, 256)
			for {
				n, err := os.Stdin.Read(buf)
				if err != nil || n == 0 {
					return
				}
				data := make([]byte, n)
				copy(data, buf[:n])
				b.inputCh <- data
			}
		}()
	}

	select {
	case <-stopCh:
		return nil, nil
	case data, ok := <-b.inputCh:
		if !ok {
			return nil, nil
		}
		return data, nil
	}
}

func (b *portableBackend) SetResizeHandler(func(width, height int)) {}
