package render

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/halfblock/terminal"
)

// recordingWriter captures everything written, counting Write calls
type recordingWriter struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	writes int
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes++
	return w.buf.Write(p)
}

func (w *recordingWriter) Writes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writes
}

func (w *recordingWriter) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Len()
}

func (w *recordingWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

// fakeConsole reports a settable size, or an error
type fakeConsole struct {
	mu    sync.Mutex
	cols  int
	lines int
	err   error
}

func (c *fakeConsole) set(cols, lines int) {
	c.mu.Lock()
	c.cols, c.lines = cols, lines
	c.mu.Unlock()
}

func (c *fakeConsole) fail(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

func (c *fakeConsole) Size() (int, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, 0, c.err
	}
	return c.cols, c.lines, nil
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.FPS = 120
	opts.Workers = 3
	opts.PollInterval = 2 * time.Millisecond
	opts.DrawInterval = time.Millisecond
	opts.JoinTimeout = 500 * time.Millisecond
	opts.ColorMode = terminal.ColorModeTrueColor
	return opts
}

func waitFor(t *testing.T, timeout time.Duration, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %s", what)
}

func glyphs(s string) int {
	return strings.Count(s, "▀")
}

var cupPattern = regexp.MustCompile(`\x1b\[(\d+);(\d+)H`)

// positionedLine is one CUP-prefixed line write: 0-indexed position and glyph count
type positionedLine struct {
	row, col int
	glyphs   int
}

func parseLines(s string) []positionedLine {
	idx := cupPattern.FindAllStringSubmatchIndex(s, -1)
	lines := make([]positionedLine, 0, len(idx))
	for i, m := range idx {
		row, _ := strconv.Atoi(s[m[2]:m[3]])
		col, _ := strconv.Atoi(s[m[4]:m[5]])
		end := len(s)
		if i+1 < len(idx) {
			end = idx[i+1][0]
		}
		lines = append(lines, positionedLine{row: row - 1, col: col - 1, glyphs: glyphs(s[m[1]:end])})
	}
	return lines
}
