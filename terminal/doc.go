// Package terminal encodes half-block rows as ANSI escape sequences and owns the
// controlling terminal.
//
// Features:
//   - True color (24-bit) and 256-color palette encoding
//   - Per-line SGR coalescing: a color escape is emitted only when it changes
//   - Locked buffered output shared by concurrent line writers
//   - Raw mode, quit-key polling and SIGWINCH resize notification
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
