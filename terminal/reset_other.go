//go:build !linux

package terminal

// resetTerminalMode is a no-op where termios ioctls differ; Console.Fini restores state
func resetTerminalMode() {}
