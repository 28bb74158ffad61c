package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/halfblock/render"
)

const (
	logDir      = "logs"
	logFileName = "halfblock.log"
	maxLogSize  = 10 * 1024 * 1024 // rotate past 10MB
)

// setupLogging routes the standard logger and the renderer logger to logs/halfblock.log.
// With debug off everything is discarded and nil is returned. Nothing goes to
// stdout/stderr since the screen belongs to the renderer.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		render.SetLogger(nil)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("halfblock-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	render.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	log.Printf("halfblock logging started (pid %d)", os.Getpid())
	return f
}
