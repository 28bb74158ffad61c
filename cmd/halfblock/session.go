package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/halfblock/config"
	"github.com/lixenwraith/halfblock/core"
	"github.com/lixenwraith/halfblock/render"
	"github.com/lixenwraith/halfblock/terminal"
)

// session wires a renderer to the console for the lifetime of one command
type session struct {
	cfg      config.Config
	console  *terminal.Console
	renderer *render.Renderer
}

// newSession builds the renderer from cfg; tick and resize come from the command
func newSession(cfg config.Config, tick render.TickFunc, resize render.ResizeFunc) (*session, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	console := terminal.NewConsole(os.Stdout)
	r, err := render.New(tick, console.Size, os.Stdout, opts)
	if err != nil {
		return nil, err
	}
	r.OnResize(resize)

	log.Printf("session: fps=%d workers=%d mode=%s strategy=%s color=%s",
		opts.FPS, opts.Workers, opts.Mode, opts.Strategy, opts.ColorMode)
	return &session{cfg: cfg, console: console, renderer: r}, nil
}

// run drives the renderer until a quit key, a signal, or an error from any task.
// Extra tasks run alongside and must return once their context is done.
func (s *session) run(ctx context.Context, extra ...func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interactive := true
	if err := s.console.Init(true); err != nil {
		if !errors.Is(err, terminal.ErrNotTerminal) {
			return err
		}
		log.Printf("console not interactive, quit with a signal: %v", err)
		interactive = false
	} else {
		core.SetCrashConsole(s.console)
		defer core.SetCrashConsole(nil)
		defer s.console.Fini()
		s.console.OnResize(func(cols, lines int) {
			log.Printf("SIGWINCH: %dx%d", cols, lines)
			s.renderer.Wake()
		})
	}

	g, gctx := errgroup.WithContext(ctx)

	// Whichever task ends first ends the session
	g.Go(guard(func() error {
		defer cancel()
		return s.renderer.Run(gctx)
	}))

	if interactive {
		g.Go(guard(func() error {
			defer cancel()
			if err := s.console.WaitQuit(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		}))
	}

	for _, task := range extra {
		g.Go(guard(func() error {
			defer cancel()
			return task(gctx)
		}))
	}

	err := g.Wait()
	log.Printf("session ended: published=%d err=%v", s.renderer.Published(), err)
	return err
}

// guard recovers panics in errgroup tasks through the terminal-restoring crash handler
func guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return fn()
	}
}
