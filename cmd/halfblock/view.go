package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/halfblock/render"
)

var (
	viewTiles   int
	viewNoWatch bool
)

// reloadDebounce coalesces the burst of events an editor save produces
const reloadDebounce = 200 * time.Millisecond

// view command
var viewCmd = &cobra.Command{
	Use:   "view <image>",
	Short: "Display an image fitted to the terminal, reloading it when the file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	viewCmd.Flags().IntVar(&viewTiles, "tiles", 2, "Tiles per axis for finite/infinite texture modes")
	viewCmd.Flags().BoolVar(&viewNoWatch, "no-watch", false, "Do not reload the image on change")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	mode, err := cfg.TextureMode()
	if err != nil {
		return err
	}
	pic, err := loadPicture(args[0], mode, viewTiles)
	if err != nil {
		return err
	}

	s, err := newSession(cfg, pic.tick, nil)
	if err != nil {
		return fmt.Errorf("view %s: %w", args[0], err)
	}
	if viewNoWatch {
		return s.run(cmd.Context())
	}
	return s.run(cmd.Context(), func(ctx context.Context) error {
		return watchPicture(ctx, pic, s.renderer)
	})
}

// watchPicture reloads pic when its file changes and wakes the renderer.
// The directory is watched since editors often replace the file instead of writing it.
func watchPicture(ctx context.Context, pic *picture, r *render.Renderer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error setting up file watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(pic.path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	// Debounce mechanism for reloads
	reloadTimer := time.NewTimer(0)
	if !reloadTimer.Stop() {
		<-reloadTimer.C
	}
	defer reloadTimer.Stop()
	reloadPending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				reloadTimer.Reset(reloadDebounce)
				reloadPending = true
			}
		case <-reloadTimer.C:
			if !reloadPending {
				continue
			}
			reloadPending = false
			if err := pic.reload(); err != nil {
				log.Printf("reload %s: %v", pic.path, err)
				continue
			}
			log.Printf("reloaded %s", pic.path)
			r.Wake()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}
