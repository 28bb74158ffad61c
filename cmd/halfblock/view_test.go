package main

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/halfblock/canvas"
	"github.com/lixenwraith/halfblock/pixel"
	"github.com/lixenwraith/halfblock/render"
	"github.com/lixenwraith/halfblock/vmath"
)

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
}

func TestPictureFitsAndCaches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	writePNG(t, path, 40, 20, color.NRGBA{R: 255, A: 255})

	pic, err := loadPicture(path, canvas.RepeatDisable, 2)
	if err != nil {
		t.Fatalf("loadPicture failed: %v", err)
	}

	res := vmath.Vec2{X: 20, Y: 20}
	src := pic.tick(res)
	if w, h := src.Size(); w != 20 || h != 10 {
		t.Errorf("Expected 20x10 fit, got %dx%d", w, h)
	}
	if c, err := src.Sample(5, 5); err != nil || c != pixel.Red {
		t.Errorf("Expected red pixel, got %v %v", c, err)
	}
	if pic.tick(res) != src {
		t.Error("Expected cached source for unchanged resolution")
	}
	if pic.tick(vmath.Vec2{X: 10, Y: 10}) == src {
		t.Error("Expected new source after resolution change")
	}
}

func TestPictureInfiniteTiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.png")
	writePNG(t, path, 10, 10, color.NRGBA{B: 255, A: 255})

	pic, err := loadPicture(path, canvas.RepeatInfinite, 2)
	if err != nil {
		t.Fatalf("loadPicture failed: %v", err)
	}
	src := pic.tick(vmath.Vec2{X: 20, Y: 20})
	if c, err := src.Sample(35, 35); err != nil || c != pixel.Blue {
		t.Errorf("Expected wrapped blue sample, got %v %v", c, err)
	}
}

func TestLoadPictureMissing(t *testing.T) {
	if _, err := loadPicture(filepath.Join(t.TempDir(), "none.png"), canvas.RepeatDisable, 1); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestWatchPictureReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.png")
	writePNG(t, path, 8, 8, color.NRGBA{R: 255, A: 255})

	pic, err := loadPicture(path, canvas.RepeatDisable, 1)
	if err != nil {
		t.Fatalf("loadPicture failed: %v", err)
	}
	res := vmath.Vec2{X: 8, Y: 8}
	if c, _ := pic.tick(res).Sample(0, 0); c != pixel.Red {
		t.Fatalf("Expected red before reload, got %v", c)
	}

	size := func() (int, int, error) { return 8, 4, nil }
	r, err := render.New(pic.tick, size, &discardWriter{}, render.DefaultOptions())
	if err != nil {
		t.Fatalf("render.New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watchPicture(ctx, pic, r) }()

	// Give the watcher time to register before writing
	time.Sleep(50 * time.Millisecond)
	writePNG(t, path, 8, 8, color.NRGBA{G: 255, A: 255})

	deadline := time.Now().Add(3 * time.Second)
	for {
		if c, _ := pic.tick(res).Sample(0, 0); c == pixel.Green {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Expected picture to reload after file change")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil from watcher on cancel, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected watcher to return after cancel")
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
