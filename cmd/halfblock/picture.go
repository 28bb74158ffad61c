package main

import (
	"image"
	"sync"

	"github.com/lixenwraith/halfblock/canvas"
	"github.com/lixenwraith/halfblock/vmath"
)

// picture is an image file fitted to the current resolution, reloadable at runtime
type picture struct {
	path  string
	mode  canvas.RepeatMode
	tiles int

	mu     sync.Mutex
	src    image.Image
	fitted canvas.Source
	fitRes vmath.Vec2
}

func loadPicture(path string, mode canvas.RepeatMode, tiles int) (*picture, error) {
	p := &picture{path: path, mode: mode, tiles: max(tiles, 1)}
	if err := p.reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// reload decodes the file again; on failure the previous image stays
func (p *picture) reload() error {
	img, err := canvas.Load(p.path)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.src = img
	p.fitted = nil
	p.mu.Unlock()
	return nil
}

// tick returns the image fitted to res, rescaling only when res or the file changed
func (p *picture) tick(res vmath.Vec2) canvas.Source {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fitted != nil && p.fitRes.Equal(res) {
		return p.fitted
	}

	w, h := res.Ints()
	if p.mode != canvas.RepeatDisable {
		// Tiles share the screen instead of one image filling it
		w, h = w/p.tiles, h/p.tiles
	}
	tex := canvas.NewTexture(canvas.Fit(p.src, w, h), p.mode)
	if p.mode == canvas.RepeatFinite {
		tex = tex.WithRepeat(p.tiles, p.tiles)
	}
	p.fitted = tex
	p.fitRes = res
	return p.fitted
}
