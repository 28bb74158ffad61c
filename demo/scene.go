// Package demo provides animated scenes that exercise the renderer
package demo

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lixenwraith/halfblock/canvas"
	"github.com/lixenwraith/halfblock/vmath"
)

// ErrUnknownScene is returned by New for names not in Names()
var ErrUnknownScene = errors.New("unknown scene")

// Scene produces one source per tick and reacts to console resizes
type Scene interface {
	Tick(res vmath.Vec2) canvas.Source
	Resize(res vmath.Vec2) canvas.Source
}

var constructors = map[string]func(seed uint64) Scene{
	"bounce":  func(seed uint64) Scene { return NewBounce(seed) },
	"plasma":  func(uint64) Scene { return NewPlasma() },
	"checker": func(uint64) Scene { return NewChecker() },
}

// Names lists the available scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New builds the named scene; seed drives any randomness
func New(name string, seed uint64) (Scene, error) {
	ctor, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return ctor(seed), nil
}
