// Package config loads renderer settings from a TOML file
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/halfblock/canvas"
	"github.com/lixenwraith/halfblock/parameter"
	"github.com/lixenwraith/halfblock/pixel"
	"github.com/lixenwraith/halfblock/render"
	"github.com/lixenwraith/halfblock/terminal"
)

// ErrUnknownKey is returned when the file carries keys Config does not define
var ErrUnknownKey = errors.New("unknown config key")

// Config mirrors the file layout; zero values mean "use default"
type Config struct {
	FPS           int    `toml:"fps"`
	Background    string `toml:"background"`
	DisableCursor bool   `toml:"disable_cursor"`
	Workers       int    `toml:"workers"`
	RepeatMode    string `toml:"repeat_mode"` // direct | centered
	Strategy      string `toml:"strategy"`    // bands | full
	Color         string `toml:"color"`       // auto | truecolor | 256
	Debug         bool   `toml:"debug"`

	// Texture repeat for image sources: disable | finite | infinite
	Texture string `toml:"texture"`

	Timing Timing `toml:"timing"`
}

// Timing holds optional worker pacing overrides in milliseconds
type Timing struct {
	PollMs int `toml:"poll_ms"`
	DrawMs int `toml:"draw_ms"`
	JoinMs int `toml:"join_ms"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FPS:           parameter.DefaultFPS,
		Background:    "0,0,0",
		DisableCursor: true,
		Workers:       render.DefaultWorkers(),
		RepeatMode:    render.SampleDirect.String(),
		Strategy:      render.StrategyBands.String(),
		Color:         "auto",
		Texture:       canvas.RepeatDisable.String(),
	}
}

// Load reads path over the defaults. Keys absent from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Options validates the configuration and converts it to render options
func (c Config) Options() (render.Options, error) {
	opts := render.DefaultOptions()
	opts.DisableCursor = c.DisableCursor

	if c.FPS != 0 {
		opts.FPS = c.FPS
	}
	if c.Workers != 0 {
		opts.Workers = c.Workers
	}

	if c.Background != "" {
		bg, err := pixel.ParseColor(c.Background)
		if err != nil {
			return opts, fmt.Errorf("background: %w", err)
		}
		opts.Background = bg
	}

	mode, err := render.ParseSampleMode(c.RepeatMode)
	if err != nil {
		return opts, err
	}
	opts.Mode = mode

	strategy, err := render.ParseStrategy(c.Strategy)
	if err != nil {
		return opts, err
	}
	opts.Strategy = strategy

	colorMode, err := terminal.ParseColorMode(c.Color)
	if err != nil {
		return opts, fmt.Errorf("%w: %w", render.ErrInvalidOptions, err)
	}
	opts.ColorMode = colorMode

	if c.Timing.PollMs > 0 {
		opts.PollInterval = time.Duration(c.Timing.PollMs) * time.Millisecond
	}
	if c.Timing.DrawMs > 0 {
		opts.DrawInterval = time.Duration(c.Timing.DrawMs) * time.Millisecond
	}
	if c.Timing.JoinMs > 0 {
		opts.JoinTimeout = time.Duration(c.Timing.JoinMs) * time.Millisecond
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// TextureMode parses the image texture repeat mode
func (c Config) TextureMode() (canvas.RepeatMode, error) {
	if c.Texture == "" {
		return canvas.RepeatDisable, nil
	}
	return canvas.ParseRepeatMode(c.Texture)
}
