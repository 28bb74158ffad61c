package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/halfblock/config"
)

// resolveConfig loads the config file if given, then applies explicitly set flags over it
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("fps") {
		cfg.FPS = flags.fps
	}
	if f.Changed("workers") {
		cfg.Workers = flags.workers
	}
	if f.Changed("bg") {
		cfg.Background = flags.background
	}
	if f.Changed("mode") {
		cfg.RepeatMode = flags.mode
	}
	if f.Changed("strategy") {
		cfg.Strategy = flags.strategy
	}
	if f.Changed("color") {
		cfg.Color = flags.color
	}
	if f.Changed("texture") {
		cfg.Texture = flags.texture
	}
	if f.Changed("cursor") {
		cfg.DisableCursor = !flags.showCursor
	}
	if f.Changed("debug") {
		cfg.Debug = flags.debug
	}
	return cfg, nil
}
