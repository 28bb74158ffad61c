package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/halfblock/demo"
)

var demoSeed uint64

// demo command
var demoCmd = &cobra.Command{
	Use:   "demo [" + strings.Join(demo.Names(), "|") + "]",
	Short: "Run an animated demo scene (q, Esc or Ctrl-C quits)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().Uint64Var(&demoSeed, "seed", 0, "Random seed (default: time based)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	name := "bounce"
	if len(args) == 1 {
		name = args[0]
	}
	seed := demoSeed
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}

	scene, err := demo.New(name, seed)
	if err != nil {
		return err
	}

	s, err := newSession(cfg, scene.Tick, scene.Resize)
	if err != nil {
		return fmt.Errorf("demo %s: %w", name, err)
	}
	return s.run(cmd.Context())
}
