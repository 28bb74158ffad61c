// Command halfblock renders animated scenes and images to the terminal with half-block glyphs
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/halfblock/core"
)

// flag values shared by all subcommands
var flags struct {
	configPath string
	fps        int
	workers    int
	background string
	mode       string
	strategy   string
	color      string
	texture    string
	showCursor bool
	debug      bool
}

// root command
var rootCmd = &cobra.Command{
	Use:           "halfblock",
	Short:         "Half-block terminal renderer",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "TOML config file")
	pf.IntVar(&flags.fps, "fps", 60, "Target frames per second")
	pf.IntVarP(&flags.workers, "workers", "w", 0, "Band workers (default min(CPUs, 6))")
	pf.StringVar(&flags.background, "bg", "0,0,0", "Background color: r,g,b, #rrggbb or a color name")
	pf.StringVarP(&flags.mode, "mode", "m", "direct", "Sampling: direct, centered")
	pf.StringVar(&flags.strategy, "strategy", "bands", "Drawing: bands, full")
	pf.StringVar(&flags.color, "color", "auto", "Color mode: auto, truecolor, 256")
	pf.StringVar(&flags.texture, "texture", "disable", "Image repeat: disable, finite, infinite")
	pf.BoolVar(&flags.showCursor, "cursor", false, "Keep the cursor visible while drawing")
	pf.BoolVar(&flags.debug, "debug", false, "Write logs to logs/halfblock.log")

	rootCmd.AddCommand(demoCmd, viewCmd, showCmd)
}

func main() {
	// Panic Recovery: ensure terminal is reset even if rendering crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
