package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// show command
var showCmd = &cobra.Command{
	Use:   "show <image>",
	Short: "Print an image once at the cursor and exit",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().IntVar(&viewTiles, "tiles", 2, "Tiles per axis for finite/infinite texture modes")
}

func runShow(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("show %s: %w", args[0], err)
	}
	return s.renderer.ShowFrame()
}
