package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hotview/internal/config"
	"hotview/internal/ui"
)

const keysHelp = `
navigation keys:
  <Escape>, q, Q   Quit
  <Left>, p, P     Go to previous image
  <Right>, n, N    Go to next image
  <Home>, h, H     Go to the first image in the folder
  <End>, E         Go to the last image in the folder
  <Space>          Toggle the slideshow
  +                Double the speed of the slideshow
  -                Halve the speed of the slideshow
  c                Toggle centring of images
  e                Toggle display of the histogram and EXIF info
  i                Toggle display of the full EXIF comment
  t                Edit the notes for the current image
  x                Clear the list of images being skipped
  u                Toggle automatic updating
  0,1,...9         Rate the current image
  shift 0..9       Set the minimum rating to display`

// NewRootCmd builds the viewer command. The run function is injected
// so tests can inspect the resolved configuration without opening a
// window.
func NewRootCmd(run func(*config.Config) error) *cobra.Command {
	var configPath string
	flagCfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "hotview [directory]",
		Short: "Display images as they appear in a hot folder",
		Long:  "Display images as they appear in a hot folder.\n" + keysHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				if p, err := config.DefaultPath(); err == nil {
					path = p
				}
			} else if _, err := os.Stat(path); err != nil {
				// A missing default config is fine, a missing
				// requested one is not.
				return fmt.Errorf("config file: %w", err)
			}

			cfg := config.Default()
			if path != "" {
				loaded, err := config.LoadFile(path)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Command line beats the config file.
			flags := cmd.Flags()
			if flags.Changed("width") {
				cfg.Width = flagCfg.Width
			}
			if flags.Changed("height") {
				cfg.Height = flagCfg.Height
			}
			if flags.Changed("bare") {
				cfg.Bare = flagCfg.Bare
			}
			if flags.Changed("bell") {
				cfg.Bell = flagCfg.Bell
			}
			if flags.Changed("sort") {
				cfg.Sort = flagCfg.Sort
			}
			if flags.Changed("randomise") {
				cfg.Randomise = flagCfg.Randomise
			}
			if flags.Changed("treewalk") {
				cfg.Recursive = flagCfg.Recursive
			}
			if flags.Changed("filter") {
				cfg.Filter = flagCfg.Filter
			}
			if flags.Changed("ticks") {
				cfg.Ticks = flagCfg.Ticks
			}
			if flags.Changed("debug") {
				cfg.Debug = flagCfg.Debug
			}
			cfg.Folder = args[0]

			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	f := rootCmd.Flags()
	f.IntVar(&flagCfg.Width, "width", 0, "Width of app window")
	f.IntVar(&flagCfg.Height, "height", 0, "Height of app window")
	f.BoolVar(&flagCfg.Bare, "bare", false, "Disable window manager decoration")
	f.BoolVar(&flagCfg.Bell, "bell", false, "Ring the bell when new images appear")
	f.BoolVar(&flagCfg.Sort, "sort", false, "Sort images into alphabetical order")
	f.BoolVar(&flagCfg.Randomise, "randomise", false, "Randomise the order of new images")
	f.BoolVar(&flagCfg.Recursive, "treewalk", false, "Include subdirectories in the scan")
	f.StringVar(&flagCfg.Filter, "filter", "", "Set the minimum rating to display")
	f.IntVar(&flagCfg.Ticks, "ticks", config.Default().Ticks, "Slideshow ticks per image")
	f.BoolVar(&flagCfg.Debug, "debug", false, "Print debug info to standard output")
	f.StringVar(&configPath, "config", "", "Path to YAML config file")

	return rootCmd
}

func main() {
	rootCmd := NewRootCmd(ui.CreateApplication)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
