// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// graphdemo draws a live graph on a terminal, a PNG file, a desktop window
// or an SSD1306 OLED display.
package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/GermanBionicSystems/tftgraph/canvas"
	"github.com/GermanBionicSystems/tftgraph/ebitenview"
	"github.com/GermanBionicSystems/tftgraph/ggsurface"
	"github.com/GermanBionicSystems/tftgraph/graph"
	"github.com/GermanBionicSystems/tftgraph/termscreen"
	"github.com/GermanBionicSystems/tftgraph/tinysurface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

var (
	width    int
	height   int
	frames   int
	window   int
	interval time.Duration
	seed     int64
	verbose  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "graphdemo",
		Short: "Draw a live graph with incremental redraws",
		Long: `graphdemo feeds a sine wave and random noise to a graph and redraws it
frame after frame, erasing only what changed.`,
		SilenceUsage: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&width, "width", 320, "Display width in pixels")
	pf.IntVar(&height, "height", 240, "Display height in pixels")
	pf.IntVar(&frames, "frames", 200, "Number of frames to draw (0 means forever)")
	pf.IntVar(&window, "window", 64, "Number of samples kept on screen")
	pf.DurationVar(&interval, "interval", 50*time.Millisecond, "Delay between frames")
	pf.Int64Var(&seed, "seed", 1, "Random seed of the noise series")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log every frame")

	var cols, rows int
	termCmd := &cobra.Command{
		Use:   "term",
		Short: "Draw in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerm(cols, rows)
		},
	}
	termCmd.Flags().IntVar(&cols, "cols", 80, "Terminal columns")
	termCmd.Flags().IntVar(&rows, "rows", 30, "Terminal rows")

	var out string
	pngCmd := &cobra.Command{
		Use:   "png",
		Short: "Draw the last frame to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPNG(out)
		},
	}
	pngCmd.Flags().StringVarP(&out, "output", "o", "graph.png", "Output file path")

	var scale int
	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "Draw in a desktop window through an emulated RGB565 panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(scale)
		},
	}
	windowCmd.Flags().IntVar(&scale, "scale", 2, "Window magnification")

	var bus string
	oledCmd := &cobra.Command{
		Use:   "ssd1306",
		Short: "Draw on a SSD1306 OLED display connected over I²C",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSD1306(bus)
		},
	}
	oledCmd.Flags().StringVar(&bus, "bus", "", "I²C bus name (default: first available)")

	rootCmd.AddCommand(termCmd, pngCmd, windowCmd, oledCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// plotOpts returns the plot options shared by every output.
func plotOpts(r image.Rectangle) *graph.Opts {
	opts := graph.DefaultOpts
	opts.Area = r
	opts.BorderWidth = 4
	opts.BorderColor = graph.DarkGrey
	opts.BackgroundColor = graph.Black
	opts.Halt = func(err error) {
		log.Fatal(err)
	}
	return &opts
}

// loop draws frames, calling flush after each one.
func loop(d *demo, flush func() error) error {
	for i := 0; frames == 0 || i < frames; i++ {
		start := time.Now()
		if err := d.step(); err != nil {
			return err
		}
		if err := flush(); err != nil {
			return err
		}
		if verbose {
			log.Printf("frame %d drawn in %s", i, time.Since(start))
		}
		time.Sleep(interval)
	}
	return nil
}

func runTerm(cols, rows int) error {
	dev := termscreen.New(&termscreen.Opts{W: width, H: height, Cols: cols, Rows: rows})
	defer dev.Halt()
	c := canvas.NewRGBA(dev.Bounds())
	d := newDemo(c, plotOpts(c.Bounds()), window, seed)
	return loop(d, func() error {
		return c.Flush(dev)
	})
}

func runPNG(out string) error {
	s := ggsurface.New(width, height)
	d := newDemo(s, plotOpts(s.Bounds()), window, seed)
	n := frames
	if n == 0 {
		n = window
	}
	for i := 0; i < n; i++ {
		if err := d.step(); err != nil {
			return err
		}
	}
	if err := s.SavePNG(out); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	log.Printf("wrote %s after %d frames", out, n)
	return nil
}

func runWindow(scale int) error {
	fb := tinysurface.NewFramebuffer(width, height)
	c := tinysurface.New(fb)
	d := newDemo(c, plotOpts(c.Bounds()), window, seed)
	n := 0
	step := func() error {
		if frames != 0 && n >= frames {
			return ebiten.Termination
		}
		n++
		if err := d.step(); err != nil {
			return err
		}
		return fb.Display()
	}
	return ebitenview.Run(fb, step, &ebitenview.Opts{Title: "graphdemo", Scale: scale})
}

func runSSD1306(bus string) error {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(bus)
	if err != nil {
		return err
	}
	defer b.Close()
	dev, err := ssd1306.NewI2C(b, &ssd1306.DefaultOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	defer dev.Halt()
	c := canvas.NewRGBA(dev.Bounds())
	opts := plotOpts(c.Bounds())
	// Monochrome: anything that is not black is lit.
	opts.BorderWidth = 1
	opts.BorderColor = graph.White
	d := newDemo(c, opts, window, seed)
	return loop(d, func() error {
		return c.Flush(dev)
	})
}
