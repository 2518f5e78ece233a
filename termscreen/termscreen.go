// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termscreen implements a 2D display.Drawer that outputs to the
// terminal (stdout) using ANSI color codes.
//
// Useful to work on a graph layout while the real display is still in the
// mail. The picture is downscaled to fit the requested number of terminal
// cells.
package termscreen

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	// W and H are the emulated display size in pixels.
	W, H int
	// Cols and Rows are the number of terminal cells used. Zero means one
	// cell per pixel.
	Cols, Rows int
	Palette    *ansi256.Palette

	_ struct{}
}

// Dev is a display emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette

	img   *image.RGBA
	cells *image.RGBA
	buf   bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that writes its frames to w.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 {
		cols = opts.W
	}
	if rows <= 0 {
		rows = opts.H
	}
	return &Dev{
		w:       w,
		palette: *p,
		img:     image.NewRGBA(image.Rect(0, 0, opts.W, opts.H)),
		cells:   image.NewRGBA(image.Rect(0, 0, cols, rows)),
	}
}

func (d *Dev) String() string {
	return "TermScreen"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so it is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Write accepts a stream of raw RGB pixels, row by row, and writes it to the
// console.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels)%3 != 0 {
		return 0, errors.New("termscreen: invalid RGB stream length")
	}
	b := d.img.Bounds()
	if n := len(pixels) / 3; n > b.Dx()*b.Dy() {
		return 0, fmt.Errorf("termscreen: %d pixels do not fit %dx%d", n, b.Dx(), b.Dy())
	}
	for i := 0; i < len(pixels)/3; i++ {
		j := 4 * i
		d.img.Pix[j] = pixels[3*i]
		d.img.Pix[j+1] = pixels[3*i+1]
		d.img.Pix[j+2] = pixels[3*i+2]
		d.img.Pix[j+3] = 0xFF
	}
	if err := d.refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.img.Bounds()
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	xdraw.Draw(d.img, r.Intersect(d.Bounds()), src, sp, xdraw.Src)
	return d.refresh()
}

// Image returns the emulated display content.
func (d *Dev) Image() image.Image {
	return d.img
}

func (d *Dev) refresh() error {
	xdraw.NearestNeighbor.Scale(d.cells, d.cells.Bounds(), d.img, d.img.Bounds(), xdraw.Src, nil)
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\033[H\033[0m")
	b := d.cells.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := d.cells.PixOffset(x, y)
			c := color.NRGBA{d.cells.Pix[i], d.cells.Pix[i+1], d.cells.Pix[i+2], 255}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
