// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tinysurface draws graphs on TinyGo display drivers.
//
// Any drivers.Displayer (ili9341, st7789, ssd1306, ...) can be wrapped. When
// the driver has a FillRectangle method it is used for the border,
// background and axes.
package tinysurface

import (
	"image"
	"image/color"

	"github.com/GermanBionicSystems/tftgraph/canvas"
	"tinygo.org/x/drivers"
)

// rectangleFiller is implemented by most TFT drivers.
type rectangleFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Display exposes a drivers.Displayer as a write-only draw.Image.
type Display struct {
	d drivers.Displayer
}

// New returns a canvas drawing on d.
//
// Call d.Display() after each graph.Plot.Redraw for buffered drivers.
func New(d drivers.Displayer) *canvas.Canvas {
	return canvas.New(Wrap(d))
}

// Wrap returns d as a draw.Image.
func Wrap(d drivers.Displayer) *Display {
	return &Display{d: d}
}

// ColorModel implements image.Image.
func (d *Display) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (d *Display) Bounds() image.Rectangle {
	w, h := d.d.Size()
	return image.Rect(0, 0, int(w), int(h))
}

// At implements image.Image. Displays cannot be read back, it always
// returns transparent black.
func (d *Display) At(x, y int) color.Color {
	return color.RGBA{}
}

// Set implements draw.Image.
func (d *Display) Set(x, y int, c color.Color) {
	d.d.SetPixel(int16(x), int16(y), color.RGBAModel.Convert(c).(color.RGBA))
}

// FillRect implements canvas.RectFiller.
func (d *Display) FillRect(r image.Rectangle, c color.RGBA) {
	if f, ok := d.d.(rectangleFiller); ok {
		if err := f.FillRectangle(int16(r.Min.X), int16(r.Min.Y), int16(r.Dx()), int16(r.Dy()), c); err == nil {
			return
		}
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d.d.SetPixel(int16(x), int16(y), c)
		}
	}
}

// Display pushes the driver buffer to the screen.
func (d *Display) Display() error {
	return d.d.Display()
}

var _ canvas.RectFiller = &Display{}
