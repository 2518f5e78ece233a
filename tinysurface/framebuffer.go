// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tinysurface

import (
	"errors"
	"image"
	"image/color"

	"github.com/GermanBionicSystems/tftgraph/graph"
	"tinygo.org/x/drivers"
)

// Framebuffer is an in-memory RGB565 display, laid out like the ILI9341 RAM.
//
// It implements drivers.Displayer so code written for a real panel runs on a
// host, and image.Image so the result can be inspected or shown.
type Framebuffer struct {
	w, h int
	buf  []byte
	// Frames counts the calls to Display.
	Frames int
}

// NewFramebuffer returns a black w×h framebuffer.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{w: w, h: h, buf: make([]byte, 2*w*h)}
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (x, y int16) {
	return int16(f.w), int16(f.h)
}

// SetPixel implements drivers.Displayer.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= f.w || iy >= f.h {
		return
	}
	pixel := graph.ToRGB565(c)
	off := (iy*f.w + ix) * 2
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

// Display implements drivers.Displayer.
func (f *Framebuffer) Display() error {
	f.Frames++
	return nil
}

// FillRectangle fills the rectangle clipped to the framebuffer.
func (f *Framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if width <= 0 || height <= 0 {
		return errors.New("tinysurface: empty rectangle")
	}
	x0, y0 := clampInt(int(x), 0, f.w), clampInt(int(y), 0, f.h)
	x1, y1 := clampInt(int(x)+int(width), 0, f.w), clampInt(int(y)+int(height), 0, f.h)
	pixel := graph.ToRGB565(c)
	lo, hi := byte(pixel), byte(pixel>>8)
	for py := y0; py < y1; py++ {
		row := py * f.w * 2
		for px := x0; px < x1; px++ {
			f.buf[row+px*2] = lo
			f.buf[row+px*2+1] = hi
		}
	}
	return nil
}

// Pix returns the raw little endian RGB565 pixels.
func (f *Framebuffer) Pix() []byte {
	return f.buf
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.w, f.h)
}

// At implements image.Image.
func (f *Framebuffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return color.RGBA{}
	}
	off := (y*f.w + x) * 2
	return graph.RGB565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var _ drivers.Displayer = &Framebuffer{}
var _ image.Image = &Framebuffer{}
