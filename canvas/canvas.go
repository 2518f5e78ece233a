// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package canvas implements graph.Surface on top of any draw.Image.
//
// The Canvas keeps track of the region modified since the last Flush so
// only that region is sent to a display.Drawer, which matters on slow
// buses.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/GermanBionicSystems/tftgraph/graph"
	"periph.io/x/conn/v3/display"
)

// RectFiller is implemented by images that can fill a rectangle faster than
// pixel by pixel.
type RectFiller interface {
	FillRect(r image.Rectangle, c color.RGBA)
}

// Canvas draws graph primitives on an image.
type Canvas struct {
	dst   draw.Image
	dirty image.Rectangle
}

// New returns a Canvas drawing on dst.
func New(dst draw.Image) *Canvas {
	return &Canvas{dst: dst}
}

// NewRGBA returns a Canvas backed by a new opaque black *image.RGBA.
func NewRGBA(r image.Rectangle) *Canvas {
	img := image.NewRGBA(r)
	draw.Draw(img, r, image.Black, image.Point{}, draw.Src)
	return New(img)
}

func (c *Canvas) String() string {
	return "Canvas"
}

// Image returns the image drawn on.
func (c *Canvas) Image() draw.Image {
	return c.dst
}

// Bounds returns the bounds of the underlying image.
func (c *Canvas) Bounds() image.Rectangle {
	return c.dst.Bounds()
}

// Dirty returns the region modified since the last Flush.
func (c *Canvas) Dirty() image.Rectangle {
	return c.dirty
}

// Flush sends the region modified since the last Flush to d.
func (c *Canvas) Flush(d display.Drawer) error {
	if c.dirty.Empty() {
		return nil
	}
	r := c.dirty
	c.dirty = image.Rectangle{}
	return d.Draw(r, c.dst, r.Min)
}

// DrawPixel implements graph.Surface.
func (c *Canvas) DrawPixel(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.dst.Bounds()) {
		return
	}
	c.dst.Set(x, y, col)
	c.mark(image.Rect(x, y, x+1, y+1))
}

// DrawLine implements graph.Surface using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA) {
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		c.DrawFastVLine(x0, y0, y1-y0+1, col)
		return
	}
	if y0 == y1 {
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		c.DrawFastHLine(x0, y0, x1-x0+1, col)
		return
	}
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.DrawPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillRect implements graph.Surface.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.dst.Bounds())
	if w <= 0 || h <= 0 || r.Empty() {
		return
	}
	if f, ok := c.dst.(RectFiller); ok {
		f.FillRect(r, col)
	} else {
		draw.Draw(c.dst, r, &image.Uniform{C: col}, image.Point{}, draw.Src)
	}
	c.mark(r)
}

// DrawRect implements graph.Surface.
func (c *Canvas) DrawRect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	c.DrawFastHLine(x, y, w, col)
	c.DrawFastHLine(x, y+h-1, w, col)
	c.DrawFastVLine(x, y, h, col)
	c.DrawFastVLine(x+w-1, y, h, col)
}

// DrawFastHLine implements graph.Surface.
func (c *Canvas) DrawFastHLine(x, y, w int, col color.RGBA) {
	c.FillRect(x, y, w, 1, col)
}

// DrawFastVLine implements graph.Surface.
func (c *Canvas) DrawFastVLine(x, y, h int, col color.RGBA) {
	c.FillRect(x, y, 1, h, col)
}

func (c *Canvas) mark(r image.Rectangle) {
	c.dirty = c.dirty.Union(r)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var _ graph.Surface = &Canvas{}
