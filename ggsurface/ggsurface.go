// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ggsurface implements graph.Surface with the gg 2D rendering
// library.
//
// Lines are anti-aliased so the output is well suited to snapshots and
// documentation. Note that erasing an anti-aliased line with the background
// color can leave faint fringes; use package canvas on real displays.
package ggsurface

import (
	"image"
	"image/color"

	"github.com/GermanBionicSystems/tftgraph/graph"
	"github.com/fogleman/gg"
)

// Surface draws on a gg.Context.
type Surface struct {
	dc *gg.Context
}

// New returns a Surface backed by a new w×h context.
func New(w, h int) *Surface {
	return Wrap(gg.NewContext(w, h))
}

// Wrap returns a Surface drawing on dc.
func Wrap(dc *gg.Context) *Surface {
	dc.SetLineWidth(1)
	dc.SetLineCap(gg.LineCapSquare)
	return &Surface{dc: dc}
}

// Context returns the underlying context.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Bounds returns the size of the context.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.dc.Width(), s.dc.Height())
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the rendered image to path.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// DrawPixel implements graph.Surface.
func (s *Surface) DrawPixel(x, y int, c color.RGBA) {
	s.dc.SetColor(c)
	s.dc.SetPixel(x, y)
}

// DrawLine implements graph.Surface. Coordinates are moved to the pixel
// centers so a one pixel wide line covers whole pixels.
func (s *Surface) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	s.dc.SetColor(c)
	s.dc.DrawLine(float64(x0)+0.5, float64(y0)+0.5, float64(x1)+0.5, float64(y1)+0.5)
	s.dc.Stroke()
}

// FillRect implements graph.Surface.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	s.dc.Fill()
}

// DrawRect implements graph.Surface. The outline is made of filled rectangles
// so it stays crisp.
func (s *Surface) DrawRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	s.DrawFastHLine(x, y, w, c)
	s.DrawFastHLine(x, y+h-1, w, c)
	s.DrawFastVLine(x, y, h, c)
	s.DrawFastVLine(x+w-1, y, h, c)
}

// DrawFastHLine implements graph.Surface.
func (s *Surface) DrawFastHLine(x, y, w int, c color.RGBA) {
	s.FillRect(x, y, w, 1, c)
}

// DrawFastVLine implements graph.Surface.
func (s *Surface) DrawFastVLine(x, y, h int, c color.RGBA) {
	s.FillRect(x, y, 1, h, c)
}

var _ graph.Surface = &Surface{}
