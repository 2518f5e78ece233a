// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package graphtest implements a fake graph.Surface that records every
// drawing call, for use in tests.
package graphtest

import (
	"fmt"
	"image"
	"image/color"

	"github.com/GermanBionicSystems/tftgraph/graph"
)

// OpKind identifies a Surface primitive.
type OpKind int

// Surface primitives.
const (
	Pixel OpKind = iota
	Line
	FillRect
	Rect
	HLine
	VLine
)

func (k OpKind) String() string {
	switch k {
	case Pixel:
		return "Pixel"
	case Line:
		return "Line"
	case FillRect:
		return "FillRect"
	case Rect:
		return "Rect"
	case HLine:
		return "HLine"
	case VLine:
		return "VLine"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one recorded call.
//
// Pixel uses X0, Y0. Line uses X0, Y0, X1, Y1. FillRect and Rect use X0, Y0,
// W, H. HLine uses X0, Y0, W and VLine X0, Y0, H.
type Op struct {
	Kind   OpKind
	X0, Y0 int
	X1, Y1 int
	W, H   int
	C      color.RGBA
}

func (o Op) String() string {
	switch o.Kind {
	case Pixel:
		return fmt.Sprintf("Pixel(%d,%d %v)", o.X0, o.Y0, o.C)
	case Line:
		return fmt.Sprintf("Line(%d,%d-%d,%d %v)", o.X0, o.Y0, o.X1, o.Y1, o.C)
	default:
		return fmt.Sprintf("%s(%d,%d %dx%d %v)", o.Kind, o.X0, o.Y0, o.W, o.H, o.C)
	}
}

// Recorder is a graph.Surface that records calls.
//
// Size, when non-zero, is returned by Bounds so a Plot created without an
// explicit area covers it.
type Recorder struct {
	Size image.Point
	Ops  []Op
}

// Bounds returns the rectangle of Size pixels at the origin.
func (r *Recorder) Bounds() image.Rectangle {
	return image.Rectangle{Max: r.Size}
}

// DrawPixel implements graph.Surface.
func (r *Recorder) DrawPixel(x, y int, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: Pixel, X0: x, Y0: y, C: c})
}

// DrawLine implements graph.Surface.
func (r *Recorder) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: Line, X0: x0, Y0: y0, X1: x1, Y1: y1, C: c})
}

// FillRect implements graph.Surface.
func (r *Recorder) FillRect(x, y, w, h int, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: FillRect, X0: x, Y0: y, W: w, H: h, C: c})
}

// DrawRect implements graph.Surface.
func (r *Recorder) DrawRect(x, y, w, h int, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: Rect, X0: x, Y0: y, W: w, H: h, C: c})
}

// DrawFastHLine implements graph.Surface.
func (r *Recorder) DrawFastHLine(x, y, w int, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: HLine, X0: x, Y0: y, W: w, C: c})
}

// DrawFastVLine implements graph.Surface.
func (r *Recorder) DrawFastVLine(x, y, h int, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: VLine, X0: x, Y0: y, H: h, C: c})
}

// Reset forgets the recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Filter returns the recorded calls of kind k drawn with color c.
func (r *Recorder) Filter(k OpKind, c color.RGBA) []Op {
	var out []Op
	for _, o := range r.Ops {
		if o.Kind == k && o.C == c {
			out = append(out, o)
		}
	}
	return out
}

// Count returns the number of recorded calls of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, o := range r.Ops {
		if o.Kind == k {
			n++
		}
	}
	return n
}

var _ graph.Surface = &Recorder{}
