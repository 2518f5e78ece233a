// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package graph

import (
	"image"
	"image/color"
	"math"
)

// AxisPlacement selects where an axis is drawn.
type AxisPlacement int

// Axis placements. Left and Right only apply to the vertical axis, Top and
// Bottom to the horizontal one; a placement that does not apply behaves like
// Centre.
const (
	// AxisCentre draws the axis through the data origin, clamped to the
	// plot interior. It is the zero value.
	AxisCentre AxisPlacement = iota
	AxisLeft
	AxisRight
	AxisTop
	AxisBottom
)

// ScaleMode selects how the pixel bounds of an axis are determined.
type ScaleMode int

// Scale modes.
const (
	// ScaleAuto derives the pixel bounds from the area and the border.
	ScaleAuto ScaleMode = iota
	// ScaleManual uses the bounds set with SetXScale or SetYScale.
	ScaleManual
)

// RangeMode selects how the data bounds of an axis are determined.
type RangeMode int

// Range modes.
const (
	// RangeAuto derives the data bounds from the points of every series.
	RangeAuto RangeMode = iota
	// RangeManual uses the bounds set with SetXRange or SetYRange.
	RangeManual
)

// Scale is a span in pixels.
type Scale struct {
	Min, Max int
}

// Range is an inclusive span in data space.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies within r, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// degenerate reports whether r has no width.
func (r Range) degenerate() bool {
	return r.Min == r.Max
}

// FrameState is the complete configuration of a Plot for one frame.
//
// A Plot keeps the state being configured and the state the display was
// last drawn with. Comparing both tells what must be redrawn.
type FrameState struct {
	Area        image.Rectangle
	BorderWidth int

	BorderColor     color.RGBA
	BackgroundColor color.RGBA
	AxesColor       color.RGBA

	VAxis, HAxis AxisPlacement
	// Axes is where the vertical (X) and horizontal (Y) axes cross, in pixels.
	Axes image.Point

	XScaleMode, YScaleMode ScaleMode
	XScale, YScale         Scale

	XRangeMode, YRangeMode RangeMode
	XRange, YRange         Range
}

// Changed reports whether anything differs from prev.
func (f *FrameState) Changed(prev *FrameState) bool {
	return *f != *prev
}

// BodyChanged reports whether the border and background must be repainted.
func (f *FrameState) BodyChanged(prev *FrameState) bool {
	return f.Area != prev.Area ||
		f.BorderWidth != prev.BorderWidth ||
		f.BorderColor != prev.BorderColor ||
		f.BackgroundColor != prev.BackgroundColor
}

// Inner returns the area inside the border.
func (f *FrameState) Inner() image.Rectangle {
	return f.Area.Inset(f.BorderWidth)
}

// Map converts p into pixel coordinates. X grows to the right and Y is
// inverted so the top of the range is at the top of the display.
func (f *FrameState) Map(p Point) image.Point {
	return image.Point{
		X: round(lerp(p.X, f.XRange.Min, f.XRange.Max, float64(f.XScale.Min), float64(f.XScale.Max))),
		Y: round(lerp(p.Y, f.YRange.Min, f.YRange.Max, float64(f.YScale.Max), float64(f.YScale.Min))),
	}
}

// autoScale computes the pixel bounds of the axes in ScaleAuto mode.
func (f *FrameState) autoScale() {
	if f.XScaleMode == ScaleAuto {
		f.XScale = Scale{Min: f.Area.Min.X + f.BorderWidth, Max: f.Area.Max.X - f.BorderWidth}
	}
	if f.YScaleMode == ScaleAuto {
		f.YScale = Scale{Min: f.Area.Min.Y + f.BorderWidth, Max: f.Area.Max.Y - f.BorderWidth}
	}
}

// axesPosition computes Axes from the placements.
func (f *FrameState) axesPosition() {
	in := f.Inner()
	switch f.VAxis {
	case AxisLeft:
		f.Axes.X = in.Min.X
	case AxisRight:
		f.Axes.X = in.Max.X - 1
	default:
		f.Axes.X = clamp(f.Map(Point{}).X, in.Min.X, in.Max.X-1)
	}
	switch f.HAxis {
	case AxisTop:
		f.Axes.Y = in.Min.Y
	case AxisBottom:
		f.Axes.Y = in.Max.Y - 1
	default:
		f.Axes.Y = clamp(f.Map(Point{}).Y, in.Min.Y, in.Max.Y-1)
	}
}

// lerp maps v from [inMin, inMax] onto [outMin, outMax]. An empty input
// range maps to the middle of the output range.
func lerp(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return (outMin + outMax) / 2
	}
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
