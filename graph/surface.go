// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package graph

import (
	"image"
	"image/color"
)

// Surface is the set of drawing primitives a Plot needs.
//
// All coordinates are in pixels. Calls are fire and forget; a Surface is
// expected to clip anything outside of its area.
type Surface interface {
	// DrawPixel sets a single pixel.
	DrawPixel(x, y int, c color.RGBA)
	// DrawLine draws a one pixel wide line, both end points included.
	DrawLine(x0, y0, x1, y1 int, c color.RGBA)
	// FillRect fills the w×h rectangle starting at x, y.
	FillRect(x, y, w, h int, c color.RGBA)
	// DrawRect draws the one pixel wide outline of the w×h rectangle starting
	// at x, y.
	DrawRect(x, y, w, h int, c color.RGBA)
	// DrawFastHLine draws w pixels to the right starting at x, y.
	DrawFastHLine(x, y, w int, c color.RGBA)
	// DrawFastVLine draws h pixels downward starting at x, y.
	DrawFastVLine(x, y, h int, c color.RGBA)
}

// bounded is implemented by surfaces that know their own size.
type bounded interface {
	Bounds() image.Rectangle
}
