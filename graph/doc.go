// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package graph implements a graphing widget for small pixel displays that
// redraws incrementally.
//
// A Plot owns a rectangular viewport on a Surface and any number of Series.
// Each call to Plot.Redraw draws one frame: data ranges are recomputed,
// the border and background are repainted only when the viewport geometry
// changed, pixels painted in the previous frame are erased using the
// previous frame's coordinate mapping and the current points are drawn with
// the current mapping.
//
// The package never draws pixels itself; it drives a Surface which exposes
// the handful of primitives found on most display drivers (pixel, line,
// rectangle outline and fill, fast horizontal and vertical lines). See the
// canvas, tinysurface and ggsurface packages for implementations.
//
// A Plot is not safe for concurrent use. Redraw mutates the series queues and
// must complete before any other call on the Plot or its Series.
package graph
