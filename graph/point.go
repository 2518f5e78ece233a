// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package graph

import "math"

// DefaultEpsilon is the default tolerance used to decide whether two points
// are the same sample.
const DefaultEpsilon = 0.000999

// Point is a sample in data space.
type Point struct {
	X, Y float64
}

// ApproxEqual reports whether each coordinate of a and b differs by less than
// epsilon.
func ApproxEqual(a, b Point, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

// indexOf returns the index of the first point of pts approximately equal to
// p, or -1.
func indexOf(pts []Point, p Point, epsilon float64) int {
	for i := range pts {
		if ApproxEqual(pts[i], p, epsilon) {
			return i
		}
	}
	return -1
}
