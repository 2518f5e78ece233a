// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package graph

import (
	"fmt"
	"image/color"
	"sort"
)

// Kind is the way a Series is rendered.
type Kind int

// Series kinds.
const (
	Scatter Kind = iota
	Line
	// Bar is reserved. Redraw reports bar series as unsupported.
	Bar
)

func (k Kind) String() string {
	switch k {
	case Scatter:
		return "Scatter"
	case Line:
		return "Line"
	case Bar:
		return "Bar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Style is the rendering style of a Series.
type Style struct {
	Kind       Kind
	PointColor color.RGBA
	LineColor  color.RGBA
}

// Series is one plotted data set.
//
// Points go through three queues: pending points wait to be drawn, drawn
// points are what the display shows since the last Redraw, and points to
// erase were drawn and must be removed from the display on the next Redraw.
type Series struct {
	pending   []Point
	lastDrawn []Point
	toErase   []Point

	style     Style
	committed Style
	epsilon   float64
}

func newSeries(s Style, epsilon float64) *Series {
	return &Series{style: s, epsilon: epsilon}
}

// Style returns the current style.
func (s *Series) Style() Style {
	return s.style
}

// SetKind changes how the series is rendered starting with the next Redraw.
func (s *Series) SetKind(k Kind) {
	s.style.Kind = k
}

// SetPointColor sets the color of the point markers.
func (s *Series) SetPointColor(c color.RGBA) {
	s.style.PointColor = c
}

// SetLineColor sets the color of the segments joining points of a Line
// series.
func (s *Series) SetLineColor(c color.RGBA) {
	s.style.LineColor = c
}

// Contains reports whether p is pending or drawn.
func (s *Series) Contains(p Point) bool {
	return indexOf(s.pending, p, s.epsilon) >= 0 || indexOf(s.lastDrawn, p, s.epsilon) >= 0
}

// AddPoint queues p to be drawn on the next Redraw.
//
// Adding a point that is already pending or drawn does nothing, except that
// it cancels a RemovePoint of the same point done since the last Redraw.
func (s *Series) AddPoint(p Point) {
	if i := indexOf(s.toErase, p, s.epsilon); i >= 0 && indexOf(s.lastDrawn, p, s.epsilon) >= 0 {
		s.toErase = append(s.toErase[:i], s.toErase[i+1:]...)
		return
	}
	if s.Contains(p) {
		return
	}
	s.pending = append(s.pending, p)
}

// RemovePoint removes p from the series.
//
// A pending point is forgotten immediately. A drawn point stays drawn and is
// queued for erasure; the display is only updated by the next Redraw.
// It returns true if p was found.
func (s *Series) RemovePoint(p Point) bool {
	found := false
	for i := 0; i < len(s.pending); {
		if ApproxEqual(s.pending[i], p, s.epsilon) {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			found = true
			continue
		}
		i++
	}
	for _, q := range s.lastDrawn {
		if ApproxEqual(q, p, s.epsilon) {
			if indexOf(s.toErase, q, s.epsilon) < 0 {
				s.toErase = append(s.toErase, q)
			}
			found = true
		}
	}
	return found
}

// Commit records the current style as the style the display was drawn with.
//
// Redraw calls it once the series is drawn.
func (s *Series) Commit() {
	s.committed = s.style
}

// Pending returns a copy of the points waiting to be drawn.
func (s *Series) Pending() []Point {
	return append([]Point(nil), s.pending...)
}

// LastDrawn returns a copy of the points drawn by the last Redraw, in
// drawing order.
func (s *Series) LastDrawn() []Point {
	return append([]Point(nil), s.lastDrawn...)
}

// ToErase returns a copy of the points queued for erasure.
func (s *Series) ToErase() []Point {
	return append([]Point(nil), s.toErase...)
}

// requeue moves every drawn point into the erase queue and, unless it was
// removed, back into the pending queue so it gets drawn again with the new
// mapping.
func (s *Series) requeue() {
	removed := s.toErase
	s.toErase = make([]Point, 0, len(s.lastDrawn))
	for _, p := range s.lastDrawn {
		s.toErase = append(s.toErase, p)
		if indexOf(removed, p, s.epsilon) < 0 {
			s.pending = append(s.pending, p)
		}
	}
	s.lastDrawn = s.lastDrawn[:0]
}

// sortPending orders the pending points by increasing x so segments join
// neighbours.
func (s *Series) sortPending() {
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].X < s.pending[j].X
	})
}
