// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package graph

import "sort"

// extent accumulates the bounds found for one axis.
type extent struct {
	r  Range
	ok bool
}

func (e *extent) add(v float64) {
	if !e.ok {
		e.r = Range{Min: v, Max: v}
		e.ok = true
		return
	}
	if v < e.r.Min {
		e.r.Min = v
	}
	if v > e.r.Max {
		e.r.Max = v
	}
}

// calcRange recomputes the data range of every axis in RangeAuto mode, or in
// RangeManual mode with an empty range.
//
// The extremes along one axis only consider points whose other coordinate
// lies within the other axis range, unless that range is itself computed.
// Ranges are left untouched when there are no candidate points.
func (p *Plot) calcRange() {
	f := &p.cur
	xAuto := f.XRangeMode == RangeAuto || f.XRange.degenerate()
	yAuto := f.YRangeMode == RangeAuto || f.YRange.degenerate()
	if !xAuto && !yAuto {
		return
	}
	var xs, ys extent
	for _, s := range p.series {
		p.scratch = append(append(p.scratch[:0], s.pending...), s.lastDrawn...)
		pts := p.scratch
		if len(pts) == 0 {
			continue
		}
		if yAuto {
			sort.Slice(pts, func(i, j int) bool { return pts[i].Y < pts[j].Y })
			for i := 0; i < len(pts); i++ {
				if xAuto || f.XRange.Contains(pts[i].X) {
					ys.add(pts[i].Y)
					break
				}
			}
			for i := len(pts) - 1; i >= 0; i-- {
				if xAuto || f.XRange.Contains(pts[i].X) {
					ys.add(pts[i].Y)
					break
				}
			}
		}
		if xAuto {
			sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
			for i := 0; i < len(pts); i++ {
				if yAuto || f.YRange.Contains(pts[i].Y) {
					xs.add(pts[i].X)
					break
				}
			}
			for i := len(pts) - 1; i >= 0; i-- {
				if yAuto || f.YRange.Contains(pts[i].Y) {
					xs.add(pts[i].X)
					break
				}
			}
		}
	}
	if yAuto && ys.ok {
		f.YRange = ys.r
	}
	if xAuto && xs.ok {
		f.XRange = xs.r
	}
}
