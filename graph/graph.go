// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package graph

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Opts is the initial configuration of a Plot.
type Opts struct {
	// Area is the viewport, border included. When empty and the Surface has a
	// Bounds() method, the whole surface is used.
	Area        image.Rectangle
	BorderWidth int

	BorderColor     color.RGBA
	BackgroundColor color.RGBA
	AxesColor       color.RGBA

	VAxis, HAxis AxisPlacement

	// Epsilon is the tolerance under which two points are the same sample.
	Epsilon float64

	// Halt is called on unrecoverable conditions. It must not return. The
	// default panics.
	Halt func(err error)
}

// DefaultOpts is the configuration used when New is called with nil options.
var DefaultOpts = Opts{
	BorderWidth:     10,
	BorderColor:     Black,
	BackgroundColor: Purple,
	AxesColor:       Blue,
	VAxis:           AxisCentre,
	HAxis:           AxisCentre,
	Epsilon:         DefaultEpsilon,
}

// Plot draws a set of Series within a bordered viewport of a Surface.
type Plot struct {
	s      Surface
	series []*Series

	cur  FrameState
	last FrameState
	// drawn is false until the first Redraw completed.
	drawn bool

	epsilon float64
	halt    func(err error)
	scratch []Point
}

// New returns a Plot drawing on s.
//
// Both axes start in ScaleAuto and RangeAuto modes.
func New(s Surface, opts *Opts) *Plot {
	if opts == nil {
		opts = &DefaultOpts
	}
	p := &Plot{
		s:       s,
		epsilon: opts.Epsilon,
		halt:    opts.Halt,
		cur: FrameState{
			Area:            opts.Area,
			BorderWidth:     opts.BorderWidth,
			BorderColor:     opts.BorderColor,
			BackgroundColor: opts.BackgroundColor,
			AxesColor:       opts.AxesColor,
			VAxis:           opts.VAxis,
			HAxis:           opts.HAxis,
		},
	}
	if p.epsilon <= 0 {
		p.epsilon = DefaultEpsilon
	}
	if p.halt == nil {
		p.halt = defaultHalt
	}
	if p.cur.Area.Empty() {
		if b, ok := s.(bounded); ok {
			p.cur.Area = b.Bounds()
		}
	}
	return p
}

// AddSeries adds a new empty series and returns it.
func (p *Plot) AddSeries(kind Kind, pointColor, lineColor color.RGBA) *Series {
	s := newSeries(Style{Kind: kind, PointColor: pointColor, LineColor: lineColor}, p.epsilon)
	p.series = append(p.series, s)
	return s
}

// Series returns the series in the order they were added.
func (p *Plot) Series() []*Series {
	return append([]*Series(nil), p.series...)
}

// State returns the configuration that the next Redraw will use.
func (p *Plot) State() FrameState {
	return p.cur
}

// Committed returns the configuration the display was last drawn with.
func (p *Plot) Committed() FrameState {
	return p.last
}

// SetBorderWidth sets the border width in pixels.
func (p *Plot) SetBorderWidth(w int) {
	p.cur.BorderWidth = w
}

// SetBorderColor sets the border color.
func (p *Plot) SetBorderColor(c color.RGBA) {
	p.cur.BorderColor = c
}

// SetBackgroundColor sets the color of the plot interior.
func (p *Plot) SetBackgroundColor(c color.RGBA) {
	p.cur.BackgroundColor = c
}

// SetAxesColor sets the color of both axes.
func (p *Plot) SetAxesColor(c color.RGBA) {
	p.cur.AxesColor = c
}

// SetArea sets the viewport to the w×h rectangle starting at x, y.
//
// A negative w or h is kept as is and makes the next Redraw fail with
// ErrInvalidSize.
func (p *Plot) SetArea(x, y, w, h int) {
	p.cur.Area = image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+w, y+h)}
}

// SetAxisType sets the placement of the vertical and horizontal axes.
func (p *Plot) SetAxisType(v, h AxisPlacement) {
	p.cur.VAxis = v
	p.cur.HAxis = h
}

// SetXScaleType sets how the horizontal pixel bounds are determined.
func (p *Plot) SetXScaleType(m ScaleMode) {
	p.cur.XScaleMode = m
}

// SetYScaleType sets how the vertical pixel bounds are determined.
func (p *Plot) SetYScaleType(m ScaleMode) {
	p.cur.YScaleMode = m
}

// SetXScale sets the horizontal pixel bounds used in ScaleManual mode.
func (p *Plot) SetXScale(min, max int) {
	p.cur.XScale = Scale{Min: min, Max: max}
}

// SetYScale sets the vertical pixel bounds used in ScaleManual mode. min is
// the top of the plot.
func (p *Plot) SetYScale(min, max int) {
	p.cur.YScale = Scale{Min: min, Max: max}
}

// SetXRangeType sets how the horizontal data range is determined.
func (p *Plot) SetXRangeType(m RangeMode) {
	p.cur.XRangeMode = m
}

// SetYRangeType sets how the vertical data range is determined.
func (p *Plot) SetYRangeType(m RangeMode) {
	p.cur.YRangeMode = m
}

// SetXRange sets the horizontal data range used in RangeManual mode.
func (p *Plot) SetXRange(min, max float64) {
	p.cur.XRange = Range{Min: min, Max: max}
}

// SetYRange sets the vertical data range used in RangeManual mode.
func (p *Plot) SetYRange(min, max float64) {
	p.cur.YRange = Range{Min: min, Max: max}
}

// Redraw draws one frame.
//
// Every point drawn by the previous frame is erased with the mapping it was
// drawn with and drawn again with the current mapping, so range and scale
// changes never leave stale pixels. The border and background are only
// repainted when the viewport or its colors changed.
//
// Points outside of the current range are dropped. The returned error
// reports series that cannot be rendered; every other series is still drawn.
func (p *Plot) Redraw() error {
	p.calcRange()
	if err := p.resolve(); err != nil {
		p.halt(err)
		return err
	}

	body := !p.drawn || p.cur.BodyChanged(&p.last)
	if body {
		p.drawBody()
	}

	erased, notched := false, false
	for _, s := range p.series {
		s.requeue()
		e, n := p.erase(s, body)
		erased = erased || e
		notched = notched || n
	}
	if notched {
		p.drawBorder()
	}

	p.drawAxes(body, erased)

	var errs []error
	for i, s := range p.series {
		if err := p.draw(s); err != nil {
			errs = append(errs, fmt.Errorf("graph: series %d: %w", i, err))
		}
		s.Commit()
	}

	p.last = p.cur
	p.drawn = true
	return errors.Join(errs...)
}

// resolve computes the derived fields of the current frame.
func (p *Plot) resolve() error {
	f := &p.cur
	if f.BorderWidth < 0 {
		return fmt.Errorf("%w: border width %d", ErrInvalidSize, f.BorderWidth)
	}
	if f.Area.Dx() <= 0 || f.Area.Dy() <= 0 {
		return fmt.Errorf("%w: area %v", ErrInvalidSize, f.Area)
	}
	if in := f.Inner(); f.Area.Dx() < 2*f.BorderWidth || f.Area.Dy() < 2*f.BorderWidth || in.Empty() {
		return fmt.Errorf("%w: area %v cannot hold a %d pixels border", ErrInvalidSize, f.Area, f.BorderWidth)
	}
	f.autoScale()
	f.axesPosition()
	return nil
}

// drawBody paints the border and fills the interior.
func (p *Plot) drawBody() {
	p.drawBorder()
	in := p.cur.Inner()
	p.s.FillRect(in.Min.X, in.Min.Y, in.Dx(), in.Dy(), p.cur.BackgroundColor)
}

// drawBorder paints the border as nested one pixel rectangles, outer to
// inner.
func (p *Plot) drawBorder() {
	f := &p.cur
	a := f.Area
	for i := 0; i < f.BorderWidth; i++ {
		p.s.DrawRect(a.Min.X+i, a.Min.Y+i, a.Dx()-2*i, a.Dy()-2*i, f.BorderColor)
	}
}

// drawAxes draws the axes that moved or that may have been overwritten.
//
// Moved axes are wiped at their old position first. A wipe also cuts the
// other axis where they crossed, so both are drawn whenever one moved.
func (p *Plot) drawAxes(body, erased bool) {
	f, l := &p.cur, &p.last
	if !body && p.drawn {
		li := l.Inner()
		if f.Axes.X != l.Axes.X {
			p.s.DrawFastVLine(l.Axes.X, li.Min.Y, li.Dy(), f.BackgroundColor)
		}
		if f.Axes.Y != l.Axes.Y {
			p.s.DrawFastHLine(li.Min.X, l.Axes.Y, li.Dx(), f.BackgroundColor)
		}
	}
	if !body && !erased && f.AxesColor == l.AxesColor && f.Axes == l.Axes {
		return
	}
	in := f.Inner()
	p.s.DrawFastVLine(f.Axes.X, in.Min.Y, in.Dy(), f.AxesColor)
	p.s.DrawFastHLine(in.Min.X, f.Axes.Y, in.Dx(), f.AxesColor)
}

// erase drains the erase queue of s using the mapping of the previous frame.
// When the body was just repainted the pixels are already gone and only the
// queue is cleared.
//
// It returns whether anything was drawn and whether the border was painted
// over. The top of the range maps onto the first border column and row.
func (p *Plot) erase(s *Series, body bool) (erased, notched bool) {
	pts := s.toErase
	s.toErase = nil
	if body || len(pts) == 0 {
		return false, false
	}
	bg := p.cur.BackgroundColor
	in := p.last.Inner()
	if s.committed.Kind == Line && len(pts) >= 2 {
		for i := 1; i < len(pts); i++ {
			a, b := p.last.Map(pts[i-1]), p.last.Map(pts[i])
			p.s.DrawLine(a.X, a.Y, b.X, b.Y, bg)
			notched = notched || !a.In(in) || !b.In(in)
		}
		return true, notched
	}
	for _, q := range pts {
		m := p.last.Map(q)
		p.s.DrawPixel(m.X, m.Y, bg)
		notched = notched || !m.In(in)
	}
	return true, notched
}

// draw drains the pending queue of s using the current mapping.
func (p *Plot) draw(s *Series) error {
	st := s.style
	if st.Kind == Bar {
		return fmt.Errorf("%v rendering: %w", st.Kind, errors.ErrUnsupported)
	}
	if st.Kind == Line {
		s.sortPending()
	}
	f := &p.cur
	start := len(s.lastDrawn)
	for _, q := range s.pending {
		if !f.XRange.Contains(q.X) || !f.YRange.Contains(q.Y) {
			continue
		}
		if st.Kind == Line && len(s.lastDrawn) > 0 {
			a, b := f.Map(s.lastDrawn[len(s.lastDrawn)-1]), f.Map(q)
			p.s.DrawLine(a.X, a.Y, b.X, b.Y, st.LineColor)
		}
		s.lastDrawn = append(s.lastDrawn, q)
	}
	s.pending = s.pending[:0]
	for _, q := range s.lastDrawn[start:] {
		m := f.Map(q)
		p.s.DrawPixel(m.X, m.Y, st.PointColor)
	}
	return nil
}
