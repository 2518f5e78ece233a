// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package graph_test

import (
	"errors"
	"image"
	"testing"

	"github.com/GermanBionicSystems/tftgraph/graph"
	"github.com/GermanBionicSystems/tftgraph/graph/graphtest"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// newPlot returns a 100×100 plot with a 10 pixels border and both ranges set
// to [0, 10], so data coordinates map to pixels as 10+8*v and 90-8*v.
func newPlot(t *testing.T) (*graph.Plot, *graphtest.Recorder) {
	t.Helper()
	rec := &graphtest.Recorder{}
	opts := graph.DefaultOpts
	opts.Area = image.Rect(0, 0, 100, 100)
	opts.Halt = func(err error) {
		t.Fatalf("halt: %v", err)
	}
	p := graph.New(rec, &opts)
	p.SetXRangeType(graph.RangeManual)
	p.SetYRangeType(graph.RangeManual)
	p.SetXRange(0, 10)
	p.SetYRange(0, 10)
	return p, rec
}

func redraw(t *testing.T, p *graph.Plot) {
	t.Helper()
	if err := p.Redraw(); err != nil {
		t.Fatalf("Redraw() failed: %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	rec := &graphtest.Recorder{Size: image.Pt(320, 240)}
	p := graph.New(rec, nil)
	f := p.State()
	if f.Area != image.Rect(0, 0, 320, 240) {
		t.Errorf("Area = %v, want the surface bounds", f.Area)
	}
	if f.BorderWidth != 10 || f.BorderColor != graph.Black || f.BackgroundColor != graph.Purple || f.AxesColor != graph.Blue {
		t.Errorf("unexpected defaults: %+v", f)
	}
	if f.XScaleMode != graph.ScaleAuto || f.YRangeMode != graph.RangeAuto {
		t.Errorf("unexpected modes: %+v", f)
	}
}

func TestPlot_CalcRange(t *testing.T) {
	rec := &graphtest.Recorder{Size: image.Pt(100, 100)}
	p := graph.New(rec, nil)
	s := p.AddSeries(graph.Scatter, graph.White, graph.Pink)
	for _, pt := range []graph.Point{{1, 5}, {3, -2}, {7, 0}} {
		s.AddPoint(pt)
	}
	p.CalcRange()
	f := p.State()
	if want := (graph.Range{Min: -2, Max: 5}); f.YRange != want {
		t.Errorf("YRange = %v, want %v", f.YRange, want)
	}
	if want := (graph.Range{Min: 1, Max: 7}); f.XRange != want {
		t.Errorf("XRange = %v, want %v", f.XRange, want)
	}
	// The pending order is left alone.
	if diff := cmp.Diff(s.Pending(), []graph.Point{{1, 5}, {3, -2}, {7, 0}}); diff != "" {
		t.Errorf("Pending() difference (-got +want):\n%s", diff)
	}
}

func TestPlot_CalcRangeFiltered(t *testing.T) {
	rec := &graphtest.Recorder{Size: image.Pt(100, 100)}
	p := graph.New(rec, nil)
	p.SetXRangeType(graph.RangeManual)
	p.SetXRange(0, 5)
	a := p.AddSeries(graph.Scatter, graph.White, graph.Pink)
	a.AddPoint(graph.Point{X: 1, Y: 5})
	a.AddPoint(graph.Point{X: 3, Y: -2})
	a.AddPoint(graph.Point{X: 7, Y: 10})
	b := p.AddSeries(graph.Scatter, graph.White, graph.Pink)
	b.AddPoint(graph.Point{X: 9, Y: -50})
	p.CalcRange()
	f := p.State()
	if want := (graph.Range{Min: -2, Max: 5}); f.YRange != want {
		t.Errorf("YRange = %v, want %v", f.YRange, want)
	}
	if want := (graph.Range{Min: 0, Max: 5}); f.XRange != want {
		t.Errorf("XRange = %v, want %v", f.XRange, want)
	}
}

func TestPlot_CalcRangeEmptyManual(t *testing.T) {
	rec := &graphtest.Recorder{Size: image.Pt(100, 100)}
	p := graph.New(rec, nil)
	p.SetXRangeType(graph.RangeManual)
	p.SetYRangeType(graph.RangeManual)
	p.SetYRange(0, 4)
	s := p.AddSeries(graph.Scatter, graph.White, graph.Pink)
	s.AddPoint(graph.Point{X: -3, Y: 1})
	s.AddPoint(graph.Point{X: 8, Y: 2})
	s.AddPoint(graph.Point{X: 20, Y: 9})
	p.CalcRange()
	if want := (graph.Range{Min: -3, Max: 8}); p.State().XRange != want {
		t.Errorf("XRange = %v, want %v", p.State().XRange, want)
	}
}

func TestPlot_MappingRoundTrip(t *testing.T) {
	p, _ := newPlot(t)
	redraw(t, p)
	f := p.State()
	if got, want := f.Map(graph.Point{X: 0, Y: 0}), image.Pt(10, 90); got != want {
		t.Errorf("Map(0, 0) = %v, want %v", got, want)
	}
	if got, want := f.Map(graph.Point{X: 10, Y: 10}), image.Pt(90, 10); got != want {
		t.Errorf("Map(10, 10) = %v, want %v", got, want)
	}
	if f != p.Committed() {
		t.Error("Committed() differs from State() after Redraw()")
	}
}

func TestPlot_FirstFrame(t *testing.T) {
	p, rec := newPlot(t)
	redraw(t, p)
	want := []graphtest.Op{}
	for i := 0; i < 10; i++ {
		want = append(want, graphtest.Op{Kind: graphtest.Rect, X0: i, Y0: i, W: 100 - 2*i, H: 100 - 2*i, C: graph.Black})
	}
	want = append(want,
		graphtest.Op{Kind: graphtest.FillRect, X0: 10, Y0: 10, W: 80, H: 80, C: graph.Purple},
		graphtest.Op{Kind: graphtest.VLine, X0: 10, Y0: 10, H: 80, C: graph.Blue},
		graphtest.Op{Kind: graphtest.HLine, X0: 10, Y0: 89, W: 80, C: graph.Blue},
	)
	if diff := cmp.Diff(rec.Ops, want); diff != "" {
		t.Fatalf("Ops difference (-got +want):\n%s", diff)
	}

	rec.Reset()
	redraw(t, p)
	if len(rec.Ops) != 0 {
		t.Fatalf("unchanged frame drew %v", rec.Ops)
	}
}

func TestPlot_GeometryChange(t *testing.T) {
	p, rec := newPlot(t)
	redraw(t, p)
	rec.Reset()

	p.SetArea(0, 0, 120, 100)
	redraw(t, p)
	if n := len(rec.Filter(graphtest.Rect, graph.Black)); n != 10 {
		t.Errorf("border drawn with %d rectangles, want 10", n)
	}
	if n := len(rec.Filter(graphtest.FillRect, graph.Purple)); n != 1 {
		t.Errorf("background filled %d times, want 1", n)
	}
	if p.State().Axes != p.Committed().Axes {
		t.Fatal("axes moved")
	}
	if n := len(rec.Filter(graphtest.VLine, graph.Blue)); n != 1 {
		t.Errorf("vertical axis drawn %d times, want 1", n)
	}
	if n := len(rec.Filter(graphtest.HLine, graph.Blue)); n != 1 {
		t.Errorf("horizontal axis drawn %d times, want 1", n)
	}
}

func TestPlot_BackgroundChange(t *testing.T) {
	p, rec := newPlot(t)
	redraw(t, p)
	rec.Reset()
	p.SetBackgroundColor(graph.Navy)
	redraw(t, p)
	if n := len(rec.Filter(graphtest.FillRect, graph.Navy)); n != 1 {
		t.Errorf("background filled %d times, want 1", n)
	}
}

func TestPlot_AxisMove(t *testing.T) {
	p, rec := newPlot(t)
	redraw(t, p)
	rec.Reset()

	p.SetXRange(-10, 10)
	redraw(t, p)
	want := []graphtest.Op{
		{Kind: graphtest.VLine, X0: 10, Y0: 10, H: 80, C: graph.Purple},
		{Kind: graphtest.VLine, X0: 50, Y0: 10, H: 80, C: graph.Blue},
		// Wiping the old vertical axis cut the horizontal one.
		{Kind: graphtest.HLine, X0: 10, Y0: 89, W: 80, C: graph.Blue},
	}
	if diff := cmp.Diff(rec.Ops, want); diff != "" {
		t.Fatalf("Ops difference (-got +want):\n%s", diff)
	}
}

func TestPlot_BothAxesMove(t *testing.T) {
	p, rec := newPlot(t)
	redraw(t, p)
	rec.Reset()

	p.SetXRange(-10, 10)
	p.SetYRange(-10, 10)
	redraw(t, p)
	want := []graphtest.Op{
		{Kind: graphtest.VLine, X0: 10, Y0: 10, H: 80, C: graph.Purple},
		{Kind: graphtest.HLine, X0: 10, Y0: 89, W: 80, C: graph.Purple},
		{Kind: graphtest.VLine, X0: 50, Y0: 10, H: 80, C: graph.Blue},
		{Kind: graphtest.HLine, X0: 10, Y0: 50, W: 80, C: graph.Blue},
	}
	if diff := cmp.Diff(rec.Ops, want); diff != "" {
		t.Fatalf("Ops difference (-got +want):\n%s", diff)
	}
}

func TestPlot_EraseRestoresBorder(t *testing.T) {
	p, rec := newPlot(t)
	s := p.AddSeries(graph.Scatter, graph.White, graph.Pink)
	s.AddPoint(graph.Point{X: 5, Y: 5})
	redraw(t, p)
	rec.Reset()
	redraw(t, p)
	if n := len(rec.Filter(graphtest.Rect, graph.Black)); n != 0 {
		t.Fatalf("interior erase repainted the border with %d rectangles", n)
	}

	p, rec = newPlot(t)
	s = p.AddSeries(graph.Scatter, graph.White, graph.Pink)
	// The top of the range lands on the first border column.
	s.AddPoint(graph.Point{X: 10, Y: 5})
	redraw(t, p)
	rec.Reset()

	s.RemovePoint(graph.Point{X: 10, Y: 5})
	redraw(t, p)
	want := []graphtest.Op{{Kind: graphtest.Pixel, X0: 90, Y0: 50, C: graph.Purple}}
	for i := 0; i < 10; i++ {
		want = append(want, graphtest.Op{Kind: graphtest.Rect, X0: i, Y0: i, W: 100 - 2*i, H: 100 - 2*i, C: graph.Black})
	}
	want = append(want,
		graphtest.Op{Kind: graphtest.VLine, X0: 10, Y0: 10, H: 80, C: graph.Blue},
		graphtest.Op{Kind: graphtest.HLine, X0: 10, Y0: 89, W: 80, C: graph.Blue},
	)
	if diff := cmp.Diff(rec.Ops, want); diff != "" {
		t.Fatalf("Ops difference (-got +want):\n%s", diff)
	}
}

func TestPlot_LineEraseRestoresBorder(t *testing.T) {
	p, rec := newPlot(t)
	s := p.AddSeries(graph.Line, graph.White, graph.Pink)
	s.AddPoint(graph.Point{X: 5, Y: 5})
	s.AddPoint(graph.Point{X: 10, Y: 10})
	redraw(t, p)
	rec.Reset()

	s.RemovePoint(graph.Point{X: 10, Y: 10})
	redraw(t, p)
	if diff := cmp.Diff(rec.Filter(graphtest.Line, graph.Purple), []graphtest.Op{{Kind: graphtest.Line, X0: 50, Y0: 50, X1: 90, Y1: 10, C: graph.Purple}}); diff != "" {
		t.Errorf("erased segments difference (-got +want):\n%s", diff)
	}
	if n := len(rec.Filter(graphtest.Rect, graph.Black)); n != 10 {
		t.Errorf("border repainted with %d rectangles, want 10", n)
	}
}

func TestNew_ZeroOptsCentreAxes(t *testing.T) {
	rec := &graphtest.Recorder{}
	p := graph.New(rec, &graph.Opts{Area: image.Rect(0, 0, 100, 100), BorderWidth: 10})
	p.SetXRangeType(graph.RangeManual)
	p.SetYRangeType(graph.RangeManual)
	p.SetXRange(-10, 10)
	p.SetYRange(-10, 10)
	if err := p.Redraw(); err != nil {
		t.Fatal(err)
	}
	if f := p.State(); f.VAxis != graph.AxisCentre || f.HAxis != graph.AxisCentre {
		t.Errorf("placements = %v, %v, want centre", f.VAxis, f.HAxis)
	}
	if got, want := p.State().Axes, image.Pt(50, 50); got != want {
		t.Errorf("Axes = %v, want %v", got, want)
	}
}

func TestPlot_OutOfRange(t *testing.T) {
	p, rec := newPlot(t)
	s := p.AddSeries(graph.Scatter, graph.White, graph.Pink)
	s.AddPoint(graph.Point{X: 11, Y: 5})
	s.AddPoint(graph.Point{X: 5, Y: 5})
	s.AddPoint(graph.Point{X: 10, Y: 10})
	redraw(t, p)

	if len(s.Pending()) != 0 {
		t.Errorf("Pending() = %v, want empty", s.Pending())
	}
	if diff := cmp.Diff(s.LastDrawn(), []graph.Point{{X: 5, Y: 5}, {X: 10, Y: 10}}); diff != "" {
		t.Errorf("LastDrawn() difference (-got +want):\n%s", diff)
	}
	want := []graphtest.Op{
		{Kind: graphtest.Pixel, X0: 50, Y0: 50, C: graph.White},
		{Kind: graphtest.Pixel, X0: 90, Y0: 10, C: graph.White},
	}
	if diff := cmp.Diff(rec.Filter(graphtest.Pixel, graph.White), want); diff != "" {
		t.Errorf("point pixels difference (-got +want):\n%s", diff)
	}
}

func TestPlot_LineFullCycle(t *testing.T) {
	p, rec := newPlot(t)
	s := p.AddSeries(graph.Line, graph.White, graph.Pink)
	s.AddPoint(graph.Point{X: 1, Y: 1})
	s.AddPoint(graph.Point{X: 5, Y: 5})
	s.AddPoint(graph.Point{X: 9, Y: 1})
	redraw(t, p)

	want := []graphtest.Op{
		{Kind: graphtest.Line, X0: 18, Y0: 82, X1: 50, Y1: 50, C: graph.Pink},
		{Kind: graphtest.Line, X0: 50, Y0: 50, X1: 82, Y1: 82, C: graph.Pink},
	}
	if diff := cmp.Diff(rec.Filter(graphtest.Line, graph.Pink), want); diff != "" {
		t.Fatalf("first frame segments difference (-got +want):\n%s", diff)
	}
	rec.Reset()

	if !s.RemovePoint(graph.Point{X: 5, Y: 5}) {
		t.Fatal("RemovePoint() returned false")
	}
	if diff := cmp.Diff(s.ToErase(), []graph.Point{{X: 5, Y: 5}}); diff != "" {
		t.Fatalf("ToErase() difference (-got +want):\n%s", diff)
	}
	redraw(t, p)

	erased := []graphtest.Op{
		{Kind: graphtest.Line, X0: 18, Y0: 82, X1: 50, Y1: 50, C: graph.Purple},
		{Kind: graphtest.Line, X0: 50, Y0: 50, X1: 82, Y1: 82, C: graph.Purple},
	}
	if diff := cmp.Diff(rec.Filter(graphtest.Line, graph.Purple), erased); diff != "" {
		t.Errorf("erased segments difference (-got +want):\n%s", diff)
	}
	segments := []graphtest.Op{
		{Kind: graphtest.Line, X0: 18, Y0: 82, X1: 82, Y1: 82, C: graph.Pink},
	}
	if diff := cmp.Diff(rec.Filter(graphtest.Line, graph.Pink), segments); diff != "" {
		t.Errorf("drawn segments difference (-got +want):\n%s", diff)
	}
	points := []graphtest.Op{
		{Kind: graphtest.Pixel, X0: 18, Y0: 82, C: graph.White},
		{Kind: graphtest.Pixel, X0: 82, Y0: 82, C: graph.White},
	}
	if diff := cmp.Diff(rec.Filter(graphtest.Pixel, graph.White), points); diff != "" {
		t.Errorf("drawn points difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(s.LastDrawn(), []graph.Point{{X: 1, Y: 1}, {X: 9, Y: 1}}); diff != "" {
		t.Errorf("LastDrawn() difference (-got +want):\n%s", diff)
	}
	if len(s.ToErase()) != 0 || len(s.Pending()) != 0 {
		t.Errorf("queues not drained: toErase=%v pending=%v", s.ToErase(), s.Pending())
	}
}

func TestPlot_LineConnectsByX(t *testing.T) {
	p, rec := newPlot(t)
	s := p.AddSeries(graph.Line, graph.White, graph.Pink)
	s.AddPoint(graph.Point{X: 5, Y: 5})
	redraw(t, p)
	s.AddPoint(graph.Point{X: 0, Y: 0})
	s.AddPoint(graph.Point{X: 10, Y: 0})
	rec.Reset()
	redraw(t, p)

	want := []graphtest.Op{
		{Kind: graphtest.Line, X0: 10, Y0: 90, X1: 50, Y1: 50, C: graph.Pink},
		{Kind: graphtest.Line, X0: 50, Y0: 50, X1: 90, Y1: 90, C: graph.Pink},
	}
	if diff := cmp.Diff(rec.Filter(graphtest.Line, graph.Pink), want); diff != "" {
		t.Fatalf("segments difference (-got +want):\n%s", diff)
	}
	// The lone point of the first frame is erased as a pixel.
	if n := len(rec.Filter(graphtest.Pixel, graph.Purple)); n != 1 {
		t.Errorf("erased %d pixels, want 1", n)
	}
}

func TestPlot_RangeChangeRemaps(t *testing.T) {
	p, rec := newPlot(t)
	s := p.AddSeries(graph.Scatter, graph.White, graph.Pink)
	s.AddPoint(graph.Point{X: 5, Y: 5})
	redraw(t, p)
	rec.Reset()

	p.SetXRange(0, 20)
	redraw(t, p)
	if diff := cmp.Diff(rec.Filter(graphtest.Pixel, graph.Purple), []graphtest.Op{{Kind: graphtest.Pixel, X0: 50, Y0: 50, C: graph.Purple}}); diff != "" {
		t.Errorf("erase difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(rec.Filter(graphtest.Pixel, graph.White), []graphtest.Op{{Kind: graphtest.Pixel, X0: 30, Y0: 50, C: graph.White}}); diff != "" {
		t.Errorf("draw difference (-got +want):\n%s", diff)
	}
}

func TestPlot_KindChange(t *testing.T) {
	p, rec := newPlot(t)
	s := p.AddSeries(graph.Scatter, graph.White, graph.Pink)
	s.AddPoint(graph.Point{X: 0, Y: 0})
	s.AddPoint(graph.Point{X: 10, Y: 10})
	redraw(t, p)
	rec.Reset()

	s.SetKind(graph.Line)
	redraw(t, p)
	// Erased as they were drawn: two pixels, no segment.
	if n := len(rec.Filter(graphtest.Pixel, graph.Purple)); n != 2 {
		t.Errorf("erased %d pixels, want 2", n)
	}
	if n := len(rec.Filter(graphtest.Line, graph.Pink)); n != 1 {
		t.Errorf("drew %d segments, want 1", n)
	}
	if s.Style().Kind != graph.Line {
		t.Errorf("Kind = %v", s.Style().Kind)
	}
}

func TestPlot_AreaChangeSkipsErase(t *testing.T) {
	p, rec := newPlot(t)
	s := p.AddSeries(graph.Scatter, graph.White, graph.Pink)
	s.AddPoint(graph.Point{X: 5, Y: 5})
	redraw(t, p)
	rec.Reset()

	p.SetArea(10, 10, 100, 100)
	redraw(t, p)
	if n := len(rec.Filter(graphtest.Pixel, graph.Purple)); n != 0 {
		t.Errorf("erased %d pixels after a repaint, want 0", n)
	}
	if diff := cmp.Diff(rec.Filter(graphtest.Pixel, graph.White), []graphtest.Op{{Kind: graphtest.Pixel, X0: 60, Y0: 60, C: graph.White}}); diff != "" {
		t.Errorf("draw difference (-got +want):\n%s", diff)
	}
}

func TestPlot_AutoRangeDraw(t *testing.T) {
	rec := &graphtest.Recorder{Size: image.Pt(100, 100)}
	p := graph.New(rec, nil)
	s := p.AddSeries(graph.Scatter, graph.White, graph.Pink)
	s.AddPoint(graph.Point{X: -4, Y: 2})
	s.AddPoint(graph.Point{X: 4, Y: 6})
	if err := p.Redraw(); err != nil {
		t.Fatal(err)
	}
	want := []graphtest.Op{
		{Kind: graphtest.Pixel, X0: 10, Y0: 90, C: graph.White},
		{Kind: graphtest.Pixel, X0: 90, Y0: 10, C: graph.White},
	}
	if diff := cmp.Diff(rec.Filter(graphtest.Pixel, graph.White), want); diff != "" {
		t.Errorf("draw difference (-got +want):\n%s", diff)
	}
	if got, want := p.State().Axes, image.Pt(50, 89); got != want {
		t.Errorf("Axes = %v, want %v", got, want)
	}
}

func TestPlot_Bar(t *testing.T) {
	p, rec := newPlot(t)
	bar := p.AddSeries(graph.Bar, graph.White, graph.Pink)
	bar.AddPoint(graph.Point{X: 1, Y: 1})
	dots := p.AddSeries(graph.Scatter, graph.Red, graph.Pink)
	dots.AddPoint(graph.Point{X: 5, Y: 5})

	err := p.Redraw()
	if !errors.Is(err, errors.ErrUnsupported) {
		t.Fatalf("Redraw() = %v, want ErrUnsupported", err)
	}
	if diff := cmp.Diff(bar.Pending(), []graph.Point{{X: 1, Y: 1}}); diff != "" {
		t.Errorf("bar Pending() difference (-got +want):\n%s", diff)
	}
	if n := len(rec.Filter(graphtest.Pixel, graph.Red)); n != 1 {
		t.Errorf("other series drew %d points, want 1", n)
	}
}

func TestPlot_InvalidSize(t *testing.T) {
	var got error
	opts := graph.DefaultOpts
	opts.Area = image.Rect(0, 0, 15, 100)
	opts.Halt = func(err error) { got = err }
	rec := &graphtest.Recorder{}
	p := graph.New(rec, &opts)
	err := p.Redraw()
	if !errors.Is(got, graph.ErrInvalidSize) || !errors.Is(err, graph.ErrInvalidSize) {
		t.Fatalf("halt(%v), Redraw() = %v, want ErrInvalidSize", got, err)
	}
	if len(rec.Ops) != 0 {
		t.Errorf("drew %v", rec.Ops)
	}

	p.SetArea(0, 0, 100, 100)
	p.SetBorderWidth(-1)
	if err := p.Redraw(); !errors.Is(err, graph.ErrInvalidSize) {
		t.Fatalf("Redraw() = %v, want ErrInvalidSize", err)
	}

	for _, a := range [][4]int{{0, 0, -100, 100}, {50, 50, 100, -100}, {0, 0, 0, 100}} {
		got = nil
		p.SetBorderWidth(0)
		p.SetArea(a[0], a[1], a[2], a[3])
		if err := p.Redraw(); !errors.Is(got, graph.ErrInvalidSize) || !errors.Is(err, graph.ErrInvalidSize) {
			t.Errorf("SetArea%v: halt(%v), Redraw() = %v, want ErrInvalidSize", a, got, err)
		}
	}
}

func TestPlot_DefaultHaltPanics(t *testing.T) {
	rec := &graphtest.Recorder{Size: image.Pt(4, 4)}
	p := graph.New(rec, nil)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, graph.ErrInvalidSize) {
			t.Fatalf("recover() = %v, want ErrInvalidSize", r)
		}
	}()
	_ = p.Redraw()
	t.Fatal("Redraw() returned")
}

func TestPlot_ManualScale(t *testing.T) {
	p, rec := newPlot(t)
	p.SetXScaleType(graph.ScaleManual)
	p.SetYScaleType(graph.ScaleManual)
	p.SetXScale(20, 60)
	p.SetYScale(20, 60)
	s := p.AddSeries(graph.Scatter, graph.White, graph.Pink)
	s.AddPoint(graph.Point{X: 10, Y: 0})
	redraw(t, p)
	if diff := cmp.Diff(rec.Filter(graphtest.Pixel, graph.White), []graphtest.Op{{Kind: graphtest.Pixel, X0: 60, Y0: 60, C: graph.White}}); diff != "" {
		t.Errorf("draw difference (-got +want):\n%s", diff)
	}
	f := p.Committed()
	if want := (graph.Scale{Min: 20, Max: 60}); f.XScale != want || f.YScale != want {
		t.Errorf("scales = %v %v, want %v", f.XScale, f.YScale, want)
	}
}

func TestPlot_Series(t *testing.T) {
	p, _ := newPlot(t)
	a := p.AddSeries(graph.Line, graph.White, graph.Pink)
	b := p.AddSeries(graph.Scatter, graph.Red, graph.Pink)
	got := p.Series()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("Series() = %v", got)
	}
	if diff := cmp.Diff(a.Style(), graph.Style{Kind: graph.Line, PointColor: graph.White, LineColor: graph.Pink}, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Style() difference (-got +want):\n%s", diff)
	}
}
