// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"math"
	"math/rand"

	"github.com/GermanBionicSystems/tftgraph/graph"
)

// demo feeds a sliding window of samples to a plot: a sine wave drawn as a
// line and uniform noise drawn as a scatter plot.
type demo struct {
	plot   *graph.Plot
	wave   *graph.Series
	noise  *graph.Series
	window int
	t      int
	rnd    *rand.Rand

	waveHist, noiseHist []graph.Point
}

func newDemo(s graph.Surface, opts *graph.Opts, window int, seed int64) *demo {
	p := graph.New(s, opts)
	p.SetYRangeType(graph.RangeManual)
	p.SetYRange(-1.5, 1.5)
	return &demo{
		plot:   p,
		wave:   p.AddSeries(graph.Line, graph.White, graph.Pink),
		noise:  p.AddSeries(graph.Scatter, graph.Yellow, graph.Yellow),
		window: window,
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// step adds one sample to each series, drops the ones that left the window
// and draws a frame.
func (d *demo) step() error {
	x := float64(d.t)
	d.t++
	d.waveHist = d.push(d.wave, d.waveHist, graph.Point{X: x, Y: math.Sin(x / 8)})
	d.noiseHist = d.push(d.noise, d.noiseHist, graph.Point{X: x, Y: d.rnd.Float64()*2 - 1})
	return d.plot.Redraw()
}

func (d *demo) push(s *graph.Series, hist []graph.Point, p graph.Point) []graph.Point {
	s.AddPoint(p)
	hist = append(hist, p)
	for len(hist) > d.window {
		s.RemovePoint(hist[0])
		hist = hist[1:]
	}
	return hist
}
