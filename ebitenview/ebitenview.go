// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tinygo

// Package ebitenview shows an image in a desktop window, scaled up, and
// refreshes it on every tick.
//
// It is the host side companion of the display drivers: render a graph on a
// canvas or a tinysurface.Framebuffer and watch it live.
package ebitenview

import (
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
)

// Opts represents the window options.
type Opts struct {
	Title string
	// Scale is the window magnification. Defaults to 2.
	Scale int
	// TPS is the number of ticks per second. Defaults to 30.
	TPS int
}

// Run opens a window showing src and calls step once per tick before the
// window is refreshed. It blocks until the window is closed or step returns
// an error. Returning ebiten.Termination from step closes the window
// without error.
func Run(src image.Image, step func() error, opts *Opts) error {
	o := Opts{Title: "graph", Scale: 2, TPS: 30}
	if opts != nil {
		if opts.Title != "" {
			o.Title = opts.Title
		}
		if opts.Scale > 0 {
			o.Scale = opts.Scale
		}
		if opts.TPS > 0 {
			o.TPS = opts.TPS
		}
	}
	b := src.Bounds()
	ebiten.SetWindowTitle(o.Title)
	ebiten.SetWindowSize(b.Dx()*o.Scale, b.Dy()*o.Scale)
	ebiten.SetTPS(o.TPS)
	return ebiten.RunGame(&game{src: src, step: step})
}

type game struct {
	src   image.Image
	step  func() error
	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *game) Update() error {
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	b := g.src.Bounds()
	if g.img == nil || g.img.Bounds().Size() != b.Size() {
		g.img = image.NewRGBA(image.Rectangle{Max: b.Size()})
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	draw.Draw(g.img, g.img.Bounds(), g.src, b.Min, draw.Src)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.src.Bounds()
	return b.Dx(), b.Dy()
}
