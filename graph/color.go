// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package graph

import "image/color"

// RGB565 expands a 16 bits 5-6-5 color, as used by most small TFT
// controllers, into a color.RGBA.
func RGB565(v uint16) color.RGBA {
	r := uint8(v>>11) & 0x1F
	g := uint8(v>>5) & 0x3F
	b := uint8(v) & 0x1F
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xFF,
	}
}

// ToRGB565 packs c into a 16 bits 5-6-5 value.
func ToRGB565(c color.RGBA) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// Common colors of the ILI9341 palette.
var (
	Black       = RGB565(0x0000)
	Navy        = RGB565(0x000F)
	DarkGreen   = RGB565(0x03E0)
	DarkCyan    = RGB565(0x03EF)
	Maroon      = RGB565(0x7800)
	Purple      = RGB565(0x780F)
	Olive       = RGB565(0x7BE0)
	LightGrey   = RGB565(0xC618)
	DarkGrey    = RGB565(0x7BEF)
	Blue        = RGB565(0x001F)
	Green       = RGB565(0x07E0)
	Cyan        = RGB565(0x07FF)
	Red         = RGB565(0xF800)
	Magenta     = RGB565(0xF81F)
	Yellow      = RGB565(0xFFE0)
	White       = RGB565(0xFFFF)
	Orange      = RGB565(0xFD20)
	GreenYellow = RGB565(0xAFE5)
	Pink        = RGB565(0xF81F)
)
