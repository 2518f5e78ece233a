// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tftgraph is a container for an incrementally redrawn graph widget
// and the surfaces it can draw on.
//
// The graph package holds the widget itself. canvas, ggsurface, termscreen
// and tinysurface adapt it to images, displays and terminals.
package tftgraph
