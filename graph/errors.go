// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package graph

import "errors"

// ErrInvalidSize is passed to the halt function when the viewport cannot
// hold its own border.
var ErrInvalidSize = errors.New("graph: invalid size")

// defaultHalt stops the program. Nothing in a Plot can recover from the
// conditions it is called for.
func defaultHalt(err error) {
	panic(err)
}
