// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package graph

// CalcRange exposes calcRange to the external tests.
func (p *Plot) CalcRange() {
	p.calcRange()
}
