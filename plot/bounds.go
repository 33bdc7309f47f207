// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"cogentcore.org/mathplot/math32/minmax"
)

// Bounds is the visible data window. It is a value type: every update
// returns a new Bounds, which is passed by value into the mapping and
// rendering code for each frame.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultBounds returns the initial visible window,
// x in [-10, 10] and y in [-5, 5].
func DefaultBounds() Bounds {
	return Bounds{XMin: -10, XMax: 10, YMin: -5, YMax: 5}
}

// X returns the x range.
func (b Bounds) X() minmax.F64 {
	return minmax.F64{Min: b.XMin, Max: b.XMax}
}

// Y returns the y range.
func (b Bounds) Y() minmax.F64 {
	return minmax.F64{Min: b.YMin, Max: b.YMax}
}

// Validate returns an error wrapping [ErrDegenerateBounds]
// if either axis has no positive, finite span.
func (b Bounds) Validate() error {
	if b.X().IsEmpty() {
		return fmt.Errorf("%w: x range [%g, %g]", ErrDegenerateBounds, b.XMin, b.XMax)
	}
	if b.Y().IsEmpty() {
		return fmt.Errorf("%w: y range [%g, %g]", ErrDegenerateBounds, b.YMin, b.YMax)
	}
	return nil
}

func (b Bounds) String() string {
	return fmt.Sprintf("x[%g, %g] y[%g, %g]", b.XMin, b.XMax, b.YMin, b.YMax)
}
