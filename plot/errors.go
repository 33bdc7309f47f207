// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "cogentcore.org/mathplot/base/errors"

var (
	// ErrDegenerateBounds is returned when an axis of the [Bounds] has zero
	// (or negative, or non-finite) span, so no pixel mapping exists.
	ErrDegenerateBounds = errors.New("plot: degenerate bounds")

	// ErrSurfaceTooSmall is returned when the [Surface] border leaves no
	// usable drawing area.
	ErrSurfaceTooSmall = errors.New("plot: surface too small for border")
)
