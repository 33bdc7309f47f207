// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"

	"cogentcore.org/mathplot/math32/minmax"
)

// Surface is the pixel canvas that a plot is drawn onto.
// Border is the total margin in pixels: half of it is left on
// each side of the data area.
type Surface struct {
	Width  int
	Height int
	Border int
}

// DefaultSurface returns the classic 800x600 data area with a 30 pixel border.
func DefaultSurface() Surface {
	return Surface{Width: 800 + 30, Height: 600 + 30, Border: 30}
}

// UsableWidth returns the width of the data area.
func (s Surface) UsableWidth() int {
	return s.Width - s.Border
}

// UsableHeight returns the height of the data area.
func (s Surface) UsableHeight() int {
	return s.Height - s.Border
}

// Validate returns an error wrapping [ErrSurfaceTooSmall] if
// the border leaves no data area.
func (s Surface) Validate() error {
	if s.Border < 0 || s.UsableWidth() <= 0 || s.UsableHeight() <= 0 {
		return fmt.Errorf("%w: %dx%d with border %d", ErrSurfaceTooSmall, s.Width, s.Height, s.Border)
	}
	return nil
}

// maxPixel bounds mapped pixel coordinates so that values far
// outside the bounds still convert to well defined integers.
const maxPixel = 1 << 24

// Mapper converts between data coordinates and pixel coordinates.
//
// The data area is divided into 10 equal steps spanning each axis, the same
// steps used by the tick marks, which reduces to linear interpolation of the
// value normalized to its range:
//
//	px = border/2 + (x - xMin) / (xMax - xMin) * (width - border)
//	py = border/2 + (yMax - y) / (yMax - yMin) * (height - border)
//
// Pixel y grows downward while data y grows upward.
// Pixel values are truncated toward zero.
type Mapper struct {
	Bounds  Bounds
	Surface Surface
}

// NewMapper returns a Mapper for the given bounds and surface,
// or an error wrapping [ErrDegenerateBounds] if an axis has zero span,
// or [ErrSurfaceTooSmall] if the surface has no data area.
func NewMapper(b Bounds, s Surface) (Mapper, error) {
	if err := b.Validate(); err != nil {
		return Mapper{}, err
	}
	if err := s.Validate(); err != nil {
		return Mapper{}, err
	}
	return Mapper{Bounds: b, Surface: s}, nil
}

// PX returns the pixel x coordinate of data value x.
func (m Mapper) PX(x float64) int {
	s := m.Surface
	return toPixel(float64(s.Border)/2 + m.Bounds.X().NormValue(x)*float64(s.UsableWidth()))
}

// PY returns the pixel y coordinate of data value y.
func (m Mapper) PY(y float64) int {
	s := m.Surface
	return toPixel(float64(s.Border)/2 + m.down().NormValue(y)*float64(s.UsableHeight()))
}

// DataX returns the data x value at pixel x coordinate px.
func (m Mapper) DataX(px int) float64 {
	s := m.Surface
	return m.Bounds.X().ProjValue((float64(px) - float64(s.Border)/2) / float64(s.UsableWidth()))
}

// DataY returns the data y value at pixel y coordinate py.
func (m Mapper) DataY(py int) float64 {
	s := m.Surface
	return m.down().ProjValue((float64(py) - float64(s.Border)/2) / float64(s.UsableHeight()))
}

// down returns the y range from top to bottom of the surface,
// with Min at YMax.
func (m Mapper) down() minmax.F64 {
	return minmax.F64{Min: m.Bounds.YMax, Max: m.Bounds.YMin}
}

// TickX returns the pixel x coordinate of x tick i of n,
// computed from the step index rather than the tick value.
func (m Mapper) TickX(i, n int) int {
	s := m.Surface
	return toPixel(float64(s.Border)/2 + float64(i)*float64(s.UsableWidth())/float64(n))
}

// TickY returns the pixel y coordinate of y tick i of n, counted
// from the top, computed from the step index rather than the tick value.
func (m Mapper) TickY(i, n int) int {
	s := m.Surface
	return toPixel(float64(s.Border)/2 + float64(i)*float64(s.UsableHeight())/float64(n))
}

// toPixel truncates v to an int, limited to ±maxPixel.
func toPixel(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxPixel:
		return maxPixel
	case v < -maxPixel:
		return -maxPixel
	}
	return int(v)
}
