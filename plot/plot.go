// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot draws scatter points and functions onto a Cartesian
// coordinate display. It keeps the visible data range up to date as
// series are added, maps between data and pixel coordinates, and
// renders each frame as a list of drawing commands ([Frame]) that a
// backend such as [Frame.SVG] or the paint package turns into an image.
//
// A Plot is not safe for concurrent use: adding series and rendering
// must happen sequentially, typically on the goroutine that owns the
// drawing surface.
package plot

import (
	"image/color"
	"log/slog"

	"cogentcore.org/mathplot/colors"
)

// Plot is the collection of series to draw, together with the data
// range that they determine and the style used to draw them.
type Plot struct {

	// Style is the style used to render the plot.
	Style Style

	ranges *RangeTracker
	series Series
}

// New returns a new plot with [DefaultBounds] and default style,
// using [Independent] widening.
func New() *Plot {
	return NewWithMode(Independent)
}

// NewWithMode returns a new plot using the given widening mode
// for scatter data.
func NewWithMode(mode WideningModes) *Plot {
	pt := &Plot{ranges: NewRangeTracker(mode)}
	pt.Style.Defaults()
	return pt
}

// Bounds returns the current visible data window.
func (pt *Plot) Bounds() Bounds {
	return pt.ranges.Bounds()
}

// WideningMode returns the widening mode used for scatter data.
func (pt *Plot) WideningMode() WideningModes {
	return pt.ranges.Mode
}

// Series returns the series added so far. It must not be modified.
func (pt *Plot) Series() *Series {
	return &pt.series
}

// nextColor returns clr as RGBA, or the next spaced color if it is nil.
func (pt *Plot) nextColor(clr color.Color) color.RGBA {
	if clr == nil {
		return colors.Spaced(pt.series.Len())
	}
	return colors.AsRGBA(clr)
}

// AddScatter adds a copy of the given points as a scatter series drawn in
// the given color (a spaced color if nil), and widens the bounds to fit them.
// Points with NaN or infinite values are dropped. Adding no points is a no-op.
func (pt *Plot) AddScatter(data XYer, clr color.Color) {
	xys, dropped := CopyXYs(data)
	if dropped > 0 {
		slog.Warn("plot: dropped non-finite scatter points", "dropped", dropped)
	}
	if len(xys) == 0 {
		return
	}
	pt.series.AddScatter(&ScatterSeries{Points: xys, Color: pt.nextColor(clr)})
	pt.ranges.AddXYs(xys)
}

// AddFunc adds a function series with the given name, drawn in the given
// color (a spaced color if nil), and widens the y bounds to fit its values
// across the current x range. A nil function is ignored.
func (pt *Plot) AddFunc(fn Func, name string, clr color.Color) {
	if fn == nil {
		return
	}
	pt.series.AddFunc(&FunctionSeries{Func: fn, Name: name, Color: pt.nextColor(clr)})
	pt.ranges.AddFunc(fn)
}

// AddFuncOf is a convenience for AddFunc with an ordinary function.
func (pt *Plot) AddFuncOf(f func(x float64) float64, name string, clr color.Color) {
	if f == nil {
		return
	}
	pt.AddFunc(FuncOf(f), name, clr)
}

// SetMarkerGlyph sets the symbol drawn for each scatter point.
func (pt *Plot) SetMarkerGlyph(symbol string) {
	pt.Style.Marker.Symbol = symbol
}

// SetMarkerSize sets the size in pixels of the symbol drawn for each scatter point.
func (pt *Plot) SetMarkerSize(size int) {
	pt.Style.Marker.Size = size
}

// Render renders the plot onto the given surface. See [Render].
func (pt *Plot) Render(s Surface) (Frame, error) {
	return Render(s, pt.Bounds(), &pt.series, &pt.Style)
}
