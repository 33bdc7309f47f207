// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "image/color"

// Func is a function of one variable that can be plotted.
type Func interface {
	// Apply returns the value of the function at x.
	// It may return NaN or an Infinity where the function is undefined.
	Apply(x float64) float64
}

// FuncOf adapts an ordinary function to the [Func] interface.
type FuncOf func(x float64) float64

// Apply calls f(x).
func (f FuncOf) Apply(x float64) float64 {
	return f(x)
}

// ScatterSeries is a set of points drawn as markers.
// The points are a private copy and are not modified after it is added.
type ScatterSeries struct {
	Points XYs
	Color  color.RGBA
}

// FunctionSeries is a function drawn as a sampled curve.
type FunctionSeries struct {
	Func Func

	// Name is the display name, reserved for a legend.
	Name string

	Color color.RGBA
}

// Series holds the scatter and function series of a plot in the
// order in which they were added, which is also the order in which
// they are drawn. It only supports appending.
type Series struct {
	Scatter []*ScatterSeries
	Funcs   []*FunctionSeries
}

// AddScatter appends a scatter series.
func (sr *Series) AddScatter(s *ScatterSeries) {
	sr.Scatter = append(sr.Scatter, s)
}

// AddFunc appends a function series.
func (sr *Series) AddFunc(f *FunctionSeries) {
	sr.Funcs = append(sr.Funcs, f)
}

// Len returns the total number of series.
func (sr *Series) Len() int {
	return len(sr.Scatter) + len(sr.Funcs)
}
