// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
)

// data defines the main data interfaces for plotting.

// XY is a single data point.
type XY struct {
	X, Y float64
}

// XYer provides an interface for a sequence of X, Y data points.
type XYer interface {
	// Len returns the number of x, y pairs.
	Len() int

	// XY returns an x, y pair.
	XY(i int) (x, y float64)
}

// XYs implements the XYer interface.
type XYs []XY

func (xys XYs) Len() int {
	return len(xys)
}

func (xys XYs) XY(i int) (float64, float64) {
	return xys[i].X, xys[i].Y
}

// XYsOf returns XYs from a slice of [x, y] pairs.
func XYsOf(pts [][2]float64) XYs {
	xys := make(XYs, len(pts))
	for i, p := range pts {
		xys[i] = XY{X: p[0], Y: p[1]}
	}
	return xys
}

// IsFinite returns true if v is neither NaN nor an Infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CopyXYs returns an XYs that is a copy of the x and y values from
// an XYer, along with the number of points that were dropped because
// one of their values was NaN or an Infinity.
func CopyXYs(data XYer) (XYs, int) {
	if data == nil {
		return nil, 0
	}
	n := data.Len()
	cpy := make(XYs, 0, n)
	for i := 0; i < n; i++ {
		x, y := data.XY(i)
		if !IsFinite(x) || !IsFinite(y) {
			continue
		}
		cpy = append(cpy, XY{X: x, Y: y})
	}
	return cpy, n - len(cpy)
}
