// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/mathplot/math32/minmax"
)

// ProbeSteps is the number of steps used to probe the y range of a
// function across the current x range; the function is evaluated at
// ProbeSteps+1 evenly spaced points including both ends.
const ProbeSteps = 100

// WideningModes determine how scatter data widens the [Bounds].
type WideningModes int32

const (
	// Independent tracks the minimum and maximum of each axis
	// independently, so the bounds only ever grow.
	Independent WideningModes = iota

	// Mirrored reproduces the classic behavior in which a new minimum m
	// also sets the maximum to -m, and a new maximum M also sets the
	// minimum to -M, keeping each axis symmetric about zero.
	// This can narrow the opposite end of an axis.
	Mirrored
)

var wideningNames = []string{"independent", "mirrored"}

func (wm WideningModes) String() string {
	if wm < 0 || int(wm) >= len(wideningNames) {
		return fmt.Sprintf("WideningModes(%d)", wm)
	}
	return wideningNames[wm]
}

// SetString sets the mode from its (case insensitive) name.
func (wm *WideningModes) SetString(s string) error {
	for i, n := range wideningNames {
		if strings.EqualFold(s, n) {
			*wm = WideningModes(i)
			return nil
		}
	}
	return fmt.Errorf("plot: %q is not a valid widening mode", s)
}

// WidenXYs returns the bounds widened to include the given points
// according to the given mode. Points with non-finite values are ignored.
func (b Bounds) WidenXYs(data XYer, mode WideningModes) Bounds {
	if data == nil {
		return b
	}
	for i := 0; i < data.Len(); i++ {
		x, y := data.XY(i)
		if !IsFinite(x) || !IsFinite(y) {
			continue
		}
		xr, yr := b.X(), b.Y()
		if mode == Mirrored {
			xr = mirror(xr, x)
			yr = mirror(yr, y)
		} else {
			xr.FitValInRange(x)
			yr.FitValInRange(y)
		}
		b.XMin, b.XMax = xr.Min, xr.Max
		b.YMin, b.YMax = yr.Min, yr.Max
	}
	return b
}

// mirror applies the [Mirrored] widening rule for a single value.
func mirror(r minmax.F64, v float64) minmax.F64 {
	if r.IsLow(v) {
		r = minmax.F64{Min: v, Max: -v}
	}
	if r.IsHigh(v) {
		r = minmax.F64{Min: -v, Max: v}
	}
	return r
}

// WidenFunc returns the bounds with the y range widened to include the
// values of fn sampled at ProbeSteps+1 points across the current x range.
// The x range is unchanged. Non-finite samples are skipped.
func (b Bounds) WidenFunc(fn Func) Bounds {
	if fn == nil {
		return b
	}
	xr := b.X()
	var samples minmax.F64
	samples.SetInfinity()
	skipped := 0
	for i := 0; i <= ProbeSteps; i++ {
		y := fn.Apply(xr.Step(i, ProbeSteps))
		if !IsFinite(y) {
			skipped++
			continue
		}
		samples.FitValInRange(y)
	}
	if skipped > 0 {
		slog.Debug("plot: skipped non-finite function samples in range probe", "skipped", skipped)
	}
	if !samples.IsValid() {
		return b
	}
	yr := b.Y()
	yr.FitInRange(samples)
	b.YMin, b.YMax = yr.Min, yr.Max
	return b
}

// RangeTracker maintains the current [Bounds] as data is added.
// Bounds start at [DefaultBounds] and are updated once per added series.
type RangeTracker struct {
	// Mode is the widening mode applied to scatter data.
	Mode WideningModes

	bounds Bounds
}

// NewRangeTracker returns a RangeTracker starting at [DefaultBounds].
func NewRangeTracker(mode WideningModes) *RangeTracker {
	return &RangeTracker{Mode: mode, bounds: DefaultBounds()}
}

// Bounds returns the current bounds.
func (rt *RangeTracker) Bounds() Bounds {
	return rt.bounds
}

// AddXYs widens the bounds for the given scatter data.
func (rt *RangeTracker) AddXYs(data XYer) {
	rt.bounds = rt.bounds.WidenXYs(data, rt.Mode)
}

// AddFunc widens the y bounds for the given function, probed across
// the x range that is current at the time of the call.
func (rt *RangeTracker) AddFunc(fn Func) {
	rt.bounds = rt.bounds.WidenFunc(fn)
}
