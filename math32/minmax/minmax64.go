// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "math"

// MaxFloat64 is the largest finite float64.
const MaxFloat64 float64 = 1.7976931348623158e+308

// F64 represents a min / max range for float64 values.
// Supports fitting, renormalizing, projecting etc.
type F64 struct {
	Min float64
	Max float64
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat -- suitable for
// iteratively calling Fit*InRange
func (mr *F64) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// IsValid returns true if Min <= Max
func (mr F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// IsEmpty returns true if the range has zero or negative span,
// or if either end or the span itself is not a finite number.
func (mr F64) IsEmpty() bool {
	if math.IsNaN(mr.Min) || math.IsNaN(mr.Max) || math.IsInf(mr.Min, 0) || math.IsInf(mr.Max, 0) {
		return true
	}
	return mr.Max <= mr.Min || math.IsInf(mr.Range(), 0)
}

// IsLow tests whether value is lower than the minimum
func (mr F64) IsLow(val float64) bool {
	return (val < mr.Min)
}

// IsHigh tests whether value is higher than the maximum
func (mr F64) IsHigh(val float64) bool {
	return (val > mr.Max)
}

// Range returns Max - Min
func (mr F64) Range() float64 {
	return mr.Max - mr.Min
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// FitInRange adjusts our Min, Max to fit within those of other F64
// returns true if we had to adjust to fit.
func (mr *F64) FitInRange(oth F64) bool {
	adj := false
	if oth.Min < mr.Min {
		mr.Min = oth.Min
		adj = true
	}
	if oth.Max > mr.Max {
		mr.Max = oth.Max
		adj = true
	}
	return adj
}

// NormValue normalizes value to 0-1 unit range relative to current Min / Max range.
// Values outside the range map outside of 0-1. A reversed range (Min > Max)
// maps Min to 0 and Max to 1 as well.
func (mr F64) NormValue(val float64) float64 {
	return (val - mr.Min) / mr.Range()
}

// ProjValue projects a 0-1 normalized unit value into current Min / Max range (inverse of NormValue)
func (mr F64) ProjValue(val float64) float64 {
	return mr.Min + (val * mr.Range())
}

// Step returns the value at step i of n equal steps across the range,
// so that Step(0, n) == Min and Step(n, n) == Max.
func (mr F64) Step(i, n int) float64 {
	if i == n {
		return mr.Max
	}
	return mr.Min + float64(i)*mr.Range()/float64(n)
}
