// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64Fit(t *testing.T) {
	r := F64{Min: -10, Max: 10}
	assert.False(t, r.FitValInRange(3))
	assert.True(t, r.FitValInRange(12))
	assert.Equal(t, F64{-10, 12}, r)
	assert.True(t, r.FitValInRange(-11))
	assert.Equal(t, F64{-11, 12}, r)

	r.SetInfinity()
	r.FitValInRange(2)
	r.FitValInRange(5)
	assert.Equal(t, F64{2, 5}, r)

	assert.True(t, r.FitInRange(F64{0, 1}))
	assert.Equal(t, F64{0, 5}, r)

	var e F64
	e.SetInfinity()
	assert.False(t, e.IsValid())
	assert.True(t, r.IsValid())
}

func TestF64Tests(t *testing.T) {
	r := F64{Min: -5, Max: 5}
	assert.True(t, r.IsLow(-6))
	assert.True(t, r.IsHigh(6))
	assert.False(t, r.IsHigh(4))
	assert.False(t, r.IsEmpty())
	assert.True(t, F64{1, 1}.IsEmpty())
	assert.True(t, F64{math.NaN(), 1}.IsEmpty())
	assert.True(t, F64{-1e308, 1e308}.IsEmpty())
	assert.False(t, F64{-1e307, 1e307}.IsEmpty())
}

func TestF64Norm(t *testing.T) {
	r := F64{Min: -10, Max: 10}
	assert.Equal(t, 0.5, r.NormValue(0))
	assert.Equal(t, 1.5, r.NormValue(20))
	assert.Equal(t, 5.0, r.ProjValue(0.75))
	down := F64{Min: 5, Max: -5}
	assert.Equal(t, 0.25, down.NormValue(2.5))
	assert.Equal(t, -5.0, down.ProjValue(1))
	assert.Equal(t, -10.0, r.Step(0, 10))
	assert.Equal(t, -8.0, r.Step(1, 10))
	assert.Equal(t, 10.0, r.Step(10, 10))
}
