// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperDefault(t *testing.T) {
	m, err := NewMapper(DefaultBounds(), DefaultSurface())
	require.NoError(t, err)

	assert.Equal(t, 15, m.PX(-10))
	assert.Equal(t, 415, m.PX(0))
	assert.Equal(t, 815, m.PX(10))
	assert.Equal(t, 15, m.PY(5))
	assert.Equal(t, 315, m.PY(0))
	assert.Equal(t, 615, m.PY(-5))

	// truncated, not rounded
	assert.Equal(t, 415, m.PX(0.024))
	assert.Equal(t, 416, m.PX(0.049))
	assert.Equal(t, 314, m.PY(0.01))
}

func TestMapperRoundTrip(t *testing.T) {
	bounds := []Bounds{
		DefaultBounds(),
		{XMin: -2.5, XMax: 17, YMin: -0.001, YMax: 0.003},
		{XMin: 100, XMax: 1e4, YMin: -1e3, YMax: 1},
	}
	surfaces := []Surface{DefaultSurface(), {Width: 101, Height: 57, Border: 7}, {Width: 2000, Height: 40, Border: 0}}
	for _, b := range bounds {
		for _, s := range surfaces {
			m, err := NewMapper(b, s)
			require.NoError(t, err)
			xpix := b.X().Range() / float64(s.UsableWidth())
			ypix := b.Y().Range() / float64(s.UsableHeight())
			for i := 0; i <= 37; i++ {
				x := b.X().Step(i, 37)
				y := b.Y().Step(i, 37)
				assert.InDelta(t, x, m.DataX(m.PX(x)), xpix*1.000001, "x %v %v", b, s)
				assert.InDelta(t, y, m.DataY(m.PY(y)), ypix*1.000001, "y %v %v", b, s)
			}
		}
	}
}

func TestMapperTicksMatchValues(t *testing.T) {
	b := Bounds{XMin: -3, XMax: 17, YMin: -8, YMax: 2}
	m, err := NewMapper(b, DefaultSurface())
	require.NoError(t, err)
	for i := 0; i <= TickSteps; i++ {
		xv := b.XMin + float64(i)*(b.XMax-b.XMin)/TickSteps
		yv := b.YMax - float64(i)*(b.YMax-b.YMin)/TickSteps
		assert.InDelta(t, m.TickX(i, TickSteps), m.PX(xv), 1)
		assert.InDelta(t, m.TickY(i, TickSteps), m.PY(yv), 1)
	}
	assert.Equal(t, 15+80*3, m.TickX(3, TickSteps))
	assert.Equal(t, 15+60*7, m.TickY(7, TickSteps))
}

func TestMapperDegenerate(t *testing.T) {
	_, err := NewMapper(Bounds{XMin: 1, XMax: 1, YMin: -5, YMax: 5}, DefaultSurface())
	assert.True(t, errors.Is(err, ErrDegenerateBounds))
	assert.ErrorContains(t, err, "x range")

	_, err = NewMapper(Bounds{XMin: -1, XMax: 1, YMin: 3, YMax: 3}, DefaultSurface())
	assert.ErrorIs(t, err, ErrDegenerateBounds)
	assert.ErrorContains(t, err, "y range")

	_, err = NewMapper(DefaultBounds(), Surface{Width: 30, Height: 600, Border: 30})
	assert.ErrorIs(t, err, ErrSurfaceTooSmall)
}

func TestMapperFarOutside(t *testing.T) {
	m, err := NewMapper(DefaultBounds(), DefaultSurface())
	require.NoError(t, err)
	assert.Equal(t, maxPixel, m.PY(-1e300))
	assert.Equal(t, -maxPixel, m.PY(1e300))
	assert.Equal(t, -maxPixel, m.PX(-1e300))
}
