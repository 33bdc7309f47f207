// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"cogentcore.org/mathplot/base/iox/imagex"
	"cogentcore.org/mathplot/colors"
	"cogentcore.org/mathplot/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, pt *plot.Plot) *image.RGBA {
	fr, err := pt.Render(plot.DefaultSurface())
	require.NoError(t, err)
	img, err := Raster(fr)
	require.NoError(t, err)
	return img
}

// countColor returns how many pixels in r have exactly the given color.
func countColor(img *image.RGBA, r image.Rectangle, clr color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == clr {
				n++
			}
		}
	}
	return n
}

// countDark returns how many pixels in r have a red component below half.
func countDark(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).R < 0x80 {
				n++
			}
		}
	}
	return n
}

func TestRasterAxes(t *testing.T) {
	img := render(t, plot.New())
	assert.Equal(t, image.Rect(0, 0, 830, 630), img.Bounds())

	assert.Equal(t, colors.Gray, img.RGBAAt(100, 315))
	assert.Equal(t, colors.Gray, img.RGBAAt(0, 315))
	assert.Equal(t, colors.Gray, img.RGBAAt(829, 315))
	assert.Equal(t, colors.Gray, img.RGBAAt(415, 100))
	assert.Equal(t, colors.White, img.RGBAAt(100, 314))
	assert.Equal(t, colors.White, img.RGBAAt(100, 316))
	assert.Equal(t, colors.White, img.RGBAAt(100, 100))

	// tick mark crossing the horizontal axis at x = 15
	assert.Equal(t, colors.Black, img.RGBAAt(15, 312))
	assert.Equal(t, colors.Black, img.RGBAAt(15, 318))

	// first x tick label below the axis
	assert.Positive(t, countDark(img, image.Rect(0, 322, 40, 338)))
	assert.Zero(t, countDark(img, image.Rect(100, 200, 300, 300)))
}

func TestRasterConstantFunc(t *testing.T) {
	pt := plot.New()
	pt.AddFuncOf(func(x float64) float64 { return 0 }, "zero", colors.Blue)
	img := render(t, pt)
	assert.Equal(t, colors.Blue, img.RGBAAt(200, 315))
	assert.Equal(t, colors.Blue, img.RGBAAt(600, 315))
	assert.Equal(t, colors.Gray, img.RGBAAt(5, 315))
}

func TestRasterGlyph(t *testing.T) {
	pt := plot.New()
	pt.AddScatter(plot.XYs{{X: 5, Y: 2.5}}, colors.Red)
	img := render(t, pt)
	// marker centered on (615, 165)
	assert.Positive(t, countColor(img, image.Rect(611, 161, 620, 170), colors.Red))
	assert.Zero(t, countColor(img, image.Rect(0, 0, 600, 150), colors.Red))
}

func TestRasterInvalidSurface(t *testing.T) {
	_, err := Raster(plot.Frame{})
	assert.ErrorIs(t, err, plot.ErrSurfaceTooSmall)
}

func TestLineFarOutside(t *testing.T) {
	pt := NewPainter(plot.Surface{Width: 40, Height: 20, Border: 0})
	pt.Fill(colors.White)
	pt.Line(plot.Line{X1: -1 << 24, Y1: 10, X2: 1 << 24, Y2: 10, Color: colors.Red})
	assert.Equal(t, 40, countColor(pt.Image, pt.Image.Bounds(), colors.Red))

	pt.Fill(colors.White)
	pt.Line(plot.Line{X1: 100, Y1: 100, X2: 200, Y2: 300, Color: colors.Red})
	assert.Zero(t, countColor(pt.Image, pt.Image.Bounds(), colors.Red))
}

func TestLineDiagonal(t *testing.T) {
	pt := NewPainter(plot.Surface{Width: 20, Height: 20})
	pt.Fill(colors.White)
	pt.Line(plot.Line{X1: 2, Y1: 2, X2: 12, Y2: 12, Color: colors.Black})
	c := pt.Image.RGBAAt(7, 7)
	assert.Less(t, c.R, uint8(128))
	assert.Equal(t, colors.White, pt.Image.RGBAAt(12, 2))
}

func TestClipLine(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)
	x1, y1, x2, y2, ok := clipLine(-10, 5, 20, 5, r)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 5, 10, 5}, []float64{x1, y1, x2, y2})

	_, _, _, _, ok = clipLine(-10, -5, 20, -5, r)
	assert.False(t, ok)

	x1, y1, x2, y2, ok = clipLine(2, 3, 4, 5, r)
	require.True(t, ok)
	assert.Equal(t, []float64{2, 3, 4, 5}, []float64{x1, y1, x2, y2})
}

func TestFontLibraryCache(t *testing.T) {
	f1, err := FontLibrary.Face(plot.Monospace, 15)
	require.NoError(t, err)
	f2, err := FontLibrary.Face(plot.Monospace, 15)
	require.NoError(t, err)
	assert.Same(t, f1, f2)

	serif, err := FontLibrary.Face(plot.Serif, 12)
	require.NoError(t, err)
	assert.NotSame(t, serif, f1)

	_, err = FontLibrary.Face(plot.Fonts(7), 12)
	assert.Error(t, err)
}

func TestRasterSerifLabels(t *testing.T) {
	pt := plot.New()
	pt.Style.Font = plot.Serif
	img := render(t, pt)
	assert.Positive(t, countDark(img, image.Rect(0, 322, 40, 338)))
}

func TestSave(t *testing.T) {
	pt := plot.New()
	pt.AddScatter(plot.XYs{{X: 1, Y: 2}, {X: 3, Y: 4}}, colors.Red)
	pt.AddFuncOf(math.Sin, "sin(x)", colors.Blue)
	fr, err := pt.Render(plot.DefaultSurface())
	require.NoError(t, err)

	fn := filepath.Join(t.TempDir(), "plot.png")
	require.NoError(t, Save(fr, fn))
	img, f, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, image.Rect(0, 0, 830, 630), img.Bounds())

	var b bytes.Buffer
	require.NoError(t, Write(fr, &b, imagex.BMP))
	assert.Equal(t, "BM", b.String()[:2])

	assert.Error(t, Save(fr, filepath.Join(t.TempDir(), "plot.xyz")))
}

func TestRasterDemo(t *testing.T) {
	pt := plot.New()
	pt.SetMarkerGlyph("X")
	pt.SetMarkerSize(15)
	pt.AddScatter(plot.XYs{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, colors.Red)
	pt.AddScatter(plot.XYs{{X: -2, Y: -3}, {X: 0, Y: 0}}, colors.Green)
	pt.AddFuncOf(math.Sin, "sin(x)", colors.Blue)
	pt.AddFuncOf(math.Cos, "cos(x)", colors.Orange)
	imagex.Assert(t, render(t, pt), "demo")
}
