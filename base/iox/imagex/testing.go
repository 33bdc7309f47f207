// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] save the rendered images as the new
// golden images instead of comparing against them. It is set when the
// environment variable MATHPLOT_UPDATE_TESTDATA is "true", which should
// only be done after an intended change to rendering.
var UpdateTestImages = os.Getenv("MATHPLOT_UPDATE_TESTDATA") == "true"

// Tolerance is the maximum per-component color difference
// that [Assert] accepts between pixels, absorbing anti-aliasing
// differences between platforms.
var Tolerance uint8 = 2

// ColorsClose returns whether no component of a and b differs by more than tol.
func ColorsClose(a, b color.RGBA, tol uint8) bool {
	return delta(a.R, b.R) <= tol && delta(a.G, b.G) <= tol &&
		delta(a.B, b.B) <= tol && delta(a.A, b.A) <= tol
}

// delta returns the absolute difference of two components.
func delta(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

// FirstDiff returns the first pixel, in row order, at which the two
// images differ by more than tol. ok is false if the images have
// different bounds or a differing pixel was found.
func FirstDiff(a, b image.Image, tol uint8) (p image.Point, ok bool) {
	ab := a.Bounds()
	if ab != b.Bounds() {
		return ab.Min, false
	}
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			if !ColorsClose(rgbaAt(a, x, y), rgbaAt(b, x, y), tol) {
				return image.Pt(x, y), false
			}
		}
	}
	return image.Point{}, true
}

// DiffImage returns an opaque image over the bounds of a whose color
// components are the absolute differences between a and b.
func DiffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			ca, cb := rgbaAt(a, x, y), rgbaAt(b, x, y)
			di.SetRGBA(x, y, color.RGBA{delta(ca.R, cb.R), delta(ca.G, cb.G), delta(ca.B, cb.B), 255})
		}
	}
	return di
}

// golden holds the files of one golden image: the expected image,
// and the rendered and difference images saved when a comparison fails.
type golden struct {
	file, fail, diff string
}

func newGolden(name string) golden {
	file := filepath.Join("testdata", name)
	ext := filepath.Ext(file)
	if ext == "" {
		ext = ".png"
		file += ext
	}
	base := strings.TrimSuffix(file, ext)
	return golden{file: file, fail: base + ".fail" + ext, diff: base + ".diff" + ext}
}

// clean removes the failure files of an earlier run.
func (g golden) clean(t TestingT) {
	if err := os.RemoveAll(g.fail); err != nil {
		t.Errorf("imagex.Assert: removing %s: %v", g.fail, err)
	}
	os.RemoveAll(g.diff)
}

// save writes img as the golden image.
func (g golden) save(t TestingT, img image.Image) {
	if err := os.MkdirAll(filepath.Dir(g.file), 0750); err != nil {
		t.Errorf("imagex.Assert: making testdata directory: %v", err)
		return
	}
	if err := Save(img, g.file); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", g.file, err)
	}
}

// Assert checks that img matches the golden image of the given name
// in the testdata directory, adding ".png" if the name has no
// extension. A missing golden image is created from img. On a
// mismatch the test fails and continues, and img and its difference
// from the golden image are saved next to it as name.fail.png and
// name.diff.png.
func Assert(t TestingT, img image.Image, name string) {
	g := newGolden(name)
	if UpdateTestImages {
		g.save(t, img)
		g.clean(t)
		return
	}

	want, _, err := Open(g.file)
	if errors.Is(err, fs.ErrNotExist) {
		g.save(t, img)
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: opening %s: %v", g.file, err)
		return
	}

	p, ok := FirstDiff(img, want, Tolerance)
	if ok {
		g.clean(t)
		return
	}
	if img.Bounds() != want.Bounds() {
		t.Errorf("imagex.Assert: %s has bounds %v, but got %v; see %s", g.file, want.Bounds(), img.Bounds(), g.fail)
	} else {
		t.Errorf("imagex.Assert: %s differs at %v: want %v, got %v; see %s", g.file, p, rgbaAt(want, p.X, p.Y), rgbaAt(img, p.X, p.Y), g.fail)
	}
	if err := Save(img, g.fail); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", g.fail, err)
	}
	if err := Save(DiffImage(img, want), g.diff); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", g.diff, err)
	}
}
