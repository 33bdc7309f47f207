// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint rasterizes a [plot.Frame] into an image.
//
// Lines are one pixel wide and run through pixel centers, so that a
// horizontal or vertical line exactly covers its row or column.
// Text is drawn in the font of each [plot.Text], and marker glyphs in
// the monospaced Go font at the marker size. See [FontLib].
package paint

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log/slog"

	"cogentcore.org/mathplot/base/iox/imagex"
	"cogentcore.org/mathplot/plot"
	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// LineWidth is the width in pixels of rasterized lines.
const LineWidth = 1.0

// Painter draws frame commands onto an RGBA image.
type Painter struct {

	// Image is the image being drawn onto.
	Image *image.RGBA

	ras *vector.Rasterizer
}

// NewPainter returns a new painter with an image of the size of the surface.
func NewPainter(s plot.Surface) *Painter {
	return &Painter{
		Image: image.NewRGBA(image.Rect(0, 0, s.Width, s.Height)),
		ras:   &vector.Rasterizer{},
	}
}

// Raster renders the frame into a new image of its surface size.
func Raster(fr plot.Frame) (*image.RGBA, error) {
	if err := fr.Surface.Validate(); err != nil {
		return nil, err
	}
	pt := NewPainter(fr.Surface)
	if err := pt.Frame(fr); err != nil {
		return nil, err
	}
	return pt.Image, nil
}

// Save renders the frame and saves it to the given image file,
// with the format inferred from the filename.
func Save(fr plot.Frame, filename string) error {
	img, err := Raster(fr)
	if err != nil {
		return err
	}
	return imagex.Save(img, filename)
}

// Write renders the frame and writes it to the writer in the given format.
func Write(fr plot.Frame, w io.Writer, f imagex.Formats) error {
	img, err := Raster(fr)
	if err != nil {
		return err
	}
	return imagex.Write(img, w, f)
}

// Frame clears the image to the frame background and
// draws all of its commands in order.
func (pt *Painter) Frame(fr plot.Frame) error {
	pt.Fill(fr.Background)
	for _, c := range fr.Commands {
		var err error
		switch x := c.(type) {
		case plot.Line:
			pt.Line(x)
		case plot.Text:
			err = pt.Text(x)
		case plot.Glyph:
			err = pt.Glyph(x)
		default:
			slog.Warn("paint: unknown command", "type", fmt.Sprintf("%T", c))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Fill sets every pixel of the image to the given color.
func (pt *Painter) Fill(clr color.RGBA) {
	draw.Draw(pt.Image, pt.Image.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// Line draws the line as a quad of [LineWidth] around the segment
// between the two pixel centers, extended by half the width at each end.
func (pt *Painter) Line(l plot.Line) {
	b := pt.Image.Bounds()
	fx1, fy1, fx2, fy2, ok := clipLine(float64(l.X1)+0.5, float64(l.Y1)+0.5, float64(l.X2)+0.5, float64(l.Y2)+0.5, b.Inset(-2))
	if !ok {
		return
	}
	x1, y1, x2, y2 := float32(fx1), float32(fy1), float32(fx2), float32(fy2)
	hw := float32(LineWidth / 2)
	ux, uy := float32(1), float32(0)
	if n := math32.Hypot(x2-x1, y2-y1); n > 0 {
		ux, uy = (x2-x1)/n, (y2-y1)/n
	}
	ex, ey := ux*hw, uy*hw
	nx, ny := -uy*hw, ux*hw
	quad := [4][2]float32{
		{x1 - ex + nx, y1 - ey + ny},
		{x2 + ex + nx, y2 + ey + ny},
		{x2 + ex - nx, y2 + ey - ny},
		{x1 - ex - nx, y1 - ey - ny},
	}
	mnx, mny := quad[0][0], quad[0][1]
	mxx, mxy := mnx, mny
	for _, q := range quad[1:] {
		mnx, mxx = math32.Min(mnx, q[0]), math32.Max(mxx, q[0])
		mny, mxy = math32.Min(mny, q[1]), math32.Max(mxy, q[1])
	}
	r := image.Rect(int(math32.Floor(mnx)), int(math32.Floor(mny)), int(math32.Ceil(mxx)), int(math32.Ceil(mxy)))
	if r.Empty() || !r.Overlaps(b) {
		return
	}
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	pt.ras.Reset(r.Dx(), r.Dy())
	pt.ras.MoveTo(quad[0][0]-ox, quad[0][1]-oy)
	for _, q := range quad[1:] {
		pt.ras.LineTo(q[0]-ox, q[1]-oy)
	}
	pt.ras.ClosePath()
	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	pt.ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(pt.Image, r, image.NewUniform(l.Color), image.Point{}, mask, image.Point{}, draw.Over)
}

// Text draws the text in its font with its baseline starting at the text position.
func (pt *Painter) Text(t plot.Text) error {
	face, err := FontLibrary.Face(t.Font, t.Size)
	if err != nil {
		return err
	}
	pt.drawString(face, t.X, t.Y, t.Text, t.Color)
	return nil
}

// Glyph draws the marker symbol in the monospaced font at the marker size,
// with its baseline start at [plot.Glyph.Origin].
func (pt *Painter) Glyph(g plot.Glyph) error {
	face, err := FontLibrary.Face(plot.Monospace, g.Size)
	if err != nil {
		return err
	}
	x, y := g.Origin()
	pt.drawString(face, x, y, g.Symbol, g.Color)
	return nil
}

func (pt *Painter) drawString(face font.Face, x, y int, s string, clr color.RGBA) {
	d := &font.Drawer{
		Dst:  pt.Image,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// clipLine clips the segment to the rectangle with the Liang-Barsky
// method, returning false if no part of it lies inside.
func clipLine(x1, y1, x2, y2 float64, r image.Rectangle) (float64, float64, float64, float64, bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x1 - float64(r.Min.X)},
		{dx, float64(r.Max.X) - x1},
		{-dy, y1 - float64(r.Min.Y)},
		{dy, float64(r.Max.Y) - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}
