// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bufio"
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"cogentcore.org/mathplot/colors"
	svg "github.com/ajstarks/svgo"
)

// pixelCenter shifts line endpoints to pixel centers, so that
// 1px lines are crisp.
const pixelCenter = "translate(0.5,0.5)"

// SVG writes an SVG representation of the frame to w.
func (fr *Frame) SVG(w io.Writer) error {
	s := fr.Surface
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(s.Width, s.Height, fmt.Sprintf(`viewBox="0 0 %d %d"`, s.Width, s.Height))
	if fr.Background.A > 0 {
		canvas.Rect(0, 0, s.Width, s.Height, svgPaint("fill", fr.Background))
	}
	inLines := false
	for _, c := range fr.Commands {
		_, isLine := c.(Line)
		if isLine != inLines {
			if isLine {
				canvas.Gtransform(pixelCenter)
			} else {
				canvas.Gend()
			}
			inLines = isLine
		}
		switch c := c.(type) {
		case Line:
			canvas.Line(c.X1, c.Y1, c.X2, c.Y2, svgPaint("stroke", c.Color)+";stroke-width:1")
		case Text:
			canvas.Text(c.X, c.Y, c.Text, svgFont(c.Font, c.Size, c.Color))
		case Glyph:
			x, y := c.Origin()
			canvas.Text(x, y, c.Symbol, svgFont(Monospace, c.Size, c.Color))
		}
	}
	if inLines {
		canvas.Gend()
	}
	canvas.End()
	return bw.Flush()
}

// svgFont returns the style of a text element.
func svgFont(font Fonts, size int, clr color.RGBA) string {
	return fmt.Sprintf("font-family:%s;font-size:%dpx;%s", font, size, svgPaint("fill", clr))
}

// svgPaint returns the style setting the given paint property to clr,
// with a separate opacity property for translucent colors.
func svgPaint(prop string, clr color.RGBA) string {
	hex := colors.AsHex(color.RGBA{clr.R, clr.G, clr.B, 255})
	if clr.A == 255 {
		return prop + ":" + hex
	}
	return fmt.Sprintf("%s:%s;%s-opacity:%.3g", prop, hex, prop, float64(clr.A)/255)
}

// SVGString returns an SVG representation of the frame as a string
func (fr *Frame) SVGString() string {
	b := &bytes.Buffer{}
	fr.SVG(b)
	return b.String()
}

// SVGToFile saves the SVG to given file
func (fr *Frame) SVGToFile(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = fr.SVG(fp)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}
