// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"cogentcore.org/mathplot/colors"
)

// Style contains the plot styling properties
// that control how the renderer draws a [Frame].
type Style struct {

	// Axes determines where the axis lines are drawn.
	Axes AxisModes

	// Background is the color the surface is cleared to.
	Background color.RGBA

	// AxisColor is the color of the axis lines.
	AxisColor color.RGBA

	// ScaleColor is the color of the tick marks and tick labels.
	ScaleColor color.RGBA

	// TickLength is the distance in pixels the tick marks extend
	// to either side of the axis line.
	TickLength int

	// TickFormat is the fmt format for tick label values.
	TickFormat string

	// TextSize is the size in pixels of tick label text.
	TextSize int

	// Font is the font family of tick label text.
	Font Fonts

	// XLabelOffset is the offset of each x tick label baseline start
	// from the point where the tick crosses the axis.
	XLabelOffset image.Point

	// YLabelOffset is the offset of each y tick label baseline start
	// from the point where the tick crosses the axis.
	YLabelOffset image.Point

	// Marker has style properties for drawing scatter points.
	Marker MarkerStyle
}

// NewStyle returns a new Style object with defaults applied.
func NewStyle() *Style {
	st := &Style{}
	st.Defaults()
	return st
}

func (st *Style) Defaults() {
	st.Axes = AxesCenter
	st.Background = colors.White
	st.AxisColor = colors.Gray
	st.ScaleColor = colors.Black
	st.TickLength = 5
	st.TickFormat = "%.1f"
	st.TextSize = 12
	st.Font = SansSerif
	st.XLabelOffset = image.Point{-15, 20}
	st.YLabelOffset = image.Point{10, 5}
	st.Marker.Defaults()
}

// MarkerStyle has the properties of the glyph drawn for scatter points.
type MarkerStyle struct {

	// Symbol is the text symbol drawn for each point.
	Symbol string

	// Size is the size of the symbol in pixels.
	Size int
}

func (ms *MarkerStyle) Defaults() {
	ms.Symbol = "█"
	ms.Size = 8
}

// AxisModes determine where the axis lines are drawn.
type AxisModes int32

const (
	// AxesCenter draws the axes through the center of the surface,
	// regardless of where zero falls in the data range.
	AxesCenter AxisModes = iota

	// AxesZero draws the axes through the pixel positions of data zero,
	// clamped to the edge of the surface when zero is out of range.
	AxesZero
)

var axisModeNames = []string{"center", "zero"}

func (am AxisModes) String() string {
	if am < 0 || int(am) >= len(axisModeNames) {
		return fmt.Sprintf("AxisModes(%d)", am)
	}
	return axisModeNames[am]
}

// SetString sets the mode from its (case insensitive) name.
func (am *AxisModes) SetString(s string) error {
	for i, n := range axisModeNames {
		if strings.EqualFold(s, n) {
			*am = AxisModes(i)
			return nil
		}
	}
	return fmt.Errorf("plot: %q is not a valid axis mode", s)
}

// Fonts are the generic font families used for text.
type Fonts int32

const (
	// SansSerif is a proportional font without serifs.
	SansSerif Fonts = iota

	// Serif is a proportional font with serifs.
	Serif

	// Monospace is a fixed width font.
	Monospace
)

var fontNames = []string{"sans-serif", "serif", "monospace"}

func (f Fonts) String() string {
	if f < 0 || int(f) >= len(fontNames) {
		return fmt.Sprintf("Fonts(%d)", f)
	}
	return fontNames[f]
}

// SetString sets the font from its (case insensitive) name.
func (f *Fonts) SetString(s string) error {
	for i, n := range fontNames {
		if strings.EqualFold(s, n) {
			*f = Fonts(i)
			return nil
		}
	}
	return fmt.Errorf("plot: %q is not a valid font", s)
}
