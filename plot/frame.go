// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "image/color"

// Command is a single drawing operation in a [Frame].
// It is one of [Line], [Text] or [Glyph].
type Command interface {
	command()
}

// Line is a straight line segment between two pixel positions.
type Line struct {
	X1, Y1 int
	X2, Y2 int
	Color  color.RGBA
}

// Text is a string drawn with its baseline starting at X, Y.
type Text struct {
	X, Y  int
	Text  string
	Size  int
	Font  Fonts
	Color color.RGBA
}

// Glyph is a marker symbol of the given pixel size centered on X, Y,
// drawn in the [Monospace] font.
type Glyph struct {
	X, Y   int
	Symbol string
	Size   int
	Color  color.RGBA
}

func (Line) command()  {}
func (Text) command()  {}
func (Glyph) command() {}

// Origin returns the baseline start position at which the marker symbol
// is drawn as text so that a full-height glyph of the marker size is
// centered on the marker position.
func (g Glyph) Origin() (x, y int) {
	return g.X - g.Size/2, g.Y + g.Size/2
}

// Frame is the complete, ordered list of drawing commands for one render
// of a plot. Later commands draw on top of earlier ones.
type Frame struct {
	Surface    Surface
	Background color.RGBA
	Commands   []Command
}

func (fr *Frame) add(c Command) {
	fr.Commands = append(fr.Commands, c)
}

// Lines returns the [Line] commands of the frame, in order.
func (fr *Frame) Lines() []Line {
	var ls []Line
	for _, c := range fr.Commands {
		if l, ok := c.(Line); ok {
			ls = append(ls, l)
		}
	}
	return ls
}

// Texts returns the [Text] commands of the frame, in order.
func (fr *Frame) Texts() []Text {
	var ts []Text
	for _, c := range fr.Commands {
		if t, ok := c.(Text); ok {
			ts = append(ts, t)
		}
	}
	return ts
}

// Glyphs returns the [Glyph] commands of the frame, in order.
func (fr *Frame) Glyphs() []Glyph {
	var gs []Glyph
	for _, c := range fr.Commands {
		if g, ok := c.(Glyph); ok {
			gs = append(gs, g)
		}
	}
	return gs
}
