// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"log/slog"
)

const (
	// TickSteps is the number of steps between tick marks on each
	// axis; there are TickSteps+1 tick marks.
	TickSteps = 10

	// CurveSteps is the number of line segments used to draw each
	// function, sampled at CurveSteps+1 points across the x range.
	CurveSteps = 500
)

// Render draws the given series within the given bounds onto a surface,
// returning the resulting [Frame]. Elements are drawn in this order:
// axes, tick marks and labels, function curves, scatter markers; series
// of each kind are drawn in the order in which they were added.
// Render does not modify its arguments, so it returns identical frames
// for identical inputs. It returns an error wrapping [ErrDegenerateBounds]
// if an axis of the bounds has zero span.
func Render(s Surface, b Bounds, sr *Series, st *Style) (Frame, error) {
	m, err := NewMapper(b, s)
	if err != nil {
		return Frame{}, fmt.Errorf("plot.Render: %w", err)
	}
	if st == nil {
		st = NewStyle()
	}
	if sr == nil {
		sr = &Series{}
	}
	fr := Frame{Surface: s, Background: st.Background}
	ax, ay := axisPosition(m, st)
	drawAxes(&fr, ax, ay, st)
	drawScale(&fr, m, ax, ay, st)
	for _, fs := range sr.Funcs {
		drawFunc(&fr, m, fs)
	}
	for _, ss := range sr.Scatter {
		drawScatter(&fr, m, ss, st)
	}
	return fr, nil
}

// axisPosition returns the pixel x of the vertical axis and
// the pixel y of the horizontal axis.
func axisPosition(m Mapper, st *Style) (ax, ay int) {
	s := m.Surface
	if st.Axes != AxesZero {
		return s.Width / 2, s.Height / 2
	}
	ax = min(max(m.PX(0), 0), s.Width-1)
	ay = min(max(m.PY(0), 0), s.Height-1)
	return ax, ay
}

// drawAxes draws a horizontal and a vertical line spanning the full surface.
func drawAxes(fr *Frame, ax, ay int, st *Style) {
	s := fr.Surface
	fr.add(Line{X1: 0, Y1: ay, X2: s.Width, Y2: ay, Color: st.AxisColor})
	fr.add(Line{X1: ax, Y1: 0, X2: ax, Y2: s.Height, Color: st.AxisColor})
}

// drawScale draws the tick marks and tick value labels along both axes.
// x values ascend left to right; y values descend top to bottom.
func drawScale(fr *Frame, m Mapper, ax, ay int, st *Style) {
	xr, yr := m.Bounds.X(), m.Bounds.Y()
	tl := st.TickLength
	for i := 0; i <= TickSteps; i++ {
		px := m.TickX(i, TickSteps)
		fr.add(Line{X1: px, Y1: ay - tl, X2: px, Y2: ay + tl, Color: st.ScaleColor})
		fr.add(Text{
			X:     px + st.XLabelOffset.X,
			Y:     ay + st.XLabelOffset.Y,
			Text:  fmt.Sprintf(st.TickFormat, xr.Step(i, TickSteps)),
			Size:  st.TextSize,
			Font:  st.Font,
			Color: st.ScaleColor,
		})
	}
	for i := 0; i <= TickSteps; i++ {
		py := m.TickY(i, TickSteps)
		yv := yr.Max
		if i == TickSteps {
			yv = yr.Min
		} else if i > 0 {
			yv = yr.Max - float64(i)*yr.Range()/TickSteps
		}
		fr.add(Line{X1: ax - tl, Y1: py, X2: ax + tl, Y2: py, Color: st.ScaleColor})
		fr.add(Text{
			X:     ax + st.YLabelOffset.X,
			Y:     py + st.YLabelOffset.Y,
			Text:  fmt.Sprintf(st.TickFormat, yv),
			Size:  st.TextSize,
			Font:  st.Font,
			Color: st.ScaleColor,
		})
	}
}

// drawFunc samples the function across the x range and joins consecutive
// samples with line segments. Segments touching a sample where the
// function is not finite are left out, leaving a gap in the curve.
func drawFunc(fr *Frame, m Mapper, fs *FunctionSeries) {
	if fs == nil || fs.Func == nil {
		return
	}
	xr := m.Bounds.X()
	skipped := 0
	prevX := xr.Step(0, CurveSteps)
	prevY := fs.Func.Apply(prevX)
	prevOK := IsFinite(prevY)
	if !prevOK {
		skipped++
	}
	for i := 1; i <= CurveSteps; i++ {
		x := xr.Step(i, CurveSteps)
		y := fs.Func.Apply(x)
		ok := IsFinite(y)
		if !ok {
			skipped++
		}
		if ok && prevOK {
			fr.add(Line{X1: m.PX(prevX), Y1: m.PY(prevY), X2: m.PX(x), Y2: m.PY(y), Color: fs.Color})
		}
		prevX, prevY, prevOK = x, y, ok
	}
	if skipped > 0 {
		slog.Debug("plot: function not finite at some samples", "func", fs.Name, "skipped", skipped)
	}
}

// drawScatter draws the marker glyph centered on every point of the series.
func drawScatter(fr *Frame, m Mapper, ss *ScatterSeries, st *Style) {
	if ss == nil {
		return
	}
	for _, p := range ss.Points {
		fr.add(Glyph{
			X:      m.PX(p.X),
			Y:      m.PY(p.Y),
			Symbol: st.Marker.Symbol,
			Size:   st.Marker.Size,
			Color:  ss.Color,
		})
	}
}
