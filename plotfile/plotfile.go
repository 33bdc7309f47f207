// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotfile reads plot descriptions from TOML and YAML files
// and turns them into plots and rendered images.
package plotfile

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/mathplot/base/errors"
	"cogentcore.org/mathplot/base/iox/tomlx"
	"cogentcore.org/mathplot/base/iox/yamlx"
	"cogentcore.org/mathplot/colors"
	"cogentcore.org/mathplot/plot"
)

// ErrUnsupportedFormat is returned for plot files with
// an extension other than .toml, .yaml or .yml, or for a set
// of plot files mixing TOML and YAML.
var ErrUnsupportedFormat = errors.New("plotfile: unsupported file format")

// File is the description of a plot: the surface it is drawn on,
// how it is drawn, and the series it contains, in the order they are added.
type File struct {

	// Width is the total width of the surface in pixels.
	Width int `toml:"width" yaml:"width"`

	// Height is the total height of the surface in pixels.
	Height int `toml:"height" yaml:"height"`

	// Border is the margin in pixels split evenly around the data area.
	Border int `toml:"border" yaml:"border"`

	// Widening is the widening mode name: independent or mirrored.
	Widening string `toml:"widening" yaml:"widening"`

	// Axes is the axis placement name: center or zero.
	Axes string `toml:"axes" yaml:"axes"`

	// Font is the tick label font: sans-serif, serif or monospace.
	Font string `toml:"font" yaml:"font"`

	// Background is the background color.
	Background string `toml:"background" yaml:"background"`

	// Marker is the scatter marker.
	Marker Marker `toml:"marker" yaml:"marker"`

	// Scatter are the scatter series.
	Scatter []Scatter `toml:"scatter" yaml:"scatter"`

	// Functions are the function series, added after the scatter series.
	Functions []Function `toml:"functions" yaml:"functions"`

	// Series are further series added after Scatter and Functions,
	// in order, so that scatter and function series can be interleaved.
	// The order decides the x range over which each function's y range
	// is sampled.
	Series []Series `toml:"series,omitempty" yaml:"series,omitempty"`
}

// Series is one entry of an ordered series list: exactly one of
// Scatter and Function is set.
type Series struct {
	Scatter  *Scatter  `toml:"scatter,omitempty" yaml:"scatter,omitempty"`
	Function *Function `toml:"function,omitempty" yaml:"function,omitempty"`
}

// Marker is the glyph drawn for scatter points.
type Marker struct {
	Symbol string `toml:"symbol" yaml:"symbol"`
	Size   int    `toml:"size" yaml:"size"`
}

// Scatter is a set of points drawn in one color.
type Scatter struct {

	// Color is the color string; empty selects a spaced default color.
	Color string `toml:"color" yaml:"color"`

	// Points are the x, y pairs.
	Points [][2]float64 `toml:"points" yaml:"points"`
}

// Function is a named base function from [Funcs],
// optionally scaled and shifted (see [Shaped]).
type Function struct {

	// Name is the series name.
	Name string `toml:"name" yaml:"name"`

	// Func is the base function name.
	Func string `toml:"func" yaml:"func"`

	// Color is the color string; empty selects a spaced default color.
	Color string `toml:"color" yaml:"color"`

	// Amplitude scales the function value; defaults to 1.
	Amplitude *float64 `toml:"amplitude" yaml:"amplitude"`

	// Frequency scales x before the base function is applied; defaults to 1.
	Frequency *float64 `toml:"frequency" yaml:"frequency"`

	// Phase is added to the scaled x.
	Phase float64 `toml:"phase" yaml:"phase"`

	// Offset is added to the function value.
	Offset float64 `toml:"offset" yaml:"offset"`
}

// New returns a new file with the default surface and style.
func New() *File {
	f := &File{}
	f.Defaults()
	return f
}

// Defaults sets the surface and style to their default values.
func (f *File) Defaults() {
	s := plot.DefaultSurface()
	f.Width, f.Height, f.Border = s.Width, s.Height, s.Border
	f.Widening = plot.Independent.String()
	f.Axes = plot.AxesCenter.String()
	f.Font = plot.SansSerif.String()
	f.Background = "white"
	ms := plot.MarkerStyle{}
	ms.Defaults()
	f.Marker = Marker{Symbol: ms.Symbol, Size: ms.Size}
}

// Open reads the plot files in order, choosing TOML or YAML by their
// extension, which must be the same for all of them. Values in later
// files override those of earlier files, and a list in a later file
// replaces the whole list. Values not present in any file keep their defaults.
func Open(filenames ...string) (*File, error) {
	if len(filenames) == 0 {
		return nil, fmt.Errorf("%w: no plot file", ErrUnsupportedFormat)
	}
	format := formatOf(filenames[0])
	for _, fn := range filenames {
		if format == "" || formatOf(fn) != format {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, fn)
		}
	}
	f := New()
	var err error
	if format == "toml" {
		err = tomlx.OpenFiles(f, filenames...)
	} else {
		err = yamlx.OpenFiles(f, filenames...)
	}
	if err != nil {
		return nil, fmt.Errorf("plotfile.Open %q: %w", filenames, err)
	}
	return f, nil
}

// formatOf returns toml or yaml for a plot file name, or ""
// for an unsupported extension.
func formatOf(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

// Save writes the plot file, choosing TOML or YAML by its extension.
func (f *File) Save(filename string) error {
	switch formatOf(filename) {
	case "toml":
		return tomlx.Save(f, filename)
	case "yaml":
		return yamlx.Save(f, filename)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
}

// Surface returns the drawing surface of the file.
func (f *File) Surface() plot.Surface {
	return plot.Surface{Width: f.Width, Height: f.Height, Border: f.Border}
}

// Plot builds a new plot from the file, adding all scatter series,
// then all function series, then the ordered Series list. All errors
// in the file are reported together.
func (f *File) Plot() (*plot.Plot, error) {
	var errs []error
	mode := plot.Independent
	if f.Widening != "" {
		errs = append(errs, mode.SetString(f.Widening))
	}
	pt := plot.NewWithMode(mode)
	if f.Axes != "" {
		errs = append(errs, pt.Style.Axes.SetString(f.Axes))
	}
	if f.Font != "" {
		errs = append(errs, pt.Style.Font.SetString(f.Font))
	}
	if f.Background != "" {
		bg, err := colors.FromString(f.Background)
		errs = append(errs, err)
		pt.Style.Background = bg
	}
	if f.Marker.Symbol != "" {
		pt.SetMarkerGlyph(f.Marker.Symbol)
	}
	if f.Marker.Size > 0 {
		pt.SetMarkerSize(f.Marker.Size)
	}
	for i := range f.Scatter {
		errs = append(errs, f.Scatter[i].add(pt, fmt.Sprintf("scatter %d", i)))
	}
	for i := range f.Functions {
		errs = append(errs, f.Functions[i].add(pt, fmt.Sprintf("function %d", i)))
	}
	for i, sr := range f.Series {
		label := fmt.Sprintf("series %d", i)
		switch {
		case sr.Scatter != nil && sr.Function != nil:
			errs = append(errs, fmt.Errorf("%s: both scatter and function are set", label))
		case sr.Scatter != nil:
			errs = append(errs, sr.Scatter.add(pt, label))
		case sr.Function != nil:
			errs = append(errs, sr.Function.add(pt, label))
		default:
			errs = append(errs, fmt.Errorf("%s: neither scatter nor function is set", label))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	slog.Debug("plotfile: built plot", "series", pt.Series().Len(), "bounds", pt.Bounds())
	return pt, nil
}

// add adds the scatter series to the plot.
func (sc *Scatter) add(pt *plot.Plot, label string) error {
	clr, err := seriesColor(sc.Color)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	pt.AddScatter(plot.XYsOf(sc.Points), clr)
	return nil
}

// add adds the function series to the plot.
func (fn *Function) add(pt *plot.Plot, label string) error {
	base, err := lookupFunc(fn.Func)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	clr, err := seriesColor(fn.Color)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	name := fn.Name
	if name == "" {
		name = fn.Func
	}
	pt.AddFunc(fn.Shaped(base), name, clr)
	return nil
}

// Shaped returns the base function with the shaping of fn applied.
func (fn *Function) Shaped(base func(x float64) float64) *Shaped {
	s := &Shaped{Base: base, Amplitude: 1, Frequency: 1, Phase: fn.Phase, Offset: fn.Offset}
	if fn.Amplitude != nil {
		s.Amplitude = *fn.Amplitude
	}
	if fn.Frequency != nil {
		s.Frequency = *fn.Frequency
	}
	return s
}

// seriesColor parses a series color, returning nil for an empty string
// so that the plot picks a spaced default.
func seriesColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := colors.FromString(s)
	if err != nil {
		return nil, err
	}
	return c, nil
}
