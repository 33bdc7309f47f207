// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotfile

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/mathplot/plot"
	"cogentcore.org/mathplot/plot/paint"
)

// Demo colors of the classic plot. Its green and orange are brighter
// than the CSS colors of the same name.
const (
	DemoGreen  = "#00FF00"
	DemoOrange = "#FFC800"
)

// Demo returns the classic demonstration plot: X markers of size 15,
// a red and a green set of points, sin in blue and cos in orange.
func Demo() *File {
	f := New()
	f.Marker = Marker{Symbol: "X", Size: 15}
	f.Scatter = []Scatter{
		{Color: "red", Points: [][2]float64{{1, 2}, {3, 4}, {5, 6}}},
		{Color: DemoGreen, Points: [][2]float64{{-2, -3}, {0, 0}}},
	}
	f.Functions = []Function{
		{Name: "sin(x)", Func: "sin", Color: "blue"},
		{Name: "cos(x)", Func: "cos", Color: DemoOrange},
	}
	return f
}

// Frame builds the plot and renders it onto the surface of the file.
func (f *File) Frame() (plot.Frame, error) {
	pt, err := f.Plot()
	if err != nil {
		return plot.Frame{}, err
	}
	return pt.Render(f.Surface())
}

// Render renders the plot to the output file: SVG for a .svg
// extension, and otherwise an image in the format of the extension.
func (f *File) Render(output string) error {
	fr, err := f.Frame()
	if err != nil {
		return fmt.Errorf("plotfile.Render %q: %w", output, err)
	}
	if strings.EqualFold(filepath.Ext(output), ".svg") {
		err = fr.SVGToFile(output)
	} else {
		err = paint.Save(fr, output)
	}
	if err != nil {
		return fmt.Errorf("plotfile.Render %q: %w", output, err)
	}
	slog.Info("rendered plot", "file", output, "commands", len(fr.Commands))
	return nil
}
