// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// spacedHues are the hues visited by [Spaced]:
// blue, red, green, yellow, violet, aqua, orange, blueviolet.
var spacedHues = []float64{255, 25, 150, 105, 340, 210, 60, 300}

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HCL space.
// Plots use it to color series that have no explicit color.
func Spaced(idx int) color.RGBA {
	lights := []float64{0.55, 0.7, 0.4}
	chromas := []float64{0.6, 0.6, 0.3}
	nh := len(spacedHues)
	hue := spacedHues[idx%nh]
	tci := (idx / nh) % len(lights)
	c := colorful.Hcl(hue, chromas[tci], lights[tci]).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
