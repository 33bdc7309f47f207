// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and the standard colors
// used for plot elements.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string, including the alpha component only when it is not fully opaque.
func AsHex(c color.Color) string {
	if c == nil {
		return "none"
	}
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// FromName returns the color value specified
// by the given CSS standard color name. It returns
// an error if the name is not found.
func FromName(name string) (color.RGBA, error) {
	c, ok := Map[name]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromString returns a color value from the given string.
// It accepts hex values (#RGB, #RRGGBB, #RRGGBBAA), standard
// color names, rgb(r, g, b), rgba(r, g, b, a) and hsl(h, s%, l%).
// An empty string or "none" returns a transparent color.
func FromString(str string) (color.RGBA, error) {
	lstr := strings.ToLower(strings.TrimSpace(str))
	switch {
	case lstr == "", lstr == "none":
		return color.RGBA{}, nil
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgba("):
		v, pct, err := parseArgs(lstr, "rgba(", 4)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{channel(v[0], pct[0]), channel(v[1], pct[1]), channel(v[2], pct[2]), alpha(v[3], pct[3])}, nil
	case strings.HasPrefix(lstr, "rgb("):
		v, pct, err := parseArgs(lstr, "rgb(", 3)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{channel(v[0], pct[0]), channel(v[1], pct[1]), channel(v[2], pct[2]), 255}, nil
	case strings.HasPrefix(lstr, "hsl("):
		v, _, err := parseArgs(lstr, "hsl(", 3)
		if err != nil {
			return color.RGBA{}, err
		}
		c := colorful.Hsl(v[0], v[1]/100, v[2]/100).Clamped()
		r, g, b := c.RGB255()
		return color.RGBA{r, g, b, 255}, nil
	default:
		return FromName(lstr)
	}
}

// parseArgs parses the n comma separated numeric arguments of a
// functional color notation such as rgb(1, 2, 3), reporting for each
// whether it was given as a percentage.
func parseArgs(lstr, prefix string, n int) ([]float64, []bool, error) {
	val := strings.TrimSuffix(strings.TrimPrefix(lstr, prefix), ")")
	fields := strings.Split(val, ",")
	if len(fields) != n {
		return nil, nil, fmt.Errorf("colors.FromString: expected %d values in %q", n, lstr)
	}
	res := make([]float64, n)
	pct := make([]bool, n)
	for i, f := range fields {
		f = strings.TrimSpace(f)
		f, pct[i] = strings.CutSuffix(f, "%")
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("colors.FromString: %q: %w", lstr, err)
		}
		res[i] = v
	}
	return res, pct, nil
}

// channel converts an rgb() component, 0-255 or a percentage,
// to a uint8, clamping out of range values.
func channel(v float64, pct bool) uint8 {
	if pct {
		v = v * 255 / 100
	}
	return uint8(math.Round(min(max(v, 0), 255)))
}

// alpha converts an rgba() alpha, given as a 0-1 fraction,
// a percentage, or a 0-255 value above 1, to a uint8.
func alpha(v float64, pct bool) uint8 {
	switch {
	case pct:
		v /= 100
	case v > 1:
		v /= 255
	}
	return channel(v*255, false)
}

// FromHex parses the given hex color string
// and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}
