// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

var (
	Black       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	White       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Gray        = color.RGBA{0x80, 0x80, 0x80, 0xff}
	Red         = color.RGBA{0xff, 0x00, 0x00, 0xff}
	Green       = color.RGBA{0x00, 0x80, 0x00, 0xff}
	Blue        = color.RGBA{0x00, 0x00, 0xff, 0xff}
	Orange      = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	Transparent = color.RGBA{}
)

// Map contains the subset of CSS named colors accepted in plot files.
var Map = map[string]color.RGBA{
	"black":       Black,
	"white":       White,
	"gray":        Gray,
	"grey":        Gray,
	"darkgray":    {0xa9, 0xa9, 0xa9, 0xff},
	"lightgray":   {0xd3, 0xd3, 0xd3, 0xff},
	"silver":      {0xc0, 0xc0, 0xc0, 0xff},
	"red":         Red,
	"darkred":     {0x8b, 0x00, 0x00, 0xff},
	"crimson":     {0xdc, 0x14, 0x3c, 0xff},
	"pink":        {0xff, 0xc0, 0xcb, 0xff},
	"magenta":     {0xff, 0x00, 0xff, 0xff},
	"purple":      {0x80, 0x00, 0x80, 0xff},
	"violet":      {0xee, 0x82, 0xee, 0xff},
	"green":       Green,
	"lime":        {0x00, 0xff, 0x00, 0xff},
	"darkgreen":   {0x00, 0x64, 0x00, 0xff},
	"olive":       {0x80, 0x80, 0x00, 0xff},
	"teal":        {0x00, 0x80, 0x80, 0xff},
	"blue":        Blue,
	"navy":        {0x00, 0x00, 0x80, 0xff},
	"darkblue":    {0x00, 0x00, 0x8b, 0xff},
	"steelblue":   {0x46, 0x82, 0xb4, 0xff},
	"cyan":        {0x00, 0xff, 0xff, 0xff},
	"aqua":        {0x00, 0xff, 0xff, 0xff},
	"orange":      Orange,
	"darkorange":  {0xff, 0x8c, 0x00, 0xff},
	"gold":        {0xff, 0xd7, 0x00, 0xff},
	"yellow":      {0xff, 0xff, 0x00, 0xff},
	"brown":       {0xa5, 0x2a, 0x2a, 0xff},
	"chocolate":   {0xd2, 0x69, 0x1e, 0xff},
	"transparent": Transparent,
}
