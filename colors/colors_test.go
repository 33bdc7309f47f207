// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", Red},
		{"Orange", Orange},
		{"#00f", Blue},
		{"#00ff0080", color.RGBA{0, 255, 0, 128}},
		{"rgb(1, 2, 3)", color.RGBA{1, 2, 3, 255}},
		{"rgba(1,2,3,4)", color.RGBA{1, 2, 3, 4}},
		{"rgb(300, -5, 127.6)", color.RGBA{255, 0, 128, 255}},
		{"rgb(100%, 0%, 50%)", color.RGBA{255, 0, 128, 255}},
		{"rgba(255, 0, 0, 0.5)", color.RGBA{255, 0, 0, 128}},
		{"rgba(255, 0, 0, 1)", color.RGBA{255, 0, 0, 255}},
		{"rgba(255, 0, 0, 0)", color.RGBA{255, 0, 0, 0}},
		{"rgba(0, 0, 255, 25%)", color.RGBA{0, 0, 255, 64}},
		{"rgba(0, 0, 255, 400)", color.RGBA{0, 0, 255, 255}},
		{"hsl(0, 100%, 50%)", Red},
		{"", Transparent},
		{"none", Transparent},
	}
	for _, test := range tests {
		c, err := FromString(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, c, test.in)
	}
}

func TestFromStringErrors(t *testing.T) {
	for _, in := range []string{"notacolor", "#12345", "rgb(1,2)", "hsl(a,b,c)", "#zzzzzz"} {
		_, err := FromString(in)
		assert.Error(t, err, in)
	}
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#FF0000", AsHex(Red))
	assert.Equal(t, "#00FF0080", AsHex(color.RGBA{0, 255, 0, 128}))
	assert.Equal(t, "none", AsHex(nil))
}

func TestSpaced(t *testing.T) {
	seen := map[color.RGBA]bool{}
	for i := 0; i < 8; i++ {
		c := Spaced(i)
		assert.Equal(t, uint8(255), c.A)
		assert.False(t, seen[c], "duplicate spaced color %d", i)
		seen[c] = true
	}
	assert.Equal(t, Spaced(3), Spaced(3))
}
