// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"sync"

	"cogentcore.org/mathplot/plot"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontLib holds parsed fonts and the faces opened from them,
// cached by font and integer pixel size. The sans-serif and monospace
// fonts are the Go fonts, and the serif font is Latin Modern Roman.
type FontLib struct {
	mu    sync.Mutex
	fonts map[plot.Fonts]*opentype.Font
	faces map[plot.Fonts]map[int]font.Face
}

// FontLibrary is the shared font library used by [Painter].
var FontLibrary = &FontLib{}

var fontData = map[plot.Fonts][]byte{
	plot.SansSerif: goregular.TTF,
	plot.Serif:     lmroman10regular.TTF,
	plot.Monospace: gomono.TTF,
}

// Face returns the face for the given font at the given size in pixels.
// Sizes below 1 use 12. Faces are shared and must only be used
// by one painter at a time.
func (fl *FontLib) Face(fam plot.Fonts, size int) (font.Face, error) {
	if size < 1 {
		size = 12
	}
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fm := fl.faces[fam]; fm != nil {
		if face := fm[size]; face != nil {
			return face, nil
		}
	}
	f, err := fl.open(fam)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("paint.FontLib: opening %v face of size %d: %w", fam, size, err)
	}
	if fl.faces == nil {
		fl.faces = make(map[plot.Fonts]map[int]font.Face)
	}
	fm := fl.faces[fam]
	if fm == nil {
		fm = make(map[int]font.Face)
		fl.faces[fam] = fm
	}
	fm[size] = face
	return face, nil
}

// open returns the parsed font; fl.mu must be held.
func (fl *FontLib) open(fam plot.Fonts) (*opentype.Font, error) {
	if f := fl.fonts[fam]; f != nil {
		return f, nil
	}
	data, ok := fontData[fam]
	if !ok {
		return nil, fmt.Errorf("paint.FontLib: unknown font %v", fam)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("paint.FontLib: parsing %v: %w", fam, err)
	}
	if fl.fonts == nil {
		fl.fonts = make(map[plot.Fonts]*opentype.Font)
	}
	fl.fonts[fam] = f
	return f, nil
}
