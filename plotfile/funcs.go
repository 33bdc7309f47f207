// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotfile

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Funcs are the named base functions that a plot file can refer to.
var Funcs = map[string]func(x float64) float64{
	"sin":     math.Sin,
	"cos":     math.Cos,
	"tan":     math.Tan,
	"exp":     math.Exp,
	"log":     math.Log,
	"sqrt":    math.Sqrt,
	"abs":     math.Abs,
	"tanh":    math.Tanh,
	"x":       func(x float64) float64 { return x },
	"zero":    func(x float64) float64 { return 0 },
	"square":  func(x float64) float64 { return x * x },
	"cube":    func(x float64) float64 { return x * x * x },
	"sigmoid": func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
	"relu":    func(x float64) float64 { return math.Max(0, x) },
}

// FuncNames returns the sorted names of [Funcs].
func FuncNames() []string {
	nms := maps.Keys(Funcs)
	slices.Sort(nms)
	return nms
}

// Shaped is a base function scaled and shifted on both axes:
//
//	y = Amplitude * Base(Frequency*x + Phase) + Offset
type Shaped struct {
	Base      func(x float64) float64
	Amplitude float64
	Frequency float64
	Phase     float64
	Offset    float64
}

// Apply implements [plot.Func].
func (s *Shaped) Apply(x float64) float64 {
	return s.Amplitude*s.Base(s.Frequency*x+s.Phase) + s.Offset
}

// lookupFunc returns the named base function.
func lookupFunc(name string) (func(x float64) float64, error) {
	f, ok := Funcs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown function %q; valid functions are %s", name, strings.Join(FuncNames(), ", "))
	}
	return f, nil
}
