// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mathplot renders plots of scatter points and functions
// described in TOML or YAML plot files to SVG and image files.
//
// Usage:
//
//	mathplot render -c plot.toml -o plot.png
//	mathplot render -c plot.toml -c large.toml -o plot.svg
//	mathplot watch -c plot.yaml -o plot.svg
//	mathplot demo -o demo.png
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
