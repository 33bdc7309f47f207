// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotfile

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/mathplot/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch renders the plot files, layered as by [Open], to the output
// file, and renders them again every time one of them is written,
// until the context is done. Errors from individual renders are logged
// and do not stop watching. The directories of the plot files are
// watched, so that files replaced by editors are still seen.
func Watch(ctx context.Context, output string, filenames ...string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("plotfile.Watch: %w", err)
	}
	defer w.Close()
	targets := map[string]bool{}
	dirs := map[string]bool{}
	for _, fn := range filenames {
		targets[filepath.Clean(fn)] = true
		dir := filepath.Dir(fn)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("plotfile.Watch: %w", err)
		}
	}
	render := func() {
		if f := errors.Log1(Open(filenames...)); f != nil {
			errors.Log(f.Render(output))
		}
	}
	render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(ev.Name)] || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("plotfile: plot file changed", "file", ev.Name, "op", ev.Op)
			render()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("plotfile: watching", "files", filenames, "err", err)
		}
	}
}
