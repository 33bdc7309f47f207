// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func svgHasWidth(fn, width string) bool {
	b, err := os.ReadFile(fn)
	if err != nil {
		return false
	}
	return strings.Contains(string(b), `<svg width="`+width+`"`)
}

// watch runs Watch in the background, returning a function that
// cancels it and checks that it returned cleanly.
func watch(t *testing.T, output string, filenames ...string) func() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, output, filenames...) }()
	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("Watch did not return after cancel")
		}
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "plot.toml")
	out := filepath.Join(dir, "plot.svg")
	require.NoError(t, Demo().Save(fn))

	stop := watch(t, out, fn)
	require.Eventually(t, func() bool { return svgHasWidth(out, "830") }, 5*time.Second, 20*time.Millisecond)

	f := Demo()
	f.Width = 400
	require.NoError(t, f.Save(fn))
	assert.Eventually(t, func() bool { return svgHasWidth(out, "400") }, 5*time.Second, 20*time.Millisecond)
	stop()
}

func TestWatchLayers(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	over := filepath.Join(t.TempDir(), "size.yaml")
	out := filepath.Join(dir, "plot.svg")
	require.NoError(t, Demo().Save(base))
	require.NoError(t, os.WriteFile(over, []byte("width: 500\n"), 0666))

	stop := watch(t, out, base, over)
	require.Eventually(t, func() bool { return svgHasWidth(out, "500") }, 5*time.Second, 20*time.Millisecond)

	// a broken layer is logged and the last output is kept
	require.NoError(t, os.WriteFile(over, []byte("width: [\n"), 0666))
	time.Sleep(100 * time.Millisecond)
	assert.True(t, svgHasWidth(out, "500"))

	require.NoError(t, os.WriteFile(over, []byte("width: 600\n"), 0666))
	assert.Eventually(t, func() bool { return svgHasWidth(out, "600") }, 5*time.Second, 20*time.Millisecond)
	stop()
}
