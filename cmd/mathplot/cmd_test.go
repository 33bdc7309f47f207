// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/mathplot/base/iox/imagex"
	"cogentcore.org/mathplot/base/logx"
	"cogentcore.org/mathplot/plotfile"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "demo.png")
	save := filepath.Join(dir, "demo.toml")
	require.NoError(t, executeContext(context.Background(), "demo", "-q", "-o", out, "--save", save, "--width", "430"))
	assert.Equal(t, slog.LevelError, logx.UserLevel)

	img, _, err := imagex.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 430, img.Bounds().Dx())
	assert.Equal(t, 630, img.Bounds().Dy())

	f, err := plotfile.Open(save)
	require.NoError(t, err)
	assert.Equal(t, 430, f.Width)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "plot.yaml")
	require.NoError(t, plotfile.Demo().Save(cfg))
	out := filepath.Join(dir, "plot.bmp")
	require.NoError(t, executeContext(context.Background(), "render", "--vv", "-c", cfg, "-o", out, "--height", "330"))
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)

	img, f, err := imagex.Open(out)
	require.NoError(t, err)
	assert.Equal(t, imagex.BMP, f)
	assert.Equal(t, 830, img.Bounds().Dx())
	assert.Equal(t, 330, img.Bounds().Dy())
}

func TestRenderLayered(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "plot.toml")
	over := filepath.Join(dir, "large.toml")
	require.NoError(t, plotfile.Demo().Save(base))
	require.NoError(t, os.WriteFile(over, []byte("width = 1030\nheight = 830\n"), 0666))
	out := filepath.Join(dir, "plot.png")
	require.NoError(t, executeContext(context.Background(), "render", "-q", "-c", base, "-c", over, "-o", out, "--height", "430"))

	img, _, err := imagex.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 1030, img.Bounds().Dx())
	assert.Equal(t, 430, img.Bounds().Dy())

	// mixing formats is an error
	yml := filepath.Join(dir, "plot.yaml")
	require.NoError(t, plotfile.Demo().Save(yml))
	err = executeContext(context.Background(), "render", "-q", "-c", base, "-c", yml, "-o", out)
	assert.ErrorIs(t, err, plotfile.ErrUnsupportedFormat)
}

func TestConfigFlag(t *testing.T) {
	for _, name := range []string{"render", "watch"} {
		cmd, _, err := newRootCmd().Find([]string{name})
		require.NoError(t, err)
		fl := cmd.Flags().Lookup("config")
		require.NotNil(t, fl, name)
		assert.Equal(t, "[plot.toml]", fl.DefValue)
		assert.Equal(t, []string{"toml", "yaml", "yml"}, fl.Annotations[cobra.BashCompFilenameExt])
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, executeContext(context.Background(), "render", "-q", "-c", filepath.Join(dir, "missing.toml"), "-o", filepath.Join(dir, "x.png")))
	assert.Error(t, executeContext(context.Background(), "demo", "-q", "-o", filepath.Join(dir, "x.png"), "--border", "5000"))
	assert.Error(t, executeContext(context.Background(), "render", "extra"))
}

func TestWatchCanceled(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "plot.toml")
	require.NoError(t, plotfile.Demo().Save(cfg))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, executeContext(ctx, "watch", "-q", "-c", cfg, "-o", filepath.Join(dir, "plot.svg")))
	assert.FileExists(t, filepath.Join(dir, "plot.svg"))
}
