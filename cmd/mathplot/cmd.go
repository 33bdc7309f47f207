// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/mathplot/base/errors"
	"cogentcore.org/mathplot/base/logx"
	"cogentcore.org/mathplot/plotfile"
	"github.com/spf13/cobra"
)

// options are the flags shared by the commands.
type options struct {
	verbose     bool
	veryVerbose bool
	quiet       bool

	config []string
	output string

	width  int
	height int
	border int
}

// apply overrides the surface of the file with the flags that were set.
func (o *options) apply(cmd *cobra.Command, f *plotfile.File) {
	if cmd.Flags().Changed("width") {
		f.Width = o.width
	}
	if cmd.Flags().Changed("height") {
		f.Height = o.height
	}
	if cmd.Flags().Changed("border") {
		f.Border = o.border
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "mathplot",
		Short:         "Render scatter points and functions on a Cartesian plot",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(o.veryVerbose, o.verbose, o.quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "show info messages")
	pf.BoolVar(&o.veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(newRenderCmd(o), newWatchCmd(o), newDemoCmd(o))
	return root
}

// configFlag adds the repeatable plot file flag; later files
// override values of earlier ones.
func configFlag(cmd *cobra.Command, o *options) {
	cmd.Flags().StringSliceVarP(&o.config, "config", "c", []string{"plot.toml"}, "plot file (.toml, .yaml or .yml); repeat to layer files")
	errors.Must(cmd.MarkFlagFilename("config", "toml", "yaml", "yml"))
}

func surfaceFlags(cmd *cobra.Command, o *options) {
	fs := cmd.Flags()
	fs.IntVar(&o.width, "width", 0, "surface width in pixels, overriding the plot file")
	fs.IntVar(&o.height, "height", 0, "surface height in pixels, overriding the plot file")
	fs.IntVar(&o.border, "border", 0, "surface border in pixels, overriding the plot file")
}

func newRenderCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a plot file to an SVG or image file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := plotfile.Open(o.config...)
			if err != nil {
				return errors.Log(err)
			}
			o.apply(cmd, f)
			return errors.Log(f.Render(o.output))
		},
	}
	configFlag(cmd, o)
	cmd.Flags().StringVarP(&o.output, "output", "o", "plot.png", "output file (.svg, .png, .jpg, .gif, .tif or .bmp)")
	surfaceFlags(cmd, o)
	return cmd
}

func newWatchCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render a plot file again every time it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return errors.Log(plotfile.Watch(ctx, o.output, o.config...))
		},
	}
	configFlag(cmd, o)
	cmd.Flags().StringVarP(&o.output, "output", "o", "plot.png", "output file (.svg, .png, .jpg, .gif, .tif or .bmp)")
	return cmd
}

func newDemoCmd(o *options) *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the demonstration plot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := plotfile.Demo()
			o.apply(cmd, f)
			if save != "" {
				if err := f.Save(save); err != nil {
					return errors.Log(err)
				}
			}
			return errors.Log(f.Render(o.output))
		},
	}
	cmd.Flags().StringVarP(&o.output, "output", "o", "demo.png", "output file (.svg, .png, .jpg, .gif, .tif or .bmp)")
	cmd.Flags().StringVar(&save, "save", "", "also save the demo plot file (.toml or .yaml) for editing")
	surfaceFlags(cmd, o)
	return cmd
}

// executeContext runs the root command with the given arguments.
func executeContext(ctx context.Context, args ...string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
