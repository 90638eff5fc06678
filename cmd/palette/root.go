// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/material/colors"
	"cogentcore.org/material/grog"
	"cogentcore.org/material/matcolor"
	"cogentcore.org/material/theme"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	config string
	format string
	mode   string

	verbose     bool
	veryVerbose bool
	quiet       bool

	settings *theme.Settings
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "palette",
		Short:        "Print Material color palettes and schemes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			grog.UserLevel = grog.LevelFromFlags(o.veryVerbose, o.verbose, o.quiet)
			grog.Setup(cmd.ErrOrStderr(), grog.UserLevel)
			s, err := theme.LoadSettings(o.config)
			if err != nil {
				return err
			}
			o.settings = s
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&o.config, "config", theme.DefaultSettingsPath(), "theme settings file")
	pf.StringVarP(&o.format, "format", "f", "hex", "color format: hex, rgb, hsl, lab or hct")
	pf.StringVarP(&o.mode, "mode", "m", "", "scheme mode: light, dark or auto (default from settings)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "show info messages")
	pf.BoolVar(&o.veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(
		newTonesCmd(o),
		newSchemeCmd(o),
		newContrastCmd(o),
		newSetCmd(o),
		newWatchCmd(o),
		newAdjustCmd(o),
		newMixCmd(o),
	)
	return root
}

// seed returns the color given as the first argument, or else the
// seed of the settings.
func (o *options) seed(args []string) (colors.ARGB, error) {
	if len(args) > 0 {
		return colors.Parse(args[0])
	}
	return o.settings.SeedColor()
}

// schemeMode returns the mode of the --mode flag, or else of the settings.
func (o *options) schemeMode() (matcolor.Mode, error) {
	s, err := o.settings.Override(theme.Overrides{Mode: o.mode})
	if err != nil {
		return matcolor.Light, err
	}
	return s.ResolveMode(), nil
}
