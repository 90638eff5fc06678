// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/hct"
	"github.com/spf13/cobra"
)

// adjustments are HCT color transforms, applied in field order.
// Zero values are skipped.
type adjustments struct {
	lighten, darken      float64
	highlight, samelight float64
	saturate, desaturate float64
	spin                 float64
}

func (a *adjustments) apply(c colors.ARGB) colors.ARGB {
	for _, step := range []struct {
		amount float64
		fn     func(c color.Color, amount float64) colors.ARGB
	}{
		{a.lighten, hct.Lighten},
		{a.darken, hct.Darken},
		{a.highlight, hct.Highlight},
		{a.samelight, hct.Samelight},
		{a.saturate, hct.Saturate},
		{a.desaturate, hct.Desaturate},
		{a.spin, hct.Spin},
	} {
		if step.amount != 0 {
			c = step.fn(c, step.amount)
		}
	}
	return c
}

func newAdjustCmd(o *options) *cobra.Command {
	a := &adjustments{}
	cmd := &cobra.Command{
		Use:   "adjust <color>",
		Short: "Change the tone, chroma or hue of a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colors.Parse(args[0])
			if err != nil {
				return err
			}
			p, err := newPrinter(cmd.OutOrStdout(), o.format)
			if err != nil {
				return err
			}
			p.row("input", c)
			p.row("adjusted", a.apply(c))
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&a.lighten, "lighten", 0, "raise the tone by this amount")
	f.Float64Var(&a.darken, "darken", 0, "lower the tone by this amount")
	f.Float64Var(&a.highlight, "highlight", 0, "move the tone this amount toward 50")
	f.Float64Var(&a.samelight, "samelight", 0, "move the tone this amount away from 50")
	f.Float64Var(&a.saturate, "saturate", 0, "raise the chroma by this amount")
	f.Float64Var(&a.desaturate, "desaturate", 0, "lower the chroma by this amount")
	f.Float64Var(&a.spin, "spin", 0, "rotate the hue by this many degrees")
	return cmd
}

func newMixCmd(o *options) *cobra.Command {
	var percent float64
	cmd := &cobra.Command{
		Use:   "mix <color> <color>",
		Short: "Blend two colors in HCT, along the shorter way around the hue circle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := colors.Parse(args[0])
			if err != nil {
				return err
			}
			y, err := colors.Parse(args[1])
			if err != nil {
				return err
			}
			p, err := newPrinter(cmd.OutOrStdout(), o.format)
			if err != nil {
				return err
			}
			p.row(args[0], x)
			p.row(args[1], y)
			p.row(fmt.Sprintf("mix %g%% / %g%%", percent, 100-percent), hct.Blend(percent, x, y))
			return nil
		},
	}
	cmd.Flags().Float64VarP(&percent, "percent", "p", 50, "percent of the first color")
	return cmd
}
