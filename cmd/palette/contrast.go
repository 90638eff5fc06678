// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/hct"
	"github.com/spf13/cobra"
)

// Minimum contrast ratios of the WCAG levels.
const (
	contrastAAA     = 7
	contrastAA      = 4.5
	contrastAALarge = 3
)

// contrastLevel returns the best WCAG level a ratio passes.
func contrastLevel(ratio float64) string {
	switch {
	case ratio >= contrastAAA:
		return "AAA"
	case ratio >= contrastAA:
		return "AA"
	case ratio >= contrastAALarge:
		return "AA large text only"
	}
	return "fail"
}

func newContrastCmd(o *options) *cobra.Command {
	var target float64
	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Print the contrast ratio of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := colors.Parse(args[0])
			if err != nil {
				return err
			}
			bg, err := colors.Parse(args[1])
			if err != nil {
				return err
			}
			p, err := newPrinter(cmd.OutOrStdout(), o.format)
			if err != nil {
				return err
			}
			p.row("foreground", fg)
			p.row("background", bg)
			ratio := hct.ContrastRatio(fg, bg)
			fmt.Fprintf(p.w, "contrast %.2f:1 (%s)\n", ratio, contrastLevel(ratio))
			if ratio >= target {
				return nil
			}
			if c, ok := hct.ContrastColor(bg, target); ok {
				p.row(fmt.Sprintf("suggested for %.1f:1", target), c)
			} else {
				fmt.Fprintf(p.w, "no color reaches %.1f:1 against the background\n", target)
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&target, "target", "t", contrastAA, "contrast ratio to suggest a foreground for")
	return cmd
}
