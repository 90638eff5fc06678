// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/material/matcolor"
	"github.com/spf13/cobra"
)

func newTonesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tones [seed]",
		Short: "Print the tonal palettes of a seed color",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := o.seed(args)
			if err != nil {
				return err
			}
			p, err := newPrinter(cmd.OutOrStdout(), o.format)
			if err != nil {
				return err
			}
			pal := matcolor.NewPalette(seed)
			fmt.Fprintf(p.w, "seed %s\n\n", seed.Hex())
			for _, t := range []struct {
				name  string
				tones *matcolor.Tones
			}{
				{"primary", pal.Primary},
				{"secondary", pal.Secondary},
				{"tertiary", pal.Tertiary},
				{"error", pal.Error},
				{"neutral", pal.Neutral},
				{"neutral variant", pal.NeutralVariant},
			} {
				p.tones(t.name, t.tones)
				fmt.Fprintln(p.w)
			}
			return nil
		},
	}
}
