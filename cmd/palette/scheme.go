// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/material/matcolor"
	"github.com/spf13/cobra"
)

func newSchemeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scheme [seed]",
		Short: "Print every color role of the scheme of a seed color",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := o.seed(args)
			if err != nil {
				return err
			}
			mode, err := o.schemeMode()
			if err != nil {
				return err
			}
			p, err := newPrinter(cmd.OutOrStdout(), o.format)
			if err != nil {
				return err
			}
			slog.Info("generating scheme", "seed", seed, "mode", mode)
			s := matcolor.NewScheme(seed, mode)
			p.scheme(&s)
			return nil
		},
	}
}
