// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/material/theme"
	"github.com/spf13/cobra"
)

func newSetCmd(o *options) *cobra.Command {
	var seed string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save the theme seed and mode to the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.settings.Override(theme.Overrides{Mode: o.mode, Seed: seed})
			if err != nil {
				return err
			}
			if err := theme.SaveSettings(o.config, s); err != nil {
				return err
			}
			slog.Info("saved theme settings", "path", o.config)
			fmt.Fprintf(cmd.OutOrStdout(), "mode %s, seed %s\n", s.Mode, s.Seed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&seed, "seed", "s", "", "seed color, as hex or a color name")
	return cmd
}
