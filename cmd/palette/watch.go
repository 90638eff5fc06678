// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/material/theme"
	"github.com/spf13/cobra"
)

// watchInterval is how often the watch command checks for a new theme.
const watchInterval = 100 * time.Millisecond

func newWatchCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the scheme each time the settings file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			p, err := newPrinter(cmd.OutOrStdout(), o.format)
			if err != nil {
				return err
			}
			return watchTheme(ctx, o.config, p)
		},
	}
}

// watchTheme prints the scheme of the settings at path when it first
// loads and after every change, until ctx is done.
func watchTheme(ctx context.Context, path string, p *printer) error {
	t := theme.Default()
	errc := make(chan error, 1)
	go func() { errc <- theme.Watch(ctx, path, t) }()

	var tr theme.Tracker
	tick := time.NewTicker(watchInterval)
	defer tick.Stop()
	for {
		select {
		case err := <-errc:
			return err
		case <-tick.C:
			if tr.Changed(t) {
				fmt.Fprintf(p.w, "revision %d\n", tr.Last())
				p.scheme(t.Scheme())
				fmt.Fprintln(p.w)
			}
		}
	}
}
