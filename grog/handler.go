// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grog

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// NewLogger returns a text logger writing to w that shows messages at or
// above level. Level names are colored when w is a color terminal.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			return slog.String(a.Key, ApplyLevelColor(out, lv, lv.String()))
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup installs a logger writing to w at the given level as the
// [slog] default logger.
func Setup(w io.Writer, level slog.Level) {
	slog.SetDefault(NewLogger(w, level))
}

// SetDefaultLogger installs a stderr logger at [UserLevel] as the
// [slog] default logger.
func SetDefaultLogger() {
	Setup(os.Stderr, UserLevel)
}
