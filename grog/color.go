// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grog

import (
	"log/slog"

	"github.com/muesli/termenv"
)

// UseColor is whether to apply level colors. Colors are only emitted
// when the output is a terminal that supports them.
var UseColor = true

// LevelColor returns the terminal color used for the given level.
func LevelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}

// ApplyLevelColor renders str in the color of the given level
// for the given output.
func ApplyLevelColor(out *termenv.Output, level slog.Level, str string) string {
	if !UseColor || out == nil {
		return str
	}
	return out.String(str).Foreground(LevelColor(level)).String()
}
