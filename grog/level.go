// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grog sets up structured logging through log/slog, with the
// verbosity chosen by the end user and level names colored on terminals.
package grog

import "log/slog"

// UserLevel is the lowest level that gets logged. Commands set it from
// their verbosity flags; library packages only read it.
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the --vv, -v and -q flags to a level. The most
// verbose flag wins, so --vv with -q still logs debug messages. With no
// flags the level is warn.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	}
	return slog.LevelWarn
}
