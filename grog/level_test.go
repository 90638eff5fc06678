// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(&buf, slog.LevelInfo)
	lg.Debug("hidden")
	lg.Info("theme replaced", "revision", 2)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "revision=2")
}

func TestApplyLevelColor(t *testing.T) {
	var buf bytes.Buffer
	plain := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	assert.Equal(t, "WARN", ApplyLevelColor(plain, slog.LevelWarn, "WARN"))

	colored := termenv.NewOutput(&buf, termenv.WithProfile(termenv.ANSI))
	assert.NotEqual(t, "WARN", ApplyLevelColor(colored, slog.LevelWarn, "WARN"))
	assert.Contains(t, ApplyLevelColor(colored, slog.LevelWarn, "WARN"), "WARN")

	assert.Equal(t, termenv.Color(termenv.ANSIRed), LevelColor(slog.LevelError))
}
