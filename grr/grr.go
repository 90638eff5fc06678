// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grr provides the error kinds surfaced at the edges of the
// theming engine, together with helpers that log an error and keep going.
//
// The color and scheme core is total and never returns errors; parsing
// user input and resolving external resources are the only places that
// can fail, and those failures are always handled locally.
package grr

import (
	"log/slog"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	grr.Log(MyFunc(v))
//	// or
//	return grr.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error and returns the value,
// logging the error if it is non-nil. The intended usage is:
//
//	a := grr.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. It is meant
// for package-level initialization from constant inputs:
//
//	var seed = grr.Must1(colors.Parse("#6750A4"))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
