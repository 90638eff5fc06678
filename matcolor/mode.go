// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"strings"

	"cogentcore.org/material/grr"
)

// Mode is the brightness mode of a scheme.
type Mode int32

const (
	// Light schemes have light surfaces and dark content.
	Light Mode = iota

	// Dark schemes have dark surfaces and light content.
	Dark

	ModeN
)

var modeNames = [ModeN]string{"Light", "Dark"}

func (m Mode) String() string {
	if m < 0 || m >= ModeN {
		return "Mode(?)"
	}
	return modeNames[m]
}

// ModeString returns the mode with the given name, ignoring case.
func ModeString(s string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, s) {
			return Mode(i), nil
		}
	}
	return Light, &grr.ParseError{Kind: "mode", Input: s}
}

// IsDark returns whether the mode is [Dark].
func (m Mode) IsDark() bool { return m == Dark }

// Toggled returns the opposite mode.
func (m Mode) Toggled() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ModeString(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
