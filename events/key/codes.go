// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the logical keys that widgets react to.
// Printable input arrives as text alongside [CodeUnknown]; only keys
// with an editing or navigation meaning have their own code.
package key

import (
	"strings"

	"cogentcore.org/material/grr"
)

// Codes are logical key codes, independent of keyboard layout.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeReturnEnter
	CodeKeypadEnter
	CodeEscape
	CodeTab
	CodeBackspace
	CodeDelete
	CodeSpacebar
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown

	CodesN
)

var codeNames = [CodesN]string{
	"Unknown", "ReturnEnter", "KeypadEnter", "Escape", "Tab", "Backspace",
	"Delete", "Spacebar", "LeftArrow", "RightArrow", "UpArrow", "DownArrow",
	"Home", "End", "PageUp", "PageDown",
}

func (c Codes) String() string {
	if c < 0 || c >= CodesN {
		return "Unknown"
	}
	return codeNames[c]
}

// CodesString returns the code with the given name, ignoring case.
func CodesString(s string) (Codes, error) {
	for i, nm := range codeNames {
		if strings.EqualFold(nm, s) {
			return Codes(i), nil
		}
	}
	return CodeUnknown, &grr.ParseError{Kind: "key code", Input: s}
}

// IsEnter returns whether the code is either enter key.
func (c Codes) IsEnter() bool {
	return c == CodeReturnEnter || c == CodeKeypadEnter
}

// IsActivate returns whether the code activates a focused
// control, as a click would.
func (c Codes) IsActivate() bool {
	return c.IsEnter() || c == CodeSpacebar
}
