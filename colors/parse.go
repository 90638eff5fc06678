// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strings"

	"cogentcore.org/material/grr"
	"golang.org/x/image/colornames"
)

// ParseHex parses a hex color in one of the forms "#RRGGBB", "RRGGBB",
// "0xRRGGBB" or "0xAARRGGBB". The result is always opaque: any alpha
// byte is ignored because palette and scheme inputs are opaque.
// It returns false for any other length or a non-hex character.
func ParseHex(s string) (ARGB, bool) {
	var digits string
	switch {
	case strings.HasPrefix(s, "#"):
		digits = s[1:]
		if len(digits) != 6 {
			return 0, false
		}
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		digits = s[2:]
		if len(digits) != 6 && len(digits) != 8 {
			return 0, false
		}
	default:
		digits = s
		if len(digits) != 6 {
			return 0, false
		}
	}
	var v uint32
	for i := 0; i < len(digits); i++ {
		d, ok := hexDigit(digits[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint32(d)
	}
	return ARGB(v).Opaque(), true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// FromName returns the opaque color with the given SVG / CSS color name,
// case-insensitively.
func FromName(name string) (ARGB, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	return FromRGBA(c.R, c.G, c.B, c.A), true
}

// Parse parses a hex color (see [ParseHex]) or a color name
// (see [FromName]), returning a [grr.ParseError] if it is neither.
func Parse(s string) (ARGB, error) {
	s = strings.TrimSpace(s)
	if c, ok := ParseHex(s); ok {
		return c, nil
	}
	if c, ok := FromName(s); ok {
		return c, nil
	}
	return 0, &grr.ParseError{Kind: "color", Input: s}
}
