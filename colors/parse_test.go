// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"testing"

	"cogentcore.org/material/grr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	valid := map[string]ARGB{
		"#6750A4":    0xff6750a4,
		"6750a4":     0xff6750a4,
		"0x6750A4":   0xff6750a4,
		"0x806750A4": 0xff6750a4,
		"0XFFFFFF":   0xffffffff,
	}
	for in, want := range valid {
		got, ok := ParseHex(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	invalid := []string{"", "#", "#FFF", "#6750A4FF", "6750A", "0x6750A", "0x6750A4F", "#67G0A4", "zzzzzz", " 6750A4", "#-12345"}
	for _, in := range invalid {
		_, ok := ParseHex(in)
		assert.False(t, ok, in)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("#6750A4")
	require.NoError(t, err)
	assert.Equal(t, ARGB(0xff6750a4), c)

	c, err = Parse("Teal")
	require.NoError(t, err)
	assert.Equal(t, FromRGB(0, 128, 128), c)

	_, err = Parse("not a color")
	var pe *grr.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "color", pe.Kind)
	assert.Equal(t, "not a color", pe.Input)
}

func TestHexRoundTrip(t *testing.T) {
	c, ok := ParseHex("#6750A4")
	require.True(t, ok)
	assert.Equal(t, uint8(0x67), c.R())
	assert.Equal(t, uint8(0x50), c.G())
	assert.Equal(t, uint8(0xa4), c.B())
	back, ok := ParseHex(c.Hex())
	assert.True(t, ok)
	assert.Equal(t, c, back)
}
