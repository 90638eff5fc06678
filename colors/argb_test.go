// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestARGB(t *testing.T) {
	c := FromRGB(0x67, 0x50, 0xa4)
	assert.Equal(t, ARGB(0xff6750a4), c)
	assert.Equal(t, uint8(0x67), c.R())
	assert.Equal(t, uint8(0x50), c.G())
	assert.Equal(t, uint8(0xa4), c.B())
	assert.Equal(t, uint8(0xff), c.A())
	assert.Equal(t, "#6750A4", c.Hex())
	assert.Equal(t, "0xFF6750A4", c.String())
	assert.Equal(t, "#6750A480", c.WithAlpha(0.5).Hex())

	assert.True(t, Transparent.IsTransparent())
	assert.Equal(t, ARGB(0x616750a4), c.WithAlpha(0.38))
	assert.InDelta(t, 0.38, c.WithAlpha(0.38).Alpha(), 1.0/255)
	assert.Equal(t, c, c.WithAlpha(0.2).Opaque())
}

func TestColorInterop(t *testing.T) {
	c := FromRGBA(200, 100, 50, 128)
	assert.Equal(t, color.NRGBA{200, 100, 50, 128}, c.NRGBA())
	assert.Equal(t, c, FromColor(c.NRGBA()))
	assert.Equal(t, c, FromColor(c))
	assert.Equal(t, White, FromColor(color.White))
	assert.Equal(t, color.RGBA{0x67, 0x50, 0xa4, 0xff}, FromRGB(0x67, 0x50, 0xa4).AsRGBA())

	var _ color.Color = c
}

func TestLstar(t *testing.T) {
	assert.InDelta(t, 100, White.Lstar(), 1e-6)
	assert.InDelta(t, 0, Black.Lstar(), 1e-6)
}

func TestColorful(t *testing.T) {
	c := FromRGB(0x67, 0x50, 0xa4)
	assert.Equal(t, c, FromColorful(c.Colorful()))
	assert.Equal(t, "#6750a4", c.Colorful().Hex())
}
