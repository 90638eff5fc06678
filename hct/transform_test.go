// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"
	"testing"

	"cogentcore.org/material/colors"
	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	blue := color.RGBA{0, 0, 255, 255}
	bt := FromColor(blue).Tone

	assert.InDelta(t, bt+30, Lighten(blue, 30).Lstar(), 0.5)
	assert.InDelta(t, bt-30, Darken(blue, 30).Lstar(), 0.5)
	assert.InDelta(t, bt+15, Highlight(blue, 15).Lstar(), 0.5)
	assert.InDelta(t, bt-15, Samelight(blue, 15).Lstar(), 0.5)

	sky := color.RGBA{18, 127, 205, 255}
	st := FromColor(sky).Tone
	assert.InDelta(t, st-18, Highlight(sky, 18).Lstar(), 0.5)
	assert.InDelta(t, st+18, Samelight(sky, 18).Lstar(), 0.5)

	purple := color.RGBA{112, 35, 206, 255}
	assert.Less(t, FromARGB(Desaturate(purple, 43)).Chroma, FromColor(purple).Chroma-40)
	muted := colors.ARGB(0xFF6B5F78)
	assert.Greater(t, FromARGB(Saturate(muted, 20)).Chroma, FromARGB(muted).Chroma+15)

	teal := color.RGBA{30, 85, 116, 255}
	spun := FromARGB(Spin(teal, 91))
	assert.InDelta(t, 0, MinHueDistance(FromColor(teal).Hue+91, spun.Hue), 3)

	half := color.NRGBA{0, 0, 255, 128}
	assert.Equal(t, uint8(128), Lighten(half, 10).A())
}

func TestMinHueDistance(t *testing.T) {
	assert.Equal(t, 80.0, MinHueDistance(240, 320))
	assert.Equal(t, -80.0, MinHueDistance(320, 240))
	assert.Equal(t, 46.0, MinHueDistance(320, 6))
	assert.Equal(t, -46.0, MinHueDistance(6, 320))
}

func TestBlend(t *testing.T) {
	c := Blend(50, colors.White, colors.Black)
	assert.InDelta(t, 50, c.Lstar(), 0.5)
	assert.Equal(t, colors.White, Blend(100, colors.White, colors.Black))
	assert.Equal(t, colors.Black, Blend(0, colors.White, colors.Black))

	assert.False(t, IsLight(color.RGBA{17, 38, 91, 255}))
	assert.True(t, IsLight(color.RGBA{178, 89, 203, 255}))
	assert.True(t, IsDark(color.RGBA{17, 38, 91, 255}))
	assert.False(t, IsDark(color.RGBA{178, 89, 203, 255}))
}
