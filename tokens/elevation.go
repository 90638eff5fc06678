// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tokens

import "cogentcore.org/material/colors"

// ElevationLevel is one of the six Material elevation levels (0-5).
type ElevationLevel int32

const (
	Level0 ElevationLevel = iota
	Level1
	Level2
	Level3
	Level4
	Level5
)

// ShadowOpacity is the alpha of the scheme shadow color in shadows.
const ShadowOpacity = 0.15

var elevationDp = [...]float32{0, 1, 3, 6, 8, 12}

// Dp returns the elevation in dp. Out of range levels are clamped.
func (l ElevationLevel) Dp() float32 {
	return elevationDp[l.clamp()]
}

func (l ElevationLevel) clamp() ElevationLevel {
	return min(Level5, max(Level0, l))
}

// Shadow is a single box shadow.
type Shadow struct {

	// OffsetY is the vertical offset of the shadow.
	// Positive moves it down.
	OffsetY float32

	// Blur is the blur radius of the shadow.
	Blur float32

	// Spread is the spread radius of the shadow.
	Spread float32

	// Color is the color of the shadow.
	Color colors.ARGB
}

// HasShadow returns whether the shadow is visible at all.
func (s Shadow) HasShadow() bool {
	return !s.Color.IsTransparent() && (s.OffsetY != 0 || s.Blur != 0 || s.Spread != 0)
}

var shadowGeom = [...][3]float32{
	{0, 0, 0},
	{1, 3, 1},
	{2, 6, 2},
	{4, 8, 3},
	{6, 10, 4},
	{8, 12, 6},
}

// Shadow returns the shadow for the level, using the given scheme
// shadow color. Level 0 has no shadow.
func (l ElevationLevel) Shadow(shadow colors.ARGB) Shadow {
	l = l.clamp()
	if l == Level0 {
		return Shadow{Color: colors.Transparent}
	}
	g := shadowGeom[l]
	return Shadow{OffsetY: g[0], Blur: g[1], Spread: g[2], Color: shadow.WithAlpha(ShadowOpacity)}
}
