// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colorful returns the color as a [colorful.Color], dropping alpha.
func (c ARGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R()) / 255, G: float64(c.G()) / 255, B: float64(c.B()) / 255}
}

// FromColorful returns the opaque color for a [colorful.Color],
// clamping it into gamut.
func FromColorful(c colorful.Color) ARGB {
	r, g, b := c.Clamped().RGB255()
	return FromRGB(r, g, b)
}

// BlendLab blends two colors in CIE L*a*b* space, where t=0 returns a
// and t=1 returns b. Alpha is blended linearly. It gives smoother cross
// fades between unrelated hues than [Blend].
func BlendLab(a, b ARGB, t float64) ARGB {
	t = min(1, max(0, t))
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	c := FromColorful(a.Colorful().BlendLab(b.Colorful(), t))
	alpha := float64(a.A())*(1-t) + float64(b.A())*t
	return c.WithAlpha(alpha / 255)
}
